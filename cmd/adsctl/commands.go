package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-autopilot-api/infrastructure/migration"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

func newAnalyzeCmd(factory engineFactory) *cobra.Command {
	var (
		accountID      string
		dateRange      string
		minCTR         float64
		targetCTR      float64
		maxCPA         float64
		minImpressions int64
		pause          bool
		scale          bool
		save           bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Classify every active ad of an account and print the report",
		Example: `  adsctl analyze --account 123456 --range last_30d
  adsctl analyze --account 123456 --min-ctr 0.8 --max-cpa 4 --save`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dr, err := domain.ParseDateRange(dateRange)
			if err != nil {
				return fmt.Errorf("--range %q: %w", dateRange, err)
			}

			// Só as flags informadas sobrescrevem os padrões
			var opts domain.DecisionOptions
			flags := cmd.Flags()
			if flags.Changed("min-ctr") {
				opts.MinCTR = &minCTR
			}
			if flags.Changed("target-ctr") {
				opts.TargetCTR = &targetCTR
			}
			if flags.Changed("max-cpa") {
				opts.MaxCPA = &maxCPA
			}
			if flags.Changed("min-impressions") {
				opts.MinImpressions = &minImpressions
			}
			if flags.Changed("pause-underperformers") || flags.Changed("scale-winners") {
				opts.AutoActions = &domain.AutoActionsOptions{}
				if flags.Changed("pause-underperformers") {
					opts.AutoActions.PauseUnderperformers = &pause
				}
				if flags.Changed("scale-winners") {
					opts.AutoActions.ScaleWinners = &scale
				}
			}

			engine, closeFn, err := factory(cmd.Context(), engineOptions{withStore: save})
			if err != nil {
				return err
			}
			defer closeFn()

			report, err := engine.AnalyzePerformance(cmd.Context(), domain.AnalyzeRequest{
				AccountID: accountID,
				DateRange: dr,
				Options:   &opts,
			})
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), report)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "ad account id (without act_ prefix)")
	cmd.Flags().StringVar(&dateRange, "range", string(domain.DateRangeLast7Days), "today, yesterday, last_7d or last_30d")
	cmd.Flags().Float64Var(&minCTR, "min-ctr", 0, "CTR (%) below which an ad is an underperformer")
	cmd.Flags().Float64Var(&targetCTR, "target-ctr", 0, "CTR (%) at or above which an ad may be a winner")
	cmd.Flags().Float64Var(&maxCPA, "max-cpa", 0, "maximum acceptable cost per conversion")
	cmd.Flags().Int64Var(&minImpressions, "min-impressions", 0, "impressions needed before an ad leaves learning")
	cmd.Flags().BoolVar(&pause, "pause-underperformers", false, "mark underperformer pauses for automatic execution")
	cmd.Flags().BoolVar(&scale, "scale-winners", false, "mark winner scaling for automatic execution")
	cmd.Flags().BoolVar(&save, "save", false, "persist the report so it can be executed later")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func newExecuteCmd(factory engineFactory) *cobra.Command {
	var (
		accountID string
		approved  []string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "execute",
		Short: "Apply the decisions of the latest stored report of an account",
		Long: `Applies every decision marked for automatic execution plus the ones
approved with --approve. PAUSE decisions pause the ad; SCALE decisions report the
proposed daily budget and only write it when EXECUTION_APPLY_BUDGET is enabled.`,
		Example: `  adsctl execute --account 123456 --approve 2384,2391 --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, closeFn, err := factory(cmd.Context(), engineOptions{withStore: true, dryRun: dryRun})
			if err != nil {
				return err
			}
			defer closeFn()

			resp, err := engine.ExecuteLatest(cmd.Context(), accountID, approved)
			if err != nil {
				return err
			}

			return printJSON(cmd.OutOrStdout(), resp)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "ad account id")
	cmd.Flags().StringSliceVar(&approved, "approve", nil, "comma separated ad ids approved for execution")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "log the actions without writing to the ad platform")
	_ = cmd.MarkFlagRequired("account")

	return cmd
}

func newConfigCmd(factory engineFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved default decision config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, closeFn, err := factory(cmd.Context(), engineOptions{})
			if err != nil {
				return err
			}
			defer closeFn()

			return printJSON(cmd.OutOrStdout(), engine.Defaults())
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			conn, err := postgres.NewConnection(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer conn.Close()

			applied, err := migration.Apply(cmd.Context(), conn)
			if err != nil {
				return err
			}

			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "database is up to date")
				return nil
			}
			for _, version := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %s\n", version)
			}
			return nil
		},
	}
}
