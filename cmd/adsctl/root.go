package main

import (
	"context"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/ads-autopilot-api/internal/bootstrap"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type engineOptions struct {
	withStore bool
	dryRun    bool
}

// engineFactory monta o motor de decisão. O func devolvido libera as conexões.
type engineFactory func(ctx context.Context, opts engineOptions) (decisioning.DecisionEngine, func(), error)

func newEngine(ctx context.Context, opts engineOptions) (decisioning.DecisionEngine, func(), error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}
	if opts.dryRun {
		cfg.Execution.DryRun = true
	}

	app, err := bootstrap.New(ctx, cfg, bootstrap.Options{WithStore: opts.withStore})
	if err != nil {
		return nil, nil, err
	}

	return app.Engine, app.Close, nil
}

func newRootCmd(factory engineFactory) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "adsctl",
		Short:         "Operate the ads performance decision engine",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logrus.SetLevel(logrus.WarnLevel)
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output to stderr")

	root.AddCommand(
		newAnalyzeCmd(factory),
		newExecuteCmd(factory),
		newConfigCmd(factory),
		newMigrateCmd(),
	)

	return root
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
