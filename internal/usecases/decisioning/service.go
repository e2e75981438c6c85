package decisioning

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/pkg/log"
	"github.com/vfg2006/ads-autopilot-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrentFetches = 4

// adTarget é um anúncio ativo sob conjunto e campanha ativos
type adTarget struct {
	ad    domain.Ad
	adSet domain.AdSet
}

// Service executa a análise de performance e a aplicação das decisões
type Service struct {
	provider      MetricsProvider
	executor      *Executor
	defaults      domain.DecisionConfig
	maxConcurrent int

	repository ReportRepository
	cache      ReportCache
	useStore   bool

	now   func() time.Time
	newID func() (string, error)
}

func NewService(provider MetricsProvider, executor *Executor, defaults domain.DecisionConfig, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = defaultMaxConcurrentFetches
	}

	return &Service{
		provider:      provider,
		executor:      executor,
		defaults:      defaults,
		maxConcurrent: maxConcurrent,
		now:           time.Now,
		newID:         utils.GenerateReportID,
	}
}

// WithStore habilita a persistência dos relatórios. cache pode ser nil.
func (s *Service) WithStore(repository ReportRepository, cache ReportCache) *Service {
	s.repository = repository
	s.cache = cache
	s.useStore = repository != nil
	return s
}

func (s *Service) Defaults() domain.DecisionConfig {
	return s.defaults
}

// AnalyzePerformance percorre campanhas, conjuntos e anúncios ativos da conta,
// classifica cada anúncio e monta o relatório. Qualquer erro do provedor aborta a
// execução inteira e nada é persistido.
func (s *Service) AnalyzePerformance(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalysisReport, error) {
	if req.AccountID == "" {
		return nil, ErrAccountIDRequired
	}

	dateRange := req.DateRange
	if dateRange == "" {
		dateRange = domain.DateRangeLast7Days
	}

	cfg := req.Options.Resolve(s.defaults)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id": req.AccountID,
		"date_range": dateRange,
	})
	logger.Info("decisioning: starting performance analysis")

	summary, err := s.provider.GetInsight(ctx, req.AccountID, domain.LevelAccount, dateRange)
	if err != nil {
		return nil, errors.Wrapf(err, "decisioning: account insight for %s", req.AccountID)
	}

	targets, err := s.collectActiveAds(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	insights, err := s.fetchInsights(ctx, targets, dateRange)
	if err != nil {
		return nil, err
	}

	decisions := make([]domain.Decision, 0, len(targets))
	alerts := make([]domain.Alert, 0)
	for i, target := range targets {
		decisions = append(decisions, Classify(target.ad, target.adSet, insights[i], cfg))
		if alert := CheckCPA(target.ad, insights[i], cfg); alert != nil {
			alerts = append(alerts, *alert)
		}
	}

	id, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(err, "decisioning: generate report id")
	}

	report := &domain.AnalysisReport{
		ID:              id,
		AccountID:       req.AccountID,
		DateRange:       dateRange,
		Timestamp:       s.now().UTC(),
		AccountSummary:  summary,
		Decisions:       decisions,
		Alerts:          alerts,
		Recommendations: BuildRecommendations(decisions, alerts),
		Config:          cfg,
	}

	logger.WithFields(log.Fields{
		"report_id":        report.ID,
		"report_decisions": len(decisions),
		"report_alerts":    len(alerts),
	}).Info("decisioning: analysis finished")

	if err := s.store(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

// collectActiveAds faz o caminho hierárquico. Entidades não ativas são puladas e
// um pai pausado esconde todos os filhos.
func (s *Service) collectActiveAds(ctx context.Context, accountID string) ([]adTarget, error) {
	campaigns, err := s.provider.ListCampaigns(ctx, accountID)
	if err != nil {
		return nil, errors.Wrapf(err, "decisioning: list campaigns for account %s", accountID)
	}

	targets := make([]adTarget, 0)
	for _, campaign := range campaigns {
		if !campaign.Status.IsActive() {
			continue
		}

		adSets, err := s.provider.ListAdSets(ctx, campaign.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "decisioning: list ad sets for campaign %s", campaign.ID)
		}

		for _, adSet := range adSets {
			if !adSet.Status.IsActive() {
				continue
			}
			if adSet.CampaignID == "" {
				adSet.CampaignID = campaign.ID
			}

			ads, err := s.provider.ListAds(ctx, adSet.ID)
			if err != nil {
				return nil, errors.Wrapf(err, "decisioning: list ads for ad set %s", adSet.ID)
			}

			for _, ad := range ads {
				if !ad.Status.IsActive() {
					continue
				}
				targets = append(targets, adTarget{ad: ad, adSet: adSet})
			}
		}
	}

	return targets, nil
}

// fetchInsights busca as métricas dos anúncios em paralelo, limitado por maxConcurrent.
// Cada resultado vai para o índice do seu anúncio, mantendo a ordem do caminho.
func (s *Service) fetchInsights(ctx context.Context, targets []adTarget, dateRange domain.DateRange) ([]domain.Insight, error) {
	insights := make([]domain.Insight, len(targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i, target := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			insight, err := s.provider.GetInsight(gctx, target.ad.ID, domain.LevelAd, dateRange)
			if err != nil {
				return errors.Wrapf(err, "decisioning: insight for ad %s", target.ad.ID)
			}

			insights[i] = insight
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return insights, nil
}

func (s *Service) store(ctx context.Context, report *domain.AnalysisReport) error {
	if !s.useStore {
		return nil
	}

	if err := s.repository.Save(ctx, report); err != nil {
		return errors.Wrapf(err, "decisioning: save report %s", report.ID)
	}

	if s.cache != nil {
		if err := s.cache.SetLatest(ctx, report); err != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"report_id":  report.ID,
				"account_id": report.AccountID,
			}).WithError(err).Warn("decisioning: failed to cache latest report")
		}
	}

	return nil
}

// LatestReport busca o último relatório da conta, primeiro no cache e depois no banco
func (s *Service) LatestReport(ctx context.Context, accountID string) (*domain.AnalysisReport, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}
	if !s.useStore {
		return nil, ErrReportNotFound
	}

	logger := log.ForContext(ctx).WithField("account_id", accountID)

	if s.cache != nil {
		report, err := s.cache.GetLatest(ctx, accountID)
		if err != nil {
			logger.WithError(err).Warn("decisioning: cache lookup failed, falling back to database")
		} else if report != nil {
			return report, nil
		}
	}

	report, err := s.repository.GetLatestByAccountID(ctx, accountID)
	if err != nil {
		return nil, errors.Wrapf(err, "decisioning: load latest report for account %s", accountID)
	}
	if report == nil {
		return nil, ErrReportNotFound
	}

	if s.cache != nil {
		if err := s.cache.SetLatest(ctx, report); err != nil {
			logger.WithError(err).Warn("decisioning: failed to warm report cache")
		}
	}

	return report, nil
}

// ExecuteLatest aplica as decisões do último relatório da conta
func (s *Service) ExecuteLatest(ctx context.Context, accountID string, approvedIDs []string) (*domain.ExecutionResponse, error) {
	report, err := s.LatestReport(ctx, accountID)
	if err != nil {
		return nil, err
	}

	return s.Execute(ctx, report, approvedIDs), nil
}

// Execute aplica as decisões de um relatório já carregado
func (s *Service) Execute(ctx context.Context, report *domain.AnalysisReport, approvedIDs []string) *domain.ExecutionResponse {
	results := s.executor.Execute(ctx, report.Decisions, report.Config, approvedIDs)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"account_id":     report.AccountID,
		"report_id":      report.ID,
		"report_results": len(results),
	})
	logger.Info("decisioning: execution finished")

	if s.useStore && len(results) > 0 {
		if err := s.repository.SaveExecutionResults(ctx, report.ID, results); err != nil {
			logger.WithError(err).Warn("decisioning: failed to record execution results")
		}
	}

	return &domain.ExecutionResponse{
		ReportID: report.ID,
		Results:  results,
	}
}
