package decisioning

import (
	"context"

	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

// EntityWriter aplica alterações de status e orçamento na plataforma de anúncios
type EntityWriter interface {
	SetStatus(ctx context.Context, entityID string, status domain.EntityStatus) error
	// SetDailyBudget recebe o valor em unidades da moeda
	SetDailyBudget(ctx context.Context, adSetID string, amount float64) error
}

// MetricsProvider é a fonte da hierarquia de entidades e das métricas de entrega
type MetricsProvider interface {
	EntityWriter

	ListCampaigns(ctx context.Context, accountID string) ([]domain.Campaign, error)
	ListAdSets(ctx context.Context, campaignID string) ([]domain.AdSet, error)
	ListAds(ctx context.Context, adSetID string) ([]domain.Ad, error)
	// GetInsight devolve um Insight zerado quando a entidade não teve entrega no período
	GetInsight(ctx context.Context, entityID string, level domain.Level, dateRange domain.DateRange) (domain.Insight, error)
}

// ReportRepository persiste os relatórios de análise.
// GetLatestByAccountID devolve nil, nil quando a conta ainda não tem relatório.
type ReportRepository interface {
	Save(ctx context.Context, report *domain.AnalysisReport) error
	GetLatestByAccountID(ctx context.Context, accountID string) (*domain.AnalysisReport, error)
	SaveExecutionResults(ctx context.Context, reportID string, results []domain.ExecutionResult) error
}

// ReportCache guarda o último relatório de cada conta. Miss devolve nil, nil.
type ReportCache interface {
	GetLatest(ctx context.Context, accountID string) (*domain.AnalysisReport, error)
	SetLatest(ctx context.Context, report *domain.AnalysisReport) error
}

// DecisionEngine é a interface consumida pelos handlers, pelo scheduler e pela CLI
type DecisionEngine interface {
	Defaults() domain.DecisionConfig
	AnalyzePerformance(ctx context.Context, req domain.AnalyzeRequest) (*domain.AnalysisReport, error)
	LatestReport(ctx context.Context, accountID string) (*domain.AnalysisReport, error)
	ExecuteLatest(ctx context.Context, accountID string, approvedIDs []string) (*domain.ExecutionResponse, error)
	Execute(ctx context.Context, report *domain.AnalysisReport, approvedIDs []string) *domain.ExecutionResponse
}
