package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning"
)

// AnalysisSyncConfig representa a configuração da análise periódica das contas
type AnalysisSyncConfig struct {
	CronSchedule string
	AccountIDs   []string
	DateRange    domain.DateRange
	AutoExecute  bool
	SyncEnabled  bool
}

// AccountRunStatus guarda o resultado da última análise de uma conta
type AccountRunStatus struct {
	ReportID  string    `json:"report_id,omitempty"`
	Decisions int       `json:"decisions"`
	Executed  int       `json:"executed"`
	Error     string    `json:"error,omitempty"`
	RanAt     time.Time `json:"ran_at"`
}

// AnalysisSyncService agenda a análise de performance das contas configuradas e,
// quando habilitado, aplica as decisões automáticas
type AnalysisSyncService struct {
	scheduler           *gocron.Scheduler
	config              AnalysisSyncConfig
	engine              decisioning.DecisionEngine
	ctx                 context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResults         map[string]AccountRunStatus
	now                 func() time.Time
}

func NewAnalysisSyncService(engine decisioning.DecisionEngine, appConfig *config.Config) (*AnalysisSyncService, error) {
	dateRange, err := domain.ParseDateRange(appConfig.AnalysisSync.DateRange)
	if err != nil {
		return nil, err
	}

	syncConfig := AnalysisSyncConfig{
		CronSchedule: appConfig.AnalysisSync.CronSchedule,
		AccountIDs:   appConfig.AnalysisSync.AccountIDs,
		DateRange:    dateRange,
		AutoExecute:  appConfig.AnalysisSync.AutoExecute,
		SyncEnabled:  appConfig.AnalysisSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"accounts":      len(syncConfig.AccountIDs),
		"date_range":    syncConfig.DateRange,
		"auto_execute":  syncConfig.AutoExecute,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("scheduler: analysis sync config loaded")

	return &AnalysisSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		engine:      engine,
		ctx:         context.Background(),
		lastResults: make(map[string]AccountRunStatus),
		now:         time.Now,
	}, nil
}

// Start agenda a análise periódica. Com a sincronização desabilitada a execução
// manual continua disponível.
func (s *AnalysisSyncService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("scheduler: analysis sync disabled by configuration")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("scheduler: starting analysis sync")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runAnalysis(s.ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar análise de performance: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping analysis sync")
		s.scheduler.Stop()
	}()

	return nil
}

// runAnalysis analisa cada conta configurada. A falha de uma conta não interrompe as demais.
func (s *AnalysisSyncService) runAnalysis(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: analysis sync already running, skipping")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		s.syncMutex.Unlock()
	}()

	if len(s.config.AccountIDs) == 0 {
		logrus.Info("scheduler: no accounts configured for analysis sync")
		return
	}

	for _, accountID := range s.config.AccountIDs {
		if ctx.Err() != nil {
			logrus.Warn("scheduler: analysis sync cancelled")
			return
		}

		status := s.analyzeAccount(ctx, accountID)

		s.syncMutex.Lock()
		s.lastResults[accountID] = status
		s.syncMutex.Unlock()
	}
}

func (s *AnalysisSyncService) analyzeAccount(ctx context.Context, accountID string) AccountRunStatus {
	status := AccountRunStatus{RanAt: s.now()}
	logger := logrus.WithField("account_id", accountID)

	report, err := s.engine.AnalyzePerformance(ctx, domain.AnalyzeRequest{
		AccountID: accountID,
		DateRange: s.config.DateRange,
	})
	if err != nil {
		logger.WithError(err).Error("scheduler: analysis failed for account")
		status.Error = err.Error()
		return status
	}

	status.ReportID = report.ID
	status.Decisions = len(report.Decisions)

	if s.config.AutoExecute {
		resp := s.engine.Execute(ctx, report, nil)
		status.Executed = len(resp.Results)
	}

	logger.WithFields(logrus.Fields{
		"report_id": status.ReportID,
		"decisions": status.Decisions,
		"executed":  status.Executed,
	}).Info("scheduler: account analysis finished")

	return status
}

// TriggerManualSync inicia manualmente a análise. Devolve false se já houver uma em andamento.
func (s *AnalysisSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: analysis sync already running, ignoring manual request")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("scheduler: starting manual analysis sync")
	go s.runAnalysis(s.ctx)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *AnalysisSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	results := make(map[string]AccountRunStatus, len(s.lastResults))
	for accountID, status := range s.lastResults {
		results[accountID] = status
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_accounts":          s.config.AccountIDs,
		"sync_date_range":        s.config.DateRange,
		"sync_auto_execute":      s.config.AutoExecute,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_results":           results,
	}
}
