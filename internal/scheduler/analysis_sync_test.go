package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning/mocks"
	"go.uber.org/mock/gomock"
)

func newTestSyncService(t *testing.T, engine *mocks.MockDecisionEngine, autoExecute bool) *AnalysisSyncService {
	t.Helper()

	cfg := &config.Config{}
	cfg.AnalysisSync.CronSchedule = "0 */6 * * *"
	cfg.AnalysisSync.AccountIDs = []string{"111", "222"}
	cfg.AnalysisSync.DateRange = "last_30_days"
	cfg.AnalysisSync.AutoExecute = autoExecute

	svc, err := NewAnalysisSyncService(engine, cfg)
	require.NoError(t, err)
	svc.now = func() time.Time { return time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC) }
	return svc
}

func TestAnalysisSyncService_runAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	svc := newTestSyncService(t, engine, true)

	report := &domain.AnalysisReport{
		ID:        "r1",
		AccountID: "111",
		Decisions: []domain.Decision{{EntityID: "A"}, {EntityID: "B"}},
	}

	engine.EXPECT().
		AnalyzePerformance(gomock.Any(), domain.AnalyzeRequest{AccountID: "111", DateRange: domain.DateRangeLast30Days}).
		Return(report, nil)
	engine.EXPECT().
		Execute(gomock.Any(), report, nil).
		Return(&domain.ExecutionResponse{ReportID: "r1", Results: []domain.ExecutionResult{{EntityID: "A"}}})
	engine.EXPECT().
		AnalyzePerformance(gomock.Any(), domain.AnalyzeRequest{AccountID: "222", DateRange: domain.DateRangeLast30Days}).
		Return(nil, errors.New("graph api unavailable"))

	svc.runAnalysis(context.Background())

	status := svc.GetStatus()
	results := status["last_results"].(map[string]AccountRunStatus)

	assert.Equal(t, "r1", results["111"].ReportID)
	assert.Equal(t, 2, results["111"].Decisions)
	assert.Equal(t, 1, results["111"].Executed)
	assert.Equal(t, "graph api unavailable", results["222"].Error)
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, domain.DateRangeLast30Days, status["sync_date_range"])
}

func TestAnalysisSyncService_NoAutoExecute(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	svc := newTestSyncService(t, engine, false)
	svc.config.AccountIDs = []string{"111"}

	engine.EXPECT().AnalyzePerformance(gomock.Any(), gomock.Any()).Return(&domain.AnalysisReport{ID: "r1"}, nil)

	svc.runAnalysis(context.Background())

	results := svc.GetStatus()["last_results"].(map[string]AccountRunStatus)
	assert.Equal(t, 0, results["111"].Executed)
}

func TestAnalysisSyncService_SkipsWhileRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	svc := newTestSyncService(t, engine, false)

	svc.syncRunning = true

	assert.False(t, svc.TriggerManualSync())
	svc.runAnalysis(context.Background())
}

func TestAnalysisSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	svc := newTestSyncService(t, engine, false)
	svc.config.AccountIDs = []string{"111"}

	done := make(chan struct{})
	engine.EXPECT().AnalyzePerformance(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.AnalyzeRequest) (*domain.AnalysisReport, error) {
			close(done)
			return &domain.AnalysisReport{ID: "r1"}, nil
		})

	require.True(t, svc.TriggerManualSync())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("manual sync did not run")
	}

	assert.Eventually(t, func() bool {
		return svc.GetStatus()["sync_running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}

func TestNewAnalysisSyncService_InvalidDateRange(t *testing.T) {
	cfg := &config.Config{}
	cfg.AnalysisSync.DateRange = "last_year"

	_, err := NewAnalysisSyncService(nil, cfg)
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
}

func TestAnalysisSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := newTestSyncService(t, mocks.NewMockDecisionEngine(ctrl), false)

	require.NoError(t, svc.Start(context.Background()))
	assert.Equal(t, 0, len(svc.scheduler.Jobs()))
}
