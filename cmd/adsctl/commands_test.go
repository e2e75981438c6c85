package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning/mocks"
	"go.uber.org/mock/gomock"
)

type factoryCall struct {
	opts   engineOptions
	closed bool
}

func stubFactory(engine decisioning.DecisionEngine, call *factoryCall) engineFactory {
	return func(_ context.Context, opts engineOptions) (decisioning.DecisionEngine, func(), error) {
		call.opts = opts
		return engine, func() { call.closed = true }, nil
	}
}

func runCmd(t *testing.T, factory engineFactory, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCmd(factory)
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestAnalyzeCmd_OnlyChangedFlagsOverride(t *testing.T) {
	minCTR := 0.8
	pause := true

	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().
		AnalyzePerformance(gomock.Any(), domain.AnalyzeRequest{
			AccountID: "123",
			DateRange: domain.DateRangeLast30Days,
			Options: &domain.DecisionOptions{
				MinCTR:      &minCTR,
				AutoActions: &domain.AutoActionsOptions{PauseUnderperformers: &pause},
			},
		}).
		Return(&domain.AnalysisReport{ID: "rep-1", AccountID: "123"}, nil)

	var call factoryCall
	out, err := runCmd(t, stubFactory(engine, &call),
		"analyze", "--account", "123", "--range", "last_30_days", "--min-ctr", "0.8", "--pause-underperformers", "--save")

	require.NoError(t, err)
	assert.Contains(t, out, `"id": "rep-1"`)
	assert.True(t, call.opts.withStore)
	assert.True(t, call.closed)
}

func TestAnalyzeCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing account", args: []string{"analyze"}},
		{name: "invalid range", args: []string{"analyze", "--account", "123", "--range", "last_year"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			var call factoryCall

			_, err := runCmd(t, stubFactory(mocks.NewMockDecisionEngine(ctrl), &call), tt.args...)

			assert.Error(t, err)
		})
	}
}

func TestAnalyzeCmd_EngineError(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().AnalyzePerformance(gomock.Any(), gomock.Any()).Return(nil, errors.New("graph api unavailable"))

	var call factoryCall
	_, err := runCmd(t, stubFactory(engine, &call), "analyze", "--account", "123")

	assert.EqualError(t, err, "graph api unavailable")
	assert.False(t, call.opts.withStore)
}

func TestExecuteCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().
		ExecuteLatest(gomock.Any(), "123", []string{"A", "B"}).
		Return(&domain.ExecutionResponse{
			ReportID: "rep-1",
			Results:  []domain.ExecutionResult{{EntityID: "A", Action: domain.ActionPause, Success: true}},
		}, nil)

	var call factoryCall
	out, err := runCmd(t, stubFactory(engine, &call), "execute", "--account", "123", "--approve", "A,B", "--dry-run")

	require.NoError(t, err)
	assert.Contains(t, out, `"report_id": "rep-1"`)
	assert.Equal(t, engineOptions{withStore: true, dryRun: true}, call.opts)
}

func TestExecuteCmd_NoReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().ExecuteLatest(gomock.Any(), "123", nil).Return(nil, decisioning.ErrReportNotFound)

	var call factoryCall
	_, err := runCmd(t, stubFactory(engine, &call), "execute", "--account", "123")

	assert.ErrorIs(t, err, decisioning.ErrReportNotFound)
}

func TestConfigCmd(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().Defaults().Return(domain.DefaultDecisionConfig())

	var call factoryCall
	out, err := runCmd(t, stubFactory(engine, &call), "config")

	require.NoError(t, err)

	var got domain.DecisionConfig
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, domain.DefaultDecisionConfig(), got)
	assert.False(t, call.opts.withStore)
}
