package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-autopilot-api/internal/api/handler/router"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning/mocks"
	"github.com/vfg2006/ads-autopilot-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newAnalysisRouter(engine decisioning.DecisionEngine) http.Handler {
	return router.New(router.WithRoutes(Analysis(engine)...))
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetDecisionDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().Defaults().Return(domain.DefaultDecisionConfig())

	rec := serve(newAnalysisRouter(engine), http.MethodGet, "/v1/decision-config/defaults", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.DecisionConfig
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, domain.DefaultDecisionConfig(), got)
}

func TestAnalyzeAccount(t *testing.T) {
	minCTR := 0.5

	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().
		AnalyzePerformance(gomock.Any(), domain.AnalyzeRequest{
			AccountID: "123",
			DateRange: domain.DateRangeLast30Days,
			Options:   &domain.DecisionOptions{MinCTR: &minCTR},
		}).
		Return(&domain.AnalysisReport{
			ID:        "rep-1",
			AccountID: "123",
			DateRange: domain.DateRangeLast30Days,
			Timestamp: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		}, nil)

	rec := serve(newAnalysisRouter(engine), http.MethodPost, "/v1/adAccount/123/analysis",
		`{"date_range":"last_30_days","config":{"min_ctr":0.5}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.AnalysisReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "rep-1", got.ID)
	assert.Equal(t, domain.DateRangeLast30Days, got.DateRange)
}

func TestAnalyzeAccount_EmptyBodyUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().
		AnalyzePerformance(gomock.Any(), domain.AnalyzeRequest{AccountID: "123", DateRange: domain.DateRangeLast7Days}).
		Return(&domain.AnalysisReport{ID: "rep-1"}, nil)

	rec := serve(newAnalysisRouter(engine), http.MethodPost, "/v1/adAccount/123/analysis", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAnalyzeAccount_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		engineErr  error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "malformed body",
			body:       `{"date_range":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "unsupported date range",
			body:       `{"date_range":"last_year"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidDateRange,
		},
		{
			name:       "invalid config",
			body:       `{"config":{"min_ctr":5,"target_ctr":1}}`,
			engineErr:  fmt.Errorf("%w: target_ctr below min_ctr", domain.ErrInvalidConfig),
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidConfig,
		},
		{
			name:       "provider failure",
			body:       `{}`,
			engineErr:  errors.New("decisioning: insight for ad A: meta api: status 500"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			engine := mocks.NewMockDecisionEngine(ctrl)
			if tt.engineErr != nil {
				engine.EXPECT().AnalyzePerformance(gomock.Any(), gomock.Any()).Return(nil, tt.engineErr)
			}

			rec := serve(newAnalysisRouter(engine), http.MethodPost, "/v1/adAccount/123/analysis", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeAPIError(t, rec).Code)
		})
	}
}

func TestGetLatestAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().LatestReport(gomock.Any(), "123").Return(&domain.AnalysisReport{ID: "rep-9", AccountID: "123"}, nil)
	engine.EXPECT().LatestReport(gomock.Any(), "404").Return(nil, decisioning.ErrReportNotFound)

	h := newAnalysisRouter(engine)

	rec := serve(h, http.MethodGet, "/v1/adAccount/123/analysis/latest", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"rep-9"`)

	rec = serve(h, http.MethodGet, "/v1/adAccount/404/analysis/latest", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrReportNotFound, decodeAPIError(t, rec).Code)
}

func TestExecuteAnalysis(t *testing.T) {
	budget := 120.0

	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().
		ExecuteLatest(gomock.Any(), "123", []string{"ad-1", "ad-2"}).
		Return(&domain.ExecutionResponse{
			ReportID: "rep-1",
			Results: []domain.ExecutionResult{
				{EntityID: "ad-1", Action: domain.ActionPause, Success: true},
				{EntityID: "ad-2", Action: domain.ActionScale, Success: true, ProposedDailyBudget: &budget},
			},
		}, nil)

	rec := serve(newAnalysisRouter(engine), http.MethodPost, "/v1/adAccount/123/analysis/execute",
		`{"approved_ids":["ad-1","ad-2"]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.ExecutionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "rep-1", got.ReportID)
	require.Len(t, got.Results, 2)
	assert.Equal(t, 120.0, *got.Results[1].ProposedDailyBudget)
}

func TestExecuteAnalysis_NoReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().ExecuteLatest(gomock.Any(), "123", nil).Return(nil, decisioning.ErrReportNotFound)

	rec := serve(newAnalysisRouter(engine), http.MethodPost, "/v1/adAccount/123/analysis/execute", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := newAnalysisRouter(mocks.NewMockDecisionEngine(ctrl))

	rec := serve(h, http.MethodGet, "/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeAPIError(t, rec).Code)

	rec = serve(h, http.MethodDelete, "/v1/adAccount/123/analysis", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthcheck(t *testing.T) {
	tests := []struct {
		name       string
		deps       map[string]Pinger
		wantStatus int
		wantBody   string
	}{
		{name: "no dependencies", deps: nil, wantStatus: http.StatusOK, wantBody: `"checks":{}`},
		{name: "all up", deps: map[string]Pinger{"postgres": stubPinger{}}, wantStatus: http.StatusOK, wantBody: `"postgres":"up"`},
		{
			name:       "redis down",
			deps:       map[string]Pinger{"postgres": stubPinger{}, "redis": stubPinger{err: errors.New("refused")}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"redis":"down"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := router.New(router.WithRoutes(Healthcheck(tt.deps)...))
			rec := serve(h, http.MethodGet, "/healthcheck", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
