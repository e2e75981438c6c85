package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-autopilot-api/internal/api/handler"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
	"github.com/vfg2006/ads-autopilot-api/internal/usecases/decisioning/mocks"
	"github.com/vfg2006/ads-autopilot-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Host = "localhost"
	cfg.Server.Port = "8000"
	cfg.Server.AllowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

func TestNewHandler_MiddlewareChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := mocks.NewMockDecisionEngine(ctrl)
	engine.EXPECT().Defaults().Return(domain.DefaultDecisionConfig())

	h := NewHandler(testConfig(), engine, handler.CronJobServices{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/decision-config/defaults", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_Preflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewHandler(testConfig(), mocks.NewMockDecisionEngine(ctrl), handler.CronJobServices{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/v1/adAccount/123/analysis", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestNew_Address(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv, err := New(testConfig(), mocks.NewMockDecisionEngine(ctrl), nil, nil)

	assert.NoError(t, err)
	assert.Equal(t, "localhost:8000", srv.httpServer.Addr)
}
