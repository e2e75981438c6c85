package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

func TestNew_WithoutStore(t *testing.T) {
	cfg := &config.Config{}
	cfg.Meta.URL = "http://localhost:9999/v22.0"
	cfg.Meta.AccessToken = "token"
	cfg.Decision.MinCTR = 0.5
	cfg.Decision.TargetCTR = 1.5
	cfg.Decision.ConversionEvent = string(domain.ConversionPurchase)

	app, err := New(context.Background(), cfg, Options{})
	require.NoError(t, err)
	defer app.Close()

	assert.Nil(t, app.DB)
	assert.Nil(t, app.Cache)
	assert.Equal(t, "token", app.Tokens.AccessToken())
	assert.Equal(t, cfg.Decision.Defaults(), app.Engine.Defaults())

	_, err = app.Engine.LatestReport(context.Background(), "123")
	assert.Error(t, err)
}
