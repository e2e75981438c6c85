package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

func setupReportCache(t *testing.T) (*ReportCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewReportCache(client, time.Hour), mr
}

func report(id string, at time.Time) *domain.AnalysisReport {
	return &domain.AnalysisReport{
		ID:        id,
		AccountID: "123",
		DateRange: domain.DateRangeLast7Days,
		Timestamp: at,
		Config:    domain.DefaultDecisionConfig(),
	}
}

func TestReportCache_SetAndGet(t *testing.T) {
	cache, mr := setupReportCache(t)
	ctx := context.Background()

	miss, err := cache.GetLatest(ctx, "123")
	require.NoError(t, err)
	assert.Nil(t, miss)

	require.NoError(t, cache.SetLatest(ctx, report("r1", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))))

	got, err := cache.GetLatest(ctx, "123")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "r1", got.ID)
	assert.Equal(t, time.Hour, mr.TTL("ads-autopilot:report:latest:123"))
}

func TestReportCache_KeepsNewerReport(t *testing.T) {
	cache, _ := setupReportCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetLatest(ctx, report("newer", time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC))))
	require.NoError(t, cache.SetLatest(ctx, report("older", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))))

	got, err := cache.GetLatest(ctx, "123")
	require.NoError(t, err)
	assert.Equal(t, "newer", got.ID)
}

func TestReportCache_ExpiresAndInvalidates(t *testing.T) {
	cache, mr := setupReportCache(t)
	ctx := context.Background()

	require.NoError(t, cache.SetLatest(ctx, report("r1", time.Now())))
	mr.FastForward(2 * time.Hour)

	got, err := cache.GetLatest(ctx, "123")
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, cache.SetLatest(ctx, report("r2", time.Now())))
	require.NoError(t, cache.Invalidate(ctx, "123"))
	assert.False(t, mr.Exists("ads-autopilot:report:latest:123"))
}

func TestReportCache_CorruptedPayload(t *testing.T) {
	cache, mr := setupReportCache(t)
	require.NoError(t, mr.Set("ads-autopilot:report:latest:123", "{not json"))

	_, err := cache.GetLatest(context.Background(), "123")
	assert.Error(t, err)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), config.Redis{URL: "redis://" + mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	fallback, err := NewRedisClient(context.Background(), config.Redis{URL: mr.Addr()})
	require.NoError(t, err)
	defer fallback.Close()

	mr.Close()
	_, err = NewRedisClient(context.Background(), config.Redis{URL: mr.Addr()})
	assert.Error(t, err)
}

func TestReportCache_Ping(t *testing.T) {
	cache, mr := setupReportCache(t)

	require.NoError(t, cache.Ping(context.Background()))

	mr.Close()
	assert.Error(t, cache.Ping(context.Background()))
}
