package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/ads-autopilot-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	latestReportKeyPrefix = "ads-autopilot:report:latest:"
	defaultReportTTL      = 24 * time.Hour
)

type ReportCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewReportCache(client redis.Cmdable, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = defaultReportTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

func latestKey(accountID string) string {
	return latestReportKeyPrefix + accountID
}

// GetLatest devolve nil, nil quando a conta não está no cache
func (c *ReportCache) GetLatest(ctx context.Context, accountID string) (*domain.AnalysisReport, error) {
	payload, err := c.client.Get(ctx, latestKey(accountID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache: get latest report: %w", err)
	}

	var report domain.AnalysisReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("cache: decode latest report: %w", err)
	}

	return &report, nil
}

// SetLatest substitui o último relatório da conta, exceto quando o que está no
// cache é mais novo
func (c *ReportCache) SetLatest(ctx context.Context, report *domain.AnalysisReport) error {
	current, err := c.GetLatest(ctx, report.AccountID)
	if err == nil && current != nil && current.Timestamp.After(report.Timestamp) {
		return nil
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("cache: encode report: %w", err)
	}

	if err := c.client.Set(ctx, latestKey(report.AccountID), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set latest report: %w", err)
	}

	return nil
}

func (c *ReportCache) Invalidate(ctx context.Context, accountID string) error {
	return c.client.Del(ctx, latestKey(accountID)).Err()
}

func (c *ReportCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
