package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vfg2006/ads-autopilot-api/internal/config"
)

// NewRedisClient abre o client a partir de REDIS_URL. Aceita URL redis:// ou host:porta.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	var client *redis.Client

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		client = redis.NewClient(&redis.Options{Addr: cfg.URL})
	} else {
		client = redis.NewClient(opts)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
