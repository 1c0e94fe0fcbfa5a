package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects from a redis:// URL and verifies the
// connection with a short ping so a bad address fails at startup.
func NewRedisClient(ctx context.Context, url string, log *zap.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Info("redis ready", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))
	return client, nil
}
