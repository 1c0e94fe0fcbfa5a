package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	pgMaxConns        = 16
	pgMinConns        = 2
	pgConnMaxLifetime = 30 * time.Minute
	pgConnMaxIdle     = 5 * time.Minute
)

// NewPostgresPool builds a pgx pool from the DSN and pings it so a bad
// DSN or unreachable server fails at startup rather than on the first
// request.
func NewPostgresPool(ctx context.Context, dsn string, log *zap.Logger) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}

	cfg.MaxConns = pgMaxConns
	cfg.MinConns = pgMinConns
	cfg.MaxConnLifetime = pgConnMaxLifetime
	cfg.MaxConnIdleTime = pgConnMaxIdle

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	log.Info("postgres ready",
		zap.Int32("max_conns", cfg.MaxConns),
		zap.Int32("min_conns", cfg.MinConns),
	)
	return pool, nil
}
