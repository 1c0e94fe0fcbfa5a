package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adfluence/backend/internal/config"
	"github.com/adfluence/backend/internal/db"
	"github.com/adfluence/backend/internal/repositories"
	"github.com/adfluence/backend/internal/services"
	"github.com/adfluence/backend/internal/socialstats"
	"go.uber.org/zap"
)

// Periodic refresher for stored follower counts. Runs alongside the API;
// counts are advisory so a missed cycle is harmless.
func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	accountRepo := repositories.NewAccountRepo(pool)
	parser := socialstats.NewParser(cfg.SocialFetchTimeoutMS, cfg.SocialFetchMaxRetries, log)
	socialService := services.NewSocialStatsService(accountRepo, parser, log)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
	}()

	log.Info("social stats fetcher started", zap.Duration("interval", cfg.SocialRefreshInterval))

	runRefresh(ctx, socialService, log)

	ticker := time.NewTicker(cfg.SocialRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runRefresh(ctx, socialService, log)
		}
	}
}

func runRefresh(ctx context.Context, svc *services.SocialStatsService, log *zap.Logger) {
	start := time.Now()
	updated, err := svc.RefreshAll(ctx)
	if err != nil {
		log.Error("refresh cycle failed", zap.Error(err))
		return
	}
	log.Info("refresh cycle done",
		zap.Int("updated", updated),
		zap.Duration("took", time.Since(start)),
	)
}
