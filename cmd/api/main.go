package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/adfluence/backend/internal/auth"
	"github.com/adfluence/backend/internal/config"
	"github.com/adfluence/backend/internal/db"
	apphttp "github.com/adfluence/backend/internal/http"
	"github.com/adfluence/backend/internal/http/handlers"
	"github.com/adfluence/backend/internal/repositories"
	"github.com/adfluence/backend/internal/services"
	"github.com/adfluence/backend/internal/socialstats"
	"github.com/adfluence/backend/internal/uploads"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis (sessions + rate limiting)
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Upload storage
	uploadStore, err := uploads.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal("failed to prepare upload dir", zap.Error(err))
	}

	// Repositories
	accountRepo := repositories.NewAccountRepo(pool)
	nicheRepo := repositories.NewNicheRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)

	// Services
	sessions := auth.NewSessionStore(rdb, cfg.JWTExpiration)
	accountService := services.NewAccountService(accountRepo, nicheRepo, sessions, cfg, log)
	campaignService := services.NewCampaignService(campaignRepo, accountRepo, nicheRepo, log)
	parser := socialstats.NewParser(cfg.SocialFetchTimeoutMS, cfg.SocialFetchMaxRetries, log)
	socialService := services.NewSocialStatsService(accountRepo, parser, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(accountService, log)
	accountHandler := handlers.NewAccountHandler(accountService, socialService, log)
	nicheHandler := handlers.NewNicheHandler(nicheRepo, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, uploadStore, log)
	dashboardHandler := handlers.NewDashboardHandler(campaignService, log)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, accountService,
		authHandler, accountHandler, nicheHandler, campaignHandler, dashboardHandler)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
