package http

import (
	"time"

	"github.com/adfluence/backend/internal/config"
	"github.com/adfluence/backend/internal/http/handlers"
	"github.com/adfluence/backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	validator middleware.TokenValidator,
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	nicheHandler *handlers.NicheHandler,
	campaignHandler *handlers.CampaignHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Uploaded campaign images
	app.Static("/uploads", cfg.UploadDir)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	rateLimited := middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute)
	authRequired := middleware.AuthMiddleware(validator, log)

	// Public
	api.Post("/register", rateLimited, authHandler.Register)
	api.Post("/login", rateLimited, authHandler.Login)
	api.Get("/niches", rateLimited, nicheHandler.List)
	api.Get("/campaigns", rateLimited, campaignHandler.List)

	// Authenticated
	api.Post("/logout", authRequired, authHandler.Logout)
	api.Get("/me", authRequired, accountHandler.GetMe)
	api.Put("/me", authRequired, accountHandler.UpdateProfile)
	api.Post("/me/social/refresh", authRequired, accountHandler.RefreshSocialStats)
	api.Post("/campaigns", authRequired, campaignHandler.Create)
	api.Post("/campaigns/:id/apply", authRequired, campaignHandler.Apply)
	api.Get("/dashboard/influencer", authRequired, dashboardHandler.Influencer)
	api.Get("/dashboard/brand", authRequired, dashboardHandler.Brand)
}
