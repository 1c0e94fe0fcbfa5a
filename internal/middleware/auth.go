package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/adfluence/backend/internal/http/dto"
	"github.com/adfluence/backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	CtxAccount   = "account"
	CtxSessionID = "session_id"
)

// TokenValidator resolves a bearer token to the live account and its
// session id. Implemented by services.AccountService.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*models.Account, string, error)
}

func AuthMiddleware(validator TokenValidator, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: models.ErrUnauthenticated.Error()})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: models.ErrUnauthenticated.Error()})
		}

		account, sessionID, err := validator.ValidateToken(c.Context(), tokenStr)
		if err != nil {
			if errors.Is(err, models.ErrUnauthenticated) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: models.ErrUnauthenticated.Error()})
			}
			log.Error("token validation failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
		}

		c.Locals(CtxAccount, account)
		c.Locals(CtxSessionID, sessionID)

		return c.Next()
	}
}

func GetAccount(c *fiber.Ctx) *models.Account {
	account, _ := c.Locals(CtxAccount).(*models.Account)
	return account
}

func GetSessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(CtxSessionID).(string)
	return id
}
