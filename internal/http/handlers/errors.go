package handlers

import (
	"errors"

	"github.com/adfluence/backend/internal/http/dto"
	"github.com/adfluence/backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// respondError maps domain errors onto HTTP statuses with user-safe
// messages. Anything outside the taxonomy is logged and reported as a
// generic internal error.
func respondError(c *fiber.Ctx, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrAlreadyApplied):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case models.IsValidationError(err):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, models.ErrCampaignNotFound),
		errors.Is(err, models.ErrAccountNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error("request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
}
