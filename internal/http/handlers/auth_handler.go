package handlers

import (
	"github.com/adfluence/backend/internal/http/dto"
	"github.com/adfluence/backend/internal/middleware"
	"github.com/adfluence/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	accounts *services.AccountService
	log      *zap.Logger
}

func NewAuthHandler(accounts *services.AccountService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, log: log}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	account, token, err := h.accounts.Register(c.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{Account: account, Token: token})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	account, token, err := h.accounts.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.AuthResponse{Account: account, Token: token})
}

// Logout revokes the presented session only; other sessions for the
// same account remain valid.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	account := middleware.GetAccount(c)
	sessionID := middleware.GetSessionID(c)

	if err := h.accounts.Logout(c.Context(), account.ID, sessionID); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}
