package handlers

import (
	"github.com/adfluence/backend/internal/repositories"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type NicheHandler struct {
	niches *repositories.NicheRepo
	log    *zap.Logger
}

func NewNicheHandler(niches *repositories.NicheRepo, log *zap.Logger) *NicheHandler {
	return &NicheHandler{niches: niches, log: log}
}

// List returns the full niche catalog. Public read.
func (h *NicheHandler) List(c *fiber.Ctx) error {
	niches, err := h.niches.List(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(niches)
}
