package handlers

import (
	"github.com/adfluence/backend/internal/http/dto"
	"github.com/adfluence/backend/internal/middleware"
	"github.com/adfluence/backend/internal/models"
	"github.com/adfluence/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AccountHandler struct {
	accounts    *services.AccountService
	socialStats *services.SocialStatsService
	log         *zap.Logger
}

func NewAccountHandler(accounts *services.AccountService, socialStats *services.SocialStatsService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, socialStats: socialStats, log: log}
}

func (h *AccountHandler) GetMe(c *fiber.Ctx) error {
	return c.JSON(middleware.GetAccount(c))
}

func (h *AccountHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	upd := services.ProfileUpdate{
		Name:         req.Name,
		ProfileImage: req.ProfileImage,
		CompanyName:  req.CompanyName,
		Bio:          req.Bio,
	}

	if req.Niches != nil {
		ids, err := parseUUIDs(req.Niches)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid niche id"})
		}
		upd.NicheIDs = ids
	}
	if req.SocialMedia != nil {
		socials := make([]models.SocialAccount, 0, len(req.SocialMedia))
		for _, sm := range req.SocialMedia {
			socials = append(socials, models.SocialAccount{
				Platform:  sm.Platform,
				Handle:    sm.Handle,
				Followers: sm.Followers,
				Verified:  sm.Verified,
			})
		}
		upd.SocialMedia = socials
	}

	account, err := h.accounts.UpdateProfile(c.Context(), middleware.GetAccount(c), upd)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(account)
}

// RefreshSocialStats re-scrapes follower counts for the caller's social
// profiles and returns the refreshed account.
func (h *AccountHandler) RefreshSocialStats(c *fiber.Ctx) error {
	account := middleware.GetAccount(c)

	updated, err := h.socialStats.RefreshAccount(c.Context(), account.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	refreshed, err := h.accounts.Get(c.Context(), account.ID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.SocialRefreshResponse{Updated: updated, Account: refreshed})
}

func parseUUIDs(in []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(in))
	for _, s := range in {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
