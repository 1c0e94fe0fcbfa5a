package handlers

import (
	"github.com/adfluence/backend/internal/http/dto"
	"github.com/adfluence/backend/internal/middleware"
	"github.com/adfluence/backend/internal/models"
	"github.com/adfluence/backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	campaigns *services.CampaignService
	log       *zap.Logger
}

func NewDashboardHandler(campaigns *services.CampaignService, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{campaigns: campaigns, log: log}
}

type influencerDashboardResponse struct {
	Stats     services.InfluencerStats     `json:"stats"`
	Campaigns services.InfluencerCampaigns `json:"campaigns"`
	Account   *models.Account              `json:"account"`
}

func (h *DashboardHandler) Influencer(c *fiber.Ctx) error {
	user := middleware.GetAccount(c)

	dashboard, err := h.campaigns.InfluencerDashboard(c.Context(), user)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(influencerDashboardResponse{
		Stats:     dashboard.Stats,
		Campaigns: dashboard.Campaigns,
		Account:   user,
	})
}

func (h *DashboardHandler) Brand(c *fiber.Ctx) error {
	user := middleware.GetAccount(c)

	campaigns, err := h.campaigns.BrandDashboard(c.Context(), user)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.BrandDashboardResponse{Campaigns: campaigns, Account: user})
}
