package handlers

import (
	"strconv"
	"time"

	"github.com/adfluence/backend/internal/http/dto"
	"github.com/adfluence/backend/internal/middleware"
	"github.com/adfluence/backend/internal/models"
	"github.com/adfluence/backend/internal/repositories"
	"github.com/adfluence/backend/internal/services"
	"github.com/adfluence/backend/internal/uploads"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CampaignHandler struct {
	campaigns *services.CampaignService
	store     *uploads.DiskStore
	log       *zap.Logger
}

func NewCampaignHandler(campaigns *services.CampaignService, store *uploads.DiskStore, log *zap.Logger) *CampaignHandler {
	return &CampaignHandler{campaigns: campaigns, store: store, log: log}
}

func (h *CampaignHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCampaignRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request body"})
	}

	nicheIDs, err := parseUUIDs(req.Niches)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid niche id"})
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid start_date"})
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid end_date"})
	}

	campaign := &models.Campaign{
		Title:        req.Title,
		Description:  req.Description,
		NicheIDs:     nicheIDs,
		Platforms:    req.Platforms,
		Budget:       req.Budget,
		BudgetMin:    req.BudgetMin,
		BudgetMax:    req.BudgetMax,
		Status:       req.Status,
		StartDate:    startDate,
		EndDate:      endDate,
		Requirements: req.Requirements,
		Deliverables: req.Deliverables,
	}

	// Optional image upload; only the stored path lands on the record.
	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		path, serr := h.store.Save(c, fh)
		if serr != nil {
			h.log.Error("image upload failed", zap.Error(serr))
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
		}
		campaign.Image = &path
	}

	creator := middleware.GetAccount(c)
	if err := h.campaigns.Create(c.Context(), creator, campaign); err != nil {
		return respondError(c, h.log, err)
	}

	return c.Status(fiber.StatusCreated).JSON(campaign)
}

// List is public; niche, platform and budget bound filters are each
// optional and combine with AND.
func (h *CampaignHandler) List(c *fiber.Ctx) error {
	var filter repositories.CampaignFilter

	if v := c.Query("niche"); v != "" {
		filter.NicheName = &v
	}
	if v := c.Query("platform"); v != "" {
		filter.Platform = &v
	}
	if v := c.Query("minBudget"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid minBudget"})
		}
		filter.MinBudget = &n
	}
	if v := c.Query("maxBudget"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid maxBudget"})
		}
		filter.MaxBudget = &n
	}

	campaigns, err := h.campaigns.List(c.Context(), filter)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(campaigns)
}

func (h *CampaignHandler) Apply(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid campaign id"})
	}

	applicant := middleware.GetAccount(c)
	if err := h.campaigns.Apply(c.Context(), applicant, id); err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(dto.MessageResponse{Message: "Application submitted successfully"})
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
