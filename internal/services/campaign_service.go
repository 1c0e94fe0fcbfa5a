package services

import (
	"context"

	"github.com/adfluence/backend/internal/models"
	"github.com/adfluence/backend/internal/rbac"
	"github.com/adfluence/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CampaignService enforces role-gated campaign actions and computes the
// dashboard aggregates. It never drives status transitions: status is
// written at creation and by external updates, and only read here.
type CampaignService struct {
	campaigns *repositories.CampaignRepo
	accounts  *repositories.AccountRepo
	niches    *repositories.NicheRepo
	log       *zap.Logger
}

func NewCampaignService(
	campaigns *repositories.CampaignRepo,
	accounts *repositories.AccountRepo,
	niches *repositories.NicheRepo,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaigns: campaigns,
		accounts:  accounts,
		niches:    niches,
		log:       log,
	}
}

// Create persists a campaign for a brand or agency creator. Applicant
// and accepted sets start empty; status defaults to active.
func (s *CampaignService) Create(ctx context.Context, creator *models.Account, c *models.Campaign) error {
	if !rbac.Can(creator.Role, rbac.ActionCreateCampaign) {
		return models.ErrForbidden
	}
	if c.Title == "" || c.Description == "" {
		return models.NewValidationError("title and description are required")
	}
	if len(c.NicheIDs) == 0 {
		return models.NewValidationError("at least one niche is required")
	}
	if len(c.Platforms) == 0 {
		return models.NewValidationError("at least one platform is required")
	}
	for _, p := range c.Platforms {
		if !models.IsValidPlatform(p) {
			return models.NewValidationError("unknown platform: " + p)
		}
	}
	if c.Status == "" {
		c.Status = models.CampaignStatusActive
	}
	if !models.IsValidCampaignStatus(c.Status) {
		return models.NewValidationError("unknown campaign status: " + c.Status)
	}

	c.CreatedBy = creator.ID
	if err := s.campaigns.Create(ctx, c); err != nil {
		return err
	}
	c.CreatorName = creator.Name

	// Advisory counter, best effort.
	if err := s.niches.IncrementCampaignCount(ctx, c.NicheIDs); err != nil {
		s.log.Warn("failed to bump campaign counters", zap.Error(err))
	}
	return nil
}

// List is a public read; all filters are independently optional.
func (s *CampaignService) List(ctx context.Context, f repositories.CampaignFilter) ([]models.Campaign, error) {
	return s.campaigns.List(ctx, f)
}

// Apply appends an influencer to a campaign's applicant set. The role
// check runs before the existence check, so non-influencers are refused
// even for campaigns that do not exist. Campaign status is deliberately
// not consulted: applications to non-active campaigns go through.
func (s *CampaignService) Apply(ctx context.Context, applicant *models.Account, campaignID uuid.UUID) error {
	if !rbac.Can(applicant.Role, rbac.ActionApplyToCampaign) {
		return models.ErrForbidden
	}
	if _, err := s.campaigns.GetByID(ctx, campaignID); err != nil {
		return err
	}

	added, err := s.campaigns.AddApplicant(ctx, campaignID, applicant.ID)
	if err != nil {
		return err
	}
	if !added {
		return models.ErrAlreadyApplied
	}
	return nil
}

type InfluencerStats struct {
	Earnings        float64 `json:"earnings"`
	ActiveCampaigns int     `json:"active_campaigns"`
	Applications    int     `json:"applications"`
	CompletionRate  float64 `json:"completion_rate"`
}

type InfluencerCampaigns struct {
	Applied   []models.Campaign `json:"applied"`
	Active    []models.Campaign `json:"active"`
	Completed []models.Campaign `json:"completed"`
}

type InfluencerDashboard struct {
	Stats     InfluencerStats     `json:"stats"`
	Campaigns InfluencerCampaigns `json:"campaigns"`
}

// InfluencerDashboard buckets the influencer's campaigns into applied,
// accepted+active and accepted+completed views and derives the
// aggregate stats.
func (s *CampaignService) InfluencerDashboard(ctx context.Context, user *models.Account) (*InfluencerDashboard, error) {
	if !rbac.Can(user.Role, rbac.ActionInfluencerDashboard) {
		return nil, models.ErrForbidden
	}

	applied, err := s.campaigns.ListByApplicant(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	active, err := s.campaigns.ListByAccepted(ctx, user.ID, models.CampaignStatusActive)
	if err != nil {
		return nil, err
	}
	completed, err := s.campaigns.ListByAccepted(ctx, user.ID, models.CampaignStatusCompleted)
	if err != nil {
		return nil, err
	}

	return &InfluencerDashboard{
		Stats: influencerStats(applied, active, completed),
		Campaigns: InfluencerCampaigns{
			Applied:   applied,
			Active:    active,
			Completed: completed,
		},
	}, nil
}

// influencerStats derives the dashboard aggregates. Earnings are an
// equal split of each completed campaign's budget across its accepted
// influencers; a completed campaign with nobody accepted contributes 0
// rather than dividing by zero.
func influencerStats(applied, active, completed []models.Campaign) InfluencerStats {
	var earnings float64
	for _, c := range completed {
		if n := len(c.Accepted); n > 0 {
			earnings += c.Budget / float64(n)
		}
	}

	var completionRate float64
	if total := len(completed) + len(active); total > 0 {
		completionRate = float64(len(completed)) / float64(total) * 100
	}

	return InfluencerStats{
		Earnings:        earnings,
		ActiveCampaigns: len(active),
		Applications:    len(applied),
		CompletionRate:  completionRate,
	}
}

// BrandDashboard returns the user's campaigns with applicant and
// accepted sets resolved to profile summaries.
func (s *CampaignService) BrandDashboard(ctx context.Context, user *models.Account) ([]models.CampaignWithParticipants, error) {
	if !rbac.Can(user.Role, rbac.ActionBrandDashboard) {
		return nil, models.ErrForbidden
	}

	campaigns, err := s.campaigns.List(ctx, repositories.CampaignFilter{CreatedBy: &user.ID})
	if err != nil {
		return nil, err
	}

	result := []models.CampaignWithParticipants{}
	for _, c := range campaigns {
		applicants, err := s.accounts.SummariesByIDs(ctx, c.Applicants)
		if err != nil {
			return nil, err
		}
		accepted, err := s.accounts.SummariesByIDs(ctx, c.Accepted)
		if err != nil {
			return nil, err
		}
		result = append(result, models.CampaignWithParticipants{
			Campaign:          c,
			ApplicantProfiles: applicants,
			AcceptedProfiles:  accepted,
		})
	}
	return result, nil
}
