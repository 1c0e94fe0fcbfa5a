package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses. The matching engine only reads status to bucket
// dashboard views; it does not drive transitions. Status is set at
// creation and otherwise updated by direct field writes from outside
// this core.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

func IsValidCampaignStatus(status string) bool {
	switch status {
	case CampaignStatusDraft, CampaignStatusActive,
		CampaignStatusCompleted, CampaignStatusCancelled:
		return true
	}
	return false
}

type Campaign struct {
	ID           uuid.UUID   `json:"id"`
	CreatedBy    uuid.UUID   `json:"created_by"`
	CreatorName  string      `json:"creator_name,omitempty"` // resolved on reads
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Image        *string     `json:"image,omitempty"`
	NicheIDs     []uuid.UUID `json:"niche_ids"`
	Platforms    []string    `json:"platforms"`
	Budget       float64     `json:"budget"`
	BudgetMin    *float64    `json:"budget_min,omitempty"`
	BudgetMax    *float64    `json:"budget_max,omitempty"`
	Status       string      `json:"status"`
	StartDate    *time.Time  `json:"start_date,omitempty"`
	EndDate      *time.Time  `json:"end_date,omitempty"`
	Requirements *string     `json:"requirements,omitempty"`
	Deliverables *string     `json:"deliverables,omitempty"`
	Applicants   []uuid.UUID `json:"applicants"`
	Accepted     []uuid.UUID `json:"accepted_influencers"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// CampaignWithParticipants embeds Campaign and adds applicant and
// accepted-influencer profile summaries to avoid N+1 queries on the
// brand dashboard.
type CampaignWithParticipants struct {
	Campaign
	ApplicantProfiles []AccountSummary `json:"applicant_profiles"`
	AcceptedProfiles  []AccountSummary `json:"accepted_profiles"`
}
