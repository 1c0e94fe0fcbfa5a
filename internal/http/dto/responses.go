package dto

import "github.com/adfluence/backend/internal/models"

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// AuthResponse is the register/login payload. Account serialization
// never includes the password hash or session tokens.
type AuthResponse struct {
	Account *models.Account `json:"account"`
	Token   string          `json:"token"`
}

type BrandDashboardResponse struct {
	Campaigns []models.CampaignWithParticipants `json:"campaigns"`
	Account   *models.Account                   `json:"account"`
}

type SocialRefreshResponse struct {
	Updated int             `json:"updated"`
	Account *models.Account `json:"account"`
}
