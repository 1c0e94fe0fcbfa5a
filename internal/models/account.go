package models

import (
	"time"

	"github.com/google/uuid"
)

// Account roles
const (
	RoleBrand      = "brand"
	RoleAgency     = "agency"
	RoleInfluencer = "influencer"
	RoleIndividual = "individual"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleBrand, RoleAgency, RoleInfluencer, RoleIndividual:
		return true
	}
	return false
}

// Social platforms
const (
	PlatformInstagram = "instagram"
	PlatformTikTok    = "tiktok"
	PlatformFacebook  = "facebook"
	PlatformTwitter   = "twitter"
	PlatformYouTube   = "youtube"
	PlatformWhatsApp  = "whatsapp"
)

func IsValidPlatform(platform string) bool {
	switch platform {
	case PlatformInstagram, PlatformTikTok, PlatformFacebook,
		PlatformTwitter, PlatformYouTube, PlatformWhatsApp:
		return true
	}
	return false
}

type SocialAccount struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"-"`
	Platform  string    `json:"platform"`
	Handle    string    `json:"handle"`
	Followers int       `json:"followers"`
	Verified  bool      `json:"verified"`
}

// Account is the persisted identity record. The password hash never
// leaves the server: it is excluded from JSON, and live session tokens
// are not kept on the struct at all (see auth.SessionStore).
type Account struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Role         string          `json:"role"`
	ProfileImage *string         `json:"profile_image,omitempty"`
	CompanyName  *string         `json:"company_name,omitempty"`
	Bio          *string         `json:"bio,omitempty"`
	Niches       []Niche         `json:"niches"`
	SocialMedia  []SocialAccount `json:"social_media"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// TotalFollowers sums follower counts across the account's social profiles.
func (a *Account) TotalFollowers() int {
	total := 0
	for _, s := range a.SocialMedia {
		total += s.Followers
	}
	return total
}

// AccountSummary is the profile projection embedded in brand dashboard
// responses for applicants and accepted influencers.
type AccountSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ProfileImage *string   `json:"profile_image,omitempty"`
	Followers    int       `json:"followers"`
}
