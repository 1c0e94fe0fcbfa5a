package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SocialAccountRequest struct {
	Platform  string `json:"platform"`
	Handle    string `json:"handle"`
	Followers int    `json:"followers"`
	Verified  bool   `json:"verified"`
}

type UpdateProfileRequest struct {
	Name         *string                `json:"name,omitempty"`
	ProfileImage *string                `json:"profile_image,omitempty"`
	CompanyName  *string                `json:"company_name,omitempty"`
	Bio          *string                `json:"bio,omitempty"`
	Niches       []string               `json:"niches,omitempty"`
	SocialMedia  []SocialAccountRequest `json:"social_media,omitempty"`
}

// CreateCampaignRequest arrives either as JSON or as a multipart form
// (when an image file rides along), hence the form tags. Niche ids and
// dates come in as strings and are parsed in the handler.
type CreateCampaignRequest struct {
	Title        string   `json:"title" form:"title"`
	Description  string   `json:"description" form:"description"`
	Niches       []string `json:"niches" form:"niches"`
	Platforms    []string `json:"platforms" form:"platforms"`
	Budget       float64  `json:"budget" form:"budget"`
	BudgetMin    *float64 `json:"budget_min,omitempty" form:"budget_min"`
	BudgetMax    *float64 `json:"budget_max,omitempty" form:"budget_max"`
	Status       string   `json:"status,omitempty" form:"status"`
	StartDate    string   `json:"start_date,omitempty" form:"start_date"`
	EndDate      string   `json:"end_date,omitempty" form:"end_date"`
	Requirements *string  `json:"requirements,omitempty" form:"requirements"`
	Deliverables *string  `json:"deliverables,omitempty" form:"deliverables"`
}
