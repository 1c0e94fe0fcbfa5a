package rbac

import "github.com/adfluence/backend/internal/models"

// Guarded actions
const (
	ActionCreateCampaign      = "create_campaign"
	ActionApplyToCampaign     = "apply_to_campaign"
	ActionInfluencerDashboard = "influencer_dashboard"
	ActionBrandDashboard      = "brand_dashboard"
)

// ActionRoles defines which account roles may perform each action.
var ActionRoles = map[string][]string{
	ActionCreateCampaign:      {models.RoleBrand, models.RoleAgency},
	ActionApplyToCampaign:     {models.RoleInfluencer},
	ActionInfluencerDashboard: {models.RoleInfluencer},
	ActionBrandDashboard:      {models.RoleBrand, models.RoleAgency},
}

// Can reports whether the role is allowed to perform the action.
func Can(role, action string) bool {
	allowed, ok := ActionRoles[action]
	if !ok {
		return false
	}
	return Authorize(role, allowed...)
}

// Authorize reports whether role is in the required set.
func Authorize(role string, required ...string) bool {
	for _, r := range required {
		if r == role {
			return true
		}
	}
	return false
}
