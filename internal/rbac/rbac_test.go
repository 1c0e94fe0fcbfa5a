package rbac

import (
	"testing"

	"github.com/adfluence/backend/internal/models"
)

func TestCan(t *testing.T) {
	tests := []struct {
		role     string
		action   string
		expected bool
	}{
		// Campaign creation is brand/agency only
		{models.RoleBrand, ActionCreateCampaign, true},
		{models.RoleAgency, ActionCreateCampaign, true},
		{models.RoleInfluencer, ActionCreateCampaign, false},
		{models.RoleIndividual, ActionCreateCampaign, false},

		// Applications are influencer only
		{models.RoleInfluencer, ActionApplyToCampaign, true},
		{models.RoleBrand, ActionApplyToCampaign, false},
		{models.RoleAgency, ActionApplyToCampaign, false},
		{models.RoleIndividual, ActionApplyToCampaign, false},

		// Dashboards
		{models.RoleInfluencer, ActionInfluencerDashboard, true},
		{models.RoleBrand, ActionInfluencerDashboard, false},
		{models.RoleBrand, ActionBrandDashboard, true},
		{models.RoleAgency, ActionBrandDashboard, true},
		{models.RoleInfluencer, ActionBrandDashboard, false},
		{models.RoleIndividual, ActionBrandDashboard, false},

		// Unknown role or action
		{"admin", ActionCreateCampaign, false},
		{models.RoleBrand, "nonexistent", false},
		{"", ActionBrandDashboard, false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"/"+tt.action, func(t *testing.T) {
			if got := Can(tt.role, tt.action); got != tt.expected {
				t.Errorf("Can(%q, %q) = %v, want %v", tt.role, tt.action, got, tt.expected)
			}
		})
	}
}

func TestAllActionsHaveRoleEntry(t *testing.T) {
	actions := []string{
		ActionCreateCampaign, ActionApplyToCampaign,
		ActionInfluencerDashboard, ActionBrandDashboard,
	}
	for _, action := range actions {
		if roles, ok := ActionRoles[action]; !ok || len(roles) == 0 {
			t.Errorf("action %q has no allowed roles", action)
		}
	}
}
