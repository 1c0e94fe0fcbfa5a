package models

import "testing"

func TestIsValidCampaignStatus(t *testing.T) {
	valid := []string{
		CampaignStatusDraft, CampaignStatusActive,
		CampaignStatusCompleted, CampaignStatusCancelled,
	}
	for _, s := range valid {
		if !IsValidCampaignStatus(s) {
			t.Errorf("IsValidCampaignStatus(%q) = false, want true", s)
		}
	}

	for _, s := range []string{"", "Active", "archived", "done"} {
		if IsValidCampaignStatus(s) {
			t.Errorf("IsValidCampaignStatus(%q) = true, want false", s)
		}
	}
}
