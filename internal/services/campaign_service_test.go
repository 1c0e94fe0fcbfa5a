package services

import (
	"math"
	"testing"

	"github.com/adfluence/backend/internal/models"
	"github.com/google/uuid"
)

func completedCampaign(budget float64, acceptedCount int) models.Campaign {
	accepted := make([]uuid.UUID, acceptedCount)
	for i := range accepted {
		accepted[i] = uuid.New()
	}
	return models.Campaign{
		Budget:   budget,
		Status:   models.CampaignStatusCompleted,
		Accepted: accepted,
	}
}

func TestInfluencerStatsEarningsEqualSplit(t *testing.T) {
	completed := []models.Campaign{completedCampaign(1000, 4)}

	stats := influencerStats(nil, nil, completed)
	if stats.Earnings != 250 {
		t.Errorf("earnings = %v, want 250 (1000 split across 4 accepted)", stats.Earnings)
	}
}

func TestInfluencerStatsZeroAcceptedContributesZero(t *testing.T) {
	completed := []models.Campaign{
		completedCampaign(1000, 0),
		completedCampaign(600, 2),
	}

	stats := influencerStats(nil, nil, completed)
	if stats.Earnings != 300 {
		t.Errorf("earnings = %v, want 300 (zero-accepted campaign contributes 0)", stats.Earnings)
	}
	if math.IsNaN(stats.Earnings) || math.IsInf(stats.Earnings, 0) {
		t.Error("earnings must stay finite with zero accepted influencers")
	}
}

func TestInfluencerStatsCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		active    int
		expected  float64
	}{
		{"three of four", 3, 1, 75},
		{"all completed", 2, 0, 100},
		{"none completed", 0, 3, 0},
		{"empty denominator", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completed := make([]models.Campaign, tt.completed)
			for i := range completed {
				completed[i] = completedCampaign(100, 1)
			}
			active := make([]models.Campaign, tt.active)

			stats := influencerStats(nil, active, completed)
			if stats.CompletionRate != tt.expected {
				t.Errorf("completion rate = %v, want %v", stats.CompletionRate, tt.expected)
			}
		})
	}
}

func TestInfluencerStatsCounts(t *testing.T) {
	applied := make([]models.Campaign, 5)
	active := make([]models.Campaign, 2)

	stats := influencerStats(applied, active, nil)
	if stats.Applications != 5 {
		t.Errorf("applications = %d, want 5", stats.Applications)
	}
	if stats.ActiveCampaigns != 2 {
		t.Errorf("active campaigns = %d, want 2", stats.ActiveCampaigns)
	}
	if stats.Earnings != 0 {
		t.Errorf("earnings = %v, want 0 without completed campaigns", stats.Earnings)
	}
}

func TestNewNicheIDs(t *testing.T) {
	existing := uuid.New()
	fresh := uuid.New()
	current := []models.Niche{{ID: existing}}

	added := newNicheIDs(current, []uuid.UUID{existing, fresh})
	if len(added) != 1 || added[0] != fresh {
		t.Errorf("newNicheIDs = %v, want only %s", added, fresh)
	}

	if added := newNicheIDs(current, []uuid.UUID{existing}); len(added) != 0 {
		t.Errorf("no new ids expected, got %v", added)
	}
}
