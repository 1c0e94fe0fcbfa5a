package models

import "github.com/google/uuid"

// Niche categories (fixed reference set, seeded by migration).
const (
	NicheLifestyle     = "lifestyle"
	NicheFashion       = "fashion"
	NicheBeauty        = "beauty"
	NicheFitness       = "fitness"
	NicheFood          = "food"
	NicheMusic         = "music"
	NicheMovie         = "movie"
	NicheEntertainment = "entertainment"
	NicheTechnology    = "technology"
	NicheGaming        = "gaming"
	NicheTravel        = "travel"
	NicheBusiness      = "business"
)

// Niche is a static category record. InfluencerCount and CampaignCount
// are advisory counters, bumped best-effort and not kept transactionally
// consistent with the referencing rows.
type Niche struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Description     *string   `json:"description,omitempty"`
	InfluencerCount int       `json:"influencer_count"`
	CampaignCount   int       `json:"campaign_count"`
}
