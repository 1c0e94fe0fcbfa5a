package repositories

import (
	"context"

	"github.com/adfluence/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NicheRepo struct {
	pool *pgxpool.Pool
}

func NewNicheRepo(pool *pgxpool.Pool) *NicheRepo {
	return &NicheRepo{pool: pool}
}

func (r *NicheRepo) List(ctx context.Context) ([]models.Niche, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, category, description, influencer_count, campaign_count
		FROM niches ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	niches := []models.Niche{}
	for rows.Next() {
		var n models.Niche
		if err := rows.Scan(&n.ID, &n.Name, &n.Category, &n.Description, &n.InfluencerCount, &n.CampaignCount); err != nil {
			return nil, err
		}
		niches = append(niches, n)
	}
	return niches, rows.Err()
}

// IncrementCampaignCount bumps the advisory campaign counter for each
// niche. Counters are not reconciled against live references.
func (r *NicheRepo) IncrementCampaignCount(ctx context.Context, nicheIDs []uuid.UUID) error {
	if len(nicheIDs) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE niches SET campaign_count = campaign_count + 1 WHERE id = ANY($1::uuid[])
	`, uuidStrings(nicheIDs))
	return err
}

// IncrementInfluencerCount bumps the advisory influencer counter.
func (r *NicheRepo) IncrementInfluencerCount(ctx context.Context, nicheIDs []uuid.UUID) error {
	if len(nicheIDs) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE niches SET influencer_count = influencer_count + 1 WHERE id = ANY($1::uuid[])
	`, uuidStrings(nicheIDs))
	return err
}
