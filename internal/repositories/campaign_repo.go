package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/adfluence/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

// campaignSelect aggregates the membership tables so a single row carries
// the full campaign with its niche, platform, applicant and accepted sets.
const campaignSelect = `
	SELECT c.id, c.created_by, a.name, c.title, c.description, c.image,
	       COALESCE(array_agg(DISTINCT cn.niche_id) FILTER (WHERE cn.niche_id IS NOT NULL), '{}'),
	       COALESCE(array_agg(DISTINCT cp.platform) FILTER (WHERE cp.platform IS NOT NULL), '{}'),
	       c.budget, c.budget_min, c.budget_max, c.status, c.start_date, c.end_date,
	       c.requirements, c.deliverables,
	       COALESCE(array_agg(DISTINCT cap.account_id) FILTER (WHERE cap.account_id IS NOT NULL), '{}'),
	       COALESCE(array_agg(DISTINCT cac.account_id) FILTER (WHERE cac.account_id IS NOT NULL), '{}'),
	       c.created_at, c.updated_at
	FROM campaigns c
	JOIN accounts a ON a.id = c.created_by
	LEFT JOIN campaign_niches cn ON cn.campaign_id = c.id
	LEFT JOIN campaign_platforms cp ON cp.campaign_id = c.id
	LEFT JOIN campaign_applicants cap ON cap.campaign_id = c.id
	LEFT JOIN campaign_accepted cac ON cac.campaign_id = c.id
`

const campaignGroupBy = ` GROUP BY c.id, a.name`

func scanCampaign(row pgx.Row) (*models.Campaign, error) {
	var c models.Campaign
	err := row.Scan(
		&c.ID, &c.CreatedBy, &c.CreatorName, &c.Title, &c.Description, &c.Image,
		&c.NicheIDs, &c.Platforms,
		&c.Budget, &c.BudgetMin, &c.BudgetMax, &c.Status, &c.StartDate, &c.EndDate,
		&c.Requirements, &c.Deliverables,
		&c.Applicants, &c.Accepted,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO campaigns (created_by, title, description, image, budget, budget_min, budget_max,
		                       status, start_date, end_date, requirements, deliverables)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`, c.CreatedBy, c.Title, c.Description, c.Image, c.Budget, c.BudgetMin, c.BudgetMax,
		c.Status, c.StartDate, c.EndDate, c.Requirements, c.Deliverables,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return err
	}

	for _, nid := range c.NicheIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO campaign_niches (campaign_id, niche_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, c.ID, nid); err != nil {
			return err
		}
	}
	for _, p := range c.Platforms {
		if _, err := tx.Exec(ctx, `
			INSERT INTO campaign_platforms (campaign_id, platform) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, c.ID, p); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}
	if c.Applicants == nil {
		c.Applicants = []uuid.UUID{}
	}
	if c.Accepted == nil {
		c.Accepted = []uuid.UUID{}
	}
	return nil
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	row := r.pool.QueryRow(ctx, campaignSelect+` WHERE c.id = $1`+campaignGroupBy, id)
	c, err := scanCampaign(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrCampaignNotFound
		}
		return nil, err
	}
	return c, nil
}

// CampaignFilter holds the independently optional list filters. Budget
// bounds are inclusive.
type CampaignFilter struct {
	NicheName *string
	Platform  *string
	MinBudget *float64
	MaxBudget *float64
	CreatedBy *uuid.UUID
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, error) {
	query := campaignSelect
	args := []any{}
	where := []string{}

	if f.NicheName != nil {
		args = append(args, *f.NicheName)
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM campaign_niches x JOIN niches n ON n.id = x.niche_id
			WHERE x.campaign_id = c.id AND n.name = $%d)`, len(args)))
	}
	if f.Platform != nil {
		args = append(args, *f.Platform)
		where = append(where, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM campaign_platforms x
			WHERE x.campaign_id = c.id AND x.platform = $%d)`, len(args)))
	}
	if f.MinBudget != nil {
		args = append(args, *f.MinBudget)
		where = append(where, fmt.Sprintf("c.budget >= $%d", len(args)))
	}
	if f.MaxBudget != nil {
		args = append(args, *f.MaxBudget)
		where = append(where, fmt.Sprintf("c.budget <= $%d", len(args)))
	}
	if f.CreatedBy != nil {
		args = append(args, *f.CreatedBy)
		where = append(where, fmt.Sprintf("c.created_by = $%d", len(args)))
	}

	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += campaignGroupBy + " ORDER BY c.created_at DESC"

	return r.queryMany(ctx, query, args...)
}

// AddApplicant conditionally appends the account to the campaign's
// applicant set. The primary key on (campaign_id, account_id) makes the
// append atomic: concurrent duplicate applications cannot both land.
// Returns false when the account had already applied.
func (r *CampaignRepo) AddApplicant(ctx context.Context, campaignID, accountID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO campaign_applicants (campaign_id, account_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, campaignID, accountID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddAccepted records an accepted influencer. Acceptance itself happens
// outside the core; this is the write path used by ops tooling and tests.
func (r *CampaignRepo) AddAccepted(ctx context.Context, campaignID, accountID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO campaign_accepted (campaign_id, account_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, campaignID, accountID)
	return err
}

// UpdateStatus writes the status field directly. No transition graph is
// enforced here; dashboards only read the value.
func (r *CampaignRepo) UpdateStatus(ctx context.Context, campaignID uuid.UUID, status string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2
	`, status, campaignID)
	return err
}

// ListByApplicant returns campaigns the account has applied to.
func (r *CampaignRepo) ListByApplicant(ctx context.Context, accountID uuid.UUID) ([]models.Campaign, error) {
	query := campaignSelect + `
		WHERE EXISTS (
			SELECT 1 FROM campaign_applicants x
			WHERE x.campaign_id = c.id AND x.account_id = $1)` +
		campaignGroupBy + " ORDER BY c.created_at DESC"
	return r.queryMany(ctx, query, accountID)
}

// ListByAccepted returns campaigns where the account is an accepted
// influencer, filtered to the given status.
func (r *CampaignRepo) ListByAccepted(ctx context.Context, accountID uuid.UUID, status string) ([]models.Campaign, error) {
	query := campaignSelect + `
		WHERE c.status = $2 AND EXISTS (
			SELECT 1 FROM campaign_accepted x
			WHERE x.campaign_id = c.id AND x.account_id = $1)` +
		campaignGroupBy + " ORDER BY c.created_at DESC"
	return r.queryMany(ctx, query, accountID, status)
}

func (r *CampaignRepo) queryMany(ctx context.Context, query string, args ...any) ([]models.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	campaigns := []models.Campaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, *c)
	}
	return campaigns, rows.Err()
}
