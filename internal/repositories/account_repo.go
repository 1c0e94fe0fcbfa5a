package repositories

import (
	"context"
	"errors"

	"github.com/adfluence/backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// uuidStrings renders ids for a $n::uuid[] parameter.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

type AccountRepo struct {
	pool *pgxpool.Pool
}

func NewAccountRepo(pool *pgxpool.Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

func (r *AccountRepo) Create(ctx context.Context, a *models.Account) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO accounts (name, email, password_hash, role, profile_image, company_name, bio)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, a.Name, a.Email, a.PasswordHash, a.Role, a.ProfileImage, a.CompanyName, a.Bio,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return models.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// GetByEmail matches the email exactly (case-sensitive).
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.getOne(ctx, `
		SELECT id, name, email, password_hash, role, profile_image, company_name, bio, created_at, updated_at
		FROM accounts WHERE email = $1
	`, email)
}

func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return r.getOne(ctx, `
		SELECT id, name, email, password_hash, role, profile_image, company_name, bio, created_at, updated_at
		FROM accounts WHERE id = $1
	`, id)
}

func (r *AccountRepo) getOne(ctx context.Context, query string, arg any) (*models.Account, error) {
	var a models.Account
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role,
		&a.ProfileImage, &a.CompanyName, &a.Bio, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrAccountNotFound
		}
		return nil, err
	}
	if err := r.loadRelations(ctx, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepo) loadRelations(ctx context.Context, a *models.Account) error {
	a.Niches = []models.Niche{}
	a.SocialMedia = []models.SocialAccount{}

	rows, err := r.pool.Query(ctx, `
		SELECT n.id, n.name, n.category, n.description, n.influencer_count, n.campaign_count
		FROM niches n
		JOIN account_niches an ON an.niche_id = n.id
		WHERE an.account_id = $1
		ORDER BY n.name
	`, a.ID)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var n models.Niche
		if err := rows.Scan(&n.ID, &n.Name, &n.Category, &n.Description, &n.InfluencerCount, &n.CampaignCount); err != nil {
			return err
		}
		a.Niches = append(a.Niches, n)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	srows, err := r.pool.Query(ctx, `
		SELECT id, account_id, platform, handle, followers, verified
		FROM social_accounts WHERE account_id = $1
		ORDER BY platform, handle
	`, a.ID)
	if err != nil {
		return err
	}
	defer srows.Close()
	for srows.Next() {
		var s models.SocialAccount
		if err := srows.Scan(&s.ID, &s.AccountID, &s.Platform, &s.Handle, &s.Followers, &s.Verified); err != nil {
			return err
		}
		a.SocialMedia = append(a.SocialMedia, s)
	}
	return srows.Err()
}

func (r *AccountRepo) UpdateProfile(ctx context.Context, id uuid.UUID, name, profileImage, companyName, bio *string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE accounts SET
			name = COALESCE($1, name),
			profile_image = COALESCE($2, profile_image),
			company_name = COALESCE($3, company_name),
			bio = COALESCE($4, bio),
			updated_at = now()
		WHERE id = $5
	`, name, profileImage, companyName, bio, id)
	return err
}

// SetNiches replaces the account's niche set.
func (r *AccountRepo) SetNiches(ctx context.Context, accountID uuid.UUID, nicheIDs []uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM account_niches WHERE account_id = $1`, accountID); err != nil {
		return err
	}
	for _, nid := range nicheIDs {
		if _, err := tx.Exec(ctx, `
			INSERT INTO account_niches (account_id, niche_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, accountID, nid); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// ReplaceSocialAccounts replaces the account's social profile records.
func (r *AccountRepo) ReplaceSocialAccounts(ctx context.Context, accountID uuid.UUID, socials []models.SocialAccount) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM social_accounts WHERE account_id = $1`, accountID); err != nil {
		return err
	}
	for _, s := range socials {
		if _, err := tx.Exec(ctx, `
			INSERT INTO social_accounts (account_id, platform, handle, followers, verified)
			VALUES ($1, $2, $3, $4, $5)
		`, accountID, s.Platform, s.Handle, s.Followers, s.Verified); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// ListSocialAccounts returns every social profile record, for the
// follower-count refresher.
func (r *AccountRepo) ListSocialAccounts(ctx context.Context) ([]models.SocialAccount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, account_id, platform, handle, followers, verified
		FROM social_accounts ORDER BY account_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var socials []models.SocialAccount
	for rows.Next() {
		var s models.SocialAccount
		if err := rows.Scan(&s.ID, &s.AccountID, &s.Platform, &s.Handle, &s.Followers, &s.Verified); err != nil {
			return nil, err
		}
		socials = append(socials, s)
	}
	return socials, rows.Err()
}

func (r *AccountRepo) UpdateSocialFollowers(ctx context.Context, socialID uuid.UUID, followers int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE social_accounts SET followers = $1 WHERE id = $2
	`, followers, socialID)
	return err
}

// SummariesByIDs resolves account ids to dashboard profile summaries
// with aggregate follower counts.
func (r *AccountRepo) SummariesByIDs(ctx context.Context, ids []uuid.UUID) ([]models.AccountSummary, error) {
	if len(ids) == 0 {
		return []models.AccountSummary{}, nil
	}
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, a.name, a.profile_image, COALESCE(SUM(s.followers), 0)
		FROM accounts a
		LEFT JOIN social_accounts s ON s.account_id = a.id
		WHERE a.id = ANY($1::uuid[])
		GROUP BY a.id, a.name, a.profile_image
		ORDER BY a.name
	`, uuidStrings(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.AccountSummary{}
	for rows.Next() {
		var s models.AccountSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.ProfileImage, &s.Followers); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
