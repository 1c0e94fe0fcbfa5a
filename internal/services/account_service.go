package services

import (
	"context"
	"errors"

	"github.com/adfluence/backend/internal/auth"
	"github.com/adfluence/backend/internal/config"
	"github.com/adfluence/backend/internal/models"
	"github.com/adfluence/backend/internal/repositories"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountService owns credential handling and bearer-token issuance.
// Tokens are HS256 JWTs whose session ids are tracked server-side in the
// SessionStore, so revocation is precise per device.
type AccountService struct {
	accounts *repositories.AccountRepo
	niches   *repositories.NicheRepo
	sessions *auth.SessionStore
	cfg      *config.Config
	log      *zap.Logger
}

func NewAccountService(
	accounts *repositories.AccountRepo,
	niches *repositories.NicheRepo,
	sessions *auth.SessionStore,
	cfg *config.Config,
	log *zap.Logger,
) *AccountService {
	return &AccountService{
		accounts: accounts,
		niches:   niches,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
	}
}

// Register creates an account with a hashed password and issues the
// first session token. A taken email fails with ErrDuplicateEmail.
func (s *AccountService) Register(ctx context.Context, name, email, password, role string) (*models.Account, string, error) {
	if name == "" || email == "" || password == "" {
		return nil, "", models.NewValidationError("name, email and password are required")
	}
	if !models.IsValidRole(role) {
		return nil, "", models.NewValidationError("role must be one of: brand, agency, influencer, individual")
	}

	hash, err := auth.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return nil, "", err
	}

	account := &models.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Niches:       []models.Niche{},
		SocialMedia:  []models.SocialAccount{},
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(ctx, account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

// Login verifies the password against the stored hash and issues a new
// session token. An unknown email and a wrong password are
// indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, email, password string) (*models.Account, string, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return nil, "", models.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(account.PasswordHash, password) {
		return nil, "", models.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, account.ID)
	if err != nil {
		return nil, "", err
	}
	return account, token, nil
}

func (s *AccountService) issueToken(ctx context.Context, accountID uuid.UUID) (string, error) {
	token, sessionID, err := auth.GenerateToken(s.cfg.JWTSecret, accountID, s.cfg.JWTExpiration)
	if err != nil {
		return "", err
	}
	if err := s.sessions.Add(ctx, accountID, sessionID); err != nil {
		return "", err
	}
	return token, nil
}

// Logout revokes exactly the presented session; other sessions for the
// account keep working.
func (s *AccountService) Logout(ctx context.Context, accountID uuid.UUID, sessionID string) error {
	return s.sessions.Remove(ctx, accountID, sessionID)
}

// ValidateToken verifies signature and expiry, then confirms the session
// id is still live for the decoded account. Any failure collapses to
// ErrUnauthenticated so callers cannot probe which step rejected.
func (s *AccountService) ValidateToken(ctx context.Context, token string) (*models.Account, string, error) {
	claims, err := auth.ParseToken(s.cfg.JWTSecret, token)
	if err != nil {
		return nil, "", models.ErrUnauthenticated
	}

	live, err := s.sessions.Contains(ctx, claims.AccountID, claims.ID)
	if err != nil {
		return nil, "", err
	}
	if !live {
		return nil, "", models.ErrUnauthenticated
	}

	account, err := s.accounts.GetByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			return nil, "", models.ErrUnauthenticated
		}
		return nil, "", err
	}
	return account, claims.ID, nil
}

// Get reloads an account with its niche and social relations.
func (s *AccountService) Get(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// ProfileUpdate carries the optional profile fields; nil means "leave
// unchanged".
type ProfileUpdate struct {
	Name         *string
	ProfileImage *string
	CompanyName  *string
	Bio          *string
	NicheIDs     []uuid.UUID
	SocialMedia  []models.SocialAccount
}

func (s *AccountService) UpdateProfile(ctx context.Context, account *models.Account, upd ProfileUpdate) (*models.Account, error) {
	if err := s.accounts.UpdateProfile(ctx, account.ID, upd.Name, upd.ProfileImage, upd.CompanyName, upd.Bio); err != nil {
		return nil, err
	}

	if upd.NicheIDs != nil {
		if err := s.accounts.SetNiches(ctx, account.ID, upd.NicheIDs); err != nil {
			return nil, err
		}
		if account.Role == models.RoleInfluencer {
			added := newNicheIDs(account.Niches, upd.NicheIDs)
			if err := s.niches.IncrementInfluencerCount(ctx, added); err != nil {
				s.log.Warn("failed to bump influencer counters", zap.Error(err))
			}
		}
	}

	if upd.SocialMedia != nil {
		for _, sm := range upd.SocialMedia {
			if !models.IsValidPlatform(sm.Platform) {
				return nil, models.NewValidationError("unknown social platform: " + sm.Platform)
			}
			if sm.Handle == "" {
				return nil, models.NewValidationError("social account handle is required")
			}
		}
		if err := s.accounts.ReplaceSocialAccounts(ctx, account.ID, upd.SocialMedia); err != nil {
			return nil, err
		}
	}

	return s.accounts.GetByID(ctx, account.ID)
}

// newNicheIDs returns the ids in want that the account did not already
// reference, for advisory counter bumps.
func newNicheIDs(current []models.Niche, want []uuid.UUID) []uuid.UUID {
	have := make(map[uuid.UUID]bool, len(current))
	for _, n := range current {
		have[n.ID] = true
	}
	var added []uuid.UUID
	for _, id := range want {
		if !have[id] {
			added = append(added, id)
		}
	}
	return added
}
