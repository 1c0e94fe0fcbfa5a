package services

import (
	"context"

	"github.com/adfluence/backend/internal/models"
	"github.com/adfluence/backend/internal/repositories"
	"github.com/adfluence/backend/internal/socialstats"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SocialStatsService refreshes stored follower counts from public
// profile pages. Counts are advisory; a failed fetch leaves the stored
// value untouched.
type SocialStatsService struct {
	accounts *repositories.AccountRepo
	parser   *socialstats.Parser
	log      *zap.Logger
}

func NewSocialStatsService(accounts *repositories.AccountRepo, parser *socialstats.Parser, log *zap.Logger) *SocialStatsService {
	return &SocialStatsService{accounts: accounts, parser: parser, log: log}
}

// RefreshAccount re-scrapes every social profile of one account and
// returns how many records were updated.
func (s *SocialStatsService) RefreshAccount(ctx context.Context, accountID uuid.UUID) (int, error) {
	account, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return s.refresh(ctx, account.SocialMedia), nil
}

// RefreshAll re-scrapes every social profile record in the store.
func (s *SocialStatsService) RefreshAll(ctx context.Context) (int, error) {
	socials, err := s.accounts.ListSocialAccounts(ctx)
	if err != nil {
		return 0, err
	}
	return s.refresh(ctx, socials), nil
}

func (s *SocialStatsService) refresh(ctx context.Context, socials []models.SocialAccount) int {
	updated := 0
	for _, sm := range socials {
		stats, err := s.parser.FetchFollowers(ctx, sm.Platform, sm.Handle)
		if err != nil {
			s.log.Warn("follower fetch failed",
				zap.String("platform", sm.Platform),
				zap.String("handle", sm.Handle),
				zap.Error(err),
			)
			continue
		}
		if stats.Followers == nil || *stats.Followers == sm.Followers {
			continue
		}
		if err := s.accounts.UpdateSocialFollowers(ctx, sm.ID, *stats.Followers); err != nil {
			s.log.Error("failed to store follower count", zap.Error(err))
			continue
		}
		updated++
	}
	return updated
}
