package usecase

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
	"github.com/arzonstar/storefront/internal/domain/repository"
)

// StatsUseCase aggregates storefront counters for user, admin and public views.
type StatsUseCase struct {
	stats repository.StatsRepository
	users repository.UserRepository
}

// NewStatsUseCase constructs StatsUseCase.
func NewStatsUseCase(stats repository.StatsRepository, users repository.UserRepository) *StatsUseCase {
	return &StatsUseCase{stats: stats, users: users}
}

// ForUser returns the profile counters shown on the Mini App home screen.
func (u *StatsUseCase) ForUser(ctx context.Context, telegramID string) (*model.UserStats, error) {
	usr, err := u.users.GetByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	stats, err := u.stats.UserStats(ctx, usr.ID)
	if err != nil {
		return nil, err
	}

	stats.User = usr
	stats.Balance = usr.Balance
	stats.TotalSpent = usr.TotalSpent
	return stats, nil
}

// ForAdmin returns platform-wide totals for the back office.
func (u *StatsUseCase) ForAdmin(ctx context.Context) (*model.AdminStats, error) {
	return u.stats.AdminStats(ctx)
}

// Public returns the unauthenticated storefront counters.
func (u *StatsUseCase) Public(ctx context.Context) (*model.PublicStats, error) {
	return u.stats.PublicStats(ctx)
}

// TopUsers returns the leaderboard ordered by lifetime spend.
func (u *StatsUseCase) TopUsers(ctx context.Context, limit int) ([]model.TopUser, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return u.stats.TopUsers(ctx, limit)
}
