package repository

import (
	"context"

	"github.com/arzonstar/storefront/internal/domain/model"
)

// StatsRepository aggregates counters across tables.
type StatsRepository interface {
	// UserStats fills order/referral/NFT counters; the caller supplies the user.
	UserStats(ctx context.Context, userID int64) (*model.UserStats, error)
	AdminStats(ctx context.Context) (*model.AdminStats, error)
	PublicStats(ctx context.Context) (*model.PublicStats, error)
	TopUsers(ctx context.Context, limit int) ([]model.TopUser, error)
}
