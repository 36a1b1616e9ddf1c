package repository

import (
	"context"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Achievement defines the interface for achievement persistence
type Achievement interface {
	GetUserClaims(ctx context.Context, userID string) ([]domain.AchievementClaim, error)
	GetStrideState(ctx context.Context, userID string) (*domain.StrideState, error)
	GetCoinBalance(ctx context.Context, userID string) (*domain.CoinBalance, error)
	BeginAchievementTx(ctx context.Context) (AchievementTx, error)
}

// AchievementTx extends Tx with claim insertion. InsertClaim maps a
// duplicate key violation to domain.ErrAlreadyClaimed so concurrent
// duplicate claims settle exactly once.
type AchievementTx interface {
	Tx

	InsertClaim(ctx context.Context, claim *domain.AchievementClaim) error
	GetStrideState(ctx context.Context, userID string) (*domain.StrideState, error)
}
