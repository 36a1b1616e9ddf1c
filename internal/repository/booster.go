package repository

import (
	"context"
	"time"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Booster defines the interface for booster persistence
type Booster interface {
	GetActiveBooster(ctx context.Context, userID string, now time.Time) (*domain.Booster, error)
	BeginBoosterTx(ctx context.Context) (BoosterTx, error)
}

// BoosterTx extends Tx with code redemption. IncrementRedemption is
// conditional on remaining redemptions and reports rows affected.
type BoosterTx interface {
	Tx

	GetCode(ctx context.Context, code string) (*domain.BoosterCode, error)
	IncrementRedemption(ctx context.Context, code string) (int64, error)
	UpsertBooster(ctx context.Context, booster *domain.Booster) error
}
