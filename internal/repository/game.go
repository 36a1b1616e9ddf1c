package repository

import (
	"context"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Game defines the interface for gambling-game persistence
type Game interface {
	GetSpins(ctx context.Context, userID string, limit int) ([]domain.RouletteSpin, error)
	BeginGameTx(ctx context.Context) (GameTx, error)
}

// GameTx extends Tx with spin recording so the debit, the draw result, and
// the credit land in one transaction
type GameTx interface {
	Tx

	RecordSpin(ctx context.Context, spin *domain.RouletteSpin) error
}
