package repository

import (
	"context"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Ledger defines the interface for economy persistence
type Ledger interface {
	GetCoinBalance(ctx context.Context, userID string) (*domain.CoinBalance, error)
	GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.CoinTransaction, error)
	BeginTx(ctx context.Context) (Tx, error)
}
