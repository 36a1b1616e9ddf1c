package repository

import (
	"context"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Tx defines the interface for transactional operations. Every service
// transaction carries the coin operations because nearly all of them
// settle through the ledger.
type Tx interface {
	GetCoinBalanceForUpdate(ctx context.Context, userID string) (*domain.CoinBalance, error)
	UpdateCoinBalance(ctx context.Context, balance *domain.CoinBalance) error
	InsertCoinTransaction(ctx context.Context, txn *domain.CoinTransaction) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
