package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// LedgerRepository implements the ledger repository for PostgreSQL
type LedgerRepository struct {
	db *pgxpool.Pool
}

// NewLedgerRepository creates a new LedgerRepository
func NewLedgerRepository(db *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// BeginTx starts a new transaction
func (r *LedgerRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &coinTx{tx: tx}, nil
}

// GetCoinBalance retrieves the user's balance without locking
func (r *LedgerRepository) GetCoinBalance(ctx context.Context, userID string) (*domain.CoinBalance, error) {
	return getCoinBalance(ctx, r.db, userID)
}

// GetTransactions retrieves a page of the user's ledger, newest first
func (r *LedgerRepository) GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.CoinTransaction, error) {
	return getTransactions(ctx, r.db, userID, limit, offset)
}
