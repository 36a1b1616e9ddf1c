package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// coinTx carries the ledger operations every feature transaction needs.
// Feature transaction types embed it to satisfy repository.Tx.
type coinTx struct {
	tx pgx.Tx
}

// Commit commits the transaction
func (t *coinTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback rolls back the transaction
func (t *coinTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetCoinBalanceForUpdate locks the user's balance row, creating it first
// when the user has no ledger history yet. Always returns a balance.
func (t *coinTx) GetCoinBalanceForUpdate(ctx context.Context, userID string) (*domain.CoinBalance, error) {
	if err := ensureUser(ctx, t.tx, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure user: %w", err)
	}
	_, err := t.tx.Exec(ctx,
		`INSERT INTO coin_balances (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to ensure balance row: %w", err)
	}

	var balance domain.CoinBalance
	err = t.tx.QueryRow(ctx,
		`SELECT user_id, sc_balance, mc_balance, sc_lifetime, mc_lifetime
		 FROM coin_balances WHERE user_id = $1 FOR UPDATE`,
		userID).Scan(&balance.UserID, &balance.SCBalance, &balance.MCBalance,
		&balance.SCLifetime, &balance.MCLifetime)
	if err != nil {
		return nil, fmt.Errorf("failed to lock balance: %w", err)
	}
	return &balance, nil
}

// UpdateCoinBalance writes the mutated balance back
func (t *coinTx) UpdateCoinBalance(ctx context.Context, balance *domain.CoinBalance) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE coin_balances
		 SET sc_balance = $2, mc_balance = $3, sc_lifetime = $4, mc_lifetime = $5
		 WHERE user_id = $1`,
		balance.UserID, balance.SCBalance, balance.MCBalance,
		balance.SCLifetime, balance.MCLifetime)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}

// InsertCoinTransaction appends one immutable ledger row
func (t *coinTx) InsertCoinTransaction(ctx context.Context, txn *domain.CoinTransaction) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO coin_transactions
		 (id, user_id, coin_type, amount, balance_after, source_type, source_id, description, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		txn.ID, txn.UserID, txn.CoinType, txn.Amount, txn.BalanceAfter,
		txn.SourceType, txn.SourceID, txn.Description, txn.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert coin transaction: %w", err)
	}
	return nil
}

// getCoinBalance reads a balance without locking. Users with no ledger
// history get a zero balance rather than a miss.
func getCoinBalance(ctx context.Context, q querier, userID string) (*domain.CoinBalance, error) {
	var balance domain.CoinBalance
	err := q.QueryRow(ctx,
		`SELECT user_id, sc_balance, mc_balance, sc_lifetime, mc_lifetime
		 FROM coin_balances WHERE user_id = $1`,
		userID).Scan(&balance.UserID, &balance.SCBalance, &balance.MCBalance,
		&balance.SCLifetime, &balance.MCLifetime)
	if err != nil {
		if err == pgx.ErrNoRows {
			return &domain.CoinBalance{UserID: userID}, nil
		}
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return &balance, nil
}

func getTransactions(ctx context.Context, q querier, userID string, limit, offset int) ([]domain.CoinTransaction, error) {
	rows, err := q.Query(ctx,
		`SELECT id, user_id, coin_type, amount, balance_after, source_type, source_id, description, created_at
		 FROM coin_transactions
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.CoinTransaction
	for rows.Next() {
		var txn domain.CoinTransaction
		if err := rows.Scan(&txn.ID, &txn.UserID, &txn.CoinType, &txn.Amount,
			&txn.BalanceAfter, &txn.SourceType, &txn.SourceID, &txn.Description,
			&txn.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return txns, nil
}
