package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// GameRepository implements the gambling-game repository for PostgreSQL
type GameRepository struct {
	db *pgxpool.Pool
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *pgxpool.Pool) *GameRepository {
	return &GameRepository{db: db}
}

// GameTx implements repository.GameTx
type GameTx struct {
	coinTx
}

// BeginGameTx starts a new transaction
func (r *GameRepository) BeginGameTx(ctx context.Context) (repository.GameTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &GameTx{coinTx{tx: tx}}, nil
}

// GetSpins retrieves the user's most recent spins, newest first
func (r *GameRepository) GetSpins(ctx context.Context, userID string, limit int) ([]domain.RouletteSpin, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, slot_label, cost_sc, reward_coin, reward_amount, created_at
		 FROM roulette_spins
		 WHERE user_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query spins: %w", err)
	}
	defer rows.Close()

	var spins []domain.RouletteSpin
	for rows.Next() {
		var spin domain.RouletteSpin
		if err := rows.Scan(&spin.ID, &spin.UserID, &spin.SlotLabel, &spin.CostSC,
			&spin.RewardCoin, &spin.RewardAmount, &spin.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan spin: %w", err)
		}
		spins = append(spins, spin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read spins: %w", err)
	}
	return spins, nil
}

// RecordSpin inserts a settled spin record
func (t *GameTx) RecordSpin(ctx context.Context, spin *domain.RouletteSpin) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO roulette_spins
		 (id, user_id, slot_label, cost_sc, reward_coin, reward_amount, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		spin.ID, spin.UserID, spin.SlotLabel, spin.CostSC, spin.RewardCoin,
		spin.RewardAmount, spin.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record spin: %w", err)
	}
	return nil
}
