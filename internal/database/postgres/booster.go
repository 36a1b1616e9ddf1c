package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// BoosterRepository implements the booster repository for PostgreSQL
type BoosterRepository struct {
	db *pgxpool.Pool
}

// NewBoosterRepository creates a new BoosterRepository
func NewBoosterRepository(db *pgxpool.Pool) *BoosterRepository {
	return &BoosterRepository{db: db}
}

// BoosterTx implements repository.BoosterTx
type BoosterTx struct {
	coinTx
}

// BeginBoosterTx starts a new transaction
func (r *BoosterRepository) BeginBoosterTx(ctx context.Context) (repository.BoosterTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &BoosterTx{coinTx{tx: tx}}, nil
}

// GetActiveBooster retrieves the user's unexpired booster, if any
func (r *BoosterRepository) GetActiveBooster(ctx context.Context, userID string, now time.Time) (*domain.Booster, error) {
	return getActiveBooster(ctx, r.db, userID, now)
}

// GetCode retrieves a booster code definition
func (t *BoosterTx) GetCode(ctx context.Context, code string) (*domain.BoosterCode, error) {
	var bc domain.BoosterCode
	err := t.tx.QueryRow(ctx,
		`SELECT code, multiplier, duration_s, max_redemptions, redeemed_count
		 FROM booster_codes WHERE code = $1`,
		code).Scan(&bc.Code, &bc.Multiplier, &bc.DurationS, &bc.MaxRedemptions,
		&bc.RedeemedCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booster code: %w", err)
	}
	return &bc, nil
}

// IncrementRedemption consumes one redemption of a capped code and
// reports rows affected. Zero rows means the code is exhausted.
func (t *BoosterTx) IncrementRedemption(ctx context.Context, code string) (int64, error) {
	tag, err := t.tx.Exec(ctx,
		`UPDATE booster_codes
		 SET redeemed_count = redeemed_count + 1
		 WHERE code = $1 AND (max_redemptions = 0 OR redeemed_count < max_redemptions)`,
		code)
	if err != nil {
		return 0, fmt.Errorf("failed to increment redemption: %w", err)
	}
	return tag.RowsAffected(), nil
}

// UpsertBooster activates or refreshes the user's booster
func (t *BoosterTx) UpsertBooster(ctx context.Context, booster *domain.Booster) error {
	if err := ensureUser(ctx, t.tx, booster.UserID); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	_, err := t.tx.Exec(ctx,
		`INSERT INTO user_boosters (user_id, code, multiplier, expires_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id) DO UPDATE SET
		   code = EXCLUDED.code,
		   multiplier = EXCLUDED.multiplier,
		   expires_at = EXCLUDED.expires_at`,
		booster.UserID, booster.Code, booster.Multiplier, booster.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to upsert booster: %w", err)
	}
	return nil
}
