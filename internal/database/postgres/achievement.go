package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// AchievementRepository implements the achievement repository for PostgreSQL
type AchievementRepository struct {
	db *pgxpool.Pool
}

// NewAchievementRepository creates a new AchievementRepository
func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{db: db}
}

// AchievementTx implements repository.AchievementTx
type AchievementTx struct {
	coinTx
}

// BeginAchievementTx starts a new transaction
func (r *AchievementRepository) BeginAchievementTx(ctx context.Context) (repository.AchievementTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &AchievementTx{coinTx{tx: tx}}, nil
}

// GetUserClaims retrieves all achievement claims of the user
func (r *AchievementRepository) GetUserClaims(ctx context.Context, userID string) ([]domain.AchievementClaim, error) {
	rows, err := r.db.Query(ctx,
		`SELECT user_id, code, claimed_at
		 FROM achievement_claims WHERE user_id = $1 ORDER BY claimed_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}
	defer rows.Close()

	var claims []domain.AchievementClaim
	for rows.Next() {
		var claim domain.AchievementClaim
		if err := rows.Scan(&claim.UserID, &claim.Code, &claim.ClaimedAt); err != nil {
			return nil, fmt.Errorf("failed to scan claim: %w", err)
		}
		claims = append(claims, claim)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read claims: %w", err)
	}
	return claims, nil
}

// GetStrideState retrieves the user's stride state without locking
func (r *AchievementRepository) GetStrideState(ctx context.Context, userID string) (*domain.StrideState, error) {
	return getStrideState(ctx, r.db, userID, false)
}

// GetCoinBalance retrieves the user's balance without locking
func (r *AchievementRepository) GetCoinBalance(ctx context.Context, userID string) (*domain.CoinBalance, error) {
	return getCoinBalance(ctx, r.db, userID)
}

// InsertClaim records a claim. A duplicate claim surfaces as
// domain.ErrAlreadyClaimed so concurrent claims settle exactly once.
func (t *AchievementTx) InsertClaim(ctx context.Context, claim *domain.AchievementClaim) error {
	if err := ensureUser(ctx, t.tx, claim.UserID); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	_, err := t.tx.Exec(ctx,
		`INSERT INTO achievement_claims (user_id, code, claimed_at) VALUES ($1, $2, $3)`,
		claim.UserID, claim.Code, claim.ClaimedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyClaimed
		}
		return fmt.Errorf("failed to insert claim: %w", err)
	}
	return nil
}

// GetStrideState retrieves the user's stride state inside the transaction
func (t *AchievementTx) GetStrideState(ctx context.Context, userID string) (*domain.StrideState, error) {
	return getStrideState(ctx, t.tx, userID, false)
}
