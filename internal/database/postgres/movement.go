package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// MovementRepository implements the movement repository for PostgreSQL
type MovementRepository struct {
	db *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository
func NewMovementRepository(db *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{db: db}
}

// MovementTx implements repository.MovementTx
type MovementTx struct {
	coinTx
}

// BeginMovementTx starts a new transaction
func (r *MovementRepository) BeginMovementTx(ctx context.Context) (repository.MovementTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &MovementTx{coinTx{tx: tx}}, nil
}

// GetMovement retrieves a movement by ID
func (r *MovementRepository) GetMovement(ctx context.Context, id uuid.UUID) (*domain.Movement, error) {
	return getMovement(ctx, r.db,
		`SELECT `+movementColumns+` FROM movements WHERE id = $1`, id)
}

// GetActiveMovement retrieves the user's active movement, if any
func (r *MovementRepository) GetActiveMovement(ctx context.Context, userID string) (*domain.Movement, error) {
	return getMovement(ctx, r.db,
		`SELECT `+movementColumns+` FROM movements WHERE user_id = $1 AND status = $2`,
		userID, domain.MovementStatusActive)
}

// GetStrideState retrieves the user's stride state without locking
func (r *MovementRepository) GetStrideState(ctx context.Context, userID string) (*domain.StrideState, error) {
	return getStrideState(ctx, r.db, userID, false)
}

// EnsureUser creates the user row if it does not exist
func (t *MovementTx) EnsureUser(ctx context.Context, userID string) error {
	return ensureUser(ctx, t.tx, userID)
}

// CancelActiveMovements cancels any active movement the user has and
// reports how many rows changed
func (t *MovementTx) CancelActiveMovements(ctx context.Context, userID string) (int64, error) {
	tag, err := t.tx.Exec(ctx,
		`UPDATE movements SET status = $3, completed_at = $4
		 WHERE user_id = $1 AND status = $2`,
		userID, domain.MovementStatusActive, domain.MovementStatusCancelled,
		time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to cancel active movements: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CreateMovement inserts a new movement row
func (t *MovementTx) CreateMovement(ctx context.Context, movement *domain.Movement) error {
	segments, breakdown, err := marshalMovementJSON(movement)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx,
		`INSERT INTO movements
		 (id, user_id, status, transport_mode, started_at, completed_at,
		  total_distance_m, total_duration_s, segments, reward_breakdown)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		movement.ID, movement.UserID, movement.Status, movement.TransportMode,
		movement.StartedAt, movement.CompletedAt, movement.TotalDistanceM,
		movement.TotalDurationS, segments, breakdown)
	if err != nil {
		return fmt.Errorf("failed to create movement: %w", err)
	}
	return nil
}

// GetMovementForUpdate locks a movement row by ID
func (t *MovementTx) GetMovementForUpdate(ctx context.Context, id uuid.UUID) (*domain.Movement, error) {
	return getMovement(ctx, t.tx,
		`SELECT `+movementColumns+` FROM movements WHERE id = $1 FOR UPDATE`, id)
}

// CompleteMovement writes the validated totals, segments, and reward
// breakdown of a completed movement
func (t *MovementTx) CompleteMovement(ctx context.Context, movement *domain.Movement) error {
	segments, breakdown, err := marshalMovementJSON(movement)
	if err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx,
		`UPDATE movements
		 SET status = $2, completed_at = $3, total_distance_m = $4,
		     total_duration_s = $5, segments = $6, reward_breakdown = $7
		 WHERE id = $1`,
		movement.ID, movement.Status, movement.CompletedAt, movement.TotalDistanceM,
		movement.TotalDurationS, segments, breakdown)
	if err != nil {
		return fmt.Errorf("failed to complete movement: %w", err)
	}
	return nil
}

// CancelMovement cancels a movement if it is still active and reports
// rows affected
func (t *MovementTx) CancelMovement(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := t.tx.Exec(ctx,
		`UPDATE movements SET status = $3, completed_at = $4
		 WHERE id = $1 AND status = $2`,
		id, domain.MovementStatusActive, domain.MovementStatusCancelled,
		time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to cancel movement: %w", err)
	}
	return tag.RowsAffected(), nil
}

// GetStrideStateForUpdate locks the user's stride state row
func (t *MovementTx) GetStrideStateForUpdate(ctx context.Context, userID string) (*domain.StrideState, error) {
	return getStrideState(ctx, t.tx, userID, true)
}

// UpsertStrideState writes the stride state back
func (t *MovementTx) UpsertStrideState(ctx context.Context, state *domain.StrideState) error {
	return upsertStrideState(ctx, t.tx, state)
}

// GetCharacterStateForUpdate locks the user's character row
func (t *MovementTx) GetCharacterStateForUpdate(ctx context.Context, userID string) (*domain.CharacterState, error) {
	return getCharacterState(ctx, t.tx, userID, true)
}

// CreateCharacterState inserts a fresh character row
func (t *MovementTx) CreateCharacterState(ctx context.Context, state *domain.CharacterState) error {
	return createCharacterState(ctx, t.tx, state)
}

// UpdateCharacterState writes the character state back
func (t *MovementTx) UpdateCharacterState(ctx context.Context, state *domain.CharacterState) error {
	return updateCharacterState(ctx, t.tx, state)
}

// GetEquippedCosmetics retrieves the user's equipped cosmetics with their
// templates
func (t *MovementTx) GetEquippedCosmetics(ctx context.Context, userID string) ([]domain.EquippedCosmetic, error) {
	return getEquippedCosmetics(ctx, t.tx, userID)
}

// GetActiveBooster retrieves the user's unexpired booster, if any
func (t *MovementTx) GetActiveBooster(ctx context.Context, userID string, now time.Time) (*domain.Booster, error) {
	return getActiveBooster(ctx, t.tx, userID, now)
}

const movementColumns = `id, user_id, status, transport_mode, started_at, completed_at,
	total_distance_m, total_duration_s, segments, reward_breakdown`

func getMovement(ctx context.Context, q querier, query string, args ...any) (*domain.Movement, error) {
	var (
		movement  domain.Movement
		segments  []byte
		breakdown []byte
	)
	err := q.QueryRow(ctx, query, args...).Scan(&movement.ID, &movement.UserID,
		&movement.Status, &movement.TransportMode, &movement.StartedAt,
		&movement.CompletedAt, &movement.TotalDistanceM, &movement.TotalDurationS,
		&segments, &breakdown)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get movement: %w", err)
	}

	if len(segments) > 0 {
		if err := json.Unmarshal(segments, &movement.Segments); err != nil {
			return nil, fmt.Errorf("failed to parse segments: %w", err)
		}
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &movement.RewardBreakdown); err != nil {
			return nil, fmt.Errorf("failed to parse reward breakdown: %w", err)
		}
	}
	return &movement, nil
}

// marshalMovementJSON encodes the jsonb columns. A nil breakdown stays
// NULL so incomplete movements are distinguishable from zero rewards.
func marshalMovementJSON(movement *domain.Movement) ([]byte, []byte, error) {
	segments, err := json.Marshal(movement.Segments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode segments: %w", err)
	}
	var breakdown []byte
	if movement.RewardBreakdown != nil {
		breakdown, err = json.Marshal(movement.RewardBreakdown)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode reward breakdown: %w", err)
		}
	}
	return segments, breakdown, nil
}
