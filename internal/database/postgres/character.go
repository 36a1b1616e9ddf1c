package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// CharacterRepository implements the character repository for PostgreSQL
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new CharacterRepository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

// CharacterTx implements repository.CharacterTx
type CharacterTx struct {
	coinTx
}

// BeginCharacterTx starts a new transaction
func (r *CharacterRepository) BeginCharacterTx(ctx context.Context) (repository.CharacterTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &CharacterTx{coinTx{tx: tx}}, nil
}

// GetCharacterState retrieves the user's character without locking
func (r *CharacterRepository) GetCharacterState(ctx context.Context, userID string) (*domain.CharacterState, error) {
	return getCharacterState(ctx, r.db, userID, false)
}

// GetCharacterStateForUpdate locks the user's character row
func (t *CharacterTx) GetCharacterStateForUpdate(ctx context.Context, userID string) (*domain.CharacterState, error) {
	return getCharacterState(ctx, t.tx, userID, true)
}

// CreateCharacterState inserts a fresh character row
func (t *CharacterTx) CreateCharacterState(ctx context.Context, state *domain.CharacterState) error {
	return createCharacterState(ctx, t.tx, state)
}

// UpdateCharacterState writes the character state back
func (t *CharacterTx) UpdateCharacterState(ctx context.Context, state *domain.CharacterState) error {
	return updateCharacterState(ctx, t.tx, state)
}
