package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Movement defines the interface for data access required by the movement service
type Movement interface {
	GetMovement(ctx context.Context, id uuid.UUID) (*domain.Movement, error)
	GetActiveMovement(ctx context.Context, userID string) (*domain.Movement, error)
	GetStrideState(ctx context.Context, userID string) (*domain.StrideState, error)
	BeginMovementTx(ctx context.Context) (MovementTx, error)
}

// MovementTx extends Tx with the operations a movement start or completion
// performs atomically: movement row transitions, stride state mutation, and
// the reward credit.
type MovementTx interface {
	Tx

	EnsureUser(ctx context.Context, userID string) error
	CancelActiveMovements(ctx context.Context, userID string) (int64, error)
	CreateMovement(ctx context.Context, movement *domain.Movement) error
	GetMovementForUpdate(ctx context.Context, id uuid.UUID) (*domain.Movement, error)
	CompleteMovement(ctx context.Context, movement *domain.Movement) error
	CancelMovement(ctx context.Context, id uuid.UUID) (int64, error)

	GetStrideStateForUpdate(ctx context.Context, userID string) (*domain.StrideState, error)
	UpsertStrideState(ctx context.Context, state *domain.StrideState) error

	GetCharacterStateForUpdate(ctx context.Context, userID string) (*domain.CharacterState, error)
	CreateCharacterState(ctx context.Context, state *domain.CharacterState) error
	UpdateCharacterState(ctx context.Context, state *domain.CharacterState) error
	GetEquippedCosmetics(ctx context.Context, userID string) ([]domain.EquippedCosmetic, error)
	GetActiveBooster(ctx context.Context, userID string, now time.Time) (*domain.Booster, error)
}
