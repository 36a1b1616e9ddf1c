package repository

import (
	"context"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Character defines the interface for character persistence
type Character interface {
	GetCharacterState(ctx context.Context, userID string) (*domain.CharacterState, error)
	BeginCharacterTx(ctx context.Context) (CharacterTx, error)
}

// CharacterTx extends Tx with character state transitions
type CharacterTx interface {
	Tx

	GetCharacterStateForUpdate(ctx context.Context, userID string) (*domain.CharacterState, error)
	CreateCharacterState(ctx context.Context, state *domain.CharacterState) error
	UpdateCharacterState(ctx context.Context, state *domain.CharacterState) error
}
