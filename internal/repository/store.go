package repository

import (
	"context"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Store defines the interface for store persistence
type Store interface {
	ListItems(ctx context.Context) ([]domain.StoreItem, error)
	GetItemByKey(ctx context.Context, key string) (*domain.StoreItem, error)
	BeginStoreTx(ctx context.Context) (StoreTx, error)
}

// StoreTx extends Tx with stock reservation and purchase recording.
// DecrementStock is conditional on remaining stock and reports rows
// affected, so a sold-out item fails without touching the balance.
type StoreTx interface {
	Tx

	GetItemByKey(ctx context.Context, key string) (*domain.StoreItem, error)
	DecrementStock(ctx context.Context, key string) (int64, error)
	RecordPurchase(ctx context.Context, purchase *domain.StorePurchase) error

	GetStrideStateForUpdate(ctx context.Context, userID string) (*domain.StrideState, error)
	UpsertStrideState(ctx context.Context, state *domain.StrideState) error
	GetCharacterStateForUpdate(ctx context.Context, userID string) (*domain.CharacterState, error)
	UpdateCharacterState(ctx context.Context, state *domain.CharacterState) error
}
