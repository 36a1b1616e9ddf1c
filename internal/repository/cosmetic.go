package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Cosmetic defines the interface for data access required by the cosmetic service
type Cosmetic interface {
	GetTemplates(ctx context.Context) ([]domain.CosmeticTemplate, error)
	GetTemplateByKey(ctx context.Context, key string) (*domain.CosmeticTemplate, error)
	GetUserInstances(ctx context.Context, userID string) ([]domain.CosmeticInstance, error)
	GetEquippedCosmetics(ctx context.Context, userID string) ([]domain.EquippedCosmetic, error)
	BeginCosmeticTx(ctx context.Context) (CosmeticTx, error)
}

// CosmeticTx extends Tx with mint, enhancement, and equip operations.
// ReserveMintNumber performs a conditional increment against max supply so
// that concurrent mints of the last copy cannot both succeed.
type CosmeticTx interface {
	Tx

	GetTemplateByKey(ctx context.Context, key string) (*domain.CosmeticTemplate, error)
	ReserveMintNumber(ctx context.Context, templateID int) (int, error)
	CreateInstance(ctx context.Context, instance *domain.CosmeticInstance) error
	GetInstanceForUpdate(ctx context.Context, id uuid.UUID) (*domain.CosmeticInstance, error)
	UpdateInstance(ctx context.Context, instance *domain.CosmeticInstance) error
	GetSlotOccupant(ctx context.Context, userID, slot string) (*domain.CosmeticInstance, error)
	GetCharacterState(ctx context.Context, userID string) (*domain.CharacterState, error)
}
