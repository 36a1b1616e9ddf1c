package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// Service defines the interface for store operations
type Service interface {
	ListItems(ctx context.Context) ([]domain.StoreItem, error)
	// Purchase reserves stock, debits the price, and records the purchase
	// in one transaction. A sold-out item fails before any debit.
	Purchase(ctx context.Context, userID, itemKey string) (*domain.StorePurchase, error)
}

type service struct {
	repo      repository.Store
	ledgerSvc ledger.Service
	now       func() time.Time
}

// NewService creates a new store service
func NewService(repo repository.Store, ledgerSvc ledger.Service) Service {
	return &service{repo: repo, ledgerSvc: ledgerSvc, now: time.Now}
}

func (s *service) ListItems(ctx context.Context) ([]domain.StoreItem, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *service) Purchase(ctx context.Context, userID, itemKey string) (*domain.StorePurchase, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginStoreTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetItemByKey(ctx, itemKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if item.Stock >= 0 {
		affected, err := tx.DecrementStock(ctx, itemKey)
		if err != nil {
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}
		if affected == 0 {
			return nil, domain.ErrOutOfStock
		}
	}

	if _, err := s.ledgerSvc.Apply(ctx, tx, ledger.ApplyParams{
		UserID:      userID,
		CoinType:    item.CoinType,
		Amount:      -item.Price,
		SourceType:  domain.SourcePurchase,
		Description: fmt.Sprintf("purchase %s", item.Key),
	}); err != nil {
		return nil, err
	}

	if err := applyEffect(ctx, tx, userID, item); err != nil {
		return nil, err
	}

	purchase := &domain.StorePurchase{
		ID:        uuid.New(),
		UserID:    userID,
		ItemKey:   item.Key,
		CoinType:  item.CoinType,
		Price:     item.Price,
		CreatedAt: s.now().UTC(),
	}
	if err := tx.RecordPurchase(ctx, purchase); err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Store purchase completed",
		"user_id", userID, "item", item.Key, "price", item.Price, "coin", item.CoinType)
	return purchase, nil
}

// applyEffect grants the item's mechanical effect inside the purchase
// transaction.
func applyEffect(ctx context.Context, tx repository.StoreTx, userID string, item *domain.StoreItem) error {
	switch item.Effect {
	case domain.EffectStrideShield:
		state, err := tx.GetStrideStateForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to lock stride state: %w", err)
		}
		if state == nil {
			state = &domain.StrideState{UserID: userID}
		}
		state.ShieldCount++
		if err := tx.UpsertStrideState(ctx, state); err != nil {
			return fmt.Errorf("failed to grant shield: %w", err)
		}

	case domain.EffectFeed:
		charState, err := tx.GetCharacterStateForUpdate(ctx, userID)
		if err != nil {
			return fmt.Errorf("failed to lock character: %w", err)
		}
		if charState == nil {
			return nil
		}
		charState.Condition += item.EffectValue
		if charState.Condition > charState.MaxCondition {
			charState.Condition = charState.MaxCondition
		}
		if err := tx.UpdateCharacterState(ctx, charState); err != nil {
			return fmt.Errorf("failed to restore condition: %w", err)
		}
	}
	return nil
}
