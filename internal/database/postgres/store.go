package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// StoreRepository implements the store repository for PostgreSQL
type StoreRepository struct {
	db *pgxpool.Pool
}

// NewStoreRepository creates a new StoreRepository
func NewStoreRepository(db *pgxpool.Pool) *StoreRepository {
	return &StoreRepository{db: db}
}

// StoreTx implements repository.StoreTx
type StoreTx struct {
	coinTx
}

// BeginStoreTx starts a new transaction
func (r *StoreRepository) BeginStoreTx(ctx context.Context) (repository.StoreTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &StoreTx{coinTx{tx: tx}}, nil
}

const storeItemColumns = `key, name, coin_type, price, stock, effect, effect_value`

// ListItems retrieves all store items
func (r *StoreRepository) ListItems(ctx context.Context) ([]domain.StoreItem, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+storeItemColumns+` FROM store_items ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to query store items: %w", err)
	}
	defer rows.Close()

	var items []domain.StoreItem
	for rows.Next() {
		var item domain.StoreItem
		if err := rows.Scan(&item.Key, &item.Name, &item.CoinType, &item.Price,
			&item.Stock, &item.Effect, &item.EffectValue); err != nil {
			return nil, fmt.Errorf("failed to scan store item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read store items: %w", err)
	}
	return items, nil
}

// GetItemByKey retrieves a store item by its key
func (r *StoreRepository) GetItemByKey(ctx context.Context, key string) (*domain.StoreItem, error) {
	return getItemByKey(ctx, r.db, key)
}

// GetItemByKey retrieves a store item by its key inside the transaction
func (t *StoreTx) GetItemByKey(ctx context.Context, key string) (*domain.StoreItem, error) {
	return getItemByKey(ctx, t.tx, key)
}

// DecrementStock reserves one unit of a stock-limited item and reports
// rows affected. Zero rows means the item is sold out.
func (t *StoreTx) DecrementStock(ctx context.Context, key string) (int64, error) {
	tag, err := t.tx.Exec(ctx,
		`UPDATE store_items SET stock = stock - 1 WHERE key = $1 AND stock > 0`,
		key)
	if err != nil {
		return 0, fmt.Errorf("failed to decrement stock: %w", err)
	}
	return tag.RowsAffected(), nil
}

// RecordPurchase inserts an immutable purchase record
func (t *StoreTx) RecordPurchase(ctx context.Context, purchase *domain.StorePurchase) error {
	_, err := t.tx.Exec(ctx,
		`INSERT INTO store_purchases (id, user_id, item_key, coin_type, price, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		purchase.ID, purchase.UserID, purchase.ItemKey, purchase.CoinType,
		purchase.Price, purchase.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record purchase: %w", err)
	}
	return nil
}

// GetStrideStateForUpdate locks the user's stride state row
func (t *StoreTx) GetStrideStateForUpdate(ctx context.Context, userID string) (*domain.StrideState, error) {
	return getStrideState(ctx, t.tx, userID, true)
}

// UpsertStrideState writes the stride state back
func (t *StoreTx) UpsertStrideState(ctx context.Context, state *domain.StrideState) error {
	return upsertStrideState(ctx, t.tx, state)
}

// GetCharacterStateForUpdate locks the user's character row
func (t *StoreTx) GetCharacterStateForUpdate(ctx context.Context, userID string) (*domain.CharacterState, error) {
	return getCharacterState(ctx, t.tx, userID, true)
}

// UpdateCharacterState writes the character state back
func (t *StoreTx) UpdateCharacterState(ctx context.Context, state *domain.CharacterState) error {
	return updateCharacterState(ctx, t.tx, state)
}

func getItemByKey(ctx context.Context, q querier, key string) (*domain.StoreItem, error) {
	var item domain.StoreItem
	err := q.QueryRow(ctx,
		`SELECT `+storeItemColumns+` FROM store_items WHERE key = $1`,
		key).Scan(&item.Key, &item.Name, &item.CoinType, &item.Price,
		&item.Stock, &item.Effect, &item.EffectValue)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get store item: %w", err)
	}
	return &item, nil
}
