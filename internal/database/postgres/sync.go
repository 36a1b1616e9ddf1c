package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// SyncStoreItems upserts the configured store catalogue. Stock is only set
// when an item is first inserted so restarts do not restore sold units.
func SyncStoreItems(ctx context.Context, db *pgxpool.Pool, items []domain.StoreItem) error {
	for _, item := range items {
		_, err := db.Exec(ctx,
			`INSERT INTO store_items (key, name, coin_type, price, stock, effect, effect_value)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (key) DO UPDATE SET
			   name = EXCLUDED.name,
			   coin_type = EXCLUDED.coin_type,
			   price = EXCLUDED.price,
			   effect = EXCLUDED.effect,
			   effect_value = EXCLUDED.effect_value`,
			item.Key, item.Name, item.CoinType, item.Price, item.Stock,
			item.Effect, item.EffectValue)
		if err != nil {
			return fmt.Errorf("failed to sync store item %s: %w", item.Key, err)
		}
	}
	return nil
}

// SyncCosmeticTemplates upserts the configured cosmetic templates. The
// minted count is never touched: it belongs to the mint path alone.
func SyncCosmeticTemplates(ctx context.Context, db *pgxpool.Pool, templates []domain.CosmeticTemplate) error {
	for _, t := range templates {
		_, err := db.Exec(ctx,
			`INSERT INTO cosmetic_templates
			 (key, name, category, price_mc, base_bonus_pct, per_level_bonus_pct, max_supply)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (key) DO UPDATE SET
			   name = EXCLUDED.name,
			   category = EXCLUDED.category,
			   price_mc = EXCLUDED.price_mc,
			   base_bonus_pct = EXCLUDED.base_bonus_pct,
			   per_level_bonus_pct = EXCLUDED.per_level_bonus_pct,
			   max_supply = EXCLUDED.max_supply`,
			t.Key, t.Name, t.Category, t.PriceMC, t.BaseBonusPct,
			t.PerLevelBonusPct, t.MaxSupply)
		if err != nil {
			return fmt.Errorf("failed to sync cosmetic template %s: %w", t.Key, err)
		}
	}
	return nil
}
