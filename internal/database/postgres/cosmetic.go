package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// CosmeticRepository implements the cosmetic repository for PostgreSQL
type CosmeticRepository struct {
	db *pgxpool.Pool
}

// NewCosmeticRepository creates a new CosmeticRepository
func NewCosmeticRepository(db *pgxpool.Pool) *CosmeticRepository {
	return &CosmeticRepository{db: db}
}

// CosmeticTx implements repository.CosmeticTx
type CosmeticTx struct {
	coinTx
}

// BeginCosmeticTx starts a new transaction
func (r *CosmeticRepository) BeginCosmeticTx(ctx context.Context) (repository.CosmeticTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &CosmeticTx{coinTx{tx: tx}}, nil
}

const templateColumns = `id, key, name, category, price_mc, base_bonus_pct,
	per_level_bonus_pct, max_supply, minted_count`

// GetTemplates retrieves all cosmetic templates
func (r *CosmeticRepository) GetTemplates(ctx context.Context) ([]domain.CosmeticTemplate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+templateColumns+` FROM cosmetic_templates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query templates: %w", err)
	}
	defer rows.Close()

	var templates []domain.CosmeticTemplate
	for rows.Next() {
		var t domain.CosmeticTemplate
		if err := scanTemplate(rows, &t); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read templates: %w", err)
	}
	return templates, nil
}

// GetTemplateByKey retrieves a template by its key
func (r *CosmeticRepository) GetTemplateByKey(ctx context.Context, key string) (*domain.CosmeticTemplate, error) {
	return getTemplateByKey(ctx, r.db, key)
}

// GetUserInstances retrieves all cosmetic instances owned by the user
func (r *CosmeticRepository) GetUserInstances(ctx context.Context, userID string) ([]domain.CosmeticInstance, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+instanceColumns+`
		 FROM cosmetic_instances WHERE owner_id = $1 ORDER BY minted_at`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query instances: %w", err)
	}
	defer rows.Close()

	var instances []domain.CosmeticInstance
	for rows.Next() {
		var inst domain.CosmeticInstance
		if err := scanInstance(rows, &inst); err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read instances: %w", err)
	}
	return instances, nil
}

// GetEquippedCosmetics retrieves the user's equipped cosmetics with their
// templates
func (r *CosmeticRepository) GetEquippedCosmetics(ctx context.Context, userID string) ([]domain.EquippedCosmetic, error) {
	return getEquippedCosmetics(ctx, r.db, userID)
}

// GetTemplateByKey retrieves a template by its key inside the transaction
func (t *CosmeticTx) GetTemplateByKey(ctx context.Context, key string) (*domain.CosmeticTemplate, error) {
	return getTemplateByKey(ctx, t.tx, key)
}

// ReserveMintNumber increments the template's minted count if supply
// remains and returns the reserved number. Returns domain.ErrOutOfStock
// when the supply is exhausted.
func (t *CosmeticTx) ReserveMintNumber(ctx context.Context, templateID int) (int, error) {
	var mintNumber int
	err := t.tx.QueryRow(ctx,
		`UPDATE cosmetic_templates
		 SET minted_count = minted_count + 1
		 WHERE id = $1 AND (max_supply = 0 OR minted_count < max_supply)
		 RETURNING minted_count`,
		templateID).Scan(&mintNumber)
	if err != nil {
		if err == pgx.ErrNoRows {
			return 0, domain.ErrOutOfStock
		}
		return 0, fmt.Errorf("failed to reserve mint number: %w", err)
	}
	return mintNumber, nil
}

// CreateInstance inserts a newly minted instance
func (t *CosmeticTx) CreateInstance(ctx context.Context, instance *domain.CosmeticInstance) error {
	if err := ensureUser(ctx, t.tx, instance.OwnerID); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	_, err := t.tx.Exec(ctx,
		`INSERT INTO cosmetic_instances
		 (id, template_id, owner_id, mint_number, enhance_level, is_equipped, equipped_slot, minted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		instance.ID, instance.TemplateID, instance.OwnerID, instance.MintNumber,
		instance.EnhanceLevel, instance.IsEquipped, instance.EquippedSlot,
		instance.MintedAt)
	if err != nil {
		return fmt.Errorf("failed to create instance: %w", err)
	}
	return nil
}

// GetInstanceForUpdate locks an instance row by ID
func (t *CosmeticTx) GetInstanceForUpdate(ctx context.Context, id uuid.UUID) (*domain.CosmeticInstance, error) {
	var inst domain.CosmeticInstance
	err := scanInstance(t.tx.QueryRow(ctx,
		`SELECT `+instanceColumns+` FROM cosmetic_instances WHERE id = $1 FOR UPDATE`,
		id), &inst)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inst, nil
}

// UpdateInstance writes the instance's mutable fields back
func (t *CosmeticTx) UpdateInstance(ctx context.Context, instance *domain.CosmeticInstance) error {
	_, err := t.tx.Exec(ctx,
		`UPDATE cosmetic_instances
		 SET enhance_level = $2, is_equipped = $3, equipped_slot = $4
		 WHERE id = $1`,
		instance.ID, instance.EnhanceLevel, instance.IsEquipped, instance.EquippedSlot)
	if err != nil {
		return fmt.Errorf("failed to update instance: %w", err)
	}
	return nil
}

// GetSlotOccupant retrieves the instance currently equipped in the slot,
// if any
func (t *CosmeticTx) GetSlotOccupant(ctx context.Context, userID, slot string) (*domain.CosmeticInstance, error) {
	var inst domain.CosmeticInstance
	err := scanInstance(t.tx.QueryRow(ctx,
		`SELECT `+instanceColumns+`
		 FROM cosmetic_instances
		 WHERE owner_id = $1 AND is_equipped AND equipped_slot = $2`,
		userID, slot), &inst)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inst, nil
}

// GetCharacterState retrieves the user's character without locking
func (t *CosmeticTx) GetCharacterState(ctx context.Context, userID string) (*domain.CharacterState, error) {
	return getCharacterState(ctx, t.tx, userID, false)
}

const instanceColumns = `id, template_id, owner_id, mint_number, enhance_level,
	is_equipped, equipped_slot, minted_at`

// scanInstance scans an instance row, passing pgx.ErrNoRows through
// unwrapped so callers can translate it to a nil instance.
func scanInstance(row pgx.Row, inst *domain.CosmeticInstance) error {
	err := row.Scan(&inst.ID, &inst.TemplateID, &inst.OwnerID, &inst.MintNumber,
		&inst.EnhanceLevel, &inst.IsEquipped, &inst.EquippedSlot, &inst.MintedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return err
		}
		return fmt.Errorf("failed to scan instance: %w", err)
	}
	return nil
}

func scanTemplate(row pgx.Row, t *domain.CosmeticTemplate) error {
	err := row.Scan(&t.ID, &t.Key, &t.Name, &t.Category, &t.PriceMC,
		&t.BaseBonusPct, &t.PerLevelBonusPct, &t.MaxSupply, &t.MintedCount)
	if err != nil {
		return fmt.Errorf("failed to scan template: %w", err)
	}
	return nil
}

func getTemplateByKey(ctx context.Context, q querier, key string) (*domain.CosmeticTemplate, error) {
	var t domain.CosmeticTemplate
	err := q.QueryRow(ctx,
		`SELECT `+templateColumns+` FROM cosmetic_templates WHERE key = $1`,
		key).Scan(&t.ID, &t.Key, &t.Name, &t.Category, &t.PriceMC,
		&t.BaseBonusPct, &t.PerLevelBonusPct, &t.MaxSupply, &t.MintedCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	return &t, nil
}
