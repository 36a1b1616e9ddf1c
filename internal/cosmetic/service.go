package cosmetic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/striderush/StrideRush_Go/internal/character"
	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/random"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// EnhanceResult reports one enhancement attempt. The cost is charged
// whether or not the roll succeeded.
type EnhanceResult struct {
	Instance    *domain.CosmeticInstance `json:"instance"`
	Success     bool                     `json:"success"`
	CostMC      int64                    `json:"cost_mc"`
	Probability float64                  `json:"probability"`
}

// Service defines the interface for cosmetic operations
type Service interface {
	ListTemplates(ctx context.Context) ([]domain.CosmeticTemplate, error)
	GetTemplate(ctx context.Context, key string) (*domain.CosmeticTemplate, error)
	ListOwned(ctx context.Context, userID string) ([]domain.CosmeticInstance, error)
	// Mint charges the template price in MC and creates a numbered
	// instance. The supply reservation, the debit, and the instance
	// insert commit or roll back together.
	Mint(ctx context.Context, userID, templateKey string) (*domain.CosmeticInstance, error)
	// Enhance charges the attempt cost and rolls for a level increase in
	// one transaction, so a crash cannot separate charge from outcome.
	Enhance(ctx context.Context, userID string, instanceID uuid.UUID) (*EnhanceResult, error)
	Equip(ctx context.Context, userID string, instanceID uuid.UUID, slot string) (*domain.CosmeticInstance, error)
	Unequip(ctx context.Context, userID string, instanceID uuid.UUID) (*domain.CosmeticInstance, error)
}

type service struct {
	repo      repository.Cosmetic
	ledgerSvc ledger.Service
	rnd       random.Source
	cache     *templateCache
	now       func() time.Time
}

// NewService creates a new cosmetic service
func NewService(repo repository.Cosmetic, ledgerSvc ledger.Service, rnd random.Source) Service {
	return &service{
		repo:      repo,
		ledgerSvc: ledgerSvc,
		rnd:       rnd,
		cache:     newTemplateCache(TemplateCacheSize, TemplateCacheTTL),
		now:       time.Now,
	}
}

func (s *service) ListTemplates(ctx context.Context) ([]domain.CosmeticTemplate, error) {
	templates, err := s.repo.GetTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return templates, nil
}

func (s *service) GetTemplate(ctx context.Context, key string) (*domain.CosmeticTemplate, error) {
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	template, err := s.repo.GetTemplateByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	if template == nil {
		return nil, domain.ErrNotFound
	}

	s.cache.Set(key, template)
	return template, nil
}

func (s *service) ListOwned(ctx context.Context, userID string) ([]domain.CosmeticInstance, error) {
	instances, err := s.repo.GetUserInstances(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list instances: %w", err)
	}
	return instances, nil
}

func (s *service) Mint(ctx context.Context, userID, templateKey string) (*domain.CosmeticInstance, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginCosmeticTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	template, err := tx.GetTemplateByKey(ctx, templateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get template: %w", err)
	}
	if template == nil {
		return nil, domain.ErrNotFound
	}

	mintNumber, err := tx.ReserveMintNumber(ctx, template.ID)
	if err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			return nil, domain.ErrOutOfStock
		}
		return nil, fmt.Errorf("failed to reserve mint number: %w", err)
	}

	if template.PriceMC > 0 {
		if _, err := s.ledgerSvc.Apply(ctx, tx, ledger.ApplyParams{
			UserID:      userID,
			CoinType:    domain.CoinMC,
			Amount:      -template.PriceMC,
			SourceType:  domain.SourceMint,
			Description: fmt.Sprintf("mint %s #%d", template.Key, mintNumber),
		}); err != nil {
			return nil, err
		}
	}

	instance := &domain.CosmeticInstance{
		ID:         uuid.New(),
		TemplateID: template.ID,
		OwnerID:    userID,
		MintNumber: mintNumber,
		MintedAt:   s.now().UTC(),
	}
	if err := tx.CreateInstance(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to create instance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	s.cache.Invalidate(templateKey)
	log.Info("Cosmetic minted",
		"user_id", userID, "template", templateKey, "mint_number", mintNumber)
	return instance, nil
}

func (s *service) Enhance(ctx context.Context, userID string, instanceID uuid.UUID) (*EnhanceResult, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginCosmeticTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	instance, err := tx.GetInstanceForUpdate(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock instance: %w", err)
	}
	if instance == nil || instance.OwnerID != userID {
		return nil, domain.ErrNotFound
	}
	if instance.EnhanceLevel >= domain.MaxEnhanceLevel {
		return nil, domain.ErrMaxEnhanceLevel
	}

	cost := enhanceCostsMC[instance.EnhanceLevel]
	probability := enhanceChances[instance.EnhanceLevel]
	if charState, err := tx.GetCharacterState(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	} else if charState != nil {
		probability += character.LuckEnhanceBonus(charState.Stats)
	}

	if _, err := s.ledgerSvc.Apply(ctx, tx, ledger.ApplyParams{
		UserID:      userID,
		CoinType:    domain.CoinMC,
		Amount:      -cost,
		SourceType:  domain.SourceEnhance,
		Description: fmt.Sprintf("enhance attempt level %d", instance.EnhanceLevel+1),
	}); err != nil {
		return nil, err
	}

	// The roll happens inside the same transaction as the debit: a crash
	// between charge and outcome is impossible.
	success := random.SuccessRoll(s.rnd, probability)
	if success {
		instance.EnhanceLevel++
		if err := tx.UpdateInstance(ctx, instance); err != nil {
			return nil, fmt.Errorf("failed to update instance: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Enhancement attempted",
		"user_id", userID,
		"instance_id", instanceID,
		"success", success,
		"level", instance.EnhanceLevel,
		"cost_mc", cost)
	return &EnhanceResult{
		Instance:    instance,
		Success:     success,
		CostMC:      cost,
		Probability: probability,
	}, nil
}

func (s *service) Equip(ctx context.Context, userID string, instanceID uuid.UUID, slot string) (*domain.CosmeticInstance, error) {
	if slot == "" {
		return nil, fmt.Errorf("%w: slot is required", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginCosmeticTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	instance, err := tx.GetInstanceForUpdate(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock instance: %w", err)
	}
	if instance == nil || instance.OwnerID != userID {
		return nil, domain.ErrNotFound
	}

	occupant, err := tx.GetSlotOccupant(ctx, userID, slot)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot: %w", err)
	}
	if occupant != nil && occupant.ID != instance.ID {
		return nil, domain.ErrSlotOccupied
	}

	instance.IsEquipped = true
	instance.EquippedSlot = &slot
	if err := tx.UpdateInstance(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to update instance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return instance, nil
}

func (s *service) Unequip(ctx context.Context, userID string, instanceID uuid.UUID) (*domain.CosmeticInstance, error) {
	tx, err := s.repo.BeginCosmeticTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	instance, err := tx.GetInstanceForUpdate(ctx, instanceID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock instance: %w", err)
	}
	if instance == nil || instance.OwnerID != userID {
		return nil, domain.ErrNotFound
	}

	instance.IsEquipped = false
	instance.EquippedSlot = nil
	if err := tx.UpdateInstance(ctx, instance); err != nil {
		return nil, fmt.Errorf("failed to update instance: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return instance, nil
}
