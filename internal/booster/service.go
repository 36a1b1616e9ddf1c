package booster

import (
	"context"
	"fmt"
	"time"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// Status is the read model surfaced to clients.
type Status struct {
	Active     bool       `json:"active"`
	Multiplier *float64   `json:"multiplier,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// Service defines the interface for booster operations
type Service interface {
	// Redeem consumes one redemption of a code and activates its
	// multiplier for the user. A code at its redemption limit fails with
	// ErrCodeExhausted even under concurrent redemption.
	Redeem(ctx context.Context, userID, code string) (*domain.Booster, error)
	// GetActive reports the user's currently live booster, if any.
	GetActive(ctx context.Context, userID string) (*Status, error)
}

type service struct {
	repo repository.Booster
	now  func() time.Time
}

// NewService creates a new booster service
func NewService(repo repository.Booster) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Redeem(ctx context.Context, userID, code string) (*domain.Booster, error) {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginBoosterTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	boosterCode, err := tx.GetCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get code: %w", err)
	}
	if boosterCode == nil {
		return nil, domain.ErrNotFound
	}

	// The conditional increment is the gate: two concurrent redemptions of
	// the last slot cannot both pass it.
	if boosterCode.MaxRedemptions > 0 {
		affected, err := tx.IncrementRedemption(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to increment redemption: %w", err)
		}
		if affected == 0 {
			return nil, domain.ErrCodeExhausted
		}
	}

	booster := &domain.Booster{
		UserID:     userID,
		Code:       boosterCode.Code,
		Multiplier: boosterCode.Multiplier,
		ExpiresAt:  s.now().UTC().Add(time.Duration(boosterCode.DurationS) * time.Second),
	}
	if err := tx.UpsertBooster(ctx, booster); err != nil {
		return nil, fmt.Errorf("failed to activate booster: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Booster redeemed",
		"user_id", userID, "code", code, "multiplier", booster.Multiplier, "expires_at", booster.ExpiresAt)
	return booster, nil
}

func (s *service) GetActive(ctx context.Context, userID string) (*Status, error) {
	booster, err := s.repo.GetActiveBooster(ctx, userID, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to get active booster: %w", err)
	}
	if booster == nil || !booster.ActiveAt(s.now().UTC()) {
		return &Status{Active: false}, nil
	}
	return &Status{
		Active:     true,
		Multiplier: &booster.Multiplier,
		ExpiresAt:  &booster.ExpiresAt,
	}, nil
}
