package character

import (
	"context"
	"fmt"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// Service defines the interface for character operations
type Service interface {
	// GetOrCreate returns the user's character, creating a fresh one on
	// first access.
	GetOrCreate(ctx context.Context, userID string) (*domain.CharacterState, error)
	// GrantExp adds exp. It never levels the character up.
	GrantExp(ctx context.Context, userID string, amount int64) (*domain.CharacterState, error)
	// LevelUp spends accumulated exp and allocates one point to the given
	// stat. Fails with ErrInsufficientExp when exp is below the cost.
	LevelUp(ctx context.Context, userID string, stat domain.StatKey) (*domain.CharacterState, error)
	// Feed restores condition up to the character's maximum.
	Feed(ctx context.Context, userID string, amount int) (*domain.CharacterState, error)
	// DrainCondition consumes condition, flooring at zero.
	DrainCondition(ctx context.Context, userID string, amount int) (*domain.CharacterState, error)
}

type service struct {
	repo repository.Character
}

// NewService creates a new character service
func NewService(repo repository.Character) Service {
	return &service{repo: repo}
}

// NewCharacterState returns the initial character for a user
func NewCharacterState(userID string) *domain.CharacterState {
	return &domain.CharacterState{
		UserID:       userID,
		Level:        StartingLevel,
		ExpToNext:    BaseExpToNext,
		Condition:    StartingMaxCondition,
		MaxCondition: StartingMaxCondition,
	}
}

func expToNext(level int) int64 {
	return int64(level) * BaseExpToNext
}

func (s *service) GetOrCreate(ctx context.Context, userID string) (*domain.CharacterState, error) {
	state, err := s.repo.GetCharacterState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	if state != nil {
		return state, nil
	}

	tx, err := s.repo.BeginCharacterTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	state = NewCharacterState(userID)
	if err := tx.CreateCharacterState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to create character: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Character created", "user_id", userID)
	return state, nil
}

func (s *service) GrantExp(ctx context.Context, userID string, amount int64) (*domain.CharacterState, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: exp grant must be positive", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginCharacterTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	state, err := s.lockOrCreate(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	state.Exp += amount
	if err := tx.UpdateCharacterState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Exp granted", "user_id", userID, "amount", amount, "exp", state.Exp)
	return state, nil
}

func (s *service) LevelUp(ctx context.Context, userID string, stat domain.StatKey) (*domain.CharacterState, error) {
	if !stat.IsValid() {
		return nil, fmt.Errorf("%w: unknown stat %q", domain.ErrInvalidInput, stat)
	}

	tx, err := s.repo.BeginCharacterTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	state, err := s.lockOrCreate(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	if state.Exp < state.ExpToNext {
		return nil, domain.ErrInsufficientExp
	}

	state.Exp -= state.ExpToNext
	state.Level++
	state.ExpToNext = expToNext(state.Level)

	switch stat {
	case domain.StatEndurance:
		state.Stats.Endurance++
		state.MaxCondition += MaxConditionPerEndurance
	case domain.StatEfficiency:
		state.Stats.Efficiency++
	case domain.StatLuck:
		state.Stats.Luck++
	}

	if err := tx.UpdateCharacterState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	logger.FromContext(ctx).Info("Character levelled up",
		"user_id", userID, "level", state.Level, "stat", stat)
	return state, nil
}

func (s *service) Feed(ctx context.Context, userID string, amount int) (*domain.CharacterState, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: feed amount must be positive", domain.ErrInvalidInput)
	}
	return s.adjustCondition(ctx, userID, amount)
}

func (s *service) DrainCondition(ctx context.Context, userID string, amount int) (*domain.CharacterState, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: drain amount must be positive", domain.ErrInvalidInput)
	}
	return s.adjustCondition(ctx, userID, -amount)
}

func (s *service) adjustCondition(ctx context.Context, userID string, delta int) (*domain.CharacterState, error) {
	tx, err := s.repo.BeginCharacterTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	state, err := s.lockOrCreate(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	state.Condition += delta
	if state.Condition > state.MaxCondition {
		state.Condition = state.MaxCondition
	}
	if state.Condition < 0 {
		state.Condition = 0
	}

	if err := tx.UpdateCharacterState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to update character: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return state, nil
}

// lockOrCreate fetches the character row under lock, creating it first if
// the user has never had one.
func (s *service) lockOrCreate(ctx context.Context, tx repository.CharacterTx, userID string) (*domain.CharacterState, error) {
	state, err := tx.GetCharacterStateForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock character: %w", err)
	}
	if state == nil {
		state = NewCharacterState(userID)
		if err := tx.CreateCharacterState(ctx, state); err != nil {
			return nil, fmt.Errorf("failed to create character: %w", err)
		}
	}
	return state, nil
}
