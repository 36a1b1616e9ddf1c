package achievement

import (
	"context"
	"fmt"
	"time"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// Progress pairs an achievement with the user's current standing.
type Progress struct {
	Achievement domain.Achievement `json:"achievement"`
	Current     float64            `json:"current"`
	Met         bool               `json:"met"`
	Claimed     bool               `json:"claimed"`
}

// Service defines the interface for achievement operations
type Service interface {
	// List returns every achievement with the user's progress and claim
	// state.
	List(ctx context.Context, userID string) ([]Progress, error)
	// Claim verifies the criteria, records the one-shot claim, and credits
	// the reward atomically. A duplicate claim fails with ErrAlreadyClaimed
	// even under concurrency.
	Claim(ctx context.Context, userID, code string) (*domain.AchievementClaim, error)
}

type service struct {
	repo         repository.Achievement
	ledgerSvc    ledger.Service
	achievements []domain.Achievement
	now          func() time.Time
}

// NewService creates a new achievement service. The achievement catalogue
// is config-loaded and fixed for the process lifetime.
func NewService(repo repository.Achievement, ledgerSvc ledger.Service, achievements []domain.Achievement) Service {
	return &service{
		repo:         repo,
		ledgerSvc:    ledgerSvc,
		achievements: achievements,
		now:          time.Now,
	}
}

func (s *service) List(ctx context.Context, userID string) ([]Progress, error) {
	claims, err := s.repo.GetUserClaims(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get claims: %w", err)
	}
	claimed := make(map[string]bool, len(claims))
	for _, c := range claims {
		claimed[c.Code] = true
	}

	strideState, err := s.repo.GetStrideState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stride state: %w", err)
	}
	balance, err := s.repo.GetCoinBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	result := make([]Progress, 0, len(s.achievements))
	for _, a := range s.achievements {
		current := criteriaValue(a.Criteria, strideState, balance)
		result = append(result, Progress{
			Achievement: a,
			Current:     current,
			Met:         current >= a.Threshold,
			Claimed:     claimed[a.Code],
		})
	}
	return result, nil
}

func (s *service) Claim(ctx context.Context, userID, code string) (*domain.AchievementClaim, error) {
	log := logger.FromContext(ctx)

	achievement := s.find(code)
	if achievement == nil {
		return nil, domain.ErrNotFound
	}

	tx, err := s.repo.BeginAchievementTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Criteria are re-checked inside the transaction so a claim cannot
	// slip through on stale reads.
	strideState, err := tx.GetStrideState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get stride state: %w", err)
	}
	balance, err := tx.GetCoinBalanceForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock balance: %w", err)
	}
	if criteriaValue(achievement.Criteria, strideState, balance) < achievement.Threshold {
		return nil, domain.ErrAchievementNotMet
	}

	claim := &domain.AchievementClaim{
		UserID:    userID,
		Code:      achievement.Code,
		ClaimedAt: s.now().UTC(),
	}
	// The unique (user, code) index turns a duplicate into
	// ErrAlreadyClaimed; concurrent claims settle exactly once.
	if err := tx.InsertClaim(ctx, claim); err != nil {
		return nil, err
	}

	if _, err := s.ledgerSvc.Apply(ctx, tx, ledger.ApplyParams{
		UserID:      userID,
		CoinType:    achievement.RewardCoin,
		Amount:      achievement.RewardAmount,
		SourceType:  domain.SourceAchievement,
		SourceID:    &achievement.Code,
		Description: fmt.Sprintf("achievement %s", achievement.Code),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Achievement claimed",
		"user_id", userID, "code", code, "reward", achievement.RewardAmount, "coin", achievement.RewardCoin)
	return claim, nil
}

func (s *service) find(code string) *domain.Achievement {
	for i := range s.achievements {
		if s.achievements[i].Code == code {
			return &s.achievements[i]
		}
	}
	return nil
}

func criteriaValue(criteria domain.AchievementCriteria, strideState *domain.StrideState, balance *domain.CoinBalance) float64 {
	switch criteria {
	case domain.CriteriaTotalDistanceM:
		if strideState == nil {
			return 0
		}
		return strideState.TotalDistanceM
	case domain.CriteriaStreakDays:
		if strideState == nil {
			return 0
		}
		return float64(strideState.LongestStreakDays)
	case domain.CriteriaLifetimeSC:
		if balance == nil {
			return 0
		}
		return float64(balance.SCLifetime)
	}
	return 0
}
