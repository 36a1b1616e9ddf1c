package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/random"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// DefaultKind names the only wheel shipped today. Additional wheels get
// their own kind, config file, and route.
const DefaultKind = "roulette"

// Wheel is a configured game: one spin costs SC, slots pay out by
// weight. A zero cost makes the wheel free to spin.
type Wheel struct {
	Kind   string                `json:"game_kind"`
	CostSC int64                 `json:"cost_sc"`
	Slots  []domain.RouletteSlot `json:"slots"`
}

// Validate reports whether the wheel can actually be drawn from.
func (w Wheel) Validate() error {
	if w.CostSC < 0 {
		return fmt.Errorf("%w: negative spin cost", domain.ErrInvalidInput)
	}
	total := 0
	for _, slot := range w.Slots {
		if slot.Weight < 0 {
			return domain.ErrInvalidWeightTable
		}
		total += slot.Weight
	}
	if total <= 0 {
		return domain.ErrInvalidWeightTable
	}
	return nil
}

// SpinResult reports one settled spin.
type SpinResult struct {
	GameKind   string               `json:"game_kind"`
	Spin       *domain.RouletteSpin `json:"spin"`
	NewBalance int64                `json:"new_balance"`
}

// Service defines the interface for gambling-game operations
type Service interface {
	GetWheel(ctx context.Context) (Wheel, error)
	// Spin debits the cost, draws the outcome, credits the reward, and
	// records the spin in one transaction. An empty gameKind means the
	// configured wheel; any other mismatch is ErrNotFound.
	Spin(ctx context.Context, userID, gameKind string) (*SpinResult, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]domain.RouletteSpin, error)
}

type service struct {
	repo      repository.Game
	ledgerSvc ledger.Service
	rnd       random.Source
	wheel     Wheel
	now       func() time.Time
}

// NewService creates a new game service with a config-loaded wheel
func NewService(repo repository.Game, ledgerSvc ledger.Service, rnd random.Source, wheel Wheel) Service {
	if wheel.Kind == "" {
		wheel.Kind = DefaultKind
	}
	return &service{
		repo:      repo,
		ledgerSvc: ledgerSvc,
		rnd:       rnd,
		wheel:     wheel,
		now:       time.Now,
	}
}

func (s *service) GetWheel(ctx context.Context) (Wheel, error) {
	return s.wheel, nil
}

func (s *service) Spin(ctx context.Context, userID, gameKind string) (*SpinResult, error) {
	log := logger.FromContext(ctx)

	if gameKind != "" && gameKind != s.wheel.Kind {
		return nil, fmt.Errorf("%w: unknown game kind %q", domain.ErrNotFound, gameKind)
	}

	if err := s.wheel.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginGameTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	var newBalance int64
	if s.wheel.CostSC > 0 {
		newBalance, err = s.ledgerSvc.Apply(ctx, tx, ledger.ApplyParams{
			UserID:      userID,
			CoinType:    domain.CoinSC,
			Amount:      -s.wheel.CostSC,
			SourceType:  domain.SourceGame,
			Description: fmt.Sprintf("%s spin", s.wheel.Kind),
		})
		if err != nil {
			return nil, err
		}
	} else {
		// Free wheels skip the debit; the ledger rejects zero amounts.
		balance, err := tx.GetCoinBalanceForUpdate(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to get balance: %w", err)
		}
		newBalance = balance.Balance(domain.CoinSC)
	}

	// The draw happens between debit and credit inside the same
	// transaction, so a crash cannot separate charge from grant.
	outcomes := make([]random.WeightedOutcome[domain.RouletteSlot], len(s.wheel.Slots))
	for i, slot := range s.wheel.Slots {
		outcomes[i] = random.WeightedOutcome[domain.RouletteSlot]{Value: slot, Weight: slot.Weight}
	}
	slot, err := random.DrawOutcome(s.rnd, outcomes)
	if err != nil {
		return nil, err
	}

	spin := &domain.RouletteSpin{
		ID:           uuid.New(),
		UserID:       userID,
		SlotLabel:    slot.Label,
		CostSC:       s.wheel.CostSC,
		RewardCoin:   slot.RewardCoin,
		RewardAmount: slot.RewardAmount,
		CreatedAt:    s.now().UTC(),
	}

	if slot.RewardAmount > 0 {
		spinID := spin.ID.String()
		rewardBalance, err := s.ledgerSvc.Apply(ctx, tx, ledger.ApplyParams{
			UserID:      userID,
			CoinType:    slot.RewardCoin,
			Amount:      slot.RewardAmount,
			SourceType:  domain.SourceGame,
			SourceID:    &spinID,
			Description: fmt.Sprintf("%s payout %s", s.wheel.Kind, slot.Label),
		})
		if err != nil {
			return nil, err
		}
		if slot.RewardCoin == domain.CoinSC {
			newBalance = rewardBalance
		}
	}

	if err := tx.RecordSpin(ctx, spin); err != nil {
		return nil, fmt.Errorf("failed to record spin: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("Spin settled",
		"user_id", userID,
		"game_kind", s.wheel.Kind,
		"slot", slot.Label,
		"cost_sc", s.wheel.CostSC,
		"reward", slot.RewardAmount,
		"coin", slot.RewardCoin)
	return &SpinResult{GameKind: s.wheel.Kind, Spin: spin, NewBalance: newBalance}, nil
}

func (s *service) GetHistory(ctx context.Context, userID string, limit int) ([]domain.RouletteSpin, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	spins, err := s.repo.GetSpins(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get spins: %w", err)
	}
	return spins, nil
}

// DefaultWheel is the wheel used when no configuration file overrides it.
func DefaultWheel() Wheel {
	return Wheel{
		Kind:   DefaultKind,
		CostSC: 50,
		Slots: []domain.RouletteSlot{
			{Label: "miss", Weight: 40},
			{Label: "small_sc", Weight: 30, RewardCoin: domain.CoinSC, RewardAmount: 30},
			{Label: "medium_sc", Weight: 15, RewardCoin: domain.CoinSC, RewardAmount: 80},
			{Label: "big_sc", Weight: 5, RewardCoin: domain.CoinSC, RewardAmount: 250},
			{Label: "small_mc", Weight: 8, RewardCoin: domain.CoinMC, RewardAmount: 10},
			{Label: "jackpot_mc", Weight: 2, RewardCoin: domain.CoinMC, RewardAmount: 100},
		},
	}
}
