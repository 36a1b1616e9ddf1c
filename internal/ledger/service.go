package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// ApplyParams describes one signed balance mutation.
type ApplyParams struct {
	UserID      string
	CoinType    domain.CoinType
	Amount      int64
	SourceType  domain.TransactionSource
	SourceID    *string
	Description string
}

// Service defines the interface for ledger operations. Every feature that
// changes a balance settles through Apply; there is no other write path to
// coin balances.
type Service interface {
	// Apply mutates the balance and records the transaction inside the
	// caller's transaction scope. Returns the new balance for the coin.
	Apply(ctx context.Context, tx repository.Tx, params ApplyParams) (int64, error)
	// ApplyStandalone runs Apply in its own transaction.
	ApplyStandalone(ctx context.Context, params ApplyParams) (int64, error)
	GetBalance(ctx context.Context, userID string) (*domain.CoinBalance, error)
	GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.CoinTransaction, error)
}

type service struct {
	repo repository.Ledger
	now  func() time.Time
}

// NewService creates a new ledger service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Apply(ctx context.Context, tx repository.Tx, params ApplyParams) (int64, error) {
	log := logger.FromContext(ctx)

	if params.Amount == 0 {
		return 0, fmt.Errorf("%w: zero amount", domain.ErrInvalidInput)
	}

	balance, err := tx.GetCoinBalanceForUpdate(ctx, params.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to lock balance: %w", err)
	}

	newBalance := balance.Balance(params.CoinType) + params.Amount
	if newBalance < 0 {
		log.Info("Ledger entry rejected",
			"user_id", params.UserID,
			"coin", params.CoinType,
			"amount", params.Amount,
			"balance", balance.Balance(params.CoinType))
		return 0, domain.ErrInsufficientFunds
	}

	switch params.CoinType {
	case domain.CoinMC:
		balance.MCBalance = newBalance
		if params.Amount > 0 {
			balance.MCLifetime += params.Amount
		}
	default:
		balance.SCBalance = newBalance
		if params.Amount > 0 {
			balance.SCLifetime += params.Amount
		}
	}

	if err := tx.UpdateCoinBalance(ctx, balance); err != nil {
		return 0, fmt.Errorf("failed to update balance: %w", err)
	}

	txn := &domain.CoinTransaction{
		ID:           uuid.New(),
		UserID:       params.UserID,
		CoinType:     params.CoinType,
		Amount:       params.Amount,
		BalanceAfter: newBalance,
		SourceType:   params.SourceType,
		SourceID:     params.SourceID,
		Description:  params.Description,
		CreatedAt:    s.now().UTC(),
	}
	if err := tx.InsertCoinTransaction(ctx, txn); err != nil {
		return 0, fmt.Errorf("failed to record transaction: %w", err)
	}

	log.Info("Ledger entry applied",
		"user_id", params.UserID,
		"coin", params.CoinType,
		"amount", params.Amount,
		"balance_after", newBalance,
		"source", params.SourceType)
	return newBalance, nil
}

func (s *service) ApplyStandalone(ctx context.Context, params ApplyParams) (int64, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	newBalance, err := s.Apply(ctx, tx, params)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return newBalance, nil
}

func (s *service) GetBalance(ctx context.Context, userID string) (*domain.CoinBalance, error) {
	balance, err := s.repo.GetCoinBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}
	return balance, nil
}

func (s *service) GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.CoinTransaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	txns, err := s.repo.GetTransactions(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return txns, nil
}
