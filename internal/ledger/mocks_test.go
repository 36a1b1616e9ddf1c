package ledger

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// MockRepository implements [repository.Ledger].
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCoinBalance(ctx context.Context, userID string) (*domain.CoinBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoinBalance), args.Error(1)
}

func (m *MockRepository) GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.CoinTransaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoinTransaction), args.Error(1)
}

func (m *MockRepository) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

// MockTx implements [repository.Tx].
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetCoinBalanceForUpdate(ctx context.Context, userID string) (*domain.CoinBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoinBalance), args.Error(1)
}

func (m *MockTx) UpdateCoinBalance(ctx context.Context, balance *domain.CoinBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockTx) InsertCoinTransaction(ctx context.Context, txn *domain.CoinTransaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
