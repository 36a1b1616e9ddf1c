package game

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// MockRepository implements [repository.Game].
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetSpins(ctx context.Context, userID string, limit int) ([]domain.RouletteSpin, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RouletteSpin), args.Error(1)
}

func (m *MockRepository) BeginGameTx(ctx context.Context) (repository.GameTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.GameTx), args.Error(1)
}

// MockTx implements [repository.GameTx].
type MockTx struct {
	mock.Mock
}

func (m *MockTx) RecordSpin(ctx context.Context, spin *domain.RouletteSpin) error {
	args := m.Called(ctx, spin)
	return args.Error(0)
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

// MockLedger implements [ledger.Service].
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) Apply(ctx context.Context, tx repository.Tx, params ledger.ApplyParams) (int64, error) {
	args := m.Called(ctx, tx, params)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) ApplyStandalone(ctx context.Context, params ledger.ApplyParams) (int64, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedger) GetBalance(ctx context.Context, userID string) (*domain.CoinBalance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CoinBalance), args.Error(1)
}

func (m *MockLedger) GetTransactions(ctx context.Context, userID string, limit, offset int) ([]domain.CoinTransaction, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CoinTransaction), args.Error(1)
}
