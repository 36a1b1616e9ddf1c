package store

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// MockRepository implements [repository.Store].
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListItems(ctx context.Context) ([]domain.StoreItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoreItem), args.Error(1)
}

func (m *MockRepository) GetItemByKey(ctx context.Context, key string) (*domain.StoreItem, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreItem), args.Error(1)
}

func (m *MockRepository) BeginStoreTx(ctx context.Context) (repository.StoreTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.StoreTx), args.Error(1)
}

// MockTx implements [repository.StoreTx].
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetItemByKey(ctx context.Context, key string) (*domain.StoreItem, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoreItem), args.Error(1)
}

func (m *MockTx) DecrementStock(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockTx) RecordPurchase(ctx context.Context, purchase *domain.StorePurchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockTx) GetStrideStateForUpdate(ctx context.Context, userID string) (*domain.StrideState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StrideState), args.Error(1)
}

func (m *MockTx) UpsertStrideState(ctx context.Context, state *domain.StrideState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockTx) GetCharacterStateForUpdate(ctx context.Context, userID string) (*domain.CharacterState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterState), args.Error(1)
}

func (m *MockTx) UpdateCharacterState(ctx context.Context, state *domain.CharacterState) error {
	args := m.Called(ctx, state)
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
