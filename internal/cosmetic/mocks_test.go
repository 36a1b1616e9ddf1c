package cosmetic

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// MockRepository implements [repository.Cosmetic].
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetTemplates(ctx context.Context) ([]domain.CosmeticTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CosmeticTemplate), args.Error(1)
}

func (m *MockRepository) GetTemplateByKey(ctx context.Context, key string) (*domain.CosmeticTemplate, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CosmeticTemplate), args.Error(1)
}

func (m *MockRepository) GetUserInstances(ctx context.Context, userID string) ([]domain.CosmeticInstance, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CosmeticInstance), args.Error(1)
}

func (m *MockRepository) GetEquippedCosmetics(ctx context.Context, userID string) ([]domain.EquippedCosmetic, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquippedCosmetic), args.Error(1)
}

func (m *MockRepository) BeginCosmeticTx(ctx context.Context) (repository.CosmeticTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CosmeticTx), args.Error(1)
}

// MockTx implements [repository.CosmeticTx].
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetTemplateByKey(ctx context.Context, key string) (*domain.CosmeticTemplate, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CosmeticTemplate), args.Error(1)
}

func (m *MockTx) ReserveMintNumber(ctx context.Context, templateID int) (int, error) {
	args := m.Called(ctx, templateID)
	return args.Int(0), args.Error(1)
}

func (m *MockTx) CreateInstance(ctx context.Context, instance *domain.CosmeticInstance) error {
	args := m.Called(ctx, instance)
	return args.Error(0)
}

func (m *MockTx) GetInstanceForUpdate(ctx context.Context, id uuid.UUID) (*domain.CosmeticInstance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CosmeticInstance), args.Error(1)
}

func (m *MockTx) UpdateInstance(ctx context.Context, instance *domain.CosmeticInstance) error {
	args := m.Called(ctx, instance)
	return args.Error(0)
}

func (m *MockTx) GetSlotOccupant(ctx context.Context, userID, slot string) (*domain.CosmeticInstance, error) {
	args := m.Called(ctx, userID, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CosmeticInstance), args.Error(1)
}

func (m *MockTx) GetCharacterState(ctx context.Context, userID string) (*domain.CharacterState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterState), args.Error(1)
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
