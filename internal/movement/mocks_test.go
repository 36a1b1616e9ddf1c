package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// MockRepository implements [repository.Movement].
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetMovement(ctx context.Context, id uuid.UUID) (*domain.Movement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockRepository) GetActiveMovement(ctx context.Context, userID string) (*domain.Movement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockRepository) GetStrideState(ctx context.Context, userID string) (*domain.StrideState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StrideState), args.Error(1)
}

func (m *MockRepository) BeginMovementTx(ctx context.Context) (repository.MovementTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.MovementTx), args.Error(1)
}

// MockTx implements [repository.MovementTx].
type MockTx struct {
	mock.Mock
}

func (m *MockTx) EnsureUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockTx) CancelActiveMovements(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockTx) CreateMovement(ctx context.Context, movement *domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockTx) GetMovementForUpdate(ctx context.Context, id uuid.UUID) (*domain.Movement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockTx) CompleteMovement(ctx context.Context, movement *domain.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockTx) CancelMovement(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return int64(args.Int(0)), args.Error(1)
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

func (m *MockTx) CreateCharacterState(ctx context.Context, state *domain.CharacterState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockTx) UpdateCharacterState(ctx context.Context, state *domain.CharacterState) error {
	args := m.Called(ctx, state)
	return args.Error(0)
}

func (m *MockTx) GetEquippedCosmetics(ctx context.Context, userID string) ([]domain.EquippedCosmetic, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EquippedCosmetic), args.Error(1)
}

func (m *MockTx) GetActiveBooster(ctx context.Context, userID string, now time.Time) (*domain.Booster, error) {
	args := m.Called(ctx, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booster), args.Error(1)
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
