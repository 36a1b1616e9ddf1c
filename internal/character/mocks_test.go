package character

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/repository"
)

// MockRepository implements [repository.Character].
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetCharacterState(ctx context.Context, userID string) (*domain.CharacterState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CharacterState), args.Error(1)
}

func (m *MockRepository) BeginCharacterTx(ctx context.Context) (repository.CharacterTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.CharacterTx), args.Error(1)
}

// MockTx implements [repository.CharacterTx].
type MockTx struct {
	mock.Mock
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
