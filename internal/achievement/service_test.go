package achievement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/ledger"
)

var catalogue = []domain.Achievement{
	{
		Code:         "first_10k",
		Title:        "First 10K",
		Criteria:     domain.CriteriaTotalDistanceM,
		Threshold:    10000,
		RewardCoin:   domain.CoinMC,
		RewardAmount: 100,
	},
	{
		Code:         "week_streak",
		Title:        "Week Streak",
		Criteria:     domain.CriteriaStreakDays,
		Threshold:    7,
		RewardCoin:   domain.CoinSC,
		RewardAmount: 200,
	},
}

func TestList_ReportsProgressAndClaims(t *testing.T) {
	repo := new(MockRepository)
	repo.On("GetUserClaims", mock.Anything, "user1").Return([]domain.AchievementClaim{
		{UserID: "user1", Code: "first_10k"},
	}, nil)
	repo.On("GetStrideState", mock.Anything, "user1").Return(&domain.StrideState{
		UserID: "user1", TotalDistanceM: 12000, LongestStreakDays: 3,
	}, nil)
	repo.On("GetCoinBalance", mock.Anything, "user1").Return(&domain.CoinBalance{UserID: "user1"}, nil)

	svc := NewService(repo, new(MockLedger), catalogue)
	progress, err := svc.List(context.Background(), "user1")

	require.NoError(t, err)
	require.Len(t, progress, 2)
	assert.True(t, progress[0].Met)
	assert.True(t, progress[0].Claimed)
	assert.False(t, progress[1].Met)
	assert.False(t, progress[1].Claimed)
	assert.Equal(t, 3.0, progress[1].Current)
}

func TestClaim_CreditsReward(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	repo.On("BeginAchievementTx", mock.Anything).Return(tx, nil)
	tx.On("GetStrideState", mock.Anything, "user1").Return(&domain.StrideState{
		UserID: "user1", TotalDistanceM: 15000,
	}, nil)
	tx.On("GetCoinBalanceForUpdate", mock.Anything, "user1").Return(&domain.CoinBalance{UserID: "user1"}, nil)
	tx.On("InsertClaim", mock.Anything, mock.MatchedBy(func(c *domain.AchievementClaim) bool {
		return c.UserID == "user1" && c.Code == "first_10k"
	})).Return(nil)
	tx.On("Commit", mock.Anything).Return(nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	led := new(MockLedger)
	led.On("Apply", mock.Anything, tx, mock.MatchedBy(func(p ledger.ApplyParams) bool {
		return p.Amount == 100 && p.CoinType == domain.CoinMC && p.SourceType == domain.SourceAchievement
	})).Return(int64(100), nil)

	svc := NewService(repo, led, catalogue)
	claim, err := svc.Claim(context.Background(), "user1", "first_10k")

	require.NoError(t, err)
	assert.Equal(t, "first_10k", claim.Code)
	led.AssertExpectations(t)
}

func TestClaim_CriteriaNotMet(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	repo.On("BeginAchievementTx", mock.Anything).Return(tx, nil)
	tx.On("GetStrideState", mock.Anything, "user1").Return(&domain.StrideState{
		UserID: "user1", TotalDistanceM: 500,
	}, nil)
	tx.On("GetCoinBalanceForUpdate", mock.Anything, "user1").Return(&domain.CoinBalance{UserID: "user1"}, nil)
	tx.On("Rollback", mock.Anything).Return(nil)

	svc := NewService(repo, new(MockLedger), catalogue)
	_, err := svc.Claim(context.Background(), "user1", "first_10k")

	assert.ErrorIs(t, err, domain.ErrAchievementNotMet)
	tx.AssertNotCalled(t, "InsertClaim", mock.Anything, mock.Anything)
}

func TestClaim_DuplicateMapsToAlreadyClaimed(t *testing.T) {
	repo := new(MockRepository)
	tx := new(MockTx)
	repo.On("BeginAchievementTx", mock.Anything).Return(tx, nil)
	tx.On("GetStrideState", mock.Anything, "user1").Return(&domain.StrideState{
		UserID: "user1", TotalDistanceM: 15000,
	}, nil)
	tx.On("GetCoinBalanceForUpdate", mock.Anything, "user1").Return(&domain.CoinBalance{UserID: "user1"}, nil)
	tx.On("InsertClaim", mock.Anything, mock.Anything).Return(domain.ErrAlreadyClaimed)
	tx.On("Rollback", mock.Anything).Return(nil)

	led := new(MockLedger)
	svc := NewService(repo, led, catalogue)
	_, err := svc.Claim(context.Background(), "user1", "first_10k")

	assert.ErrorIs(t, err, domain.ErrAlreadyClaimed)
	led.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything, mock.Anything)
	tx.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestClaim_UnknownCode(t *testing.T) {
	svc := NewService(new(MockRepository), new(MockLedger), catalogue)
	_, err := svc.Claim(context.Background(), "user1", "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
