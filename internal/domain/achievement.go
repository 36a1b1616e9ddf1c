package domain

import "time"

// AchievementCriteria identifies what an achievement measures
type AchievementCriteria string

const (
	CriteriaTotalDistanceM AchievementCriteria = "total_distance_m"
	CriteriaStreakDays     AchievementCriteria = "streak_days"
	CriteriaLifetimeSC     AchievementCriteria = "lifetime_sc"
)

// Achievement is a claimable reward definition. Claims are one-shot per
// user and paid through the ledger.
type Achievement struct {
	Code         string              `json:"code"`
	Title        string              `json:"title"`
	Description  string              `json:"description"`
	Criteria     AchievementCriteria `json:"criteria"`
	Threshold    float64             `json:"threshold"`
	RewardCoin   CoinType            `json:"reward_coin"`
	RewardAmount int64               `json:"reward_amount"`
}

// AchievementClaim records that a user has claimed an achievement
type AchievementClaim struct {
	UserID    string    `json:"user_id"`
	Code      string    `json:"code"`
	ClaimedAt time.Time `json:"claimed_at"`
}
