package domain

import (
	"time"

	"github.com/google/uuid"
)

// RouletteSlot is one wheel entry. Weight is a relative share used by
// the weighted outcome resolver.
type RouletteSlot struct {
	Label        string   `json:"label"`
	Weight       int      `json:"weight"`
	RewardCoin   CoinType `json:"reward_coin"`
	RewardAmount int64    `json:"reward_amount"`
}

// RouletteSpin records one settled spin, including the cost debited and
// the reward credited in the same transaction.
type RouletteSpin struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"user_id"`
	SlotLabel    string    `json:"slot_label"`
	CostSC       int64     `json:"cost_sc"`
	RewardCoin   CoinType  `json:"reward_coin"`
	RewardAmount int64     `json:"reward_amount"`
	CreatedAt    time.Time `json:"created_at"`
}
