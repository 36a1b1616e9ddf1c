package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoreItemEffect identifies what a purchased item does
type StoreItemEffect string

const (
	// EffectNone is a plain collectible with no mechanical effect
	EffectNone StoreItemEffect = ""
	// EffectStrideShield banks one streak shield
	EffectStrideShield StoreItemEffect = "stride_shield"
	// EffectFeed restores condition by the effect value
	EffectFeed StoreItemEffect = "feed"
)

// StoreItem is a redeemable store entry. Stock of -1 means unlimited;
// otherwise the stock counter is decremented atomically with the purchase.
type StoreItem struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	CoinType    CoinType        `json:"coin_type"`
	Price       int64           `json:"price"`
	Stock       int             `json:"stock"`
	Effect      StoreItemEffect `json:"effect,omitempty"`
	EffectValue int             `json:"effect_value,omitempty"`
}

// StorePurchase is an immutable record of a completed purchase.
type StorePurchase struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	ItemKey   string    `json:"item_key"`
	CoinType  CoinType  `json:"coin_type"`
	Price     int64     `json:"price"`
	CreatedAt time.Time `json:"created_at"`
}
