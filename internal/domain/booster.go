package domain

import "time"

// BoosterCode is a redeemable code granting a time-boxed reward multiplier.
// MaxRedemptions of 0 means unlimited.
type BoosterCode struct {
	Code           string  `json:"code"`
	Multiplier     float64 `json:"multiplier"`
	DurationS      int64   `json:"duration_s"`
	MaxRedemptions int     `json:"max_redemptions"`
	RedeemedCount  int     `json:"redeemed_count"`
}

// Booster is an active multiplier on a user's rewards. It sits outside the
// core multiplier stack and is applied as a final scalar.
type Booster struct {
	UserID     string    `json:"user_id"`
	Code       string    `json:"code"`
	Multiplier float64   `json:"multiplier"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ActiveAt reports whether the booster is live at the given instant
func (b *Booster) ActiveAt(t time.Time) bool {
	return b != nil && t.Before(b.ExpiresAt)
}
