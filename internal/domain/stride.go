package domain

import "time"

// StrideState tracks a user's consecutive-active-day streak. It is mutated
// at most once per user per local day, on the first qualifying movement.
// SCEarnedToday/EarnedOnDate track the running daily-cap window; they reset
// whenever a movement completes on a new local day.
type StrideState struct {
	UserID            string     `json:"user_id"`
	CurrentStreakDays int        `json:"current_streak_days"`
	LongestStreakDays int        `json:"longest_streak_days"`
	ShieldCount       int        `json:"shield_count"`
	LastActiveDate    *time.Time `json:"last_active_date,omitempty"`
	TotalDistanceM    float64    `json:"total_distance_m"`
	SCEarnedToday     int64      `json:"sc_earned_today"`
	EarnedOnDate      *time.Time `json:"earned_on_date,omitempty"`
}

// StrideStatus is the read model returned to clients: stored state plus the
// derived tier.
type StrideStatus struct {
	State         StrideState `json:"state"`
	Level         int         `json:"level"`
	Title         string      `json:"title"`
	Multiplier    float64     `json:"multiplier"`
	DailyCapSC    int64       `json:"daily_cap_sc"`
	DaysUntilNext *int        `json:"days_until_next,omitempty"`
}
