package stride

import (
	"time"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Tier is one level of the Stride streak ladder
type Tier struct {
	Level      int     `json:"level"`
	Title      string  `json:"title"`
	MinDays    int     `json:"min_days"`
	Multiplier float64 `json:"multiplier"`
	DailyCapSC int64   `json:"daily_cap_sc"`
}

// DefaultTiers returns the fixed ascending streak ladder
func DefaultTiers() []Tier {
	return []Tier{
		{Level: 1, Title: "Stroller", MinDays: 0, Multiplier: 1.0, DailyCapSC: 300},
		{Level: 2, Title: "Walker", MinDays: 3, Multiplier: 1.05, DailyCapSC: 400},
		{Level: 3, Title: "Strider", MinDays: 7, Multiplier: 1.1, DailyCapSC: 500},
		{Level: 4, Title: "Pacer", MinDays: 14, Multiplier: 1.2, DailyCapSC: 650},
		{Level: 5, Title: "Trailblazer", MinDays: 30, Multiplier: 1.35, DailyCapSC: 800},
		{Level: 6, Title: "Roadrunner", MinDays: 60, Multiplier: 1.5, DailyCapSC: 1000},
		{Level: 7, Title: "Pathfinder", MinDays: 90, Multiplier: 1.75, DailyCapSC: 1500},
	}
}

// Engine evaluates streak days against the tier ladder. All methods are
// pure functions of their inputs.
type Engine struct {
	tiers []Tier
}

// NewEngine creates an engine over an ascending tier table
func NewEngine(tiers []Tier) *Engine {
	return &Engine{tiers: tiers}
}

// NewDefaultEngine creates an engine with the built-in ladder
func NewDefaultEngine() *Engine {
	return NewEngine(DefaultTiers())
}

// LevelOf returns the tier for the given streak-day count
func (e *Engine) LevelOf(streakDays int) Tier {
	current := e.tiers[0]
	for _, t := range e.tiers {
		if streakDays >= t.MinDays {
			current = t
		}
	}
	return current
}

// DaysUntilNext returns the days remaining to the next tier. The second
// return is false at the maximum tier.
func (e *Engine) DaysUntilNext(streakDays int) (int, bool) {
	for _, t := range e.tiers {
		if streakDays < t.MinDays {
			return t.MinDays - streakDays, true
		}
	}
	return 0, false
}

// AdvanceOutcome describes what the daily update did to a streak
type AdvanceOutcome string

const (
	// OutcomeAlreadyCounted means the user already had a qualifying
	// movement today; the state is unchanged.
	OutcomeAlreadyCounted AdvanceOutcome = "already_counted"
	OutcomeStarted        AdvanceOutcome = "started"
	OutcomeExtended       AdvanceOutcome = "extended"
	OutcomeShielded       AdvanceOutcome = "shielded"
	OutcomeReset          AdvanceOutcome = "reset"
)

// Advance applies the once-per-day streak update rule for a qualifying
// movement on the given user-local calendar day.
//
// Active yesterday extends the streak. A single missed day is absorbed by
// consuming one shield; a gap beyond that resets the streak to 1. The
// longest streak is a running maximum and never decreases.
func (e *Engine) Advance(state domain.StrideState, localDay time.Time) (domain.StrideState, AdvanceOutcome) {
	day := truncateToDay(localDay)
	outcome := OutcomeStarted

	switch {
	case state.LastActiveDate == nil:
		state.CurrentStreakDays = 1

	default:
		gap := daysBetween(truncateToDay(*state.LastActiveDate), day)
		switch {
		case gap <= 0:
			return state, OutcomeAlreadyCounted
		case gap == 1:
			state.CurrentStreakDays++
			outcome = OutcomeExtended
		case gap == 2 && state.ShieldCount > 0:
			state.ShieldCount--
			state.CurrentStreakDays++
			outcome = OutcomeShielded
		default:
			state.CurrentStreakDays = 1
			outcome = OutcomeReset
		}
	}

	state.LastActiveDate = &day
	if state.CurrentStreakDays > state.LongestStreakDays {
		state.LongestStreakDays = state.CurrentStreakDays
	}
	return state, outcome
}

// Status derives the full read model for a stride state
func (e *Engine) Status(state domain.StrideState) domain.StrideStatus {
	tier := e.LevelOf(state.CurrentStreakDays)
	status := domain.StrideStatus{
		State:      state,
		Level:      tier.Level,
		Title:      tier.Title,
		Multiplier: tier.Multiplier,
		DailyCapSC: tier.DailyCapSC,
	}
	if days, ok := e.DaysUntilNext(state.CurrentStreakDays); ok {
		status.DaysUntilNext = &days
	}
	return status
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the whole calendar days from a to b
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
