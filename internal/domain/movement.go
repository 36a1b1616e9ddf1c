package domain

import (
	"time"

	"github.com/google/uuid"
)

// MovementStatus represents the lifecycle state of a movement session
type MovementStatus string

const (
	MovementStatusActive    MovementStatus = "ACTIVE"
	MovementStatusCompleted MovementStatus = "COMPLETED"
	MovementStatusCancelled MovementStatus = "CANCELLED"
)

// GpsPoint is a single raw location sample from the client.
// Points are ephemeral: they are folded into segment aggregates and never
// persisted individually.
type GpsPoint struct {
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	TimestampMs int64    `json:"timestamp_ms"`
	AccuracyM   *float64 `json:"accuracy_m,omitempty"`
	SpeedMps    *float64 `json:"speed_mps,omitempty"`
}

// MovementSegment is one contiguous stretch of a single transport mode
// within a movement. Distance and duration are validated aggregates.
type MovementSegment struct {
	TransportMode string  `json:"transport_mode"`
	DistanceM     float64 `json:"distance_m"`
	DurationS     float64 `json:"duration_s"`
	AvgSpeedKmh   float64 `json:"avg_speed_kmh"`
	AnomalyCount  int     `json:"anomaly_count"`
	SpeedInBand   bool    `json:"speed_in_band"`
}

// Movement owns an ordered sequence of segments. At most one movement per
// user is ACTIVE at any time.
type Movement struct {
	ID              uuid.UUID         `json:"id"`
	UserID          string            `json:"user_id"`
	Status          MovementStatus    `json:"status"`
	TransportMode   string            `json:"transport_mode"`
	StartedAt       time.Time         `json:"started_at"`
	CompletedAt     *time.Time        `json:"completed_at,omitempty"`
	TotalDistanceM  float64           `json:"total_distance_m"`
	TotalDurationS  float64           `json:"total_duration_s"`
	Segments        []MovementSegment `json:"segments,omitempty"`
	RewardBreakdown *RewardBreakdown  `json:"reward_breakdown,omitempty"`
}

// RewardBreakdown is the persisted per-factor derivation of a movement
// reward. Support personnel and the user must be able to reconstruct
// exactly how a reward was computed from this record alone.
type RewardBreakdown struct {
	DistanceM            float64 `json:"distance_m"`
	BaseRatePer100m      float64 `json:"base_rate_per_100m"`
	BaseSC               float64 `json:"base_sc"`
	TransportMultiplier  float64 `json:"transport_multiplier"`
	StrideMultiplier     float64 `json:"stride_multiplier"`
	TimeSegment          string  `json:"time_segment"`
	TimeMultiplier       float64 `json:"time_multiplier"`
	Weather              string  `json:"weather"`
	WeatherMultiplier    float64 `json:"weather_multiplier"`
	MultiTransport       bool    `json:"multi_transport"`
	MultiTransportFactor float64 `json:"multi_transport_factor"`
	EquipmentBonusPct    float64 `json:"equipment_bonus_pct"`
	ConditionMultiplier  float64 `json:"condition_multiplier"`
	FlatBonusSC          int64   `json:"flat_bonus_sc"`
	BoosterMultiplier    float64 `json:"booster_multiplier"`
	// ComputedSC is the uncapped result of the reward formula. CreditedSC is
	// what the ledger actually credited after the daily cap was applied.
	ComputedSC int64 `json:"computed_sc"`
	CreditedSC int64 `json:"credited_sc"`
	DailyCapSC int64 `json:"daily_cap_sc"`
	CapApplied bool  `json:"cap_applied"`
}

// WeatherCondition is the small enum of weather states that scale rewards.
type WeatherCondition string

const (
	WeatherClear       WeatherCondition = "clear"
	WeatherCloudy      WeatherCondition = "cloudy"
	WeatherRain        WeatherCondition = "rain"
	WeatherSnow        WeatherCondition = "snow"
	WeatherExtremeHeat WeatherCondition = "extreme_heat"
	WeatherExtremeCold WeatherCondition = "extreme_cold"
)
