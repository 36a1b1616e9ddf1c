package transport

import (
	"fmt"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// RewardClass groups transport modes by how the user powers them
type RewardClass string

const (
	ClassBodyPowered     RewardClass = "body_powered"
	ClassVehicleAssisted RewardClass = "vehicle_assisted"
	ClassPublicTransit   RewardClass = "public_transit"
)

// MultiTransportMultiplier is the bonus applied once per movement when it
// contains segments of more than one distinct mode.
const MultiTransportMultiplier = 1.1

// Mode is the configured profile of a declared transport mode
type Mode struct {
	Key             string      `json:"key"`
	Name            string      `json:"name"`
	RewardClass     RewardClass `json:"reward_class"`
	SpeedMinKmh     float64     `json:"speed_min_kmh"`
	SpeedMaxKmh     float64     `json:"speed_max_kmh"`
	BaseRatePer100m float64     `json:"base_rate_per_100m"`
	Multiplier      float64     `json:"multiplier"`
}

// InBand reports whether an average speed falls within the mode's
// plausibility band.
func (m Mode) InBand(avgSpeedKmh float64) bool {
	return avgSpeedKmh >= m.SpeedMinKmh && avgSpeedKmh <= m.SpeedMaxKmh
}

// SegmentClass is the classification of a single segment
type SegmentClass struct {
	Mode        Mode
	SpeedInBand bool
}

// Classification aggregates classifier output over a whole movement.
// ImplausibleSegments is diagnostic only: out-of-band speed is tolerated
// rather than rejected, because consumer GPS fluctuates locally.
type Classification struct {
	Segments            []SegmentClass
	DistinctModes       int
	MultiTransport      bool
	ImplausibleSegments int
	// WeightedBaseRate is the distance-weighted base rate across segments,
	// used when the caller needs a single rate for the whole movement.
	WeightedBaseRate   float64
	WeightedMultiplier float64
	TotalDistanceM     float64
}

// MultiTransportFactor returns the bonus multiplier to apply to the
// movement: MultiTransportMultiplier when more than one distinct mode is
// present, 1.0 otherwise.
func (c Classification) MultiTransportFactor() float64 {
	if c.MultiTransport {
		return MultiTransportMultiplier
	}
	return 1.0
}

// Classifier maps declared transport modes to their configured profiles
type Classifier struct {
	modes map[string]Mode
}

// NewClassifier builds a classifier from a mode list
func NewClassifier(modes []Mode) *Classifier {
	m := make(map[string]Mode, len(modes))
	for _, mode := range modes {
		m[mode.Key] = mode
	}
	return &Classifier{modes: m}
}

// Mode looks up a mode by key
func (c *Classifier) Mode(key string) (Mode, error) {
	mode, ok := c.modes[key]
	if !ok {
		return Mode{}, fmt.Errorf("%w: %s", domain.ErrUnknownTransportMode, key)
	}
	return mode, nil
}

// Known reports whether the mode key is configured
func (c *Classifier) Known(key string) bool {
	_, ok := c.modes[key]
	return ok
}

// Classify evaluates a single validated segment against its declared mode
func (c *Classifier) Classify(seg domain.MovementSegment) (SegmentClass, error) {
	mode, err := c.Mode(seg.TransportMode)
	if err != nil {
		return SegmentClass{}, err
	}
	return SegmentClass{
		Mode:        mode,
		SpeedInBand: mode.InBand(seg.AvgSpeedKmh),
	}, nil
}

// ClassifyAll classifies every segment of a movement and derives the
// movement-level aggregate: distinct mode count, the multi-transport flag,
// and distance-weighted base rate and multiplier.
func (c *Classifier) ClassifyAll(segments []domain.MovementSegment) (Classification, error) {
	result := Classification{}
	seen := make(map[string]bool)

	for _, seg := range segments {
		sc, err := c.Classify(seg)
		if err != nil {
			return Classification{}, err
		}
		if !sc.SpeedInBand {
			result.ImplausibleSegments++
		}
		if !seen[sc.Mode.Key] {
			seen[sc.Mode.Key] = true
			result.DistinctModes++
		}
		result.Segments = append(result.Segments, sc)
		result.WeightedBaseRate += sc.Mode.BaseRatePer100m * seg.DistanceM
		result.WeightedMultiplier += sc.Mode.Multiplier * seg.DistanceM
		result.TotalDistanceM += seg.DistanceM
	}

	if result.TotalDistanceM > 0 {
		result.WeightedBaseRate /= result.TotalDistanceM
		result.WeightedMultiplier /= result.TotalDistanceM
	}
	result.MultiTransport = result.DistinctModes > 1
	return result, nil
}
