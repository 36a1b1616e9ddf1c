package reward

import (
	"math"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Input carries everything the reward formula depends on. All fields are
// plain values so identical inputs always produce identical output.
type Input struct {
	DistanceM            float64
	BaseRatePer100m      float64
	TransportMultiplier  float64
	StrideMultiplier     float64
	LocalHour            int
	Weather              domain.WeatherCondition
	MultiTransport       bool
	MultiTransportFactor float64
	EquipmentBonusPct    float64
	Condition            int64
	MaxCondition         int64
	FlatBonusSC          int64
	BoosterMultiplier    float64
}

// ConditionMultiplier linearly degrades rewards with lost condition,
// floored at MinConditionMultiplier.
func ConditionMultiplier(condition, maxCondition int64) float64 {
	if maxCondition <= 0 {
		return MinConditionMultiplier
	}
	m := float64(condition) / float64(maxCondition)
	if m < MinConditionMultiplier {
		return MinConditionMultiplier
	}
	if m > 1.0 {
		return 1.0
	}
	return m
}

// Compute runs the reward formula and returns the full per-factor
// breakdown. The booster multiplier is applied as a final scalar on top
// of the core stack and reported separately. Compute never touches the
// daily cap; callers clip the result with ApplyDailyCap.
func Compute(in Input) domain.RewardBreakdown {
	multiFactor := 1.0
	if in.MultiTransport {
		multiFactor = in.MultiTransportFactor
	}

	seg := SegmentForHour(in.LocalHour)
	timeMult := defaultTimeMultipliers[seg]
	weatherMult := WeatherMultiplier(in.Weather)
	condMult := ConditionMultiplier(in.Condition, in.MaxCondition)

	baseSC := (in.DistanceM / BaseRateDistanceUnitM) * in.BaseRatePer100m

	total := math.Floor(baseSC *
		in.TransportMultiplier *
		in.StrideMultiplier *
		timeMult *
		weatherMult *
		multiFactor *
		(1 + in.EquipmentBonusPct/100) *
		condMult)
	computed := int64(total) + in.FlatBonusSC

	booster := in.BoosterMultiplier
	if booster > 1.0 {
		computed = int64(math.Floor(float64(computed) * booster))
	} else {
		booster = 1.0
	}

	return domain.RewardBreakdown{
		DistanceM:            in.DistanceM,
		BaseRatePer100m:      in.BaseRatePer100m,
		BaseSC:               baseSC,
		TransportMultiplier:  in.TransportMultiplier,
		StrideMultiplier:     in.StrideMultiplier,
		TimeSegment:          string(seg),
		TimeMultiplier:       timeMult,
		Weather:              string(in.Weather),
		WeatherMultiplier:    weatherMult,
		MultiTransport:       in.MultiTransport,
		MultiTransportFactor: multiFactor,
		EquipmentBonusPct:    in.EquipmentBonusPct,
		ConditionMultiplier:  condMult,
		FlatBonusSC:          in.FlatBonusSC,
		BoosterMultiplier:    booster,
		ComputedSC:           computed,
		CreditedSC:           computed,
	}
}

// ApplyDailyCap clips the credited amount so that the user's SC earned
// within their current local day never exceeds the Stride tier cap. The
// breakdown keeps reporting the uncapped computed value.
func ApplyDailyCap(b domain.RewardBreakdown, earnedToday, dailyCap int64) domain.RewardBreakdown {
	b.DailyCapSC = dailyCap
	remaining := dailyCap - earnedToday
	if remaining < 0 {
		remaining = 0
	}
	if b.ComputedSC > remaining {
		b.CreditedSC = remaining
		b.CapApplied = true
	} else {
		b.CreditedSC = b.ComputedSC
		b.CapApplied = false
	}
	return b
}
