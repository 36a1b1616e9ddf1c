package reward

// DaySegment keys the time-of-day multiplier by the user's local hour.
type DaySegment string

const (
	SegmentDawn           DaySegment = "dawn"
	SegmentCommute        DaySegment = "commute"
	SegmentMorning        DaySegment = "morning"
	SegmentLunch          DaySegment = "lunch"
	SegmentAfternoon      DaySegment = "afternoon"
	SegmentCommuteEvening DaySegment = "commute_evening"
	SegmentEvening        DaySegment = "evening"
	SegmentNight          DaySegment = "night"
)

// defaultTimeMultipliers favours commute windows and dawn activity and
// discounts late-night movement.
var defaultTimeMultipliers = map[DaySegment]float64{
	SegmentDawn:           1.2,
	SegmentCommute:        1.15,
	SegmentMorning:        1.0,
	SegmentLunch:          1.05,
	SegmentAfternoon:      1.0,
	SegmentCommuteEvening: 1.15,
	SegmentEvening:        1.0,
	SegmentNight:          0.8,
}

// SegmentForHour maps a local hour (0-23) onto its day segment.
func SegmentForHour(hour int) DaySegment {
	switch {
	case hour >= 5 && hour < 7:
		return SegmentDawn
	case hour >= 7 && hour < 9:
		return SegmentCommute
	case hour >= 9 && hour < 12:
		return SegmentMorning
	case hour >= 12 && hour < 14:
		return SegmentLunch
	case hour >= 14 && hour < 17:
		return SegmentAfternoon
	case hour >= 17 && hour < 19:
		return SegmentCommuteEvening
	case hour >= 19 && hour < 22:
		return SegmentEvening
	default:
		return SegmentNight
	}
}

// TimeMultiplier returns the multiplier for a local hour.
func TimeMultiplier(hour int) float64 {
	return defaultTimeMultipliers[SegmentForHour(hour)]
}
