package geo

import (
	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Validation thresholds. Consumer GPS is noisy: samples beyond the accuracy
// cutoff are dropped entirely, and pairs implying a teleport jump keep their
// points but contribute no distance.
const (
	DefaultMaxAccuracyM = 50.0
	DefaultMaxJumpM     = 500.0
)

// Options configure track validation
type Options struct {
	MaxAccuracyM float64
	MaxJumpM     float64
}

// DefaultOptions returns the standard validation thresholds
func DefaultOptions() Options {
	return Options{
		MaxAccuracyM: DefaultMaxAccuracyM,
		MaxJumpM:     DefaultMaxJumpM,
	}
}

// Anomaly records a consecutive-point pair whose distance increment was
// excluded as physically implausible. The points themselves are kept for
// audit.
type Anomaly struct {
	FromIndex int     `json:"from_index"`
	ToIndex   int     `json:"to_index"`
	DistanceM float64 `json:"distance_m"`
	ElapsedS  float64 `json:"elapsed_s"`
}

// TrackSummary is the validated aggregate of a raw point sequence
type TrackSummary struct {
	DistanceM      float64
	DurationS      float64
	AcceptedPoints int
	Anomalies      []Anomaly
}

// ValidateTrack folds an ordered sequence of raw GPS samples into a
// validated distance and duration.
//
// Points whose reported accuracy exceeds the cutoff are discarded before
// they affect anything. Between consecutive accepted points the haversine
// distance is accumulated, except when it exceeds the jump threshold: that
// increment is excluded and the pair recorded as an anomaly. A zero elapsed
// time between points leaves speed undefined; the pair is treated as
// non-anomalous with zero distance contribution. Fewer than two accepted
// points yield zero distance and zero duration.
func ValidateTrack(points []domain.GpsPoint, opts Options) TrackSummary {
	if opts.MaxAccuracyM <= 0 {
		opts.MaxAccuracyM = DefaultMaxAccuracyM
	}
	if opts.MaxJumpM <= 0 {
		opts.MaxJumpM = DefaultMaxJumpM
	}

	accepted := make([]domain.GpsPoint, 0, len(points))
	for _, p := range points {
		if p.AccuracyM != nil && *p.AccuracyM > opts.MaxAccuracyM {
			continue
		}
		accepted = append(accepted, p)
	}

	summary := TrackSummary{AcceptedPoints: len(accepted)}
	if len(accepted) < 2 {
		return summary
	}

	minTs, maxTs := accepted[0].TimestampMs, accepted[0].TimestampMs
	for i := 1; i < len(accepted); i++ {
		prev, cur := accepted[i-1], accepted[i]

		if cur.TimestampMs < minTs {
			minTs = cur.TimestampMs
		}
		if cur.TimestampMs > maxTs {
			maxTs = cur.TimestampMs
		}

		dist := HaversineDistance(prev.Lat, prev.Lng, cur.Lat, cur.Lng)
		elapsed := float64(cur.TimestampMs-prev.TimestampMs) / 1000.0

		if elapsed <= 0 {
			// Speed is undefined for a zero-duration gap; contribute nothing
			// but do not flag the pair.
			continue
		}

		if dist > opts.MaxJumpM {
			summary.Anomalies = append(summary.Anomalies, Anomaly{
				FromIndex: i - 1,
				ToIndex:   i,
				DistanceM: dist,
				ElapsedS:  elapsed,
			})
			continue
		}

		summary.DistanceM += dist
	}

	summary.DurationS = float64(maxTs-minTs) / 1000.0
	return summary
}
