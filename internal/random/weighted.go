package random

import (
	"github.com/striderush/StrideRush_Go/internal/domain"
)

// WeightedOutcome is one entry in a weight table. Weight is a relative
// integer share, not a percentage.
type WeightedOutcome[T any] struct {
	Value  T
	Weight int
}

// DrawOutcome selects one outcome proportionally to the weights.
// All weights must be non-negative and at least one must be positive.
func DrawOutcome[T any](src Source, outcomes []WeightedOutcome[T]) (T, error) {
	var zero T
	total := 0
	for _, o := range outcomes {
		if o.Weight < 0 {
			return zero, domain.ErrInvalidWeightTable
		}
		total += o.Weight
	}
	if total <= 0 {
		return zero, domain.ErrInvalidWeightTable
	}

	roll := src.IntN(total)
	acc := 0
	for _, o := range outcomes {
		acc += o.Weight
		if roll < acc {
			return o.Value, nil
		}
	}
	// Unreachable while weights sum to total
	return outcomes[len(outcomes)-1].Value, nil
}

// SuccessRoll returns true with the given probability in [0,1].
func SuccessRoll(src Source, probability float64) bool {
	if probability <= 0 {
		return false
	}
	if probability >= 1 {
		return true
	}
	return src.Float64() < probability
}
