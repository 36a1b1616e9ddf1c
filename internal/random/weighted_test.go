package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

func TestDrawOutcome_InvalidTables(t *testing.T) {
	src := NewSource(1)

	_, err := DrawOutcome(src, []WeightedOutcome[string]{})
	assert.ErrorIs(t, err, domain.ErrInvalidWeightTable)

	_, err = DrawOutcome(src, []WeightedOutcome[string]{
		{Value: "a", Weight: 0},
		{Value: "b", Weight: 0},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidWeightTable)

	_, err = DrawOutcome(src, []WeightedOutcome[string]{
		{Value: "a", Weight: 10},
		{Value: "b", Weight: -1},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidWeightTable)
}

func TestDrawOutcome_ZeroWeightNeverSelected(t *testing.T) {
	src := NewSource(42)
	outcomes := []WeightedOutcome[string]{
		{Value: "common", Weight: 1},
		{Value: "never", Weight: 0},
		{Value: "rare", Weight: 1},
	}

	for i := 0; i < 10000; i++ {
		got, err := DrawOutcome(src, outcomes)
		require.NoError(t, err)
		assert.NotEqual(t, "never", got)
	}
}

func TestDrawOutcome_Distribution(t *testing.T) {
	src := NewSource(7)
	outcomes := []WeightedOutcome[string]{
		{Value: "common", Weight: 70},
		{Value: "uncommon", Weight: 20},
		{Value: "rare", Weight: 10},
	}

	const draws = 100000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		got, err := DrawOutcome(src, outcomes)
		require.NoError(t, err)
		counts[got]++
	}

	assert.InDelta(t, 0.70, float64(counts["common"])/draws, 0.03)
	assert.InDelta(t, 0.20, float64(counts["uncommon"])/draws, 0.03)
	assert.InDelta(t, 0.10, float64(counts["rare"])/draws, 0.03)
}

func TestSuccessRoll_Bounds(t *testing.T) {
	src := NewSource(3)

	for i := 0; i < 100; i++ {
		assert.False(t, SuccessRoll(src, 0))
		assert.True(t, SuccessRoll(src, 1))
	}
}

func TestSuccessRoll_Deterministic(t *testing.T) {
	src := &FixedSource{Values: []float64{0.49, 0.51}}

	assert.True(t, SuccessRoll(src, 0.5))
	assert.False(t, SuccessRoll(src, 0.5))
}
