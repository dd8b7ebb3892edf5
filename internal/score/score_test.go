package score

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cinnamonledger/cinnamon/internal/model"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.2))
	assert.Equal(t, 1.0, Clamp(1.7))
	assert.Equal(t, 0.55, Clamp(0.55))
}

func TestRuleLess(t *testing.T) {
	rules := []model.CategoryRule{
		{ID: "d", Pattern: "AB", Kind: model.KindSubstring, Category: "X", Priority: 50},
		{ID: "c", Pattern: "ABCD", Kind: model.KindSubstring, Category: "X", Priority: 50},
		{ID: "b", Pattern: "AB", Kind: model.KindExact, Category: "X", Priority: 50},
		{ID: "a", Pattern: "AB", Kind: model.KindSubstring, Category: "X", Priority: 90},
	}

	sort.Slice(rules, func(i, j int) bool { return RuleLess(rules[i], rules[j]) })

	gotIDs := []string{rules[0].ID, rules[1].ID, rules[2].ID, rules[3].ID}
	// Priority first, then specificity, then longer literal, then ID.
	assert.Equal(t, []string{"a", "b", "c", "d"}, gotIDs)
}

func TestRuleLessTotalOrder(t *testing.T) {
	a := model.CategoryRule{ID: "a", Pattern: "X", Kind: model.KindExact, Category: "C", Priority: 10}
	b := model.CategoryRule{ID: "b", Pattern: "X", Kind: model.KindExact, Category: "C", Priority: 10}

	assert.True(t, RuleLess(a, b))
	assert.False(t, RuleLess(b, a))
}

func TestComputeIntervals(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		stats := ComputeIntervals(nil)
		assert.Equal(t, 0, stats.Count)
		assert.Equal(t, 0.0, stats.Mean)
	})

	t.Run("uniform", func(t *testing.T) {
		stats := ComputeIntervals([]float64{30, 30, 30})
		assert.InDelta(t, 30, stats.Mean, 0.001)
		assert.InDelta(t, 0, stats.StdDev, 0.001)
		assert.Equal(t, 3, stats.Count)
	})

	t.Run("varied", func(t *testing.T) {
		stats := ComputeIntervals([]float64{28, 31, 30, 31})
		assert.InDelta(t, 30, stats.Mean, 0.001)
		assert.Greater(t, stats.StdDev, 0.0)
	})
}

func TestRelativeDeviation(t *testing.T) {
	stats := IntervalStats{Mean: 30, StdDev: 3}
	assert.InDelta(t, 0.1, stats.RelativeDeviation(), 0.001)

	zero := IntervalStats{}
	assert.True(t, zero.RelativeDeviation() > 1e9, "zero mean yields unusable deviation")
}

func TestPatternConfidence(t *testing.T) {
	regular := IntervalStats{Mean: 30, StdDev: 0, Count: 5}

	t.Run("below minimum occurrences", func(t *testing.T) {
		assert.Equal(t, 0.0, PatternConfidence(1, regular))
	})

	t.Run("grows with occurrences", func(t *testing.T) {
		low := PatternConfidence(2, regular)
		high := PatternConfidence(8, regular)
		assert.Greater(t, high, low)
	})

	t.Run("capped below certainty", func(t *testing.T) {
		conf := PatternConfidence(100, regular)
		assert.LessOrEqual(t, conf, 0.9)
	})

	t.Run("irregular spacing penalized", func(t *testing.T) {
		irregular := IntervalStats{Mean: 30, StdDev: 12, Count: 5}
		assert.Less(t, PatternConfidence(6, irregular), PatternConfidence(6, regular))
	})

	t.Run("always in range", func(t *testing.T) {
		wild := IntervalStats{Mean: 10, StdDev: 100, Count: 3}
		conf := PatternConfidence(3, wild)
		assert.GreaterOrEqual(t, conf, 0.0)
		assert.LessOrEqual(t, conf, 1.0)
	})
}

func TestPreferLowerVariance(t *testing.T) {
	assert.True(t, PreferLowerVariance(0.01, 0.05))
	assert.False(t, PreferLowerVariance(0.05, 0.01))
	assert.False(t, PreferLowerVariance(0.03, 0.03))
}
