// Package score holds the confidence and tie-break policy shared by the rule
// matcher and the recurring-pattern detector.
package score

import (
	"math"

	"github.com/cinnamonledger/cinnamon/internal/model"
)

// Clamp bounds a confidence value to [0.0, 1.0].
func Clamp(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

// RuleLess orders two rules for evaluation: priority descending, then pattern
// specificity (exact > prefix > substring > regex), then longer literal. The
// ordering is total within a rule table so evaluation order is deterministic.
func RuleLess(a, b model.CategoryRule) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if sa, sb := a.Kind.Specificity(), b.Kind.Specificity(); sa != sb {
		return sa > sb
	}
	if len(a.Pattern) != len(b.Pattern) {
		return len(a.Pattern) > len(b.Pattern)
	}
	return a.ID < b.ID
}

// IntervalStats summarizes a sequence of inter-transaction day intervals.
type IntervalStats struct {
	Mean   float64
	StdDev float64
	Count  int
}

// ComputeIntervals derives interval statistics from day gaps.
func ComputeIntervals(gaps []float64) IntervalStats {
	if len(gaps) == 0 {
		return IntervalStats{}
	}

	var sum float64
	for _, g := range gaps {
		sum += g
	}
	mean := sum / float64(len(gaps))

	var variance float64
	for _, g := range gaps {
		d := g - mean
		variance += d * d
	}
	variance /= float64(len(gaps))

	return IntervalStats{
		Mean:   mean,
		StdDev: math.Sqrt(variance),
		Count:  len(gaps),
	}
}

// RelativeDeviation is the standard deviation expressed as a fraction of the
// mean. Used to separate fixed-cadence patterns from variable ones.
func (s IntervalStats) RelativeDeviation() float64 {
	if s.Mean == 0 {
		return math.Inf(1)
	}
	return s.StdDev / s.Mean
}

// PatternConfidence scores a recurring-pattern candidate. Confidence rises
// with occurrence count and falls with interval irregularity.
func PatternConfidence(occurrences int, stats IntervalStats) float64 {
	if occurrences < 2 {
		return 0
	}

	// Each additional occurrence past the minimum adds evidence, with
	// diminishing returns after roughly a year of monthly charges.
	base := 0.5 + 0.06*float64(occurrences-2)
	if base > 0.9 {
		base = 0.9
	}

	// Penalize irregular spacing.
	penalty := stats.RelativeDeviation() * 0.8
	if penalty > 0.5 {
		penalty = 0.5
	}

	return Clamp(base - penalty)
}

// PreferLowerVariance breaks ties between two interval classifications by
// choosing the one whose observed spacing deviates least from its nominal
// period.
func PreferLowerVariance(aDeviation, bDeviation float64) bool {
	return aDeviation < bDeviation
}
