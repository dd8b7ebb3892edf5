// Package recurring detects subscription and bill patterns in transaction
// history by clustering per-merchant charges and classifying their cadence.
package recurring

import (
	"crypto/sha256"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/normalize"
	"github.com/cinnamonledger/cinnamon/internal/score"
)

// Config holds recurring-detection tuning parameters.
type Config struct {
	// AmountTolerancePct separates distinct recurring amounts under the same
	// merchant. The effective band is the greater of the percentage and
	// AmountToleranceMin.
	AmountTolerancePct float64
	// AmountToleranceMin is the minimum absolute tolerance in currency units.
	AmountToleranceMin float64
	// MinOccurrences is the minimum cluster size to consider.
	MinOccurrences int
	// MinConfidence is the floor below which no pattern is emitted.
	MinConfidence float64
	// MaxCustomDeviation is the relative interval deviation above which a
	// cluster with no named period is considered irregular.
	MaxCustomDeviation float64
}

// DefaultConfig returns the default detection parameters.
func DefaultConfig() Config {
	return Config{
		AmountTolerancePct: 0.05,
		AmountToleranceMin: 1.00,
		MinOccurrences:     2,
		MinConfidence:      0.5,
		MaxCustomDeviation: 0.35,
	}
}

// namedPeriod is a known cadence with its tolerance window in days.
type namedPeriod struct {
	kind      model.IntervalKind
	days      float64
	tolerance float64
}

var namedPeriods = []namedPeriod{
	{kind: model.IntervalWeekly, days: 7, tolerance: 2},
	{kind: model.IntervalMonthly, days: 30, tolerance: 5},
	{kind: model.IntervalAnnual, days: 365, tolerance: 30},
}

// Detector infers recurring charge patterns from an account's transaction
// history. Detection is pure over its input snapshot; concurrent runs for
// different accounts are fully independent.
type Detector struct {
	cfg    Config
	logger *slog.Logger
}

// NewDetector creates a detector with the given configuration.
func NewDetector(cfg Config, logger *slog.Logger) *Detector {
	if cfg.MinOccurrences < 2 {
		cfg.MinOccurrences = 2
	}
	return &Detector{cfg: cfg, logger: logger}
}

// Detect groups an account's history by merchant and amount and emits one
// pattern per qualifying cluster. Clusters with a single interval sample or
// highly irregular spacing yield no pattern; that is an expected outcome, not
// an error. The returned patterns are ordered by merchant key.
func (d *Detector) Detect(accountID string, history []model.Transaction) []model.RecurringPattern {
	groups := groupByMerchant(history)

	merchants := make([]model.MerchantKey, 0, len(groups))
	for key := range groups {
		merchants = append(merchants, key)
	}
	sort.Slice(merchants, func(i, j int) bool { return merchants[i] < merchants[j] })

	var patterns []model.RecurringPattern
	for _, key := range merchants {
		for _, cluster := range d.clusterByAmount(groups[key]) {
			if pattern, ok := d.classifyCluster(accountID, key, cluster); ok {
				patterns = append(patterns, pattern)
			}
		}
	}

	return patterns
}

// groupByMerchant buckets transactions by merchant key, deriving the key from
// the descriptor when it was not precomputed.
func groupByMerchant(history []model.Transaction) map[model.MerchantKey][]model.Transaction {
	groups := make(map[model.MerchantKey][]model.Transaction)
	for _, txn := range history {
		key := txn.MerchantKey
		if key == "" {
			key = normalize.Normalize(txn.Descriptor)
		}
		groups[key] = append(groups[key], txn)
	}
	return groups
}

// clusterByAmount splits a merchant's transactions into amount bands so a
// rising subscription price or a second plan tier forms its own cluster.
// Clustering is greedy against the running cluster mean.
func (d *Detector) clusterByAmount(txns []model.Transaction) [][]model.Transaction {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	type cluster struct {
		members []model.Transaction
		sum     float64
	}

	var clusters []*cluster
	for _, txn := range sorted {
		amount := math.Abs(txn.Amount)

		var best *cluster
		for _, c := range clusters {
			mean := c.sum / float64(len(c.members))
			if math.Abs(amount-mean) <= d.amountTolerance(mean) {
				best = c
				break
			}
		}

		if best == nil {
			best = &cluster{}
			clusters = append(clusters, best)
		}
		best.members = append(best.members, txn)
		best.sum += amount
	}

	out := make([][]model.Transaction, len(clusters))
	for i, c := range clusters {
		out[i] = c.members
	}
	return out
}

// amountTolerance is the band around a cluster mean: the greater of the
// percentage tolerance and the absolute minimum.
func (d *Detector) amountTolerance(mean float64) float64 {
	pct := math.Abs(mean) * d.cfg.AmountTolerancePct
	if pct < d.cfg.AmountToleranceMin {
		return d.cfg.AmountToleranceMin
	}
	return pct
}

// classifyCluster decides whether an amount cluster is a recurring pattern.
func (d *Detector) classifyCluster(accountID string, key model.MerchantKey, cluster []model.Transaction) (model.RecurringPattern, bool) {
	if len(cluster) < d.cfg.MinOccurrences {
		return model.RecurringPattern{}, false
	}

	gaps := make([]float64, 0, len(cluster)-1)
	for i := 1; i < len(cluster); i++ {
		gaps = append(gaps, cluster[i].Date.Sub(cluster[i-1].Date).Hours()/24)
	}

	stats := score.ComputeIntervals(gaps)
	if stats.Mean <= 0 {
		return model.RecurringPattern{}, false
	}

	intervalKind, ok := d.classifyInterval(stats)
	if !ok {
		d.logger.Debug("cluster spacing too irregular",
			"merchant", key,
			"occurrences", len(cluster),
			"mean_interval", stats.Mean,
			"stddev", stats.StdDev)
		return model.RecurringPattern{}, false
	}

	confidence := score.PatternConfidence(len(cluster), stats)
	if confidence < d.cfg.MinConfidence {
		d.logger.Debug("cluster below confidence floor",
			"merchant", key,
			"confidence", confidence)
		return model.RecurringPattern{}, false
	}

	amountMin, amountMax, amountMean := amountRange(cluster)
	amountKind := model.AmountVariable
	amount := amountMean
	if amountMax-amountMin < 0.005 {
		amountKind = model.AmountFixed
		amount = amountMax
	}

	last := cluster[len(cluster)-1].Date
	ids := make([]string, len(cluster))
	for i, txn := range cluster {
		ids[i] = txn.ID
	}

	pattern := model.RecurringPattern{
		ID:             patternID(accountID, key, ids[0], amountKind, intervalKind),
		AccountID:      accountID,
		MerchantKey:    key,
		AmountKind:     amountKind,
		IntervalKind:   intervalKind,
		TransactionIDs: ids,
		Amount:         amount,
		AmountMin:      amountMin,
		AmountMax:      amountMax,
		IntervalDays:   stats.Mean,
		IntervalStdDev: stats.StdDev,
		Confidence:     confidence,
		LastSeen:       last,
		NextPredicted:  last.Add(time.Duration(math.Round(stats.Mean*24)) * time.Hour),
	}
	return pattern, true
}

// classifyInterval maps interval statistics onto a cadence. Named periods win
// when the mean falls inside their tolerance window; among multiple matches
// the one the observed spacing deviates from least wins. Outside any named
// window, a consistent "roughly every N days" signal classifies as custom.
func (d *Detector) classifyInterval(stats score.IntervalStats) (model.IntervalKind, bool) {
	// A single gap is not a cadence; two transactions sit inside some window
	// trivially. Classification needs at least two interval samples.
	if stats.Count < 2 {
		return "", false
	}

	var (
		bestKind      model.IntervalKind
		bestDeviation float64
		found         bool
	)

	for _, period := range namedPeriods {
		offset := math.Abs(stats.Mean - period.days)
		if offset > period.tolerance {
			continue
		}
		deviation := offset / period.days
		if !found || score.PreferLowerVariance(deviation, bestDeviation) {
			bestKind = period.kind
			bestDeviation = deviation
			found = true
		}
	}

	if found {
		return bestKind, true
	}

	if stats.RelativeDeviation() <= d.cfg.MaxCustomDeviation {
		return model.IntervalCustom, true
	}

	return "", false
}

// amountRange returns the min, max, and mean of a cluster's absolute amounts.
func amountRange(cluster []model.Transaction) (low, high, mean float64) {
	low = math.Inf(1)
	var sum float64
	for _, txn := range cluster {
		amount := math.Abs(txn.Amount)
		if amount < low {
			low = amount
		}
		if amount > high {
			high = amount
		}
		sum += amount
	}
	return low, high, sum / float64(len(cluster))
}

// patternID is deterministic over the cluster's identity: the same account,
// merchant, starting transaction, and classification always yield the same
// pattern ID, which is what makes repeated detection runs idempotent. A
// change in classification yields a fresh ID so the old pattern can be
// superseded rather than mutated.
func patternID(accountID string, key model.MerchantKey, firstTxnID string, amountKind model.AmountKind, intervalKind model.IntervalKind) string {
	data := fmt.Sprintf("%s:%s:%s:%s:%s", accountID, key, firstTxnID, amountKind, intervalKind)
	sum := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", sum[:16])
}
