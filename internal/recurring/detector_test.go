package recurring

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinnamonledger/cinnamon/internal/model"
)

func testDetector(t *testing.T) *Detector {
	t.Helper()
	return NewDetector(DefaultConfig(), slog.Default())
}

func monthlyCharges(merchant model.MerchantKey, amount float64, count int, start time.Time) []model.Transaction {
	txns := make([]model.Transaction, count)
	for i := range txns {
		txns[i] = model.Transaction{
			ID:          fmt.Sprintf("%s-%d", merchant, i),
			AccountID:   "acct-1",
			UserID:      "user-1",
			Descriptor:  string(merchant),
			MerchantKey: merchant,
			Amount:      -amount,
			Date:        start.AddDate(0, i, 0),
		}
	}
	return txns
}

func TestDetectMonthlySubscription(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	history := monthlyCharges("NETFLIX", 15.99, 6, start)

	patterns := testDetector(t).Detect("acct-1", history)
	require.Len(t, patterns, 1)

	p := patterns[0]
	assert.Equal(t, model.MerchantKey("NETFLIX"), p.MerchantKey)
	assert.Equal(t, model.IntervalMonthly, p.IntervalKind)
	assert.Equal(t, model.AmountFixed, p.AmountKind)
	assert.InDelta(t, 15.99, p.Amount, 0.001)
	assert.Equal(t, 6, p.Occurrences())
	assert.GreaterOrEqual(t, p.Confidence, 0.5)
	assert.LessOrEqual(t, p.Confidence, 1.0)
	assert.Equal(t, start.AddDate(0, 5, 0), p.LastSeen)

	// Next charge predicted roughly one mean interval after the last.
	gap := p.NextPredicted.Sub(p.LastSeen).Hours() / 24
	assert.InDelta(t, p.IntervalDays, gap, 1)
}

func TestDetectSingleTransactionNoPattern(t *testing.T) {
	history := []model.Transaction{{
		ID:          "txn-1",
		AccountID:   "acct-1",
		Descriptor:  "SPOTIFY",
		MerchantKey: "SPOTIFY",
		Amount:      -9.99,
		Date:        time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}}

	patterns := testDetector(t).Detect("acct-1", history)
	assert.Empty(t, patterns)
}

func TestDetectTwoOccurrencesNoPattern(t *testing.T) {
	// Two charges a month apart give one interval sample, which is not enough
	// evidence of a cadence even though it lands in the monthly window.
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	history := monthlyCharges("GYM CO", 45.00, 2, start)

	patterns := testDetector(t).Detect("acct-1", history)
	assert.Empty(t, patterns, "a single interval sample must not classify as recurring")
}

func TestDetectIrregularSpacingNoPattern(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	history := make([]model.Transaction, len(dates))
	for i, d := range dates {
		history[i] = model.Transaction{
			ID:          fmt.Sprintf("txn-%d", i),
			AccountID:   "acct-1",
			Descriptor:  "CORNER STORE",
			MerchantKey: "CORNER STORE",
			Amount:      -12.50,
			Date:        d,
		}
	}

	patterns := testDetector(t).Detect("acct-1", history)
	assert.Empty(t, patterns, "erratic spacing should not classify as recurring")
}

func TestDetectWeeklyPattern(t *testing.T) {
	start := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	history := make([]model.Transaction, 8)
	for i := range history {
		history[i] = model.Transaction{
			ID:          fmt.Sprintf("txn-%d", i),
			AccountID:   "acct-1",
			Descriptor:  "BLUE APRON",
			MerchantKey: "BLUE APRON",
			Amount:      -59.94,
			Date:        start.AddDate(0, 0, i*7),
		}
	}

	patterns := testDetector(t).Detect("acct-1", history)
	require.Len(t, patterns, 1)
	assert.Equal(t, model.IntervalWeekly, patterns[0].IntervalKind)
	assert.InDelta(t, 7, patterns[0].IntervalDays, 0.01)
}

func TestDetectAnnualPattern(t *testing.T) {
	history := []model.Transaction{
		{ID: "a", AccountID: "acct-1", MerchantKey: "AMAZON PRIME", Amount: -139.00, Date: time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "b", AccountID: "acct-1", MerchantKey: "AMAZON PRIME", Amount: -139.00, Date: time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC)},
		{ID: "c", AccountID: "acct-1", MerchantKey: "AMAZON PRIME", Amount: -139.00, Date: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
	}

	patterns := testDetector(t).Detect("acct-1", history)
	require.Len(t, patterns, 1)
	assert.Equal(t, model.IntervalAnnual, patterns[0].IntervalKind)
}

func TestDetectCustomInterval(t *testing.T) {
	// Every 14 days is outside the weekly and monthly windows but perfectly
	// regular, so it classifies as a custom cadence.
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	history := make([]model.Transaction, 6)
	for i := range history {
		history[i] = model.Transaction{
			ID:          fmt.Sprintf("txn-%d", i),
			AccountID:   "acct-1",
			MerchantKey: "PAYCHECK LOAN CO",
			Amount:      -85.00,
			Date:        start.AddDate(0, 0, i*14),
		}
	}

	patterns := testDetector(t).Detect("acct-1", history)
	require.Len(t, patterns, 1)
	assert.Equal(t, model.IntervalCustom, patterns[0].IntervalKind)
	assert.InDelta(t, 14, patterns[0].IntervalDays, 0.01)
}

func TestDetectVariableAmounts(t *testing.T) {
	// A utility bill drifts month to month but stays within the tolerance
	// band, so it forms one variable-amount cluster.
	amounts := []float64{88.40, 87.10, 89.95, 88.02, 87.60}
	start := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	history := make([]model.Transaction, len(amounts))
	for i, amt := range amounts {
		history[i] = model.Transaction{
			ID:          fmt.Sprintf("txn-%d", i),
			AccountID:   "acct-1",
			MerchantKey: "CITY POWER AND LIGHT",
			Amount:      -amt,
			Date:        start.AddDate(0, i, 0),
		}
	}

	patterns := testDetector(t).Detect("acct-1", history)
	require.Len(t, patterns, 1)

	p := patterns[0]
	assert.Equal(t, model.AmountVariable, p.AmountKind)
	assert.InDelta(t, 87.10, p.AmountMin, 0.001)
	assert.InDelta(t, 89.95, p.AmountMax, 0.001)
}

func TestDetectSplitsAmountTiers(t *testing.T) {
	// Two plan tiers under one merchant should cluster separately.
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var history []model.Transaction
	for i := 0; i < 5; i++ {
		history = append(history, model.Transaction{
			ID: fmt.Sprintf("basic-%d", i), AccountID: "acct-1",
			MerchantKey: "STREAMCO", Amount: -9.99, Date: start.AddDate(0, i, 0),
		})
		history = append(history, model.Transaction{
			ID: fmt.Sprintf("family-%d", i), AccountID: "acct-1",
			MerchantKey: "STREAMCO", Amount: -19.99, Date: start.AddDate(0, i, 3),
		})
	}

	patterns := testDetector(t).Detect("acct-1", history)
	require.Len(t, patterns, 2)

	amounts := []float64{patterns[0].Amount, patterns[1].Amount}
	assert.Contains(t, amounts, 9.99)
	assert.Contains(t, amounts, 19.99)
}

func TestDetectDeterministicIDs(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	history := monthlyCharges("HULU", 17.99, 4, start)

	d := testDetector(t)
	first := d.Detect("acct-1", history)
	second := d.Detect("acct-1", history)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.Equal(t, first[0].ID, second[0].ID, "re-detection over the same history must be idempotent")
}

func TestDetectExtendedHistoryKeepsID(t *testing.T) {
	// New occurrences of the same subscription do not change the pattern ID,
	// so a longer history extends the stored row rather than duplicating it.
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	d := testDetector(t)

	short := d.Detect("acct-1", monthlyCharges("HULU", 17.99, 4, start))
	long := d.Detect("acct-1", monthlyCharges("HULU", 17.99, 7, start))
	require.Len(t, short, 1)
	require.Len(t, long, 1)
	assert.Equal(t, short[0].ID, long[0].ID)
	assert.Equal(t, 7, long[0].Occurrences())
}

func TestDetectGroupsByDerivedMerchantKey(t *testing.T) {
	// Raw descriptors vary per charge but normalize to one merchant.
	descriptors := []string{
		"NETFLIX.COM 866-579-7172 CA",
		"NETFLIX.COM 866-579-7172 CA",
		"NETFLIX.COM 866-579-7172 CA",
	}
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	history := make([]model.Transaction, len(descriptors))
	for i, desc := range descriptors {
		history[i] = model.Transaction{
			ID:         fmt.Sprintf("txn-%d", i),
			AccountID:  "acct-1",
			Descriptor: desc,
			Amount:     -15.99,
			Date:       start.AddDate(0, i, 0),
		}
	}

	patterns := testDetector(t).Detect("acct-1", history)
	require.Len(t, patterns, 1)
	assert.Equal(t, 3, patterns[0].Occurrences())
}

func TestMergeExtendsExistingPattern(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	d := testDetector(t)

	existing := d.Detect("acct-1", monthlyCharges("HULU", 17.99, 4, start))
	fresh := d.Detect("acct-1", monthlyCharges("HULU", 17.99, 6, start))
	require.Len(t, existing, 1)
	require.Len(t, fresh, 1)

	updates := Merge(existing, fresh)
	require.Len(t, updates, 1)
	assert.Empty(t, updates[0].SupersedesID, "same classification should extend in place")
	assert.Equal(t, existing[0].ID, updates[0].Pattern.ID)
	assert.Equal(t, 6, updates[0].Pattern.Occurrences())
}

func TestMergeSupersedesChangedClassification(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	existing := []model.RecurringPattern{{
		ID:             "old-pattern",
		AccountID:      "acct-1",
		MerchantKey:    "HULU",
		AmountKind:     model.AmountFixed,
		IntervalKind:   model.IntervalMonthly,
		TransactionIDs: []string{"HULU-0", "HULU-1", "HULU-2"},
	}}

	// The same charges now detect as variable-amount because the price moved.
	history := monthlyCharges("HULU", 17.99, 3, start)
	history = append(history,
		model.Transaction{ID: "HULU-3", AccountID: "acct-1", MerchantKey: "HULU", Amount: -18.49, Date: start.AddDate(0, 3, 0)},
		model.Transaction{ID: "HULU-4", AccountID: "acct-1", MerchantKey: "HULU", Amount: -18.49, Date: start.AddDate(0, 4, 0)},
	)
	fresh := testDetector(t).Detect("acct-1", history)
	require.Len(t, fresh, 1)
	require.Equal(t, model.AmountVariable, fresh[0].AmountKind)

	updates := Merge(existing, fresh)
	require.Len(t, updates, 1)
	assert.Equal(t, "old-pattern", updates[0].SupersedesID)
	assert.NotEqual(t, "old-pattern", updates[0].Pattern.ID)
}

func TestMergeNewPattern(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	fresh := testDetector(t).Detect("acct-1", monthlyCharges("DISNEY PLUS", 13.99, 3, start))
	require.Len(t, fresh, 1)

	updates := Merge(nil, fresh)
	require.Len(t, updates, 1)
	assert.Empty(t, updates[0].SupersedesID)
}
