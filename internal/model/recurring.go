package model

import "time"

// AmountKind describes how a recurring pattern's amount behaves.
type AmountKind string

// Amount kind constants.
const (
	AmountFixed    AmountKind = "fixed"
	AmountVariable AmountKind = "variable"
)

// IntervalKind classifies the cadence of a recurring pattern.
type IntervalKind string

// Interval kind constants.
const (
	IntervalWeekly  IntervalKind = "weekly"
	IntervalMonthly IntervalKind = "monthly"
	IntervalAnnual  IntervalKind = "annual"
	// IntervalCustom covers a consistent "roughly every N days" cadence that
	// does not line up with a named period.
	IntervalCustom IntervalKind = "custom"
)

// RecurringPattern is a detected cluster of transactions to the same merchant
// and amount band repeating at a roughly consistent interval. Patterns are
// superseded, never mutated in place, when new evidence changes their
// classification.
type RecurringPattern struct {
	LastSeen       time.Time
	NextPredicted  time.Time
	ID             string
	AccountID      string
	MerchantKey    MerchantKey
	AmountKind     AmountKind
	IntervalKind   IntervalKind
	TransactionIDs []string // Ordered by date, at least two entries
	Amount         float64  // Cluster value when fixed, cluster mean when variable
	AmountMin      float64
	AmountMax      float64
	IntervalDays   float64 // Mean observed interval
	IntervalStdDev float64
	Confidence     float64
}

// Occurrences returns the number of contributing transactions.
func (p RecurringPattern) Occurrences() int {
	return len(p.TransactionIDs)
}

// Contains reports whether the transaction already contributes to the pattern.
func (p RecurringPattern) Contains(txnID string) bool {
	for _, id := range p.TransactionIDs {
		if id == txnID {
			return true
		}
	}
	return false
}
