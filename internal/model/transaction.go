// Package model defines the core domain models used throughout the engine.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// MerchantKey is the canonical merchant identity derived from a raw
// descriptor. It is always recomputable from the descriptor and is used as
// the join key for rules, caching, and recurring-pattern clustering.
type MerchantKey string

// UnknownMerchant is the sentinel key produced for descriptors that carry no
// usable merchant information (empty, whitespace, purely numeric).
const UnknownMerchant MerchantKey = "UNKNOWN"

// Transaction represents a single financial transaction from any source.
// It is immutable once ingested; the category assignment lives separately.
type Transaction struct {
	Date        time.Time
	ID          string
	AccountID   string
	UserID      string
	Descriptor  string      // Raw transaction description as imported
	MerchantKey MerchantKey // Derived canonical merchant, may be empty until normalized
	Hash        string
	Amount      float64 // Signed: negative for debits, positive for credits
}

// GenerateHash creates a unique hash for duplicate detection.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.Date.Format("2006-01-02"),
		t.Amount,
		t.Descriptor,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// BudgetScope returns the (user, day) scope key used to meter fallback
// classifier invocations. The day component uses the transaction's own date
// so replays land in the same scope.
func BudgetScope(userID string, day time.Time) string {
	return fmt.Sprintf("%s:%s", userID, day.Format("2006-01-02"))
}
