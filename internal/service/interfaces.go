// Package service defines the contracts between the engine and its
// collaborators.
package service

import (
	"context"
	"time"

	"github.com/cinnamonledger/cinnamon/internal/model"
)

// Suggestion is a category suggestion returned by the fallback classifier.
type Suggestion struct {
	Category   string
	Confidence float64
}

// ClassifyContext carries the transaction details the fallback classifier may
// use beyond the merchant key.
type ClassifyContext struct {
	Descriptor string
	Amount     float64
	Date       time.Time
	Categories []model.Category
}

// Classifier is the external, cost-bearing classification collaborator. It is
// invoked only when rules are insufficient and budget allows. Implementations
// signal timeouts and transient failures through the returned error; the
// engine imposes its own retry policy.
type Classifier interface {
	Classify(ctx context.Context, key model.MerchantKey, cc ClassifyContext) (Suggestion, error)
}

// CachedResult is the value stored per merchant key after a successful
// fallback classification.
type CachedResult struct {
	Category   string
	Confidence float64
}

// Cache is the classification result cache collaborator. Visibility is
// eventual; entries expire after the TTL passed to Set.
type Cache interface {
	Get(ctx context.Context, key model.MerchantKey) (CachedResult, bool, error)
	Set(ctx context.Context, key model.MerchantKey, result CachedResult, ttl time.Duration) error
}

// BudgetStore meters fallback-classifier invocations per (user, day) scope.
// IncrementIfBelow must be atomic: true means the call was admitted and the
// counter incremented. Decrement refunds one admission, flooring at zero.
type BudgetStore interface {
	IncrementIfBelow(ctx context.Context, scope string, cap int) (bool, error)
	Decrement(ctx context.Context, scope string) error
	Count(ctx context.Context, scope string) (int, error)
}

// TransactionFilter defines filtering options for transaction queries.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	AccountID string
	Limit     int
}

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Transaction operations
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error)
	GetTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)
	GetAccountHistory(ctx context.Context, accountID string) ([]model.Transaction, error)

	// Assignment operations
	SaveAssignment(ctx context.Context, assignment *model.CategoryAssignment) error
	GetAssignment(ctx context.Context, transactionID string) (*model.CategoryAssignment, error)
	GetAssignmentsBySource(ctx context.Context, source model.AssignmentSource) ([]model.CategoryAssignment, error)

	// Rule operations
	GetRules(ctx context.Context) ([]model.CategoryRule, error)
	SaveRules(ctx context.Context, rules []model.CategoryRule) error

	// Recurring pattern operations
	SavePattern(ctx context.Context, pattern *model.RecurringPattern) error
	GetPatternsByAccount(ctx context.Context, accountID string) ([]model.RecurringPattern, error)
	SupersedePattern(ctx context.Context, oldID string, replacement *model.RecurringPattern) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}

// CompletionStats summarizes a classification run.
type CompletionStats struct {
	Total         int
	ByRule        int
	ByCache       int
	ByFallback    int
	Uncategorized int
	Duration      time.Duration
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
