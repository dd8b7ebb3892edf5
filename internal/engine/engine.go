// Package engine implements the classification orchestrator: rules first,
// then cache, then a budget-gated fallback classifier, then a degraded
// default. Classification never fails; every path ends in an assignment.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/normalize"
	"github.com/cinnamonledger/cinnamon/internal/rules"
	"github.com/cinnamonledger/cinnamon/internal/service"
)

// Config holds configuration options for the classification engine.
type Config struct {
	// HighConfidenceThreshold is the rule confidence at or above which no
	// fallback is consulted.
	HighConfidenceThreshold float64
	// CacheTTL is how long fallback results stay valid per merchant key.
	CacheTTL time.Duration
	// DailyBudgetCap is the maximum fallback invocations per (user, day).
	DailyBudgetCap int
	// FallbackTimeout bounds a single fallback classifier call.
	FallbackTimeout time.Duration
	// BatchWorkers bounds concurrent classifications in ClassifyBatch.
	BatchWorkers int
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() Config {
	return Config{
		HighConfidenceThreshold: 0.8,
		CacheTTL:                7 * 24 * time.Hour,
		DailyBudgetCap:          10,
		FallbackTimeout:         5 * time.Second,
		BatchWorkers:            8,
	}
}

// Engine orchestrates transaction classification. The cache and budget store
// are the only shared mutable state; everything else is pure.
type Engine struct {
	matcher    *rules.Matcher
	classifier service.Classifier
	cache      service.Cache
	budget     service.BudgetStore
	categories []model.Category
	logger     *slog.Logger
	cfg        Config
	now        func() time.Time
}

// New creates an engine with the default configuration.
func New(matcher *rules.Matcher, classifier service.Classifier, cache service.Cache, budget service.BudgetStore, logger *slog.Logger) *Engine {
	return NewWithConfig(matcher, classifier, cache, budget, logger, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(matcher *rules.Matcher, classifier service.Classifier, cache service.Cache, budget service.BudgetStore, logger *slog.Logger, cfg Config) *Engine {
	if cfg.HighConfidenceThreshold == 0 {
		cfg.HighConfidenceThreshold = 0.8
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 7 * 24 * time.Hour
	}
	if cfg.DailyBudgetCap == 0 {
		cfg.DailyBudgetCap = 10
	}
	if cfg.FallbackTimeout == 0 {
		cfg.FallbackTimeout = 5 * time.Second
	}
	if cfg.BatchWorkers <= 0 {
		cfg.BatchWorkers = 8
	}

	return &Engine{
		matcher:    matcher,
		classifier: classifier,
		cache:      cache,
		budget:     budget,
		categories: model.DefaultCategories(),
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

// ClassifyOne classifies a single transaction. It never returns an error:
// every degradation path ends in a well-defined assignment, down to
// Uncategorized with confidence zero.
func (e *Engine) ClassifyOne(ctx context.Context, txn model.Transaction) model.CategoryAssignment {
	key := txn.MerchantKey
	if key == "" {
		key = normalize.Normalize(txn.Descriptor)
	}

	// The ordered fallback chain. Precedence is the list order; each
	// strategy either produces an assignment or defers to the next.
	strategies := []func(context.Context, model.Transaction, model.MerchantKey) *model.CategoryAssignment{
		e.tryRule,
		e.tryCache,
		e.tryFallback,
	}

	for _, strategy := range strategies {
		if assignment := strategy(ctx, txn, key); assignment != nil {
			return *assignment
		}
	}

	return e.uncategorized(txn)
}

// ClassifyBatch classifies transactions concurrently with a bounded worker
// pool. Results are positionally aligned with the input.
func (e *Engine) ClassifyBatch(ctx context.Context, txns []model.Transaction) []model.CategoryAssignment {
	assignments := make([]model.CategoryAssignment, len(txns))

	sem := make(chan struct{}, e.cfg.BatchWorkers)
	var wg sync.WaitGroup

	for i, txn := range txns {
		wg.Add(1)
		go func(idx int, transaction model.Transaction) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				assignments[idx] = e.uncategorized(transaction)
				return
			}

			assignments[idx] = e.ClassifyOne(ctx, transaction)
		}(i, txn)
	}

	wg.Wait()

	return assignments
}

// tryRule consults the rule matcher. Only a high-confidence match
// short-circuits; lower-confidence matches defer to the cache and fallback.
func (e *Engine) tryRule(_ context.Context, txn model.Transaction, key model.MerchantKey) *model.CategoryAssignment {
	match, ok := e.matcher.Match(key, txn.Descriptor)
	if !ok || match.Confidence < e.cfg.HighConfidenceThreshold {
		return nil
	}

	return &model.CategoryAssignment{
		AssignedAt:    time.Now(),
		TransactionID: txn.ID,
		Category:      match.Category,
		RuleID:        match.RuleID,
		Source:        model.SourceRule,
		Confidence:    match.Confidence,
	}
}

// tryCache consults the result cache. Cache errors degrade to a miss.
func (e *Engine) tryCache(ctx context.Context, txn model.Transaction, key model.MerchantKey) *model.CategoryAssignment {
	result, found, err := e.cache.Get(ctx, key)
	if err != nil {
		e.logger.Warn("cache lookup failed, treating as miss",
			"merchant", key,
			"error", err)
		return nil
	}
	if !found {
		return nil
	}

	return &model.CategoryAssignment{
		AssignedAt:    time.Now(),
		TransactionID: txn.ID,
		Category:      result.Category,
		Source:        model.SourceCache,
		Confidence:    result.Confidence,
	}
}

// uncategorized is the terminal strategy: the degraded assignment produced
// when rules, cache, and fallback all come up empty.
func (e *Engine) uncategorized(txn model.Transaction) model.CategoryAssignment {
	return model.CategoryAssignment{
		AssignedAt:    time.Now(),
		TransactionID: txn.ID,
		Category:      model.Uncategorized,
		Source:        model.SourceFallback,
		Confidence:    0.0,
	}
}

// Stats summarizes a batch of assignments by source.
func Stats(assignments []model.CategoryAssignment, duration time.Duration) service.CompletionStats {
	stats := service.CompletionStats{
		Total:    len(assignments),
		Duration: duration,
	}

	for _, a := range assignments {
		switch {
		case a.IsUncategorized():
			stats.Uncategorized++
		case a.Source == model.SourceRule:
			stats.ByRule++
		case a.Source == model.SourceCache:
			stats.ByCache++
		case a.Source == model.SourceFallback:
			stats.ByFallback++
		}
	}

	return stats
}

// NewManualAssignment builds a user-supplied assignment, which supersedes any
// engine-produced one.
func NewManualAssignment(transactionID, category string) model.CategoryAssignment {
	return model.CategoryAssignment{
		AssignedAt:    time.Now(),
		TransactionID: transactionID,
		Category:      category,
		Source:        model.SourceManual,
		Confidence:    1.0,
	}
}
