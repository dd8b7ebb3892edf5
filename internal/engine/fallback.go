package engine

import (
	"context"
	"time"

	"github.com/cinnamonledger/cinnamon/internal/common"
	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/score"
	"github.com/cinnamonledger/cinnamon/internal/service"
)

// tryFallback invokes the external classifier under the (user, day) budget
// cap. The day is the day the call is made, not the transaction's date, so a
// backfill of historical statements still spends from a single day's budget.
// Admission is reserved atomically before the call and refunded when the call
// fails: the external call count never exceeds the cap, and a failed call
// consumes no budget.
func (e *Engine) tryFallback(ctx context.Context, txn model.Transaction, key model.MerchantKey) *model.CategoryAssignment {
	if e.classifier == nil {
		return nil
	}

	scope := model.BudgetScope(txn.UserID, e.now().UTC())

	allowed, err := e.budget.IncrementIfBelow(ctx, scope, e.cfg.DailyBudgetCap)
	if err != nil {
		e.logger.Warn("budget check failed, skipping fallback",
			"scope", scope,
			"error", err)
		return nil
	}
	if !allowed {
		e.logger.Info("fallback budget exhausted",
			"scope", scope,
			"cap", e.cfg.DailyBudgetCap)
		return nil
	}

	suggestion, err := e.callClassifier(ctx, txn, key)
	if err != nil {
		e.logger.Warn("fallback classification failed",
			"merchant", key,
			"error", err)
		if refundErr := e.budget.Decrement(ctx, scope); refundErr != nil {
			e.logger.Warn("budget refund failed",
				"scope", scope,
				"error", refundErr)
		}
		return nil
	}

	if err := e.cache.Set(ctx, key, service.CachedResult{
		Category:   suggestion.Category,
		Confidence: suggestion.Confidence,
	}, e.cfg.CacheTTL); err != nil {
		e.logger.Warn("cache write failed",
			"merchant", key,
			"error", err)
	}

	return &model.CategoryAssignment{
		AssignedAt:    time.Now(),
		TransactionID: txn.ID,
		Category:      suggestion.Category,
		Source:        model.SourceFallback,
		Confidence:    score.Clamp(suggestion.Confidence),
	}
}

// callClassifier runs one bounded-timeout call with a single retry on
// transient failure.
func (e *Engine) callClassifier(ctx context.Context, txn model.Transaction, key model.MerchantKey) (service.Suggestion, error) {
	cc := service.ClassifyContext{
		Descriptor: txn.Descriptor,
		Amount:     txn.Amount,
		Date:       txn.Date,
		Categories: e.categories,
	}

	var suggestion service.Suggestion

	err := common.WithRetry(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, e.cfg.FallbackTimeout)
		defer cancel()

		result, err := e.classifier.Classify(callCtx, key, cc)
		if err != nil {
			return &common.RetryableError{Err: err, Retryable: true}
		}

		suggestion = result
		return nil
	}, service.RetryOptions{
		MaxAttempts:  2, // one retry
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   2.0,
	})
	if err != nil {
		return service.Suggestion{}, err
	}

	return suggestion, nil
}
