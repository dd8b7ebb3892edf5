package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/cinnamonledger/cinnamon/internal/model"
)

// validateContext ensures the context is usable before touching the database.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	return nil
}

func validateString(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", name)
	}
	return nil
}

func validateTransactions(transactions []model.Transaction) error {
	if len(transactions) == 0 {
		return fmt.Errorf("transactions cannot be empty")
	}
	for i, txn := range transactions {
		if txn.ID == "" {
			return fmt.Errorf("transaction at index %d has empty ID", i)
		}
		if txn.Descriptor == "" {
			return fmt.Errorf("transaction %s has empty descriptor", txn.ID)
		}
		if txn.Date.IsZero() {
			return fmt.Errorf("transaction %s has zero date", txn.ID)
		}
	}
	return nil
}

func validateAssignment(assignment *model.CategoryAssignment) error {
	if assignment == nil {
		return fmt.Errorf("assignment cannot be nil")
	}
	if assignment.TransactionID == "" {
		return fmt.Errorf("assignment transaction ID cannot be empty")
	}
	if assignment.Category == "" {
		return fmt.Errorf("assignment category cannot be empty")
	}
	if assignment.Confidence < 0 || assignment.Confidence > 1 {
		return fmt.Errorf("assignment confidence %f out of range [0,1]", assignment.Confidence)
	}
	return nil
}

func validatePattern(pattern *model.RecurringPattern) error {
	if pattern == nil {
		return fmt.Errorf("pattern cannot be nil")
	}
	if pattern.ID == "" {
		return fmt.Errorf("pattern ID cannot be empty")
	}
	if pattern.AccountID == "" {
		return fmt.Errorf("pattern account ID cannot be empty")
	}
	if pattern.MerchantKey == "" {
		return fmt.Errorf("pattern merchant key cannot be empty")
	}
	return nil
}
