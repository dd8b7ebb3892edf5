// Package testutil provides shared helpers for package tests.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/service"
	"github.com/cinnamonledger/cinnamon/internal/storage"
)

// TestDB wraps a migrated in-memory database for tests.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a migrated in-memory SQLite database. Cleanup is
// registered automatically.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, t: t}
}

// SeedTransactions saves the given transactions, failing the test on error.
func (db *TestDB) SeedTransactions(transactions []model.Transaction) {
	db.t.Helper()
	if err := db.Storage.SaveTransactions(context.Background(), transactions); err != nil {
		db.t.Fatalf("failed to seed transactions: %v", err)
	}
}

// MonthlySeries builds a monthly charge series for one merchant, useful for
// recurring-detection tests.
func MonthlySeries(accountID, merchant string, amount float64, count int, start time.Time) []model.Transaction {
	transactions := make([]model.Transaction, count)
	for i := range transactions {
		transactions[i] = model.Transaction{
			ID:         fmt.Sprintf("%s-%s-%d", accountID, merchant, i),
			Date:       start.AddDate(0, i, 0),
			Descriptor: merchant,
			Amount:     -amount,
			AccountID:  accountID,
			UserID:     "test-user",
		}
	}
	return transactions
}
