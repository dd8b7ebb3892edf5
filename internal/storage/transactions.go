package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cinnamonledger/cinnamon/internal/common"
	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/normalize"
	"github.com/cinnamonledger/cinnamon/internal/service"
)

// SaveTransactions saves multiple transactions to the database. Rows whose
// hash already exists are skipped, which makes repeated imports idempotent.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateTransactions(transactions); err != nil {
		return err
	}

	return s.execTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT OR IGNORE INTO transactions (
				id, hash, date, descriptor, merchant_key, amount, account_id, user_id
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, txn := range transactions {
			if txn.Hash == "" {
				txn.Hash = txn.GenerateHash()
			}
			if txn.MerchantKey == "" {
				txn.MerchantKey = normalize.Normalize(txn.Descriptor)
			}

			_, err = stmt.ExecContext(ctx,
				txn.ID,
				txn.Hash,
				txn.Date,
				txn.Descriptor,
				string(txn.MerchantKey),
				txn.Amount,
				txn.AccountID,
				txn.UserID,
			)
			if err != nil {
				return fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
			}
		}

		return nil
	})
}

// GetTransactionByID retrieves a single transaction by ID.
func (s *SQLiteStorage) GetTransactionByID(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	var txn model.Transaction
	var merchantKey string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, hash, date, descriptor, merchant_key, amount, account_id, user_id
		FROM transactions
		WHERE id = ?
	`, id).Scan(
		&txn.ID,
		&txn.Hash,
		&txn.Date,
		&txn.Descriptor,
		&merchantKey,
		&txn.Amount,
		&txn.AccountID,
		&txn.UserID,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	txn.MerchantKey = model.MerchantKey(merchantKey)
	return &txn, nil
}

// GetTransactions retrieves transactions matching the filter, oldest first.
func (s *SQLiteStorage) GetTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var conditions []string
	var args []any

	if filter.AccountID != "" {
		conditions = append(conditions, "account_id = ?")
		args = append(args, filter.AccountID)
	}
	if filter.StartDate != nil {
		conditions = append(conditions, "date >= ?")
		args = append(args, *filter.StartDate)
	}
	if filter.EndDate != nil {
		conditions = append(conditions, "date <= ?")
		args = append(args, *filter.EndDate)
	}

	query := `
		SELECT id, hash, date, descriptor, merchant_key, amount, account_id, user_id
		FROM transactions
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// GetAccountHistory retrieves the full transaction history for an account,
// oldest first, which is the order the recurring detector expects.
func (s *SQLiteStorage) GetAccountHistory(ctx context.Context, accountID string) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(accountID, "accountID"); err != nil {
		return nil, err
	}

	return s.GetTransactions(ctx, service.TransactionFilter{AccountID: accountID})
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var merchantKey string
		err := rows.Scan(
			&txn.ID,
			&txn.Hash,
			&txn.Date,
			&txn.Descriptor,
			&merchantKey,
			&txn.Amount,
			&txn.AccountID,
			&txn.UserID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.MerchantKey = model.MerchantKey(merchantKey)
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}
