package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cinnamonledger/cinnamon/internal/model"
)

// SavePattern persists a recurring pattern. Saving an existing ID updates the
// row in place, which is how a pattern is extended with new occurrences
// without changing its identity.
func (s *SQLiteStorage) SavePattern(ctx context.Context, pattern *model.RecurringPattern) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validatePattern(pattern); err != nil {
		return err
	}

	return s.execTx(ctx, func(tx *sql.Tx) error {
		return savePatternTx(ctx, tx, pattern)
	})
}

func savePatternTx(ctx context.Context, tx *sql.Tx, pattern *model.RecurringPattern) error {
	idsJSON, err := json.Marshal(pattern.TransactionIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction IDs: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO recurring_patterns (
			id, account_id, merchant_key, amount_kind, interval_kind,
			transaction_ids, amount, amount_min, amount_max,
			interval_days, interval_stddev, confidence, last_seen, next_predicted
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			transaction_ids = excluded.transaction_ids,
			amount = excluded.amount,
			amount_min = excluded.amount_min,
			amount_max = excluded.amount_max,
			interval_days = excluded.interval_days,
			interval_stddev = excluded.interval_stddev,
			confidence = excluded.confidence,
			last_seen = excluded.last_seen,
			next_predicted = excluded.next_predicted,
			updated_at = CURRENT_TIMESTAMP
	`, pattern.ID, pattern.AccountID, string(pattern.MerchantKey),
		string(pattern.AmountKind), string(pattern.IntervalKind),
		string(idsJSON), pattern.Amount, pattern.AmountMin, pattern.AmountMax,
		pattern.IntervalDays, pattern.IntervalStdDev, pattern.Confidence,
		pattern.LastSeen, pattern.NextPredicted)
	if err != nil {
		return fmt.Errorf("failed to save pattern %s: %w", pattern.ID, err)
	}

	return nil
}

// SupersedePattern marks the old pattern as replaced and saves its
// replacement in the same transaction. The old row is kept for history rather
// than deleted.
func (s *SQLiteStorage) SupersedePattern(ctx context.Context, oldID string, replacement *model.RecurringPattern) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(oldID, "oldID"); err != nil {
		return err
	}
	if err := validatePattern(replacement); err != nil {
		return err
	}

	return s.execTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE recurring_patterns
			SET superseded_by = ?, updated_at = ?
			WHERE id = ? AND superseded_by IS NULL
		`, replacement.ID, time.Now(), oldID)
		if err != nil {
			return fmt.Errorf("failed to supersede pattern %s: %w", oldID, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check supersede result: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("pattern %s not found or already superseded", oldID)
		}

		return savePatternTx(ctx, tx, replacement)
	})
}

// GetPatternsByAccount retrieves the active (not superseded) patterns for an
// account, ordered by merchant key.
func (s *SQLiteStorage) GetPatternsByAccount(ctx context.Context, accountID string) ([]model.RecurringPattern, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(accountID, "accountID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, account_id, merchant_key, amount_kind, interval_kind,
		       transaction_ids, amount, amount_min, amount_max,
		       interval_days, interval_stddev, confidence, last_seen, next_predicted
		FROM recurring_patterns
		WHERE account_id = ? AND superseded_by IS NULL
		ORDER BY merchant_key ASC
	`, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query patterns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var patterns []model.RecurringPattern
	for rows.Next() {
		pattern, err := scanPattern(rows)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, pattern)
	}

	return patterns, rows.Err()
}

func scanPattern(rows *sql.Rows) (model.RecurringPattern, error) {
	var pattern model.RecurringPattern
	var merchantKey, amountKind, intervalKind, idsJSON string

	err := rows.Scan(
		&pattern.ID,
		&pattern.AccountID,
		&merchantKey,
		&amountKind,
		&intervalKind,
		&idsJSON,
		&pattern.Amount,
		&pattern.AmountMin,
		&pattern.AmountMax,
		&pattern.IntervalDays,
		&pattern.IntervalStdDev,
		&pattern.Confidence,
		&pattern.LastSeen,
		&pattern.NextPredicted,
	)
	if err != nil {
		return model.RecurringPattern{}, fmt.Errorf("failed to scan pattern: %w", err)
	}

	pattern.MerchantKey = model.MerchantKey(merchantKey)
	pattern.AmountKind = model.AmountKind(amountKind)
	pattern.IntervalKind = model.IntervalKind(intervalKind)

	if err := json.Unmarshal([]byte(idsJSON), &pattern.TransactionIDs); err != nil {
		return model.RecurringPattern{}, fmt.Errorf("failed to parse transaction IDs for pattern %s: %w", pattern.ID, err)
	}

	return pattern, nil
}
