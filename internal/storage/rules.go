package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cinnamonledger/cinnamon/internal/model"
)

// GetRules retrieves the full rule table. Ordering is left to the matcher,
// which sorts rules by its own evaluation policy.
func (s *SQLiteStorage) GetRules(ctx context.Context) ([]model.CategoryRule, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, pattern, kind, category, priority, confidence
		FROM rules
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var rules []model.CategoryRule
	for rows.Next() {
		var rule model.CategoryRule
		var kind string
		if err := rows.Scan(
			&rule.ID,
			&rule.Pattern,
			&kind,
			&rule.Category,
			&rule.Priority,
			&rule.Confidence,
		); err != nil {
			return nil, fmt.Errorf("failed to scan rule: %w", err)
		}
		rule.Kind = model.PatternKind(kind)
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// SaveRules replaces the stored rule table with the given set. Each rule is
// validated before anything is written so a bad rule cannot leave the table
// half replaced.
func (s *SQLiteStorage) SaveRules(ctx context.Context, rules []model.CategoryRule) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return fmt.Errorf("invalid rule %s: %w", rule.ID, err)
		}
	}

	return s.execTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM rules`); err != nil {
			return fmt.Errorf("failed to clear rules: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO rules (id, pattern, kind, category, priority, confidence)
			VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare statement: %w", err)
		}
		defer func() { _ = stmt.Close() }()

		for _, rule := range rules {
			_, err = stmt.ExecContext(ctx,
				rule.ID,
				rule.Pattern,
				string(rule.Kind),
				rule.Category,
				rule.Priority,
				rule.Confidence,
			)
			if err != nil {
				return fmt.Errorf("failed to insert rule %s: %w", rule.ID, err)
			}
		}

		return nil
	})
}
