package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cinnamonledger/cinnamon/internal/common"
	"github.com/cinnamonledger/cinnamon/internal/model"
)

// SaveAssignment persists a category assignment. A later assignment for the
// same transaction replaces the earlier one, so a manual recategorization
// simply overwrites what the engine decided.
func (s *SQLiteStorage) SaveAssignment(ctx context.Context, assignment *model.CategoryAssignment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAssignment(assignment); err != nil {
		return err
	}

	assignedAt := assignment.AssignedAt
	if assignedAt.IsZero() {
		assignedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO assignments (transaction_id, category, rule_id, source, confidence, assigned_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(transaction_id) DO UPDATE SET
			category = excluded.category,
			rule_id = excluded.rule_id,
			source = excluded.source,
			confidence = excluded.confidence,
			assigned_at = excluded.assigned_at
	`, assignment.TransactionID, assignment.Category, assignment.RuleID,
		string(assignment.Source), assignment.Confidence, assignedAt)
	if err != nil {
		return fmt.Errorf("failed to save assignment for %s: %w", assignment.TransactionID, err)
	}

	return nil
}

// GetAssignment retrieves the assignment for a transaction.
func (s *SQLiteStorage) GetAssignment(ctx context.Context, transactionID string) (*model.CategoryAssignment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(transactionID, "transactionID"); err != nil {
		return nil, err
	}

	var assignment model.CategoryAssignment
	var ruleID sql.NullString
	var source string
	err := s.db.QueryRowContext(ctx, `
		SELECT transaction_id, category, rule_id, source, confidence, assigned_at
		FROM assignments
		WHERE transaction_id = ?
	`, transactionID).Scan(
		&assignment.TransactionID,
		&assignment.Category,
		&ruleID,
		&source,
		&assignment.Confidence,
		&assignment.AssignedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment: %w", err)
	}

	assignment.RuleID = ruleID.String
	assignment.Source = model.AssignmentSource(source)
	return &assignment, nil
}

// GetAssignmentsBySource retrieves all assignments produced by a given
// strategy, newest first.
func (s *SQLiteStorage) GetAssignmentsBySource(ctx context.Context, source model.AssignmentSource) ([]model.CategoryAssignment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT transaction_id, category, rule_id, source, confidence, assigned_at
		FROM assignments
		WHERE source = ?
		ORDER BY assigned_at DESC
	`, string(source))
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var assignments []model.CategoryAssignment
	for rows.Next() {
		var assignment model.CategoryAssignment
		var ruleID sql.NullString
		var src string
		if err := rows.Scan(
			&assignment.TransactionID,
			&assignment.Category,
			&ruleID,
			&src,
			&assignment.Confidence,
			&assignment.AssignedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignment.RuleID = ruleID.String
		assignment.Source = model.AssignmentSource(src)
		assignments = append(assignments, assignment)
	}

	return assignments, rows.Err()
}
