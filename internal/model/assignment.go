package model

import "time"

// AssignmentSource indicates how a category assignment was produced.
type AssignmentSource string

// Assignment source constants. The set is closed; downstream consumers can
// handle every case exhaustively.
const (
	SourceRule     AssignmentSource = "rule"
	SourceCache    AssignmentSource = "cache"
	SourceFallback AssignmentSource = "fallback"
	SourceManual   AssignmentSource = "manual"
)

// Uncategorized is the category used when no rule matches and the fallback
// classifier is unavailable or over budget.
const Uncategorized = "Uncategorized"

// CategoryAssignment is the result of classifying a transaction. At most one
// assignment is active per transaction; a later assignment supersedes an
// earlier one.
type CategoryAssignment struct {
	AssignedAt    time.Time
	TransactionID string
	Category      string
	RuleID        string           // Populated when Source is SourceRule
	Source        AssignmentSource
	Confidence    float64
}

// IsUncategorized reports whether the assignment is the degraded default.
func (a CategoryAssignment) IsUncategorized() bool {
	return a.Category == Uncategorized
}
