package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHashIsStable(t *testing.T) {
	txn := Transaction{
		Date:       time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC),
		AccountID:  "acct-1",
		Descriptor: "NETFLIX.COM",
		Amount:     -15.99,
	}

	first := txn.GenerateHash()
	assert.Len(t, first, 64)
	assert.Equal(t, first, txn.GenerateHash())

	// Time of day does not affect identity, only the calendar date does.
	sameDay := txn
	sameDay.Date = time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, first, sameDay.GenerateHash())

	changed := txn
	changed.Amount = -16.99
	assert.NotEqual(t, first, changed.GenerateHash())

	otherAccount := txn
	otherAccount.AccountID = "acct-2"
	assert.NotEqual(t, first, otherAccount.GenerateHash())
}

func TestBudgetScope(t *testing.T) {
	day := time.Date(2025, 6, 15, 18, 45, 0, 0, time.UTC)
	assert.Equal(t, "user-1:2025-06-15", BudgetScope("user-1", day))

	// Same user, different day falls in a different scope.
	assert.NotEqual(t, BudgetScope("user-1", day), BudgetScope("user-1", day.AddDate(0, 0, 1)))
	assert.NotEqual(t, BudgetScope("user-1", day), BudgetScope("user-2", day))
}

func TestPatternKindSpecificity(t *testing.T) {
	assert.Greater(t, KindExact.Specificity(), KindPrefix.Specificity())
	assert.Greater(t, KindPrefix.Specificity(), KindSubstring.Specificity())
	assert.Greater(t, KindSubstring.Specificity(), KindRegex.Specificity())
	assert.Equal(t, -1, PatternKind("glob").Specificity())
}

func TestCategoryRuleValidate(t *testing.T) {
	valid := CategoryRule{
		ID:         "r1",
		Pattern:    "NETFLIX.COM",
		Kind:       KindExact,
		Category:   "Entertainment",
		Confidence: 0.98,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*CategoryRule)
	}{
		{"empty pattern", func(r *CategoryRule) { r.Pattern = "" }},
		{"unknown kind", func(r *CategoryRule) { r.Kind = "fuzzy" }},
		{"empty category", func(r *CategoryRule) { r.Category = "" }},
		{"confidence above one", func(r *CategoryRule) { r.Confidence = 1.2 }},
		{"negative confidence", func(r *CategoryRule) { r.Confidence = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := valid
			tt.mutate(&rule)
			assert.Error(t, rule.Validate())
		})
	}
}
