package model

import "fmt"

// PatternKind is the closed set of rule pattern kinds, ordered by match
// specificity: exact beats prefix beats substring beats regex.
type PatternKind string

// Pattern kind constants.
const (
	KindExact     PatternKind = "exact"
	KindPrefix    PatternKind = "prefix"
	KindSubstring PatternKind = "substring"
	KindRegex     PatternKind = "regex"
)

// Specificity returns the tie-break rank of the kind; higher wins at equal
// rule priority.
func (k PatternKind) Specificity() int {
	switch k {
	case KindExact:
		return 3
	case KindPrefix:
		return 2
	case KindSubstring:
		return 1
	case KindRegex:
		return 0
	}
	return -1
}

// Valid reports whether k is one of the known pattern kinds.
func (k PatternKind) Valid() bool {
	switch k {
	case KindExact, KindPrefix, KindSubstring, KindRegex:
		return true
	}
	return false
}

// CategoryRule maps a merchant pattern to a target category. The rule set is
// loaded once per process generation and never mutated mid-evaluation.
type CategoryRule struct {
	ID         string
	Pattern    string
	Kind       PatternKind
	Category   string
	Priority   int
	Confidence float64 // Base confidence when the rule matches (0.0-1.0)
}

// Validate checks the rule is well formed enough to compile into a matcher.
func (r CategoryRule) Validate() error {
	if r.Pattern == "" {
		return fmt.Errorf("rule %s: empty pattern", r.ID)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("rule %s: unknown pattern kind %q", r.ID, r.Kind)
	}
	if r.Category == "" {
		return fmt.Errorf("rule %s: empty category", r.ID)
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		return fmt.Errorf("rule %s: confidence %f outside [0,1]", r.ID, r.Confidence)
	}
	return nil
}
