// Package rules evaluates prioritized category rules against normalized
// merchant keys.
package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/score"
)

// Match is the result of evaluating the rule table against a transaction.
type Match struct {
	RuleID     string
	Category   string
	Confidence float64
}

// compiledRule pairs a rule with its pre-compiled regex (regex kind only) and
// its upper-cased literal for case-insensitive matching.
type compiledRule struct {
	regex   *regexp.Regexp
	literal string
	rule    model.CategoryRule
}

// Matcher evaluates an immutable, prioritized rule table. It is safe for
// concurrent use; the table is frozen at construction.
type Matcher struct {
	rules []compiledRule
}

// NewMatcher validates and compiles the rule set. Rules are sorted once by
// priority descending, then pattern specificity, then literal length, so
// evaluation is a single ordered scan and ties break deterministically.
func NewMatcher(ruleSet []model.CategoryRule) (*Matcher, error) {
	sorted := make([]model.CategoryRule, len(ruleSet))
	copy(sorted, ruleSet)
	sort.Slice(sorted, func(i, j int) bool {
		return score.RuleLess(sorted[i], sorted[j])
	})

	compiled := make([]compiledRule, 0, len(sorted))
	for _, r := range sorted {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("invalid rule: %w", err)
		}

		cr := compiledRule{
			rule:    r,
			literal: strings.ToUpper(r.Pattern),
		}
		if r.Kind == model.KindRegex {
			re, err := regexp.Compile("(?i)" + r.Pattern)
			if err != nil {
				return nil, fmt.Errorf("failed to compile rule %s: %w", r.ID, err)
			}
			cr.regex = re
		}
		compiled = append(compiled, cr)
	}

	return &Matcher{rules: compiled}, nil
}

// Match evaluates rules in order and returns the first satisfying rule's
// result, or false if no rule matches. Matching is pure; the table is never
// mutated.
func (m *Matcher) Match(key model.MerchantKey, rawDescriptor string) (Match, bool) {
	keyText := strings.ToUpper(string(key))
	rawText := strings.ToUpper(rawDescriptor)

	for _, cr := range m.rules {
		if !cr.matches(keyText, rawText) {
			continue
		}
		return Match{
			RuleID:     cr.rule.ID,
			Category:   cr.rule.Category,
			Confidence: score.Clamp(cr.rule.Confidence),
		}, true
	}

	return Match{}, false
}

func (cr *compiledRule) matches(keyText, rawText string) bool {
	switch cr.rule.Kind {
	case model.KindExact:
		return keyText == cr.literal
	case model.KindPrefix:
		return strings.HasPrefix(keyText, cr.literal)
	case model.KindSubstring:
		return strings.Contains(keyText, cr.literal) || strings.Contains(rawText, cr.literal)
	case model.KindRegex:
		return cr.regex.MatchString(keyText) || cr.regex.MatchString(rawText)
	}
	return false
}

// Len returns the number of compiled rules.
func (m *Matcher) Len() int {
	return len(m.rules)
}
