package recurring

import "github.com/cinnamonledger/cinnamon/internal/model"

// PatternUpdate pairs a freshly detected pattern with the stored pattern it
// replaces, if any. A zero SupersedesID means the pattern is new or an
// in-place extension of an existing one.
type PatternUpdate struct {
	Pattern      model.RecurringPattern
	SupersedesID string
}

// Merge reconciles a fresh detection run against previously stored patterns
// for the same account. Three outcomes per fresh pattern:
//
//   - same ID as a stored pattern: the run extended it with new occurrences,
//     persist the updated row in place
//   - different ID but shares contributing transactions with a stored
//     pattern: the classification changed, the stored pattern is superseded
//   - no overlap: a new pattern
//
// Stored patterns untouched by the fresh run are left alone; absence of a
// merchant from one run's history window is not evidence the subscription
// ended.
func Merge(existing, fresh []model.RecurringPattern) []PatternUpdate {
	updates := make([]PatternUpdate, 0, len(fresh))
	for _, pattern := range fresh {
		update := PatternUpdate{Pattern: pattern}
		for _, prior := range existing {
			if prior.ID == pattern.ID {
				update.SupersedesID = ""
				break
			}
			if sharesTransactions(prior, pattern) {
				update.SupersedesID = prior.ID
			}
		}
		updates = append(updates, update)
	}
	return updates
}

// sharesTransactions reports whether two patterns claim any of the same
// contributing transactions.
func sharesTransactions(a, b model.RecurringPattern) bool {
	for _, id := range b.TransactionIDs {
		if a.Contains(id) {
			return true
		}
	}
	return false
}
