// Package budget meters fallback-classifier invocations per (user, day)
// scope. Counters are monotonically non-decreasing within a scope's day and
// rotate at the day boundary.
package budget

import (
	"context"
	"sync"
)

// Memory is a thread-safe in-process budget store. Scope keys embed the day,
// so rotation is a matter of dropping keys for past days.
type Memory struct {
	counts map[string]int
	mu     sync.Mutex
}

// NewMemory creates an empty in-memory budget store.
func NewMemory() *Memory {
	return &Memory{counts: make(map[string]int)}
}

// IncrementIfBelow atomically increments the scope's counter if it is below
// the cap. Returns true when the call is allowed and the counter was
// incremented.
func (b *Memory) IncrementIfBelow(_ context.Context, scope string, cap int) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.counts[scope] >= cap {
		return false, nil
	}
	b.counts[scope]++
	return true, nil
}

// Decrement refunds one admission for a scope, flooring at zero.
func (b *Memory) Decrement(_ context.Context, scope string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.counts[scope] > 0 {
		b.counts[scope]--
	}
	return nil
}

// Count returns the current counter for a scope.
func (b *Memory) Count(_ context.Context, scope string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.counts[scope], nil
}

// Prune drops counters whose scope does not satisfy keep. Called on day
// rollover with a predicate matching current-day scopes.
func (b *Memory) Prune(keep func(scope string) bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for scope := range b.counts {
		if !keep(scope) {
			delete(b.counts, scope)
		}
	}
}
