package engine

import (
	"context"
	"sync"

	"github.com/cinnamonledger/cinnamon/internal/model"
	"github.com/cinnamonledger/cinnamon/internal/service"
)

// MockClassifier is a test implementation of the fallback classifier. It
// returns scripted suggestions per merchant key and records every call.
type MockClassifier struct {
	// Suggestions maps merchant keys to canned results. Keys missing from
	// the map get DefaultSuggestion.
	Suggestions map[model.MerchantKey]service.Suggestion
	// DefaultSuggestion is returned for unscripted merchants.
	DefaultSuggestion service.Suggestion
	// Err, when set, fails every call.
	Err error
	// FailuresBeforeSuccess fails that many leading calls, then succeeds.
	FailuresBeforeSuccess int
	// FailureErr is the error returned for injected failures.
	FailureErr error

	calls []model.MerchantKey
	mu    sync.Mutex
}

// NewMockClassifier creates a mock with a generic default suggestion.
func NewMockClassifier() *MockClassifier {
	return &MockClassifier{
		Suggestions:       make(map[model.MerchantKey]service.Suggestion),
		DefaultSuggestion: service.Suggestion{Category: "Shopping", Confidence: 0.7},
	}
}

// Classify returns the scripted suggestion for the merchant key.
func (m *MockClassifier) Classify(_ context.Context, key model.MerchantKey, _ service.ClassifyContext) (service.Suggestion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, key)

	if m.Err != nil {
		return service.Suggestion{}, m.Err
	}
	if m.FailuresBeforeSuccess > 0 {
		m.FailuresBeforeSuccess--
		return service.Suggestion{}, m.FailureErr
	}

	if s, ok := m.Suggestions[key]; ok {
		return s, nil
	}
	return m.DefaultSuggestion, nil
}

// CallCount returns the number of classification calls made.
func (m *MockClassifier) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns the merchant keys classified, in order.
func (m *MockClassifier) Calls() []model.MerchantKey {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.MerchantKey, len(m.calls))
	copy(out, m.calls)
	return out
}
