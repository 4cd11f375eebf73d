package mock

import (
	"context"

	"github.com/scholarch/expertmatch/ai"
)

// MockTagExtractor is a test double for ai.TagExtractor.
// It allows custom behavior injection via function fields.
type MockTagExtractor struct {
	// ExtractTagsFunc is called by ExtractTags if set.
	// If nil, returns Result.
	ExtractTagsFunc func(ctx context.Context, problemStatement string) (*ai.ExtractedQuery, error)

	// Result is returned by ExtractTags when ExtractTagsFunc is nil.
	Result *ai.ExtractedQuery

	callCount int
}

// NewMockTagExtractor creates a mock extractor with an empty default result.
// Note: Returns concrete type to allow test assertions via CallCount().
func NewMockTagExtractor() *MockTagExtractor {
	return &MockTagExtractor{
		Result: &ai.ExtractedQuery{},
	}
}

// ExtractTags returns the injected function's result, or the staged Result.
func (m *MockTagExtractor) ExtractTags(ctx context.Context, problemStatement string) (*ai.ExtractedQuery, error) {
	m.callCount++

	if m.ExtractTagsFunc != nil {
		return m.ExtractTagsFunc(ctx, problemStatement)
	}

	return m.Result, nil
}

// CallCount returns the number of times ExtractTags was called.
func (m *MockTagExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and injected behavior.
func (m *MockTagExtractor) Reset() {
	m.callCount = 0
	m.ExtractTagsFunc = nil
	m.Result = &ai.ExtractedQuery{}
}
