package testsupport

import (
	"context"
	"sync"
	"testing"

	"reviewd/internal/config"
	"reviewd/internal/review"
	"reviewd/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SampleResult returns a small valid review payload for tests.
func SampleResult() *review.Result {
	line := 3
	return &review.Result{
		OverallScore: 80,
		Issues: []review.Issue{
			{Severity: review.SeverityMedium, Line: &line, Issue: "unused variable", Suggestion: "remove it"},
		},
		Suggestions: []review.Suggestion{
			{Category: review.CategoryReadability, Suggestion: "name things", Impact: review.SeverityLow},
		},
		Security:      []review.SecurityFinding{},
		BestPractices: []review.BestPractice{},
		Summary:       "ok",
	}
}

// StubReviewer satisfies the dispatch reviewer contract with canned output.
type StubReviewer struct {
	mu     sync.Mutex
	calls  int
	Result *review.Result
	Err    error
}

// Review returns the configured result or error and counts the invocation.
func (r *StubReviewer) Review(ctx context.Context, code, language string) (*review.Result, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.Err != nil {
		return nil, r.Err
	}
	if r.Result != nil {
		copied := *r.Result
		return &copied, nil
	}
	return SampleResult(), nil
}

// Calls reports how many times Review was invoked.
func (r *StubReviewer) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}
