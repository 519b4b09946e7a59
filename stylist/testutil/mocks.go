// Package testutil provides deterministic mocks for the orchestration
// pipeline's collaborators.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"styler/model"
	"styler/qloo"
	"styler/stylist"
)

// MockCompleter implements stylist.Completer for testing. Responses are
// returned from a script, one per call; CompleteFunc overrides everything
// when set.
type MockCompleter struct {
	CompleteFunc func(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*stylist.Completion, error)

	mu        sync.Mutex
	script    []*stylist.Completion
	callIndex int

	// Requests records every call's messages and tools for assertions.
	Requests []RecordedRequest
}

type RecordedRequest struct {
	Messages []model.Message
	Tools    []mcptypes.Tool
}

// NewMockCompleter creates a mock that replays the given completions in
// order, then errors if called again.
func NewMockCompleter(script ...*stylist.Completion) *MockCompleter {
	return &MockCompleter{script: script}
}

func (m *MockCompleter) Complete(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*stylist.Completion, error) {
	m.mu.Lock()
	m.Requests = append(m.Requests, RecordedRequest{Messages: messages, Tools: tools})
	m.mu.Unlock()

	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, messages, tools)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.callIndex >= len(m.script) {
		return nil, fmt.Errorf("mock completer: unexpected call %d", m.callIndex+1)
	}
	completion := m.script[m.callIndex]
	m.callIndex++
	return completion, nil
}

func (m *MockCompleter) Model() string { return "mock-model" }

func (m *MockCompleter) Ping(ctx context.Context) error { return nil }

// MockSearcher implements stylist.ProductSearcher with a fixed catalog.
// Searches return up to maxResults products whose name contains the
// keyword, or the whole catalog head when nothing matches and Strict is
// unset. Calls records every keyword searched.
type MockSearcher struct {
	Catalog []model.Product
	Err     error
	// Strict makes non-matching keywords return empty results instead of
	// the catalog head.
	Strict bool

	mu    sync.Mutex
	Calls []string
}

func (m *MockSearcher) Search(ctx context.Context, keyword, category string, maxResults int) (*model.SearchResult, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, keyword)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}

	var products []model.Product
	for _, p := range m.Catalog {
		if containsFold(p.Name, keyword) {
			products = append(products, p)
		}
	}
	if len(products) == 0 && !m.Strict {
		products = append(products, m.Catalog...)
	}
	if maxResults > 0 && len(products) > maxResults {
		products = products[:maxResults]
	}

	return &model.SearchResult{
		Products:     products,
		TotalResults: len(products),
		SearchQuery:  keyword,
		Website:      "Mock Store",
	}, nil
}

// CallCount returns how many searches have been issued.
func (m *MockSearcher) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockRecommender implements stylist.CulturalRecommender.
type MockRecommender struct {
	Response *qloo.Response
	Err      error

	mu    sync.Mutex
	Calls []string
}

func (m *MockRecommender) Recommend(ctx context.Context, keyword, occasion, culturalContext string) (*qloo.Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, keyword)
	m.mu.Unlock()

	if m.Err != nil {
		return nil, m.Err
	}
	if m.Response != nil {
		return m.Response, nil
	}
	return qloo.FallbackResponse(), nil
}

func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
