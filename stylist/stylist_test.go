package stylist_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"styler/model"
	"styler/stylist"
	"styler/stylist/testutil"
)

const (
	wantApology    = "Sorry, I'm having trouble connecting to my fashion knowledge right now. Please try again!"
	wantNoResponse = "Sorry, I couldn't generate a response."
)

func newTestStylist(completer *testutil.MockCompleter, searcher *testutil.MockSearcher) *stylist.Stylist {
	if searcher == nil {
		searcher = &testutil.MockSearcher{}
	}
	toolbox := stylist.NewToolbox(&testutil.MockRecommender{}, searcher, 5)
	return stylist.NewStylist(completer, toolbox, searcher)
}

func userHistory(content string) []model.Message {
	return []model.Message{{Role: model.RoleUser, Content: content}}
}

func TestCompleteDirectReply(t *testing.T) {
	completer := testutil.NewMockCompleter(
		&stylist.Completion{Content: "Try a linen shirt with light chinos."},
	)
	s := newTestStylist(completer, nil)

	got, err := s.Complete(context.Background(), userHistory("summer look?"))
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "Try a linen shirt with light chinos." {
		t.Errorf("Complete() = %q", got)
	}

	if len(completer.Requests) != 1 {
		t.Fatalf("backend called %d times, want 1", len(completer.Requests))
	}
	req := completer.Requests[0]
	if len(req.Tools) != 2 {
		t.Errorf("first round declared %d tools, want 2", len(req.Tools))
	}
	if req.Messages[0].Role != model.RoleSystem {
		t.Errorf("first message role = %q, want system", req.Messages[0].Role)
	}
	if !strings.Contains(req.Messages[0].Content, "fashion stylist") {
		t.Error("system prompt missing from first message")
	}
}

func TestCompleteEmptyReply(t *testing.T) {
	completer := testutil.NewMockCompleter(&stylist.Completion{})
	s := newTestStylist(completer, nil)

	got, err := s.Complete(context.Background(), userHistory("hello"))
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != wantNoResponse {
		t.Errorf("Complete() = %q, want %q", got, wantNoResponse)
	}
}

func TestCompleteBackendFailureDegradesToApology(t *testing.T) {
	completer := &testutil.MockCompleter{
		CompleteFunc: func(context.Context, []model.Message, []mcptypes.Tool) (*stylist.Completion, error) {
			return nil, errors.New("connection refused")
		},
	}
	s := newTestStylist(completer, nil)

	got, err := s.Complete(context.Background(), userHistory("hello"))
	if err != nil {
		t.Fatalf("backend failure must not surface as error, got %v", err)
	}
	if got != wantApology {
		t.Errorf("Complete() = %q, want %q", got, wantApology)
	}
}

func TestCompleteToolRound(t *testing.T) {
	calls := []model.ToolCall{
		{ID: "call_1", Name: "getQlooSuggestion", Arguments: map[string]any{"keyword": "streetwear"}},
		{ID: "call_2", Name: "searchHnM", Arguments: map[string]any{"keyword": "hoodie"}},
	}
	completer := testutil.NewMockCompleter(
		&stylist.Completion{ToolCalls: calls},
		&stylist.Completion{Content: "Here's a streetwear look with a great hoodie."},
	)
	searcher := &testutil.MockSearcher{Catalog: []model.Product{
		{ID: "p1", Name: "Oversized Hoodie", Price: "₹1499", Availability: model.InStock},
	}}
	s := newTestStylist(completer, searcher)

	got, err := s.Complete(context.Background(), userHistory("streetwear ideas"))
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != "Here's a streetwear look with a great hoodie." {
		t.Errorf("Complete() = %q", got)
	}

	if len(completer.Requests) != 2 {
		t.Fatalf("backend called %d times, want 2", len(completer.Requests))
	}
	first, second := completer.Requests[0], completer.Requests[1]

	// Second request appends the assistant tool-call message plus one tool
	// result per call.
	wantLen := len(first.Messages) + 1 + len(calls)
	if len(second.Messages) != wantLen {
		t.Errorf("second request has %d messages, want %d", len(second.Messages), wantLen)
	}
	if second.Tools != nil {
		t.Error("second round must disable tools")
	}

	assistant := second.Messages[len(first.Messages)]
	if assistant.Role != model.RoleAssistant || len(assistant.ToolCalls) != 2 {
		t.Errorf("expected assistant tool-call message, got %+v", assistant)
	}
	for i, call := range calls {
		result := second.Messages[len(first.Messages)+1+i]
		if result.Role != model.RoleTool {
			t.Errorf("result %d role = %q, want tool", i, result.Role)
		}
		if result.ToolCallID != call.ID {
			t.Errorf("result %d keyed to %q, want %q", i, result.ToolCallID, call.ID)
		}
		if result.Content == "" {
			t.Errorf("result %d is empty", i)
		}
	}

	if searcher.CallCount() == 0 {
		t.Error("searchHnM tool never reached the searcher")
	}
}

func TestCompleteFinalRoundFailureDegradesToApology(t *testing.T) {
	completer := testutil.NewMockCompleter(
		&stylist.Completion{ToolCalls: []model.ToolCall{
			{ID: "call_1", Name: "getQlooSuggestion", Arguments: map[string]any{"keyword": "formal"}},
		}},
		// Script exhausted: the second call errors.
	)
	s := newTestStylist(completer, nil)

	got, err := s.Complete(context.Background(), userHistory("formal wear"))
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if got != wantApology {
		t.Errorf("Complete() = %q, want %q", got, wantApology)
	}
}

func TestDispatchUnknownToolYieldsEmptyResult(t *testing.T) {
	toolbox := stylist.NewToolbox(&testutil.MockRecommender{}, &testutil.MockSearcher{}, 5)

	got := toolbox.Dispatch(context.Background(), model.ToolCall{
		ID:   "call_x",
		Name: "launchMissiles",
	})
	if got != "" {
		t.Errorf("unknown tool result = %q, want empty", got)
	}
}

func TestDispatchAllPreservesCallOrder(t *testing.T) {
	searcher := &testutil.MockSearcher{Catalog: []model.Product{{ID: "p1", Name: "Denim Jacket"}}}
	toolbox := stylist.NewToolbox(&testutil.MockRecommender{}, searcher, 5)

	calls := []model.ToolCall{
		{ID: "c1", Name: "searchHnM", Arguments: map[string]any{"keyword": "jacket"}},
		{ID: "c2", Name: "getQlooSuggestion", Arguments: map[string]any{"keyword": "denim"}},
		{ID: "c3", Name: "nonsense"},
	}
	results := toolbox.DispatchAll(context.Background(), calls)

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	if !strings.Contains(results[0], "Denim Jacket") {
		t.Errorf("results[0] = %q, want search payload", results[0])
	}
	if results[1] == "" {
		t.Error("results[1] empty, want recommendation payload")
	}
	if results[2] != "" {
		t.Errorf("results[2] = %q, want empty for unknown tool", results[2])
	}
}
