package model

import (
	"context"
	"errors"
	"testing"

	"styler/config"
)

// scriptedStylist implements Stylist for pipeline tests.
type scriptedStylist struct {
	reply    string
	err      error
	products []Product

	gotHistory []Message
}

func (s *scriptedStylist) Complete(_ context.Context, history []Message) (string, error) {
	s.gotHistory = history
	return s.reply, s.err
}

func (s *scriptedStylist) ExtractProducts(_ context.Context, _, _ string) []Product {
	return s.products
}

func TestSubmitResolvesTurn(t *testing.T) {
	stylist := &scriptedStylist{
		reply:    "Try a pastel kurta.",
		products: []Product{{ID: "p1", Name: "Pastel Kurta"}},
	}
	m := NewModel(config.DefaultConfig(), stylist, "test", "MIT")

	cmd := m.Submit("festive outfit")
	if cmd == nil {
		t.Fatal("Submit() returned nil on idle conversation")
	}

	msg := cmd()
	resolved, ok := msg.(TurnResolvedMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want TurnResolvedMsg", msg)
	}
	if resolved.Content != "Try a pastel kurta." {
		t.Errorf("Content = %q", resolved.Content)
	}
	if resolved.SearchQuery != "festive outfit" {
		t.Errorf("SearchQuery = %q", resolved.SearchQuery)
	}
	if len(resolved.Products) != 1 {
		t.Errorf("Products = %+v", resolved.Products)
	}

	// The loading placeholder is excluded from the snapshot the pipeline
	// received: greeting plus the new user turn.
	if len(stylist.gotHistory) != 2 {
		t.Errorf("history length = %d, want 2", len(stylist.gotHistory))
	}

	m.Conversation.Resolve(resolved.TurnID, resolved.Content, resolved.Products, resolved.SearchQuery)
	if m.Conversation.Pending() {
		t.Error("conversation still pending after resolution")
	}
}

func TestSubmitErrorYieldsErroredMsg(t *testing.T) {
	stylist := &scriptedStylist{err: errors.New("pipeline broke")}
	m := NewModel(config.DefaultConfig(), stylist, "test", "MIT")

	cmd := m.Submit("anything")
	msg := cmd()

	errored, ok := msg.(TurnErroredMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want TurnErroredMsg", msg)
	}
	if errored.Err == nil {
		t.Error("TurnErroredMsg.Err is nil")
	}
}

func TestSubmitDroppedWhilePending(t *testing.T) {
	stylist := &scriptedStylist{reply: "ok"}
	m := NewModel(config.DefaultConfig(), stylist, "test", "MIT")

	if cmd := m.Submit("first"); cmd == nil {
		t.Fatal("first Submit() returned nil")
	}
	if cmd := m.Submit("second"); cmd != nil {
		t.Error("second Submit() should be dropped while the first is in flight")
	}
}
