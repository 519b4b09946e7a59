package model

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"styler/config"
)

// pipelineTimeout bounds one whole submission: completion, tool round, and
// product extraction together. Individual network calls carry their own
// shorter ceilings inside the adapters.
const pipelineTimeout = 120 * time.Second

// Submit starts the orchestration pipeline for one user input. It appends
// the user turn and loading placeholder synchronously, then returns the
// command that resolves the placeholder. Returns nil if a pipeline is
// already in flight (the submission is dropped, not queued).
func (m *Model) Submit(input string) tea.Cmd {
	loadingID, ok := m.Conversation.Begin(input)
	if !ok {
		return nil
	}

	// Snapshot history before handing off to the goroutine; the turn list
	// must only be touched from the update loop.
	history := m.Conversation.History()
	stylist := m.Stylist

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), pipelineTimeout)
		defer cancel()

		if config.DebugLog != nil {
			config.DebugLog.Printf("pipeline started for turn %s", loadingID)
		}

		reply, err := stylist.Complete(ctx, history)
		if err != nil {
			if config.DebugLog != nil {
				config.DebugLog.Printf("pipeline failed for turn %s: %v", loadingID, err)
			}
			return TurnErroredMsg{TurnID: loadingID, Err: err}
		}

		products := stylist.ExtractProducts(ctx, reply, input)

		return TurnResolvedMsg{
			TurnID:      loadingID,
			Content:     reply,
			Products:    products,
			SearchQuery: input,
		}
	}
}
