package stylist

import (
	"context"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"styler/model"
)

// unavailableCompleter stands in when no completion backend could be
// constructed (missing API key, unknown provider). Every call fails with
// the construction error, which the orchestrator degrades to its apology
// text, so the app still starts and the conversation stays usable.
type unavailableCompleter struct {
	reason error
}

// NewUnavailableCompleter returns a Completer whose every call fails with
// reason.
func NewUnavailableCompleter(reason error) Completer {
	return unavailableCompleter{reason: reason}
}

func (u unavailableCompleter) Complete(_ context.Context, _ []model.Message, _ []mcptypes.Tool) (*Completion, error) {
	return nil, u.reason
}

func (u unavailableCompleter) Model() string { return "unavailable" }

func (u unavailableCompleter) Ping(_ context.Context) error { return u.reason }
