// Package stylist implements the response-orchestration pipeline: one user
// utterance in, a model-generated stylist reply plus a best-effort set of
// shoppable products out.
//
// The pipeline coordinates three independent backends (chat completion
// model, cultural recommendation service, product search services) and is
// built to degrade rather than break: completion failures become a fixed
// apology string, tool failures become short "unable to fetch" results, and
// the search adapters below it substitute canned catalogs. An exception
// from an external collaborator never escapes this package.
//
// Provider support mirrors the completer abstraction: the orchestrator is
// provider-agnostic and talks to any Completer, with implementations for
// OpenAI-compatible endpoints (Groq by default), Anthropic, and Ollama.
package stylist

import (
	"context"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"styler/model"
)

// Completion is one model response: final text, or one or more tool calls
// the model wants executed before it finalizes.
type Completion struct {
	Content   string
	ToolCalls []model.ToolCall
}

// Completer abstracts the hosted language model endpoint. Implementations
// convert between provider-agnostic messages/tools and their native wire
// formats; no provider type leaks through this boundary.
type Completer interface {
	// Complete sends the messages with the given tools declared (nil
	// disables tool calling for the round) and returns the model's
	// response.
	Complete(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*Completion, error)

	// Model returns the active model name.
	Model() string

	// Ping checks if the backend is reachable. Used by --doctor only.
	Ping(ctx context.Context) error
}
