package stylist

import (
	"context"
	"time"

	"styler/config"
	"styler/model"
)

// systemPrompt is the fixed persona prepended to every completion request.
const systemPrompt = `You are a professional fashion stylist AI assistant. You help users find trendy, culturally-aware outfit suggestions.

Key guidelines:
- Always be enthusiastic and helpful about fashion
- Consider the user's occasion, weather, and style preferences
- Use the available tools to get real product recommendations
- Provide specific, actionable fashion advice
- Include price ranges and styling tips
- Be culturally sensitive and inclusive

Available tools:
- getQlooSuggestion: For culturally-informed fashion recommendations
- searchHnM: For finding real products with prices from H&M

Always try to use both tools when relevant to provide comprehensive suggestions.`

// Fixed user-facing strings for the degraded paths. Model backend failures
// never surface as errors: the user gets the apology, the conversation
// stays usable.
const (
	apologyText    = "Sorry, I'm having trouble connecting to my fashion knowledge right now. Please try again!"
	noResponseText = "Sorry, I couldn't generate a response."
)

// Stylist is the response orchestrator. It owns the two-phase tool
// protocol: the model may request tools on the first round, then must
// finalize without tools on the second. Tool calling never recurses beyond
// that single round.
type Stylist struct {
	completer Completer
	toolbox   *Toolbox
	searcher  ProductSearcher
}

// NewStylist wires the orchestrator. searcher is also used by product
// extraction, independently of the searchHnM tool.
func NewStylist(completer Completer, toolbox *Toolbox, searcher ProductSearcher) *Stylist {
	return &Stylist{
		completer: completer,
		toolbox:   toolbox,
		searcher:  searcher,
	}
}

// Complete implements model.Stylist. It prepends the stylist persona,
// offers both tools, resolves any tool round, and returns the final reply
// text. Backend failures degrade to the fixed apology; the error return is
// always nil and exists only to satisfy the interface's defensive shape.
func (s *Stylist) Complete(ctx context.Context, history []model.Message) (string, error) {
	messages := make([]model.Message, 0, len(history)+1)
	messages = append(messages, model.Message{
		Role:      model.RoleSystem,
		Content:   systemPrompt,
		Timestamp: time.Now(),
	})
	messages = append(messages, history...)

	first, err := s.completer.Complete(ctx, messages, fashionTools())
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("completion failed: %v", err)
		}
		return apologyText, nil
	}

	if len(first.ToolCalls) == 0 {
		if first.Content == "" {
			return noResponseText, nil
		}
		return first.Content, nil
	}

	// Tool round: execute every requested call concurrently, append the
	// assistant's tool-call message and all results, then ask the model to
	// finalize with tools disabled.
	results := s.toolbox.DispatchAll(ctx, first.ToolCalls)

	transcript := append(messages, model.Message{
		Role:      model.RoleAssistant,
		Content:   first.Content,
		ToolCalls: first.ToolCalls,
		Timestamp: time.Now(),
	})
	for i, call := range first.ToolCalls {
		transcript = append(transcript, model.Message{
			Role:       model.RoleTool,
			Content:    results[i],
			ToolCallID: call.ID,
			Timestamp:  time.Now(),
		})
	}

	final, err := s.completer.Complete(ctx, transcript, nil)
	if err != nil {
		if config.DebugLog != nil {
			config.DebugLog.Printf("final completion failed: %v", err)
		}
		return apologyText, nil
	}
	if final.Content == "" {
		return noResponseText, nil
	}
	return final.Content, nil
}
