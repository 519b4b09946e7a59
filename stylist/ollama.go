package stylist

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/ollama/ollama/api"

	"styler/model"
)

// OllamaCompleter implements Completer against a local Ollama server.
// No credential is required; a missing server surfaces as a transport
// error, which the orchestrator degrades like any other failure.
type OllamaCompleter struct {
	client *api.Client
	model  string
}

func NewOllamaCompleter(baseURL, modelName string) (*OllamaCompleter, error) {
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	if modelName == "" {
		modelName = "llama3.1:latest"
	}

	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	return &OllamaCompleter{
		client: api.NewClient(parsedURL, http.DefaultClient),
		model:  modelName,
	}, nil
}

// Complete implements Completer with a non-streamed chat request; the
// orchestrator only needs the final message.
func (c *OllamaCompleter) Complete(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*Completion, error) {
	req := &api.ChatRequest{
		Model:    c.model,
		Messages: convertToOllamaMessages(messages),
		Stream:   func(b bool) *bool { return &b }(false),
	}
	if len(tools) > 0 {
		req.Tools = convertToolsToOllama(tools)
	}

	completion := &Completion{}
	err := c.client.Chat(ctx, req, func(resp api.ChatResponse) error {
		completion.Content += resp.Message.Content
		for i, call := range resp.Message.ToolCalls {
			completion.ToolCalls = append(completion.ToolCalls, model.ToolCall{
				// Ollama does not assign call IDs; synthesize stable ones
				// so tool results stay keyed to their originating call.
				ID:        fmt.Sprintf("call_%d", i),
				Name:      call.Function.Name,
				Arguments: call.Function.Arguments,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ollama chat failed: %w", err)
	}

	return completion, nil
}

// Model implements Completer.
func (c *OllamaCompleter) Model() string {
	return c.model
}

// Ping implements Completer by listing local models.
func (c *OllamaCompleter) Ping(ctx context.Context) error {
	if _, err := c.client.List(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// convertToOllamaMessages maps messages to the Ollama API shape. Ollama
// has no tool-result role keying; tool results ride on the "tool" role
// with content only.
func convertToOllamaMessages(messages []model.Message) []api.Message {
	result := make([]api.Message, len(messages))
	for i, msg := range messages {
		result[i] = api.Message{
			Role:    msg.Role,
			Content: msg.Content,
		}
		for _, call := range msg.ToolCalls {
			result[i].ToolCalls = append(result[i].ToolCalls, api.ToolCall{
				Function: api.ToolCallFunction{
					Name:      call.Name,
					Arguments: call.Arguments,
				},
			})
		}
	}
	return result
}
