package stylist

import (
	"context"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"styler/model"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// OpenAICompleter implements Completer against any OpenAI-compatible chat
// completions endpoint. The default base URL points at Groq.
type OpenAICompleter struct {
	client openai.Client
	model  string
}

// NewOpenAICompleter creates a completer for an OpenAI-compatible endpoint.
// Returns an error if the API key is missing; missing-credential handling
// is the caller's concern (degrade, don't crash).
func NewOpenAICompleter(baseURL, apiKey, modelName string) (*OpenAICompleter, error) {
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required for OpenAI-compatible endpoints")
	}
	if modelName == "" {
		modelName = "llama-3.1-8b-instant"
	}

	client := openai.NewClient(
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
	)

	return &OpenAICompleter{
		client: client,
		model:  modelName,
	}, nil
}

// Complete implements Completer.
func (c *OpenAICompleter) Complete(ctx context.Context, messages []model.Message, tools []mcptypes.Tool) (*Completion, error) {
	params := openai.ChatCompletionNewParams{
		Messages:            convertToOpenAIMessages(messages),
		Model:               openai.ChatModel(c.model),
		Temperature:         openai.Float(0.7),
		MaxCompletionTokens: openai.Int(1000),
	}
	if len(tools) > 0 {
		params.Tools = convertToolsToOpenAI(tools)
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	msg := resp.Choices[0].Message
	completion := &Completion{Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		completion.ToolCalls = append(completion.ToolCalls, model.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: parseToolArguments(tc.Function.Arguments),
		})
	}

	return completion, nil
}

// Model implements Completer.
func (c *OpenAICompleter) Model() string {
	return c.model
}

// Ping implements Completer by listing models.
func (c *OpenAICompleter) Ping(ctx context.Context) error {
	if _, err := c.client.Models.List(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}

// convertToOpenAIMessages converts provider-agnostic messages to the
// OpenAI wire format, including assistant tool-call messages and tool
// results keyed by call ID.
func convertToOpenAIMessages(messages []model.Message) []openai.ChatCompletionMessageParamUnion {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case model.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))

		case model.RoleAssistant:
			if len(msg.ToolCalls) == 0 {
				result = append(result, openai.AssistantMessage(msg.Content))
				continue
			}
			assistant := openai.ChatCompletionAssistantMessageParam{}
			if msg.Content != "" {
				assistant.Content.OfString = openai.String(msg.Content)
			}
			for _, call := range msg.ToolCalls {
				assistant.ToolCalls = append(assistant.ToolCalls, openai.ChatCompletionMessageToolCallUnionParam{
					OfFunction: &openai.ChatCompletionMessageFunctionToolCallParam{
						ID: call.ID,
						Function: openai.ChatCompletionMessageFunctionToolCallFunctionParam{
							Name:      call.Name,
							Arguments: marshalToolArguments(call.Arguments),
						},
					},
				})
			}
			result = append(result, openai.ChatCompletionMessageParamUnion{OfAssistant: &assistant})

		case model.RoleTool:
			result = append(result, openai.ToolMessage(msg.Content, msg.ToolCallID))

		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}

	return result
}
