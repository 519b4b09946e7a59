package model

import "time"

// Message roles. Tool results are keyed back to the originating call via
// ToolCallID, matching the wire protocol of every supported provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is a provider-agnostic chat message. This is the shape that
// crosses the completion boundary; providers convert it to their native
// formats and back.
type Message struct {
	Role      string
	Content   string
	Timestamp time.Time

	// ToolCalls is set on assistant messages that request tool execution.
	ToolCalls []ToolCall
	// ToolCallID is set on tool-role messages carrying a tool result.
	ToolCallID string
}

// ToolCall is a structured request from the model to execute a named
// function. Resolved exactly once; the result is fed back as a tool-role
// message carrying the same ID.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}
