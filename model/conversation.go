package model

// Conversation is the ordered, append-only turn log. It is the only shared
// mutable state in the application and is only ever touched from the
// bubbletea update loop, so no locking is needed beyond replace-by-ID
// semantics: a turn is never mutated in place, a new value is spliced in at
// the same position.
type Conversation struct {
	turns []Turn

	// pending is true while an orchestration pipeline is in flight for the
	// most recent submission. Enforced as a flag, not a queue: submissions
	// while pending are dropped at the input boundary.
	pending bool
}

// NewConversation returns a conversation opened with the canned greeting.
func NewConversation() *Conversation {
	return &Conversation{
		turns: []Turn{NewAssistantTurn(GreetingText)},
	}
}

// GreetingText is the assistant turn every conversation opens with.
const GreetingText = "👋 Hi! I'm your AI Fashion Stylist! I can help you find trendy outfits, " +
	"suggest styles for any occasion, and show you real products from stores like H&M. " +
	"What kind of look are you going for today?"

// Turns returns the turn list. Callers must not retain or mutate it.
func (c *Conversation) Turns() []Turn {
	return c.turns
}

func (c *Conversation) Pending() bool {
	return c.pending
}

// Begin appends the user turn and its loading placeholder, marks the
// conversation pending, and returns the placeholder's ID for later
// resolution. Returns false if a pipeline is already in flight.
func (c *Conversation) Begin(input string) (loadingID string, ok bool) {
	if c.pending {
		return "", false
	}

	loading := NewLoadingTurn()
	c.turns = append(c.turns, NewUserTurn(input), loading)
	c.pending = true
	return loading.ID, true
}

// Resolve replaces the loading placeholder with the final assistant turn.
func (c *Conversation) Resolve(loadingID, content string, products []Product, searchQuery string) {
	c.replace(loadingID, Turn{
		Role:        RoleAssistant,
		Content:     content,
		Products:    products,
		SearchQuery: searchQuery,
	})
}

// Fail replaces the loading placeholder with the fixed apology turn.
// No products, no error detail: raw errors never reach the transcript.
func (c *Conversation) Fail(loadingID string) {
	c.replace(loadingID, Turn{
		Role:    RoleAssistant,
		Content: ErrorText,
	})
}

// ErrorText is the only error state ever visible in the transcript.
const ErrorText = "Sorry, I encountered an error. Please try again."

func (c *Conversation) replace(loadingID string, with Turn) {
	for i, t := range c.turns {
		if t.ID != loadingID {
			continue
		}
		with.ID = t.ID
		with.Timestamp = t.Timestamp
		c.turns[i] = with
		c.pending = false
		return
	}
	// Placeholder not found: resolution raced a reset. Drop the pending
	// flag so input is not wedged forever.
	c.pending = false
}

// SetRendered caches the markdown rendering for a turn.
func (c *Conversation) SetRendered(turnID, rendered string) {
	for i, t := range c.turns {
		if t.ID == turnID {
			t.Rendered = rendered
			c.turns[i] = t
			return
		}
	}
}

// History converts the resolved transcript to completion messages. Loading
// placeholders and the greeting's products never cross this boundary.
func (c *Conversation) History() []Message {
	messages := make([]Message, 0, len(c.turns))
	for _, t := range c.turns {
		if t.IsLoading {
			continue
		}
		messages = append(messages, Message{
			Role:      t.Role,
			Content:   t.Content,
			Timestamp: t.Timestamp,
		})
	}
	return messages
}

// LastProducts returns the products attached to the most recent resolved
// turn, or nil. Used by the UI's clipboard binding.
func (c *Conversation) LastProducts() []Product {
	for i := len(c.turns) - 1; i >= 0; i-- {
		if len(c.turns[i].Products) > 0 {
			return c.turns[i].Products
		}
	}
	return nil
}
