package model

import (
	"time"

	"github.com/google/uuid"
)

// Turn is one conversational unit as the UI sees it: a Message plus
// presentation state. The loading placeholder inserted after a user
// submission is a Turn with IsLoading set; it is replaced in place (by ID)
// once the pipeline resolves, and never mutated after that.
type Turn struct {
	ID        string
	Role      string
	Content   string
	Timestamp time.Time

	// Rendered caches the terminal-markdown rendering of Content.
	Rendered string

	IsLoading   bool
	Products    []Product
	SearchQuery string
}

func NewUserTurn(content string) Turn {
	return Turn{
		ID:        uuid.NewString(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
}

func NewLoadingTurn() Turn {
	return Turn{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Timestamp: time.Now(),
		IsLoading: true,
	}
}

func NewAssistantTurn(content string) Turn {
	return Turn{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: time.Now(),
	}
}
