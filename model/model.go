package model

import (
	"context"

	"styler/config"
)

// Stylist abstracts the response orchestration pipeline (completion plus
// product extraction). Defined here rather than in the stylist package so
// the command layer can depend on it without an import cycle, and so tests
// can substitute a mock.
type Stylist interface {
	// Complete turns conversation history into the assistant's reply text.
	// Never returns an error for backend failures; those degrade to a
	// fixed apology string inside the orchestrator.
	Complete(ctx context.Context, history []Message) (string, error)

	// ExtractProducts finds shoppable products matching the reply. A nil
	// slice means the extraction pipeline itself broke; an empty non-nil
	// slice means it ran and found nothing.
	ExtractProducts(ctx context.Context, replyText, userQuery string) []Product
}

// Model holds the core application data and business logic state.
type Model struct {
	Config       *config.Config
	Stylist      Stylist
	Conversation *Conversation

	Quitting bool

	Version string
	License string
}

// NewModel creates the application model with a fresh conversation.
func NewModel(cfg *config.Config, stylist Stylist, version, license string) *Model {
	return &Model{
		Config:       cfg,
		Stylist:      stylist,
		Conversation: NewConversation(),
		Version:      version,
		License:      license,
	}
}
