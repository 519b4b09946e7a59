package model

// Bubbletea messages emitted by the orchestration pipeline and the UI's
// background renderer.

// TurnResolvedMsg carries the pipeline's result back to the update loop.
type TurnResolvedMsg struct {
	TurnID      string
	Content     string
	Products    []Product
	SearchQuery string
}

// TurnErroredMsg signals that the pipeline itself failed (defensive
// catch-all; adapters normally swallow their own errors).
type TurnErroredMsg struct {
	TurnID string
	Err    error
}

// TurnRenderedMsg carries an async markdown rendering result.
type TurnRenderedMsg struct {
	TurnID   string
	Rendered string
}
