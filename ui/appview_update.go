package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"styler/config"
	appmodel "styler/model"
)

func (a AppView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
	)

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

		// Header, textarea and status bar take 6 rows.
		viewportHeight := a.height - 6
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		firstSize := !a.ready
		if firstSize {
			a.viewport = viewport.New(a.width, viewportHeight)
			a.ready = true
		} else {
			a.viewport.Width = a.width
			a.viewport.Height = viewportHeight
		}
		a.textarea.SetWidth(a.width - 2)

		a.updateViewportContent(true)

		if firstSize {
			// Render whatever the conversation opened with, now that the
			// markdown renderer has a width.
			var cmds []tea.Cmd
			for _, t := range a.dataModel.Conversation.Turns() {
				if t.Content != "" && t.Rendered == "" {
					cmds = append(cmds, a.renderMarkdownAsync(t.ID, t.Content))
				}
			}
			return a, tea.Batch(cmds...)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.dataModel.Conversation.Pending() {
			return a, nil
		}
		var cmd tea.Cmd
		a.loadingSpinner, cmd = a.loadingSpinner.Update(msg)
		a.updateViewportContent(false)
		return a, cmd

	case appmodel.TurnResolvedMsg:
		a.dataModel.Conversation.Resolve(msg.TurnID, msg.Content, msg.Products, msg.SearchQuery)
		a.updateViewportContent(true)
		return a, a.renderMarkdownAsync(msg.TurnID, msg.Content)

	case appmodel.TurnErroredMsg:
		if config.DebugLog != nil {
			config.DebugLog.Printf("turn %s errored: %v", msg.TurnID, msg.Err)
		}
		a.dataModel.Conversation.Fail(msg.TurnID)
		a.updateViewportContent(true)
		return a, a.renderMarkdownAsync(msg.TurnID, appmodel.ErrorText)

	case appmodel.TurnRenderedMsg:
		a.dataModel.Conversation.SetRendered(msg.TurnID, msg.Rendered)
		a.updateViewportContent(true)
		return a, nil

	case clipboardCopiedMsg:
		if msg.Err != nil {
			a.statusNote = "copy failed"
		} else {
			a.statusNote = "copied " + msg.URL
		}
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {

		case "ctrl+c":
			a.dataModel.Quitting = true
			return a, tea.Quit

		case "alt+h":
			a.showHelp = !a.showHelp
			return a, nil

		case "tab":
			a.suggestionIdx = (a.suggestionIdx + 1) % len(quickSuggestions)
			a.textarea.SetValue(quickSuggestions[a.suggestionIdx])
			a.textarea.CursorEnd()
			return a, nil

		case "ctrl+y":
			return a, a.copyLastProductLink()

		case "enter":
			input := strings.TrimSpace(a.textarea.Value())
			if input == "" {
				return a, nil
			}
			cmd := a.dataModel.Submit(input)
			if cmd == nil {
				// A pipeline is in flight; drop the submission.
				return a, nil
			}
			a.textarea.Reset()
			a.statusNote = ""
			userTurns := a.dataModel.Conversation.Turns()
			userID := userTurns[len(userTurns)-2].ID
			a.updateViewportContent(true)
			return a, tea.Batch(
				cmd,
				a.loadingSpinner.Tick,
				a.renderMarkdownAsync(userID, input),
			)
		}
	}

	if a.showHelp {
		return a, nil
	}

	a.textarea, tiCmd = a.textarea.Update(msg)
	a.viewport, vpCmd = a.viewport.Update(msg)

	return a, tea.Batch(tiCmd, vpCmd)
}
