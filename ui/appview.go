package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	appmodel "styler/model"
)

// quickSuggestions cycle through the input placeholder with Tab so a new
// user always has a prompt to start from.
var quickSuggestions = []string{
	"Summer outfits",
	"Work attire",
	"Casual looks",
	"Date night",
}

type AppView struct {
	// Reference to core data model
	dataModel *appmodel.Model

	// UI components
	viewport viewport.Model
	textarea textarea.Model

	// Window state
	width  int
	height int
	ready  bool

	loadingSpinner spinner.Model

	// Index into quickSuggestions for Tab cycling; -1 before first press.
	suggestionIdx int

	// Result of the last clipboard copy, shown in the status bar.
	statusNote string

	showHelp bool
}

func NewAppView(dataModel *appmodel.Model) AppView {
	ta := textarea.New()
	ta.Placeholder = "Ask about outfits, styles, or products (Tab cycles suggestions)..."
	ta.Focus()
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetHeight(3)
	ta.SetWidth(80)

	// Alt+Enter inserts a newline; plain Enter submits and is handled in
	// the update loop.
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))

	ta.SetPromptFunc(2, func(lineIdx int) string {
		if lineIdx == 0 {
			return "> "
		}
		return "| "
	})

	vp := viewport.New(0, 0)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(accentColor)

	return AppView{
		dataModel:      dataModel,
		textarea:       ta,
		viewport:       vp,
		loadingSpinner: sp,
		suggestionIdx:  -1,
		ready:          false,
	}
}

func (a AppView) Init() tea.Cmd {
	// Markdown rendering waits for the first WindowSizeMsg so the renderer
	// knows the real terminal width.
	return textarea.Blink
}

func (a AppView) View() string {
	if !a.ready {
		return "Loading Styler..."
	}

	if a.showHelp {
		return a.renderHelp()
	}

	header := TitleStyle.Render("Styler") + DimStyle.Render("  AI Fashion Stylist")

	status := a.statusLine()

	return fmt.Sprintf(
		"%s\n%s\n%s\n%s",
		header,
		a.viewport.View(),
		a.textarea.View(),
		status,
	)
}

func (a AppView) statusLine() string {
	var parts []string

	if a.dataModel.Conversation.Pending() {
		parts = append(parts, a.loadingSpinner.View()+" thinking")
	}
	if a.statusNote != "" {
		parts = append(parts, a.statusNote)
	}
	parts = append(parts, "Alt+H help", "Ctrl+C quit")

	return StatusStyle.Render(strings.Join(parts, "  •  "))
}

func (a AppView) renderHelp() string {
	help := `Styler ` + a.dataModel.Version + `

  Enter        Send message
  Alt+Enter    New line in input
  Tab          Cycle quick suggestions
  Ctrl+Y       Copy last product link to clipboard
  PgUp/PgDn    Scroll transcript
  Alt+H        Toggle this help
  Ctrl+C       Quit

Press Alt+H to return to the chat.`

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		CardStyle.Render(help))
}
