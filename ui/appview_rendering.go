package ui

import (
	"fmt"
	"strings"
	"time"

	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	gomarkdown "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"
	"github.com/mattn/go-runewidth"

	"styler/config"
	appmodel "styler/model"
)

const loadingText = "Styling your answer..."

func (a *AppView) updateViewportContent(gotoBottom bool) {
	turns := a.dataModel.Conversation.Turns()
	if len(turns) == 0 {
		a.viewport.SetContent("No messages yet. Start chatting!")
		return
	}

	var content strings.Builder

	for _, turn := range turns {
		timestamp := DimStyle.Render(turn.Timestamp.Format("[15:04]"))

		var roleStyle = DimStyle
		var roleName string
		switch turn.Role {
		case appmodel.RoleUser:
			roleStyle = UserStyle
			roleName = "You"
		case appmodel.RoleAssistant:
			roleStyle = AssistantStyle
			roleName = "Stylist"
		default:
			roleName = "System"
		}

		role := roleStyle.Render(roleName)

		if turn.IsLoading {
			content.WriteString(fmt.Sprintf("%s %s\n%s %s\n\n",
				timestamp, role, a.loadingSpinner.View(), DimStyle.Render(loadingText)))
			continue
		}

		rendered := turn.Rendered
		if rendered == "" {
			rendered = turn.Content
		}

		if turn.Role == appmodel.RoleUser {
			content.WriteString(formatUserTurn(timestamp, role, rendered))
			continue
		}

		content.WriteString(fmt.Sprintf("%s %s\n%s\n", timestamp, role, rendered))

		if len(turn.Products) > 0 {
			content.WriteString(a.renderProducts(turn.Products))
		}
		content.WriteString("\n")
	}

	a.viewport.SetContent(content.String())
	if gotoBottom {
		a.viewport.GotoBottom()
	}
}

func formatUserTurn(timestamp, role, content string) string {
	greenBold := "\x1b[32;1m"
	reset := "\x1b[0m"
	bar := greenBold + "┃" + reset

	var result strings.Builder
	result.WriteString(fmt.Sprintf("%s %s %s\n", bar, timestamp, role))
	for _, line := range strings.Split(content, "\n") {
		result.WriteString(fmt.Sprintf("%s %s\n", bar, line))
	}
	result.WriteString("\n")
	return result.String()
}

// renderProducts draws one bordered card per product. Cards are stacked
// vertically; terminals narrower than a card get truncated lines rather
// than wrapped ones so the borders stay intact.
func (a *AppView) renderProducts(products []appmodel.Product) string {
	cardWidth := a.width - 8
	if cardWidth > 60 {
		cardWidth = 60
	}
	if cardWidth < 20 {
		cardWidth = 20
	}
	innerWidth := cardWidth - 4

	var out strings.Builder
	for _, p := range products {
		var lines []string

		lines = append(lines, CardTitleStyle.Render(runewidth.Truncate(p.Name, innerWidth, "…")))

		meta := fmt.Sprintf("%s  ·  %s", PriceStyle.Render(p.Price), availabilityBadge(p.Availability))
		lines = append(lines, meta)

		if p.Brand != "" {
			lines = append(lines, DimStyle.Render(runewidth.Truncate(p.Brand, innerWidth, "…")))
		}
		if p.CulturalInsight != "" {
			lines = append(lines, runewidth.Truncate("✨ "+p.CulturalInsight, innerWidth, "…"))
		}
		if p.URL != "" {
			lines = append(lines, DimStyle.Render(runewidth.Truncate(p.URL, innerWidth, "…")))
		}

		card := CardStyle.Width(cardWidth).Render(strings.Join(lines, "\n"))
		out.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(card))
		out.WriteString("\n")
	}
	return out.String()
}

func availabilityBadge(av appmodel.Availability) string {
	switch av {
	case appmodel.InStock:
		return InStockStyle.Render("in stock")
	case appmodel.OutOfStock:
		return OutOfStockStyle.Render("out of stock")
	case appmodel.Limited:
		return LimitedStyle.Render("limited")
	default:
		return DimStyle.Render(string(av))
	}
}

func (a AppView) renderMarkdownAsync(turnID, content string) tea.Cmd {
	width := a.width
	return func() tea.Msg {
		start := time.Now()

		// Autolink stays disabled so URLs survive as plain text and the
		// terminal emulator handles click detection.
		customExt := markdown.Extensions() &^ parser.Autolink
		p := parser.NewWithExtensions(customExt)
		r := markdown.NewRenderer(width-4, 0)
		doc := p.Parse([]byte(content))
		rendered := gomarkdown.Render(doc, r)

		if config.DebugLog != nil {
			config.DebugLog.Printf("markdown rendered for turn %s in %v", turnID, time.Since(start))
		}

		return appmodel.TurnRenderedMsg{
			TurnID:   turnID,
			Rendered: strings.TrimRight(string(rendered), "\n"),
		}
	}
}

// copyLastProductLink puts the most recently shown product's link on the
// system clipboard.
func (a AppView) copyLastProductLink() tea.Cmd {
	products := a.dataModel.Conversation.LastProducts()
	if len(products) == 0 || products[0].URL == "" {
		return func() tea.Msg {
			return clipboardCopiedMsg{Err: fmt.Errorf("no product link to copy")}
		}
	}
	url := products[0].URL
	return func() tea.Msg {
		return clipboardCopiedMsg{URL: url, Err: clipboard.WriteAll(url)}
	}
}
