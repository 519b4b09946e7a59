package ui

import "github.com/charmbracelet/lipgloss"

var (
	dimColor     = lipgloss.Color("7")
	accentColor  = lipgloss.Color("12")
	successColor = lipgloss.Color("10")
	warningColor = lipgloss.Color("11")
	dangerColor  = lipgloss.Color("9")

	// User message style
	UserStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	// Assistant message style
	AssistantStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	// System/timestamp style
	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// Title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	// Status bar style
	StatusStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	// Product card styles
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true)

	PriceStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	InStockStyle = lipgloss.NewStyle().
			Foreground(successColor)

	OutOfStockStyle = lipgloss.NewStyle().
			Foreground(dangerColor)

	LimitedStyle = lipgloss.NewStyle().
			Foreground(warningColor)
)
