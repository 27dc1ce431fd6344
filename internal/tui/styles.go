// Package tui implements the terminal user interface using Bubble Tea.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - paper and ink tones
var (
	colorPaper     = lipgloss.Color("#FDF6EC")
	colorInk       = lipgloss.Color("#1F2933")
	colorIndigo    = lipgloss.Color("#5C6BC0")
	colorSlate     = lipgloss.Color("#7B8794")
	colorHighlight = lipgloss.Color("#FF7043")
	colorSuccess   = lipgloss.Color("#43A047")
	colorWarning   = lipgloss.Color("#FFB300")
	colorError     = lipgloss.Color("#E53935")
	colorMuted     = lipgloss.Color("#9E9E9E")
)

// Styles holds all the lipgloss styles for the TUI.
type Styles struct {
	// App container
	App lipgloss.Style

	// Header
	Header      lipgloss.Style
	HeaderTitle lipgloss.Style

	// List styles
	ListTitle lipgloss.Style

	// Product detail
	ProductName        lipgloss.Style
	ProductDescription lipgloss.Style
	Price              lipgloss.Style

	// Configuration sections
	SectionTitle   lipgloss.Style
	SectionFocused lipgloss.Style
	OptionSelected lipgloss.Style

	// Admin banner
	AdminBanner lipgloss.Style

	// General
	Subtle    lipgloss.Style
	Highlight lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	Box       lipgloss.Style
	HelpBar   lipgloss.Style
}

// DefaultStyles returns the default TUI styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorSlate).
			MarginBottom(1).
			Padding(0, 1),

		HeaderTitle: lipgloss.NewStyle().
			Foreground(colorIndigo).
			Bold(true),

		ListTitle: lipgloss.NewStyle().
			Foreground(colorIndigo).
			Bold(true).
			MarginBottom(1),

		ProductName: lipgloss.NewStyle().
			Foreground(colorIndigo).
			Bold(true).
			MarginBottom(1),

		ProductDescription: lipgloss.NewStyle().
			Foreground(colorPaper).
			MarginTop(1).
			MarginBottom(1),

		Price: lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true),

		SectionTitle: lipgloss.NewStyle().
			Foreground(colorSlate).
			Bold(true),

		SectionFocused: lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true),

		OptionSelected: lipgloss.NewStyle().
			Foreground(colorSuccess),

		AdminBanner: lipgloss.NewStyle().
			Foreground(colorInk).
			Background(colorWarning).
			Bold(true).
			Padding(0, 1),

		Subtle: lipgloss.NewStyle().
			Foreground(colorMuted),

		Highlight: lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true),

		Success: lipgloss.NewStyle().
			Foreground(colorSuccess),

		Box: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorSlate).
			Padding(1, 2),

		HelpBar: lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1),
	}
}
