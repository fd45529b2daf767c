package main

import "github.com/charmbracelet/lipgloss"

var (
	colorText    = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#E4E4E4"}
	colorTextDim = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#6C6C6C"}
	colorPrimary = lipgloss.AdaptiveColor{Light: "#FF06B7", Dark: "#FF06B7"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#00AF87", Dark: "#00D787"}
	colorError   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F87"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#D78700", Dark: "#FFD75F"}
)

var (
	TitleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)

	SelectedStyle   = lipgloss.NewStyle().Foreground(colorPrimary).PaddingLeft(1)
	UnselectedStyle = lipgloss.NewStyle().Foreground(colorText).PaddingLeft(1)

	SuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(colorError)
	WarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	HelpStyle    = lipgloss.NewStyle().Foreground(colorTextDim).MarginTop(1)
	HelpSepStyle = lipgloss.NewStyle().Foreground(colorTextDim)
)

// FormatHelp renders a "key: action • key: action" help line, the same
// shape cmd/cli/tui uses for its footer.
func FormatHelp(items ...string) string {
	result := ""
	for i, item := range items {
		if i > 0 {
			result += HelpSepStyle.Render(" • ")
		}
		result += item
	}
	return HelpStyle.Render(result)
}
