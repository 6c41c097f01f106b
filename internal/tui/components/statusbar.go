package components

import (
	"strings"

	"github.com/theirongolddev/kitnet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left,
// an optional message and the grand total on the right.
func RenderStatusBar(width int, hint, message, total string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Width(width)
	totalStyle := lipgloss.NewStyle().
		Foreground(t.Green).
		Background(t.Surface).
		Bold(true)
	msgStyle := lipgloss.NewStyle().
		Foreground(t.Yellow).
		Background(t.Surface)

	left := " [?]help  [q]uit"
	if hint != "" {
		left += "  " + hint
	}

	right := ""
	if message != "" {
		right = msgStyle.Render(message) + style.UnsetWidth().Render("  ")
	}
	if total != "" {
		right += totalStyle.Render(total) + style.UnsetWidth().Render(" ")
	}

	// Drop the hint before the total when both don't fit
	if lipgloss.Width(left)+lipgloss.Width(right) > width {
		left = " [?]help  [q]uit"
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	bar := style.UnsetWidth().Render(left)
	bar += style.UnsetWidth().Render(strings.Repeat(" ", padding))
	bar += right

	return style.Render(bar)
}

