package components

import (
	"strings"

	"github.com/theirongolddev/kitnet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Tab represents a single tab in the tab bar.
type Tab struct {
	Name   string
	Key    rune
	KeyPos int // position of the shortcut letter in the name (-1 if not in name)
}

// Tabs defines all available tabs.
var Tabs = []Tab{
	{Name: "Overview", Key: 'o', KeyPos: 0},
	{Name: "Stages", Key: 's', KeyPos: 0},
	{Name: "Materials", Key: 'm', KeyPos: 0},
	{Name: "Summary", Key: 'u', KeyPos: 1},
}

func renderTab(tab Tab, active bool) string {
	t := theme.Active

	if active {
		return lipgloss.NewStyle().
			Foreground(t.AccentBright).
			Background(t.SurfaceHover).
			Bold(true).
			Padding(0, 1).
			Render(tab.Name)
	}

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	name := []rune(tab.Name)
	var b strings.Builder
	b.WriteString(base.Render(" "))
	if tab.KeyPos >= 0 && tab.KeyPos < len(name) {
		b.WriteString(base.Render(string(name[:tab.KeyPos])))
		b.WriteString(keyStyle.Render(string(name[tab.KeyPos])))
		b.WriteString(base.Render(string(name[tab.KeyPos+1:])))
	} else {
		b.WriteString(base.Render(tab.Name))
		b.WriteString(keyStyle.Render("[" + string(tab.Key) + "]"))
	}
	b.WriteString(base.Render(" "))
	return b.String()
}

// TabVisualWidth returns the rendered width of a tab, used for mouse hit
// testing. It must stay in step with RenderTabBar.
func TabVisualWidth(tab Tab, active bool) int {
	return lipgloss.Width(renderTab(tab, active))
}

// RenderTabBar renders the single-row tab bar with the given active index.
// Tabs are separated by one column.
func RenderTabBar(activeIdx int, width int) string {
	t := theme.Active
	sep := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	parts := make([]string, len(Tabs))
	for i, tab := range Tabs {
		parts[i] = renderTab(tab, i == activeIdx)
	}

	return lipgloss.NewStyle().
		Background(t.Surface).
		Width(width).
		Render(strings.Join(parts, sep))
}

// TabIdxByKey returns the tab index for a given key press, or -1.
func TabIdxByKey(key rune) int {
	for i, tab := range Tabs {
		if tab.Key == key {
			return i
		}
	}
	return -1
}
