// Package components provides reusable TUI widgets for the kitnet page.
package components

import (
	"strings"

	"github.com/theirongolddev/kitnet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Metric is one headline number on the overview.
type Metric struct {
	Label     string
	Value     string
	Note      string // optional third line
	Highlight bool   // accent border, used for the grand total
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

func cardStyle(outerWidth int, border lipgloss.Color) lipgloss.Style {
	contentWidth := outerWidth - 2
	if contentWidth < 10 {
		contentWidth = 10
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(contentWidth).
		Padding(0, 1)
}

// MetricCard renders m in a card outerWidth cells wide, border included.
func MetricCard(m Metric, outerWidth int) string {
	t := theme.Active

	border := t.Border
	valueColor := t.TextPrimary
	if m.Highlight {
		border = t.BorderAccent
		valueColor = t.Green
	}

	innerW := CardInnerWidth(outerWidth)
	content := lipgloss.NewStyle().Foreground(t.TextMuted).Render(truncate(m.Label, innerW)) + "\n" +
		lipgloss.NewStyle().Foreground(valueColor).Bold(true).Render(truncate(m.Value, innerW))
	if m.Note != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render(truncate(m.Note, innerW))
	}

	return cardStyle(outerWidth, border).Render(content)
}

// MetricCardRow renders metric cards side by side, summing to totalWidth.
// Cards in a row share the height of the tallest.
func MetricCardRow(metrics []Metric, totalWidth int) string {
	if len(metrics) == 0 {
		return ""
	}

	widths := LayoutRow(totalWidth, len(metrics))
	hasNote := false
	for _, m := range metrics {
		hasNote = hasNote || m.Note != ""
	}

	rendered := make([]string, 0, len(metrics))
	for i, m := range metrics {
		if hasNote && m.Note == "" {
			m.Note = " "
		}
		rendered = append(rendered, MetricCard(m, widths[i]))
	}
	return CardRow(rendered)
}

// ContentCard renders a bordered content card with an optional title.
// outerWidth controls the total rendered width including border.
func ContentCard(title, body string, outerWidth int) string {
	t := theme.Active

	content := ""
	if title != "" {
		content = lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(title) + "\n"
	}
	content += body

	return cardStyle(outerWidth, t.Border).Render(content)
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// CardInnerWidth returns the usable text width inside a ContentCard
// given its outer width (subtracts border + padding).
func CardInnerWidth(outerWidth int) int {
	w := outerWidth - 4
	if w < 10 {
		w = 10
	}
	return w
}

// FieldList lays out label/value pairs in two aligned columns, w cells wide.
// Empty values show as a dash; long values are cut with an ellipsis.
func FieldList(fields [][2]string, w int) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	labelW := 0
	for _, f := range fields {
		labelW = max(labelW, lipgloss.Width(f[0]))
	}
	valueW := max(w-labelW-2, 8)

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("\n")
		}
		value := f[1]
		if strings.TrimSpace(value) == "" {
			value = "—"
		}
		b.WriteString(labelStyle.Render(padRight(f[0], labelW)))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(truncate(value, valueW)))
	}
	return b.String()
}

// truncate cuts s to at most w cells, ending in an ellipsis when cut.
func truncate(s string, w int) string {
	if lipgloss.Width(s) <= w {
		return s
	}
	return padRight(s, w)
}
