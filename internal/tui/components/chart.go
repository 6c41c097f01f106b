package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/kitnet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// Bar is one column of a BarChart.
type Bar struct {
	Label string
	Value float64
}

// BarChart renders one vertical bar per category, each in the next theme
// series colour, with a currency Y axis and the labels under the bars.
// Areas too small for a chart get one line per bar instead.
func BarChart(bars []Bar, width, height int) string {
	if len(bars) == 0 {
		return ""
	}
	n := len(bars)

	maxVal := 0.0
	for _, b := range bars {
		maxVal = max(maxVal, b.Value)
	}
	if maxVal <= 0 {
		maxVal = 1
	}

	// Y-axis: nice tick step, doubled until the ticks fit the height
	tickStep := chartTickStep(maxVal)
	maxIntervals := max(height/2, 2)
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := max(int(math.Round(ceiling/tickStep)), 1)
	rowsPerTick := max(height/numIntervals, 2)
	chartH := rowsPerTick * numIntervals

	yLabelW := max(len(formatChartLabel(ceiling))+1, 4)
	chartW := width - yLabelW - 1

	gap := 1
	if n == 1 {
		gap = 0
	}
	barW := (chartW - (n-1)*gap) / n
	if width < 15 || height < 3 || barW < 2 {
		return barList(bars)
	}

	// Bars widen up to their longest label, never past the chart
	longest := 0
	for _, b := range bars {
		longest = max(longest, lipgloss.Width(b.Label))
	}
	barW = min(barW, max(6, longest))
	axisLen := n*barW + (n-1)*gap

	t := theme.Active
	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	tickLabels := make(map[int]string, numIntervals)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep * float64(i))
	}

	var out strings.Builder
	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)

		out.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		out.WriteString(axisStyle.Render("│"))

		for i, b := range bars {
			if i > 0 && gap > 0 {
				out.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			style := lipgloss.NewStyle().Foreground(t.SeriesColor(i)).Background(t.Surface)
			switch {
			case b.Value >= rowTop:
				out.WriteString(style.Render(strings.Repeat("█", barW)))
			case b.Value > rowBottom:
				idx := int((b.Value - rowBottom) / (rowTop - rowBottom) * 8)
				idx = min(max(idx, 1), 8)
				out.WriteString(style.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				out.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		out.WriteString("\n")
	}

	out.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	out.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))
	out.WriteString("\n")

	// Labels sit under their bar, cut to the bar width
	out.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
	for i, b := range bars {
		if i > 0 && gap > 0 {
			out.WriteString(blank.Render(strings.Repeat(" ", gap)))
		}
		style := lipgloss.NewStyle().Foreground(t.SeriesColor(i)).Background(t.Surface)
		out.WriteString(style.Render(padRight(b.Label, barW)))
	}

	return out.String()
}

// barList is the fallback for areas too small to draw bars in.
func barList(bars []Bar) string {
	t := theme.Active
	labelW := 0
	for _, b := range bars {
		labelW = max(labelW, lipgloss.Width(b.Label))
	}

	lines := make([]string, len(bars))
	for i, b := range bars {
		dot := lipgloss.NewStyle().Foreground(t.SeriesColor(i)).Render("■")
		lines[i] = dot + " " + lipgloss.NewStyle().Foreground(t.TextMuted).Render(padRight(b.Label, labelW)) +
			" " + lipgloss.NewStyle().Foreground(t.TextPrimary).Render(formatChartLabel(b.Value))
	}
	return strings.Join(lines, "\n")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

// formatChartLabel abbreviates a currency amount the Brazilian way:
// 28800 -> "28,8 mil", 1200000 -> "1,2 mi".
func formatChartLabel(v float64) string {
	abbrev := func(x float64, unit string) string {
		if x == math.Trunc(x) {
			return fmt.Sprintf("%.0f %s", x, unit)
		}
		return strings.Replace(fmt.Sprintf("%.1f %s", x, unit), ".", ",", 1)
	}
	switch {
	case v >= 1e6:
		return abbrev(v/1e6, "mi")
	case v >= 1e3:
		return abbrev(v/1e3, "mil")
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
	}
}
