package tui

import (
	"strings"

	"github.com/theirongolddev/kitnet/internal/cli"
	"github.com/theirongolddev/kitnet/internal/model"
	"github.com/theirongolddev/kitnet/internal/pipeline"
	"github.com/theirongolddev/kitnet/internal/tui/components"
	"github.com/theirongolddev/kitnet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderSummaryTab(cw int) string {
	t := theme.Active
	bd := a.breakdown
	var b strings.Builder

	// Row 1: controls + totals
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Resumo do Orçamento", a.renderControls(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Totais", a.renderTotals(), cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Resumo do Orçamento", a.renderControls(), halves[0]),
			components.ContentCard("Totais", a.renderTotals(), halves[1]),
		}))
	}
	b.WriteString("\n")

	// Row 2: bar chart of the cost series
	points := pipeline.Chart(bd)
	bars := make([]components.Bar, len(points))
	for i, p := range points {
		bars[i] = components.Bar{Label: p.Label, Value: p.Value}
	}
	innerW := components.CardInnerWidth(cw)
	chartH := 10
	if a.isCompactLayout() {
		chartH = 8
	}
	b.WriteString(components.ContentCard("Composição do Custo",
		components.BarChart(bars, innerW, chartH), cw))
	b.WriteString("\n")

	// Row 3: share of the total
	shares := pipeline.Shares(bd)
	labelW := 0
	for _, s := range shares {
		labelW = max(labelW, lipgloss.Width(s.Label))
	}
	barW := innerW - labelW - 22
	if barW > 50 {
		barW = 50
	}
	var sb strings.Builder
	for i, s := range shares {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(components.ShareBar(s.Label, s.Fraction, cli.FormatBRL(s.Value), t.SeriesColor(i), labelW, barW))
	}
	if note := a.cat.Project.LaborNote; note != "" {
		sb.WriteString("\n\n")
		sb.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Italic(true).
			Render(hangingIndent(note, innerW, 0)))
	}
	b.WriteString(components.ContentCard("Participação no Total", sb.String(), cw))

	return b.String()
}

func (a App) renderControls() string {
	t := theme.Active
	heading := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)

	var b strings.Builder
	b.WriteString(heading.Render("Tipo de Construção:") + " " + keyStyle.Render("[c]") + "\n")
	kinds := make([]string, len(model.ConstructionKinds))
	for i, k := range model.ConstructionKinds {
		kinds[i] = string(k)
	}
	b.WriteString(a.renderChoice(kinds, string(a.sel.Construction)))
	b.WriteString("\n\n")

	b.WriteString(heading.Render("Tipo de Cobertura:") + " " + keyStyle.Render("[f]") + "\n")
	roofs := make([]string, len(model.RoofKinds))
	for i, k := range model.RoofKinds {
		roofs[i] = string(k)
	}
	b.WriteString(a.renderChoice(roofs, string(a.sel.Roof)))
	b.WriteString("\n\n")

	b.WriteString(heading.Render("Opções Adicionais:") + "\n")
	keys := map[model.AddOn]string{
		model.AddOnDeck:    "d",
		model.AddOnPVC:     "p",
		model.AddOnRoofing: "t",
	}
	var toggles []string
	for _, addOn := range model.AddOns {
		on := a.sel.Enabled(addOn)
		toggles = append(toggles, keyStyle.Render("["+keys[addOn]+"]")+" "+
			pillStyle(on).Render(pipeline.ToggleLabel(a.cat, addOn, on)))
	}
	b.WriteString(strings.Join(toggles, "  "))

	return b.String()
}

func (a App) renderChoice(keys []string, current string) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = pillStyle(k == current).Render(a.categoryLabel(k))
	}
	return strings.Join(parts, " ")
}

func pillStyle(active bool) lipgloss.Style {
	t := theme.Active
	if active {
		return lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Accent).
			Bold(true).
			Padding(0, 1)
	}
	return lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.SurfaceHover).
		Padding(0, 1)
}

func (a App) renderTotals() string {
	t := theme.Active
	bd := a.breakdown

	fields := [][2]string{
		{"Total Materiais (" + a.categoryLabel(string(a.sel.Construction)) + ")", cli.FormatBRL(bd.Structure.Total)},
		{"Total " + a.categoryLabel(string(a.sel.Roof)), cli.FormatBRL(bd.Roof.Total)},
	}
	for _, ct := range bd.AddOns {
		fields = append(fields, [2]string{"Total " + a.categoryLabel(ct.Key), cli.FormatBRL(ct.Total)})
	}
	fields = append(fields, [2]string{pipeline.LabelLabor, cli.FormatBRL(bd.Labor)})

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	labelW := 0
	for _, f := range fields {
		labelW = max(labelW, lipgloss.Width(f[0]))
	}
	valueW := 0
	for _, f := range fields {
		valueW = max(valueW, lipgloss.Width(f[1]))
	}
	grand := cli.FormatBRL(bd.GrandTotal)
	valueW = max(valueW, lipgloss.Width(grand))

	var b strings.Builder
	for _, f := range fields {
		b.WriteString(labelStyle.Render(f[0] + strings.Repeat(" ", labelW-lipgloss.Width(f[0]))))
		b.WriteString("  ")
		b.WriteString(valueStyle.Render(strings.Repeat(" ", valueW-lipgloss.Width(f[1])) + f[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(t.Green).Bold(true).
		Render("Custo Total do Projeto: " + grand))

	return b.String()
}
