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

func (a App) renderMaterialsTab(cw int) string {
	t := theme.Active
	filter := a.currentFilter()
	items := pipeline.Materials(a.cat, filter)

	var b strings.Builder
	b.WriteString(a.renderFilterPills(cw))
	b.WriteString("\n")

	title := "Orçamento de Materiais · " + pipeline.FilterLabel(a.cat, filter)
	innerW := components.CardInnerWidth(cw)

	var body string
	switch {
	case len(items) == 0:
		body = lipgloss.NewStyle().Foreground(t.TextMuted).Render("Nenhum material nesta categoria.")
	case cli.UseCards(cw):
		body = strings.TrimRight(cli.RenderCards(materialCards(items), innerW), "\n")
	default:
		body = strings.TrimRight(cli.RenderTable(materialTable(items)), "\n")
	}

	totalStyle := lipgloss.NewStyle().Foreground(t.Green).Bold(true)
	total := "Total de Materiais: " + cli.FormatBRL(pipeline.Total(items))
	pad := innerW - lipgloss.Width(total)
	if pad < 0 {
		pad = 0
	}
	body += "\n\n" + strings.Repeat(" ", pad) + totalStyle.Render(total)

	b.WriteString(components.ContentCard(title, body, cw))
	return b.String()
}

func (a App) renderFilterPills(cw int) string {
	t := theme.Active
	active := lipgloss.NewStyle().
		Foreground(t.Background).
		Background(t.Accent).
		Bold(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface).
		Padding(0, 1)
	hint := lipgloss.NewStyle().Foreground(t.TextDim)

	filters := pipeline.MaterialFilters(a.cat)
	current := a.currentFilter()

	var pills []string
	width := 1
	for _, f := range filters {
		style := inactive
		if f == current {
			style = active
		}
		pill := style.Render(pipeline.FilterLabel(a.cat, f))
		if width+lipgloss.Width(pill)+1 > cw-12 {
			pills = append(pills, hint.Render("…"))
			break
		}
		pills = append(pills, pill)
		width += lipgloss.Width(pill) + 1
	}

	return " " + strings.Join(pills, " ") + hint.Render("  h/l")
}

func materialTable(items []model.LineItem) cli.Table {
	rows := make([][]string, 0, len(items))
	for _, li := range items {
		rows = append(rows, []string{
			li.Name,
			qtyWithUnit(li),
			cli.FormatBRL(li.UnitPrice),
			cli.FormatBRL(li.Total()),
		})
	}
	return cli.Table{
		Headers: []string{"Produto", "Quantidade", "Preço Unitário", "Total"},
		Rows:    rows,
	}
}

func materialCards(items []model.LineItem) []cli.Card {
	cards := make([]cli.Card, 0, len(items))
	for _, li := range items {
		cards = append(cards, cli.Card{
			Title: li.Name,
			Fields: [][2]string{
				{"Quantidade", qtyWithUnit(li)},
				{"Preço Unitário", cli.FormatBRL(li.UnitPrice)},
				{"Total", cli.FormatBRL(li.Total())},
			},
		})
	}
	return cards
}

func qtyWithUnit(li model.LineItem) string {
	q := cli.FormatQty(li.Quantity)
	if li.Unit == "" {
		return q
	}
	return q + " " + li.Unit
}
