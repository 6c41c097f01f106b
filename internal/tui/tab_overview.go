package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/theirongolddev/kitnet/internal/cli"
	"github.com/theirongolddev/kitnet/internal/tui/components"
	"github.com/theirongolddev/kitnet/internal/tui/theme"
	"github.com/theirongolddev/kitnet/internal/viewer"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	p := a.cat.Project
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	title := p.Title
	if title == "" {
		title = "Orçamento"
	}
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(truncStr(title, cw-2)))
	b.WriteString("\n")

	// Row 1: metric cards
	metrics := []components.Metric{
		{Label: "Área total", Value: orDash(p.TotalArea), Note: p.Location},
		{Label: "Materiais", Value: cli.FormatBRL(a.breakdown.GrandTotal - a.breakdown.Labor),
			Note: a.categoryLabel(string(a.sel.Construction)) + " + " + a.categoryLabel(string(a.sel.Roof))},
		{Label: "Mão de Obra", Value: cli.FormatBRL(a.breakdown.Labor)},
		{Label: "Total", Value: cli.FormatBRL(a.breakdown.GrandTotal),
			Note: fmt.Sprintf("%d extras", len(a.breakdown.AddOns)), Highlight: true},
	}
	if a.isCompactLayout() {
		b.WriteString(components.MetricCardRow(metrics[:2], cw))
		b.WriteString("\n")
		b.WriteString(components.MetricCardRow(metrics[2:], cw))
	} else {
		b.WriteString(components.MetricCardRow(metrics, cw))
	}
	b.WriteString("\n")

	// Row 2: project details + 3D model
	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Detalhes do Projeto", a.projectDetails(components.CardInnerWidth(cw)), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Modelo 3D", a.modelDetails(components.CardInnerWidth(cw)), cw))
	} else {
		halves := components.LayoutRow(cw, 2)
		b.WriteString(components.CardRow([]string{
			components.ContentCard("Detalhes do Projeto", a.projectDetails(components.CardInnerWidth(halves[0])), halves[0]),
			components.ContentCard("Modelo 3D", a.modelDetails(components.CardInnerWidth(halves[1])), halves[1]),
		}))
	}

	if len(a.warnings) > 0 {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange)
		var wb strings.Builder
		for i, w := range a.warnings {
			if i > 0 {
				wb.WriteString("\n")
			}
			wb.WriteString(warnStyle.Render("! " + truncStr(w, components.CardInnerWidth(cw)-2)))
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Avisos do Catálogo", wb.String(), cw))
	}

	return b.String()
}

func (a App) projectDetails(w int) string {
	p := a.cat.Project
	fields := [][2]string{
		{"Área base", p.BaseArea},
		{"Ampliação", p.ExpansionArea},
		{"Área total", p.TotalArea},
		{"Deck", p.DeckArea},
		{"Localização", p.Location},
	}
	return components.FieldList(fields, w)
}

func (a App) modelDetails(w int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted)

	switch a.modelState {
	case viewer.StateLoading:
		return a.spinner.View() + muted.Render(" Carregando "+filepath.Base(a.modelPath)+"…")
	case viewer.StateFailed:
		warn := lipgloss.NewStyle().Foreground(t.Orange)
		msg := "Modelo indisponível"
		switch {
		case errors.Is(a.fitErr, errNoModel):
			msg = "Nenhum modelo 3D configurado"
		case a.fitErr != nil:
			msg += ": " + a.fitErr.Error()
		}
		return warn.Render(truncStr(msg, w)) + "\n" +
			muted.Render("O restante do orçamento segue disponível.")
	}

	r := a.fit
	size := r.Size()
	source := "analisado"
	if a.fitCached {
		source = "cache"
	}
	fields := [][2]string{
		{"Arquivo", filepath.Base(a.modelPath)},
		{"Escala", "× " + cli.FormatDecimal(r.Scale, 4)},
		{"Tamanho", formatVec(size)},
		{"Câmera", formatVec(r.Position)},
		{"Alvo", formatVec(r.Target)},
		{"Distância", cli.FormatDecimal(r.Distance, 2)},
		{"Deslocamento", formatVec(r.ModelOffset)},
		{"Campo de visão", cli.FormatDecimal(r.Camera.FOV, 0) + "°"},
		{"Origem", fmt.Sprintf("%s em %dms", source, a.fitTime.Milliseconds())},
	}
	return components.FieldList(fields, w)
}

func formatVec(v viewer.Vec3) string {
	return fmt.Sprintf("(%s; %s; %s)",
		cli.FormatDecimal(v.X, 2), cli.FormatDecimal(v.Y, 2), cli.FormatDecimal(v.Z, 2))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "—"
	}
	return s
}
