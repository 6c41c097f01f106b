package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kitnet/internal/tui/components"
	"github.com/theirongolddev/kitnet/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderStagesTab(cw int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(cw)

	if len(a.cat.Stages) == 0 {
		muted := lipgloss.NewStyle().Foreground(t.TextMuted)
		return components.ContentCard("Etapas da Obra", muted.Render("Nenhuma etapa cadastrada no catálogo."), cw)
	}

	stageStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	bulletStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	taskStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for i, st := range a.cat.Stages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(stageStyle.Render(fmt.Sprintf("%d. %s", i+1, st.Title)))
		for _, task := range st.Tasks {
			b.WriteString("\n")
			b.WriteString(bulletStyle.Render("   • "))
			b.WriteString(taskStyle.Render(hangingIndent(task, innerW-5, 5)))
		}
	}

	return components.ContentCard("Etapas da Obra", b.String(), cw)
}

// hangingIndent word-wraps s to width w, indenting continuation lines by
// indent columns.
func hangingIndent(s string, w, indent int) string {
	if w < 10 {
		return s
	}
	wrapped := lipgloss.NewStyle().Width(w).Render(s)
	lines := strings.Split(wrapped, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", indent) + lines[i]
	}
	return strings.Join(lines, "\n")
}
