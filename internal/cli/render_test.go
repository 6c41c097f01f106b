package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestUseCards(t *testing.T) {
	if !UseCards(CardBreakpoint - 1) {
		t.Errorf("UseCards(%d) = false, want cards below breakpoint", CardBreakpoint-1)
	}
	if UseCards(CardBreakpoint) {
		t.Errorf("UseCards(%d) = true, want table at breakpoint", CardBreakpoint)
	}
	if !UseCards(0) {
		t.Error("UseCards(0) = false")
	}
}

func TestRenderTable_AlignsAccentedHeaders(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Produto", "Preço Unitário"},
		Rows: [][]string{
			{"Areia média", "R$ 145,00"},
			{"---"},
			{"Total", "R$ 145,00"},
		},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	w := lipgloss.Width(lines[0])
	for i, l := range lines {
		if lipgloss.Width(l) != w {
			t.Errorf("line %d width %d, want %d: %q", i, lipgloss.Width(l), w, l)
		}
	}
	if !strings.Contains(lines[1], "Preço Unitário") {
		t.Errorf("header line = %q", lines[1])
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderCards(t *testing.T) {
	out := RenderCards([]Card{
		{Title: "Cimento", Fields: [][2]string{{"Quantidade", "60 sc"}, {"Total", "R$ 2.310,00"}}},
		{Title: "Areia", Fields: [][2]string{{"Quantidade", "8 m³"}}},
	}, 40)

	for _, want := range []string{"Cimento", "Areia", "R$ 2.310,00", "8 m³"} {
		if !strings.Contains(out, want) {
			t.Errorf("cards missing %q:\n%s", want, out)
		}
	}
	for _, l := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		if lipgloss.Width(l) > 40 {
			t.Errorf("line wider than 40: %q", l)
		}
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	full := RenderHorizontalBar("Materiais", 100, 100, 10, 20)
	if strings.Count(full, "█") != 20 {
		t.Errorf("full bar = %q", full)
	}
	half := RenderHorizontalBar("Deck", 50, 100, 10, 20)
	if strings.Count(half, "█") != 10 || strings.Count(half, "░") != 10 {
		t.Errorf("half bar = %q", half)
	}
	zero := RenderHorizontalBar("PVC", 10, 0, 10, 20)
	if strings.Contains(zero, "█") {
		t.Errorf("zero max drew a bar: %q", zero)
	}
}
