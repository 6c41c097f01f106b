package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTabVisualWidth(t *testing.T) {
	for i, tab := range Tabs {
		for _, active := range []bool{true, false} {
			want := len(tab.Name) + 2
			if got := TabVisualWidth(tab, active); got != want {
				t.Errorf("tab %d (%s) active=%v width = %d, want %d", i, tab.Name, active, got, want)
			}
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	tests := []struct {
		key  rune
		want int
	}{
		{'o', 0},
		{'s', 1},
		{'m', 2},
		{'u', 3},
		{'x', -1},
	}
	for _, tt := range tests {
		if got := TabIdxByKey(tt.key); got != tt.want {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestRenderTabBarFillsWidth(t *testing.T) {
	bar := RenderTabBar(3, 60)
	if got := lipgloss.Width(bar); got != 60 {
		t.Errorf("tab bar width = %d, want 60", got)
	}
	if strings.Contains(bar, "\n") {
		t.Error("tab bar should be a single row")
	}
}

func TestBarChartKeepsAccentedLabels(t *testing.T) {
	bars := []Bar{{"Mão", 28800}, {"Laje", 12000}, {"Deck", 4000}}
	out := BarChart(bars, 50, 6)
	for _, b := range bars {
		if !strings.Contains(out, b.Label) {
			t.Errorf("chart is missing label %q", b.Label)
		}
	}
	if !strings.Contains(out, "30 mil") {
		t.Errorf("chart ceiling should be 30 mil:\n%s", out)
	}
}

func TestBarChartFallsBackToList(t *testing.T) {
	bars := []Bar{{"Materiais", 52000}, {"Mão de Obra", 28800}}
	out := BarChart(bars, 12, 6)
	if lines := strings.Split(out, "\n"); len(lines) != len(bars) {
		t.Fatalf("fallback should print one line per bar, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(out, "28,8 mil") {
		t.Errorf("fallback is missing the labor value:\n%s", out)
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 1},
		{10, 2},
		{50000, 10000},
		{30000, 5000},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{5000, "5 mil"},
		{28800, "28,8 mil"},
		{1e6, "1 mi"},
		{1.3e6, "1,3 mi"},
		{12, "12"},
		{0.5, "0,50"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.v); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestShareBarClamps(t *testing.T) {
	full := ShareBar("Mão de Obra", 1.7, "R$ 1,00", "#DA702C", 12, 10)
	if !strings.Contains(full, "100%") {
		t.Errorf("over-full share should clamp to 100%%: %q", full)
	}
	empty := ShareBar("Deck", -0.2, "R$ 0,00", "#4385BE", 12, 10)
	if !strings.Contains(empty, "  0%") {
		t.Errorf("negative share should clamp to 0%%: %q", empty)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("Mão", 5); lipgloss.Width(got) != 5 {
		t.Errorf("padRight width = %d, want 5", lipgloss.Width(got))
	}
	if got := padRight("Escoramento", 6); got != "Escor…" {
		t.Errorf("padRight truncation = %q, want Escor…", got)
	}
}
