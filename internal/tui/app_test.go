package tui

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/theirongolddev/kitnet/internal/catalog"
	"github.com/theirongolddev/kitnet/internal/config"
	"github.com/theirongolddev/kitnet/internal/model"
	"github.com/theirongolddev/kitnet/internal/viewer"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func testApp(t *testing.T) App {
	t.Helper()
	cat, err := catalog.Default()
	if err != nil {
		t.Fatal(err)
	}
	a := App{
		cat:        cat,
		sel:        model.DefaultSelection(),
		modelState: viewer.StateLoading,
		modelPath:  "modelo5.glb",
		spinner:    spinner.New(),
		width:      100,
		height:     200,
	}
	a.recompute()
	return a
}

func press(a App, keys ...string) App {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func TestTabKeys(t *testing.T) {
	a := testApp(t)
	tests := []struct {
		key  string
		want int
	}{
		{"m", tabMaterials},
		{"u", tabSummary},
		{"s", tabStages},
		{"o", tabOverview},
		{"left", tabSummary},
		{"right", tabOverview},
	}
	for _, tt := range tests {
		a = press(a, tt.key)
		if a.activeTab != tt.want {
			t.Errorf("after %q activeTab = %d, want %d", tt.key, a.activeTab, tt.want)
		}
	}
}

func TestSummaryKeysChangeSelection(t *testing.T) {
	a := press(testApp(t), "u")
	before := a.breakdown.GrandTotal

	a = press(a, "d")
	if !a.sel.Deck {
		t.Fatal("d did not enable the deck")
	}
	deck := a.cat.Category("deck").Total()
	if got := a.breakdown.GrandTotal - before; got < deck-0.001 || got > deck+0.001 {
		t.Errorf("grand total grew by %v, want deck total %v", got, deck)
	}

	a = press(a, "d", "c", "f", "t")
	want := model.Selection{Construction: model.ConstructionBrick, Roof: model.RoofWood}
	if a.sel != want {
		t.Errorf("selection = %+v, want %+v", a.sel, want)
	}
}

func TestSelectionKeysIgnoredOutsideSummary(t *testing.T) {
	a := press(testApp(t), "d", "p")
	if a.sel != model.DefaultSelection() {
		t.Errorf("selection changed on the overview tab: %+v", a.sel)
	}
}

func TestMaterialsFilterCycles(t *testing.T) {
	a := press(testApp(t), "m")
	if a.currentFilter() != "all" {
		t.Fatalf("initial filter = %q, want all", a.currentFilter())
	}
	a = press(a, "l")
	if a.currentFilter() != "bloco" {
		t.Errorf("after l filter = %q, want bloco", a.currentFilter())
	}
	a = press(a, "h", "h")
	if a.currentFilter() != "telhado" {
		t.Errorf("after h h filter = %q, want telhado (wraps)", a.currentFilter())
	}
	a = press(a, "]")
	if a.currentFilter() != "all" {
		t.Errorf("after ] filter = %q, want all", a.currentFilter())
	}
}

func TestModelLoadedMsg(t *testing.T) {
	a := testApp(t)
	m, _ := a.Update(ModelLoadedMsg{State: viewer.StateFailed, Err: errors.New("bad asset")})
	a = m.(App)
	if a.modelState != viewer.StateFailed {
		t.Fatalf("state = %s, want failed", a.modelState)
	}
	if out := a.modelDetails(60); !strings.Contains(out, "Modelo indisponível") {
		t.Errorf("failed model card = %q", out)
	}

	res, err := viewer.Fit(viewer.Box3{Max: viewer.Vec3{X: 2, Y: 1, Z: 1}}, viewer.DefaultCamera())
	if err != nil {
		t.Fatal(err)
	}
	m, _ = a.Update(ModelLoadedMsg{State: viewer.StateFitted, Result: res})
	a = m.(App)
	if out := a.modelDetails(60); !strings.Contains(out, "× 5,0000") {
		t.Errorf("fitted model card missing scale: %q", out)
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a := testApp(t)
	want := map[int]string{
		tabOverview:  "Detalhes do Projeto",
		tabStages:    "1. Preparação do Terreno",
		tabMaterials: "Total de Materiais",
		tabSummary:   "Custo Total do Projeto",
	}
	for tab, text := range want {
		a.activeTab = tab
		if out := a.View(); !strings.Contains(out, text) {
			t.Errorf("tab %d view is missing %q", tab, text)
		}
	}
}

func TestExportCmdWritesPDF(t *testing.T) {
	a := testApp(t)
	dir := t.TempDir()
	msg := exportCmd(a.cat, a.sel, dir)()
	done, ok := msg.(ExportDoneMsg)
	if !ok {
		t.Fatalf("msg = %T, want ExportDoneMsg", msg)
	}
	if done.Err != nil {
		t.Fatalf("export error = %v", done.Err)
	}
	data, err := os.ReadFile(done.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Error("exported file is not a PDF")
	}
}

func TestScrollLines(t *testing.T) {
	s := "a\nb\nc\nd\ne"
	if got := scrollLines(s, 2, 2); got != "c\nd\ne" {
		t.Errorf("scrollLines offset 2 = %q", got)
	}
	if got := scrollLines(s, 10, 2); got != "d\ne" {
		t.Errorf("scrollLines clamps to last screen, got %q", got)
	}
	if got := scrollLines(s, 3, 10); got != s {
		t.Errorf("short content should not scroll, got %q", got)
	}
}

func TestSetupValuesRoundTrip(t *testing.T) {
	cfg := config.DefaultConfig()
	vals := SetupValuesFromConfig(cfg)
	if len(vals.AddOns) != 1 || vals.AddOns[0] != "telhado" {
		t.Fatalf("add-ons = %v, want [telhado]", vals.AddOns)
	}

	vals.Construction = "tijolo"
	vals.AddOns = []string{"deck", "pvc"}
	vals.Apply(&cfg)
	if cfg.Selection.Construction != "tijolo" || !cfg.Selection.Deck || !cfg.Selection.PVC || cfg.Selection.Roofing {
		t.Errorf("applied selection = %+v", cfg.Selection)
	}
}
