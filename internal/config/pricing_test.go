package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/theirongolddev/kitnet/internal/model"
)

func ptr(v float64) *float64 { return &v }

func testCatalog() *model.Catalog {
	return &model.Catalog{
		Project: model.ProjectDetails{LaborCost: 28800},
		Categories: []model.Category{
			{Key: "bloco", Items: []model.LineItem{
				{Name: "Cimento", Quantity: 10, UnitPrice: 40},
				{Name: "Areia", Quantity: 2, UnitPrice: 150},
			}},
			{Key: "tijolo", Items: []model.LineItem{
				{Name: "Cimento", Quantity: 20, UnitPrice: 40},
			}},
		},
	}
}

func TestApplyOverrides_BareKeyHitsEveryCategory(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prices.Overrides = map[string]ItemOverride{
		"cimento": {UnitPrice: ptr(35)},
	}
	cat := testCatalog()

	if n := ApplyOverrides(cfg, cat); n != 2 {
		t.Fatalf("ApplyOverrides changed %d items, want 2", n)
	}
	if got := cat.Categories[0].Items[0].UnitPrice; got != 35 {
		t.Errorf("bloco cimento = %.2f, want 35", got)
	}
	if got := cat.Categories[1].Items[0].UnitPrice; got != 35 {
		t.Errorf("tijolo cimento = %.2f, want 35", got)
	}
	if got := cat.Categories[0].Items[1].UnitPrice; got != 150 {
		t.Errorf("areia changed to %.2f", got)
	}
}

func TestApplyOverrides_ScopedKeyWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Prices.Overrides = map[string]ItemOverride{
		"Cimento":        {UnitPrice: ptr(35)},
		"tijolo/Cimento": {UnitPrice: ptr(30), Quantity: ptr(25)},
	}
	cat := testCatalog()
	ApplyOverrides(cfg, cat)

	li := cat.Categories[1].Items[0]
	if li.UnitPrice != 30 || li.Quantity != 25 {
		t.Errorf("tijolo cimento = %+v, want price 30 qty 25", li)
	}
	if got := cat.Categories[0].Items[0].UnitPrice; got != 35 {
		t.Errorf("bloco cimento = %.2f, want 35", got)
	}
}

func TestApplyOverrides_LaborCost(t *testing.T) {
	cfg := DefaultConfig()
	cat := testCatalog()
	ApplyOverrides(cfg, cat)
	if cat.Project.LaborCost != 28800 {
		t.Fatalf("labor cost changed without override: %.2f", cat.Project.LaborCost)
	}

	cfg.Project.LaborCost = ptr(30000)
	ApplyOverrides(cfg, cat)
	if cat.Project.LaborCost != 30000 {
		t.Errorf("labor cost = %.2f, want 30000", cat.Project.LaborCost)
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if Exists() {
		t.Fatal("Exists() = true before Save")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without file: %v", err)
	}
	if cfg.Selection.Construction != "bloco" || !cfg.Selection.Roofing {
		t.Fatalf("defaults not applied: %+v", cfg.Selection)
	}

	cfg.Selection.Construction = "tijolo"
	cfg.Selection.Deck = true
	cfg.Prices.Overrides = map[string]ItemOverride{"Cimento": {UnitPrice: ptr(35)}}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	info, err := os.Stat(ConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config mode = %o, want 600", perm)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Selection.Construction != "tijolo" || !got.Selection.Deck {
		t.Errorf("selection = %+v", got.Selection)
	}
	if o, ok := got.Prices.LookupOverride("bloco", "Cimento"); !ok || *o.UnitPrice != 35 {
		t.Errorf("override lost: %+v %v", o, ok)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if err := os.MkdirAll(filepath.Join(dir, "kitnet"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(ConfigPath(), []byte("[selection\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Error("Load() accepted malformed TOML")
	}
}

func TestCatalogPathEnvWins(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Project.Catalog = "/from/config.yaml"

	t.Setenv("KITNET_CATALOG", "")
	if got := CatalogPath(cfg); got != "/from/config.yaml" {
		t.Errorf("CatalogPath = %q, want config value", got)
	}
	t.Setenv("KITNET_CATALOG", "/from/env.yaml")
	if got := CatalogPath(cfg); got != "/from/env.yaml" {
		t.Errorf("CatalogPath = %q, want env value", got)
	}
}

func TestLookupOverride_ExactBareKeyBeatsCaseVariants(t *testing.T) {
	p := PriceOverrides{Overrides: map[string]ItemOverride{
		"CIMENTO": {UnitPrice: ptr(10)},
		"Cimento": {UnitPrice: ptr(20)},
		"cimento": {UnitPrice: ptr(30)},
	}}
	for range 20 {
		o, ok := p.LookupOverride("bloco", "Cimento")
		if !ok || *o.UnitPrice != 20 {
			t.Fatalf("LookupOverride = %+v, %v; want the exact key's 20", o, ok)
		}
	}
}

func TestLookupOverride_CaseCollisionIsStable(t *testing.T) {
	p := PriceOverrides{Overrides: map[string]ItemOverride{
		"cimento": {UnitPrice: ptr(30)},
		"CIMENTO": {UnitPrice: ptr(10)},
	}}
	// "CIMENTO" sorts before "cimento".
	for range 20 {
		o, ok := p.LookupOverride("bloco", "Cimento")
		if !ok || *o.UnitPrice != 10 {
			t.Fatalf("LookupOverride = %+v, %v; want 10 every time", o, ok)
		}
	}
}

func TestLookupOverride_ScopedKeyIgnoresCase(t *testing.T) {
	p := PriceOverrides{Overrides: map[string]ItemOverride{
		"cimento":        {UnitPrice: ptr(35)},
		"Tijolo/CIMENTO": {UnitPrice: ptr(30)},
	}}
	o, ok := p.LookupOverride("tijolo", "Cimento")
	if !ok || *o.UnitPrice != 30 {
		t.Errorf("scoped lookup = %+v, %v; want 30", o, ok)
	}
	o, ok = p.LookupOverride("bloco", "Cimento")
	if !ok || *o.UnitPrice != 35 {
		t.Errorf("other category = %+v, %v; want bare 35", o, ok)
	}
}
