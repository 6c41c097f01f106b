package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/kitnet/internal/catalog"
	"github.com/theirongolddev/kitnet/internal/config"
	"github.com/theirongolddev/kitnet/internal/model"
)

// LoadResult holds the catalog the page is rendered from.
type LoadResult struct {
	Catalog    *model.Catalog
	Source     string // catalog path, empty for the embedded one
	Overridden int    // items rewritten by [prices.overrides]
	Warnings   []string
}

// Load reads the catalog named by the config (or the embedded default),
// applies the config's price and labor overrides, and validates the result.
func Load(cfg config.Config) (*LoadResult, error) {
	return LoadFrom(cfg, config.CatalogPath(cfg))
}

// LoadFrom is Load with an explicit catalog path. An empty path means the
// embedded catalog.
func LoadFrom(cfg config.Config, path string) (*LoadResult, error) {
	cat, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	result := &LoadResult{
		Catalog: cat,
		Source:  path,
	}
	result.Overridden = config.ApplyOverrides(cfg, cat)
	result.Warnings = catalog.Validate(cat)

	// A model named by a catalog file lives next to that file
	switch {
	case cfg.Project.Model != "":
		cat.Project.ModelPath = cfg.Project.Model
	case path != "" && cat.Project.ModelPath != "" && !filepath.IsAbs(cat.Project.ModelPath):
		cat.Project.ModelPath = filepath.Join(filepath.Dir(path), cat.Project.ModelPath)
	}

	return result, nil
}

// SelectionFromConfig converts the [selection] section into a Selection.
// Unknown kinds are an error; empty ones keep the page defaults.
func SelectionFromConfig(sc config.SelectionConfig) (model.Selection, error) {
	sel := model.DefaultSelection()
	if sc.Construction != "" {
		k, err := model.ParseConstruction(sc.Construction)
		if err != nil {
			return sel, err
		}
		sel.Construction = k
	}
	if sc.Roof != "" {
		k, err := model.ParseRoof(sc.Roof)
		if err != nil {
			return sel, err
		}
		sel.Roof = k
	}
	sel.Deck = sc.Deck
	sel.PVC = sc.PVC
	sel.Roofing = sc.Roofing
	return sel, nil
}
