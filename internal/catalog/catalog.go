// Package catalog loads the static budget data: project details,
// construction stages and priced material categories.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/theirongolddev/kitnet/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the catalog compiled into the binary.
func Default() (*model.Catalog, error) {
	cat, err := Decode(bytes.NewReader(defaultYAML))
	if err != nil {
		return nil, fmt.Errorf("parsing embedded catalog: %w", err)
	}
	return cat, nil
}

// Load reads a catalog file. An empty path yields the embedded default.
func Load(path string) (*model.Catalog, error) {
	if path == "" {
		return Default()
	}

	f, err := os.Open(path) //nolint:gosec // path is user-supplied on purpose
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	cat, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog %s: %w", path, err)
	}
	return cat, nil
}

// Decode reads a YAML catalog. Missing or mistyped fields decode as zero
// values, so an entry with a bad price sums to zero rather than failing; the
// mistyped ones are recorded in Skipped. Syntax errors are still fatal.
func Decode(r io.Reader) (*model.Catalog, error) {
	var cat model.Catalog
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cat); err != nil {
		var typeErr *yaml.TypeError
		switch {
		case errors.Is(err, io.EOF):
			return &cat, nil
		case errors.As(err, &typeErr):
			cat.Skipped = append(cat.Skipped, typeErr.Errors...)
		default:
			return nil, err
		}
	}
	for i := range cat.Categories {
		if cat.Categories[i].Label == "" {
			cat.Categories[i].Label = cat.Categories[i].Key
		}
	}
	return &cat, nil
}

// Validate returns human-readable warnings about suspicious entries.
// Nothing here is fatal: the page still renders with the data as given.
func Validate(cat *model.Catalog) []string {
	var warnings []string
	for _, msg := range cat.Skipped {
		warnings = append(warnings, "ignored invalid value: "+msg)
	}
	seen := make(map[string]bool)
	for _, c := range cat.Categories {
		if c.Key == "" {
			warnings = append(warnings, "category without key")
			continue
		}
		if seen[c.Key] {
			warnings = append(warnings, fmt.Sprintf("duplicate category %q (first one wins)", c.Key))
		}
		seen[c.Key] = true

		switch c.Group {
		case model.GroupConstruction, model.GroupRoof, model.GroupAddOn:
		default:
			warnings = append(warnings, fmt.Sprintf("category %q has unknown group %q", c.Key, c.Group))
		}

		for _, li := range c.Items {
			if li.UnitPrice < 0 || li.Quantity < 0 {
				warnings = append(warnings, fmt.Sprintf("%s: %q has a negative quantity or price", c.Key, li.Name))
			}
		}
	}
	if cat.Project.LaborCost < 0 {
		warnings = append(warnings, "negative labor cost")
	}
	return warnings
}
