package config

import (
	"maps"
	"slices"
	"strings"

	"github.com/theirongolddev/kitnet/internal/model"
)

// PriceOverrides allows user-defined prices for specific catalog items.
//
// Keys are either an item name, which applies in every category, or
// "category/item name", which applies only inside that category. A scoped
// key wins over a bare one.
type PriceOverrides struct {
	Overrides map[string]ItemOverride `toml:"overrides,omitempty"`
}

// ItemOverride holds per-item overrides. Nil fields keep the catalog value.
type ItemOverride struct {
	UnitPrice *float64 `toml:"unit_price,omitempty"`
	Quantity  *float64 `toml:"quantity,omitempty"`
}

// LookupOverride returns the override for an item in a category. Exact keys
// are tried first, scoped before bare; after that keys match ignoring case,
// taking the first in sorted key order when several fold together.
func (p PriceOverrides) LookupOverride(category, item string) (ItemOverride, bool) {
	if len(p.Overrides) == 0 {
		return ItemOverride{}, false
	}
	scoped := category + "/" + item
	for _, k := range []string{scoped, item} {
		if o, ok := p.Overrides[k]; ok {
			return o, true
		}
	}

	keys := slices.Sorted(maps.Keys(p.Overrides))
	for _, want := range []string{scoped, item} {
		for _, k := range keys {
			if strings.EqualFold(k, want) {
				return p.Overrides[k], true
			}
		}
	}
	return ItemOverride{}, false
}

// ApplyOverrides rewrites matching catalog items in place and returns how
// many were changed. A labor cost set in the config replaces the catalog's.
func ApplyOverrides(cfg Config, cat *model.Catalog) int {
	if cfg.Project.LaborCost != nil {
		cat.Project.LaborCost = *cfg.Project.LaborCost
	}

	changed := 0
	for ci := range cat.Categories {
		c := &cat.Categories[ci]
		for ii := range c.Items {
			li := &c.Items[ii]
			o, ok := cfg.Prices.LookupOverride(c.Key, li.Name)
			if !ok {
				continue
			}
			if o.UnitPrice != nil {
				li.UnitPrice = *o.UnitPrice
			}
			if o.Quantity != nil {
				li.Quantity = *o.Quantity
			}
			changed++
		}
	}
	return changed
}
