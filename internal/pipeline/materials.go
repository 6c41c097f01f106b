package pipeline

import "github.com/theirongolddev/kitnet/internal/model"

// FilterAll selects every category in the materials listing.
const FilterAll = "all"

// Materials returns the items shown for a materials filter. FilterAll
// concatenates every category in catalog order; an unknown key yields nil.
func Materials(cat *model.Catalog, filter string) []model.LineItem {
	if filter == FilterAll {
		var items []model.LineItem
		for _, c := range cat.Categories {
			items = append(items, c.Items...)
		}
		return items
	}
	return cat.Items(filter)
}

// MaterialFilters lists FilterAll followed by every category key.
func MaterialFilters(cat *model.Catalog) []string {
	return append([]string{FilterAll}, cat.Keys()...)
}

// FilterLabel is the display name of a filter.
func FilterLabel(cat *model.Catalog, filter string) string {
	if filter == FilterAll {
		return "Todos"
	}
	return cat.Category(filter).Label
}
