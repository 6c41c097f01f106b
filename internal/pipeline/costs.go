// Package pipeline turns a catalog and a selection into the numbers shown
// on the budget page.
package pipeline

import (
	"github.com/theirongolddev/kitnet/internal/model"
)

// Chart labels for the fixed series.
const (
	LabelMaterials = "Materiais"
	LabelLabor     = "Mão de Obra"
	LaborItemName  = "Mão de obra"
)

// Total sums quantity × unit price over items. An empty list totals 0.
func Total(items []model.LineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.Total()
	}
	return sum
}

// Aggregate computes the cost breakdown for one selection. Categories the
// catalog does not define contribute zero.
func Aggregate(cat *model.Catalog, sel model.Selection) model.Breakdown {
	var b model.Breakdown

	b.Structure = categoryTotal(cat, string(sel.Construction))
	b.Roof = categoryTotal(cat, string(sel.Roof))
	b.Labor = cat.Project.LaborCost

	for _, a := range sel.EnabledAddOns() {
		b.AddOns = append(b.AddOns, categoryTotal(cat, string(a)))
	}

	b.GrandTotal = b.Structure.Total + b.Labor + b.Roof.Total
	for _, ct := range b.AddOns {
		b.GrandTotal += ct.Total
	}
	return b
}

func categoryTotal(cat *model.Catalog, key string) model.CategoryTotal {
	c := cat.Category(key)
	label := c.Label
	if label == "" {
		label = key
	}
	return model.CategoryTotal{Key: key, Label: label, Total: c.Total()}
}

// Chart returns the bar-chart series: structure materials, labor, the roof,
// then each enabled add-on. The values sum to b.GrandTotal.
func Chart(b model.Breakdown) []model.ChartPoint {
	points := make([]model.ChartPoint, 0, 3+len(b.AddOns))
	points = append(points,
		model.ChartPoint{Label: LabelMaterials, Value: b.Structure.Total},
		model.ChartPoint{Label: LabelLabor, Value: b.Labor},
		model.ChartPoint{Label: b.Roof.Label, Value: b.Roof.Total},
	)
	for _, ct := range b.AddOns {
		points = append(points, model.ChartPoint{Label: ct.Label, Value: ct.Total})
	}
	return points
}

// Shares annotates each chart point with its fraction of the grand total.
// With a zero grand total every fraction is 0.
func Shares(b model.Breakdown) []model.Share {
	points := Chart(b)
	shares := make([]model.Share, len(points))
	for i, p := range points {
		shares[i].ChartPoint = p
		if b.GrandTotal > 0 {
			shares[i].Fraction = p.Value / b.GrandTotal
		}
	}
	return shares
}

// SelectedItems returns the line items that make up the selected budget in
// summing order. With includeLabor a single labor line is appended so the
// items total the page's grand total.
func SelectedItems(cat *model.Catalog, sel model.Selection, includeLabor bool) []model.LineItem {
	var items []model.LineItem
	items = append(items, cat.Items(string(sel.Construction))...)
	items = append(items, cat.Items(string(sel.Roof))...)
	for _, a := range sel.EnabledAddOns() {
		items = append(items, cat.Items(string(a))...)
	}
	if includeLabor && cat.Project.LaborCost != 0 {
		items = append(items, model.LineItem{
			Name:      LaborItemName,
			Quantity:  1,
			Unit:      "vb",
			UnitPrice: cat.Project.LaborCost,
		})
	}
	return items
}

// ToggleLabel is the caption of an add-on's toggle: the category label when
// the add-on is off, "Tirar <label>" when it is on.
func ToggleLabel(cat *model.Catalog, a model.AddOn, enabled bool) string {
	label := cat.Category(string(a)).Label
	if label == "" {
		label = string(a)
	}
	if enabled {
		return "Tirar " + label
	}
	return label
}
