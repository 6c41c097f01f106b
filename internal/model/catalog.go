// Package model defines domain types for the kitnet budget page.
package model

// Category groups. Every category in a catalog belongs to exactly one.
const (
	GroupConstruction = "construction"
	GroupRoof         = "roof"
	GroupAddOn        = "addon"
)

// LineItem is one priced row of a materials catalog.
type LineItem struct {
	Name      string  `yaml:"name"`
	Quantity  float64 `yaml:"quantity"`
	Unit      string  `yaml:"unit"`
	UnitPrice float64 `yaml:"unit_price"`
}

// Total returns quantity × unit price.
func (li LineItem) Total() float64 {
	return li.Quantity * li.UnitPrice
}

// Category is a named group of line items (a construction technique,
// a roof kind, or an optional add-on).
type Category struct {
	Key   string     `yaml:"key"`
	Label string     `yaml:"label"`
	Group string     `yaml:"group"`
	Items []LineItem `yaml:"items"`
}

// Total sums the line totals of the category. An empty category totals 0.
func (c Category) Total() float64 {
	var sum float64
	for _, li := range c.Items {
		sum += li.Total()
	}
	return sum
}

// Stage is one construction stage with its ordered task descriptions.
type Stage struct {
	Title string   `yaml:"title"`
	Tasks []string `yaml:"tasks"`
}

// ProjectDetails holds the descriptive header of the budget page.
type ProjectDetails struct {
	Title         string  `yaml:"title"`
	BaseArea      string  `yaml:"base_area"`
	ExpansionArea string  `yaml:"expansion_area"`
	TotalArea     string  `yaml:"total_area"`
	DeckArea      string  `yaml:"deck_area"`
	Location      string  `yaml:"location"`
	LaborCost     float64 `yaml:"labor_cost"`
	LaborNote     string  `yaml:"labor_note"`
	ModelPath     string  `yaml:"model"`
}

// Catalog is the static reference data behind the page.
type Catalog struct {
	Project    ProjectDetails `yaml:"project"`
	Stages     []Stage        `yaml:"stages"`
	Categories []Category     `yaml:"categories"`

	// Skipped lists entries that could not be decoded and were left at
	// their zero value.
	Skipped []string `yaml:"-"`
}

// Category returns the category with the given key. Unknown keys yield an
// empty category that carries the key as its label and sums to zero.
func (c *Catalog) Category(key string) Category {
	for _, cat := range c.Categories {
		if cat.Key == key {
			return cat
		}
	}
	return Category{Key: key, Label: key}
}

// Items returns the line items of the category with the given key.
func (c *Catalog) Items(key string) []LineItem {
	return c.Category(key).Items
}

// Keys returns the category keys in catalog order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		keys = append(keys, cat.Key)
	}
	return keys
}

// KeysInGroup returns the keys of all categories in group, in catalog order.
func (c *Catalog) KeysInGroup(group string) []string {
	var keys []string
	for _, cat := range c.Categories {
		if cat.Group == group {
			keys = append(keys, cat.Key)
		}
	}
	return keys
}
