// Package export renders a budget's line items as printable documents.
package export

import (
	"strings"
	"time"

	"github.com/theirongolddev/kitnet/internal/cli"
	"github.com/theirongolddev/kitnet/internal/model"
)

// DefaultTitle heads documents that are not given one.
const DefaultTitle = "Orçamento"

// Column headers shared by every output format.
var columnHeaders = []string{"Produto", "Quantidade", "Preço Unitário", "Total"}

// Row is one line of an exported table.
type Row struct {
	Name      string
	Quantity  float64
	Unit      string
	UnitPrice float64
	LineTotal float64
}

// QuantityText renders the quantity with its unit, e.g. "60 sc".
func (r Row) QuantityText() string {
	q := cli.FormatQty(r.Quantity)
	if r.Unit == "" {
		return q
	}
	return q + " " + r.Unit
}

// Document holds everything a printable budget needs.
type Document struct {
	Title      string
	Date       time.Time
	Rows       []Row
	GrandTotal float64
}

// NewDocument maps line items to rows, computing each line total and the
// grand total. Blank names and units stay blank.
func NewDocument(title string, items []model.LineItem, date time.Time) Document {
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	doc := Document{
		Title: title,
		Date:  date,
		Rows:  make([]Row, 0, len(items)),
	}
	for _, li := range items {
		r := Row{
			Name:      li.Name,
			Quantity:  li.Quantity,
			Unit:      li.Unit,
			UnitPrice: li.UnitPrice,
			LineTotal: li.Total(),
		}
		doc.Rows = append(doc.Rows, r)
		doc.GrandTotal += r.LineTotal
	}
	return doc
}

// TotalText is the closing line of every document.
func (d Document) TotalText() string {
	return "Total: " + cli.FormatBRL(d.GrandTotal)
}

// dateText formats the generation date the Brazilian way.
func (d Document) dateText() string {
	if d.Date.IsZero() {
		return ""
	}
	return d.Date.Format("02/01/2006")
}
