package export

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/theirongolddev/kitnet/internal/cli"
)

// Column spans on maroto's 12-column grid.
var pdfSpans = []int{6, 2, 2, 2}

// GeneratePDF renders the document as an A4 PDF: title, a bordered
// four-column table and the grand total.
func GeneratePDF(doc Document) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Página {current} de {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addPDFTitle(m, doc)
	addPDFTableHeader(m)
	for _, r := range doc.Rows {
		addPDFRow(m, r)
	}
	addPDFTotal(m, doc)
	addPDFFooter(m, doc)

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generating PDF: %w", err)
	}
	return out.GetBytes(), nil
}

func addPDFTitle(m core.Maroto, doc Document) {
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(doc.Title, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
	)
	m.AddRows(row.New(4))
}

func addPDFTableHeader(m core.Maroto) {
	headerCell := &props.Cell{
		BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240},
		BorderType:      border.Full,
		BorderColor:     &props.Color{Red: 0, Green: 0, Blue: 0},
		BorderThickness: 0.2,
	}
	headerText := props.Text{
		Size:  10,
		Style: fontstyle.Bold,
		Align: align.Left,
		Left:  2,
		Top:   2,
	}

	cols := make([]core.Col, len(columnHeaders))
	for i, h := range columnHeaders {
		cols[i] = col.New(pdfSpans[i]).Add(text.New(h, headerText)).WithStyle(headerCell)
	}
	m.AddRows(row.New(8).Add(cols...))
}

func addPDFRow(m core.Maroto, r Row) {
	cell := &props.Cell{
		BorderType:      border.Full,
		BorderColor:     &props.Color{Red: 0, Green: 0, Blue: 0},
		BorderThickness: 0.2,
	}
	left := props.Text{Size: 9, Align: align.Left, Left: 2, Top: 2}
	right := props.Text{Size: 9, Align: align.Right, Right: 2, Top: 2}

	m.AddRows(
		row.New(8).Add(
			col.New(pdfSpans[0]).Add(text.New(r.Name, left)).WithStyle(cell),
			col.New(pdfSpans[1]).Add(text.New(r.QuantityText(), right)).WithStyle(cell),
			col.New(pdfSpans[2]).Add(text.New(cli.FormatBRL(r.UnitPrice), right)).WithStyle(cell),
			col.New(pdfSpans[3]).Add(text.New(cli.FormatBRL(r.LineTotal), right)).WithStyle(cell),
		),
	)
}

func addPDFTotal(m core.Maroto, doc Document) {
	m.AddRows(row.New(4))
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(doc.TotalText(), props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Right,
				}),
			),
		),
	)
}

func addPDFFooter(m core.Maroto, doc Document) {
	date := doc.dateText()
	if date == "" {
		return
	}
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New("Gerado em "+date, props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 120, Green: 120, Blue: 120},
				}),
			),
		),
	)
}
