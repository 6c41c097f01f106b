package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Excel number format for reais.
const brlNumFmt = `"R$" #,##0.00`

// GenerateExcel renders the document as a single-sheet workbook with
// numeric quantity and price cells.
func GenerateExcel(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := doc.Title
	if len([]rune(sheetName)) > 31 {
		sheetName = string([]rune(sheetName)[:31])
	}
	sheetName = sanitizeSheetName(sheetName)
	if sheetName == "" {
		sheetName = DefaultTitle
	}

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1]
	widths := []float64{44, 12, 8, 18, 18}
	for i, c := range columns {
		if err := f.SetColWidth(sheetName, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	textStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create text style: %w", err)
	}

	moneyFmt := brlNumFmt
	moneyStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Size: 10},
		Border:       thinBorders(),
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create money style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:         &excelize.Font{Bold: true, Size: 11},
		CustomNumFmt: &moneyFmt,
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// Row 1: title, row 2: date.
	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	w := &sheetWriter{f: f, sheet: sheetName}
	w.value("A1", sanitizeExcelCell(doc.Title))
	w.style("A1", lastCol+"1", titleStyle)
	if date := doc.dateText(); date != "" {
		w.value("A2", "Data: "+date)
	}

	// Row 4: headers. Quantity and unit get separate columns.
	headers := []string{columnHeaders[0], columnHeaders[1], "Unid.", columnHeaders[2], columnHeaders[3]}
	for i, h := range headers {
		w.value(columns[i]+"4", h)
	}
	w.style("A4", lastCol+"4", headerStyle)

	rowNum := 5
	for _, r := range doc.Rows {
		rs := fmt.Sprintf("%d", rowNum)
		w.value("A"+rs, sanitizeExcelCell(r.Name))
		w.value("B"+rs, r.Quantity)
		w.value("C"+rs, sanitizeExcelCell(r.Unit))
		w.value("D"+rs, r.UnitPrice)
		w.value("E"+rs, r.LineTotal)
		w.style("A"+rs, "C"+rs, textStyle)
		w.style("D"+rs, "E"+rs, moneyStyle)
		rowNum++
	}

	// Grand total as a computed value, one blank row below the table.
	rowNum++
	rs := fmt.Sprintf("%d", rowNum)
	w.value("D"+rs, "Total:")
	w.value("E"+rs, doc.GrandTotal)
	w.style("D"+rs, "E"+rs, totalStyle)
	if w.err != nil {
		return nil, fmt.Errorf("fill sheet: %w", w.err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
// sheetWriter fills one sheet and keeps the first error, so a long run of
// cell writes is checked once at the end.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) value(cell string, v any) {
	if w.err == nil {
		w.err = w.f.SetCellValue(w.sheet, cell, v)
	}
}

func (w *sheetWriter) style(from, to string, styleID int) {
	if w.err == nil {
		w.err = w.f.SetCellStyle(w.sheet, from, to, styleID)
	}
}

func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// sanitizeSheetName drops characters Excel forbids in sheet names.
func sanitizeSheetName(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
