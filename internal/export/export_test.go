package export

import (
	"bytes"
	"math"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/theirongolddev/kitnet/internal/model"
)

func threeItems() []model.LineItem {
	return []model.LineItem{
		{Name: "Cimento CP-II 50kg", Quantity: 60, Unit: "sc", UnitPrice: 38.5},
		{Name: "Areia média", Quantity: 8, Unit: "m³", UnitPrice: 145},
		{Name: "Concreto usinado", Quantity: 1.2, Unit: "m³", UnitPrice: 520},
	}
}

func TestNewDocument_Totals(t *testing.T) {
	items := threeItems()
	doc := NewDocument("", items, time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))

	if doc.Title != DefaultTitle {
		t.Errorf("title = %q, want %q", doc.Title, DefaultTitle)
	}

	var want float64
	for i, li := range items {
		line := li.Quantity * li.UnitPrice
		want += line
		if math.Abs(doc.Rows[i].LineTotal-line) > 1e-9 {
			t.Errorf("row %d total = %v, want %v", i, doc.Rows[i].LineTotal, line)
		}
	}
	if math.Abs(doc.GrandTotal-want) > 1e-9 {
		t.Errorf("grand total = %v, want %v", doc.GrandTotal, want)
	}
	// 2310 + 1160 + 624
	if doc.TotalText() != "Total: R$ 4.094,00" {
		t.Errorf("TotalText = %q", doc.TotalText())
	}
	if doc.dateText() != "09/03/2025" {
		t.Errorf("date = %q", doc.dateText())
	}
}

func TestNewDocument_BlankFields(t *testing.T) {
	doc := NewDocument("Obra", []model.LineItem{{Quantity: 2, UnitPrice: 3}}, time.Time{})
	r := doc.Rows[0]
	if r.Name != "" || r.Unit != "" {
		t.Errorf("blank fields changed: %+v", r)
	}
	if r.QuantityText() != "2" {
		t.Errorf("QuantityText = %q", r.QuantityText())
	}
	if doc.dateText() != "" {
		t.Errorf("zero date rendered as %q", doc.dateText())
	}
}

func TestGeneratePDF(t *testing.T) {
	doc := NewDocument("Orçamento", threeItems(), time.Now())
	out, err := GeneratePDF(doc)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", out[:min(len(out), 8)])
	}
}

func TestGeneratePDF_Empty(t *testing.T) {
	out, err := GeneratePDF(NewDocument("", nil, time.Time{}))
	if err != nil {
		t.Fatalf("GeneratePDF(empty) error = %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
}

func TestGenerateExcel(t *testing.T) {
	doc := NewDocument("Orçamento", threeItems(), time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC))
	out, err := GenerateExcel(doc)
	if err != nil {
		t.Fatalf("GenerateExcel() error = %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Orçamento" {
		t.Fatalf("sheets = %v", sheets)
	}

	header, _ := f.GetCellValue(sheets[0], "A4")
	if header != "Produto" {
		t.Errorf("A4 = %q, want Produto", header)
	}
	name, _ := f.GetCellValue(sheets[0], "A6")
	if name != "Areia média" {
		t.Errorf("A6 = %q", name)
	}

	// Raw value of the grand total cell, bypassing the currency format.
	raw, err := f.GetCellValue(sheets[0], "E9", excelize.Options{RawCellValue: true})
	if err != nil {
		t.Fatal(err)
	}
	got, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		t.Fatalf("total cell %q: %v", raw, err)
	}
	if math.Abs(got-doc.GrandTotal) > 1e-6 {
		t.Errorf("total cell = %v, want %v", got, doc.GrandTotal)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := map[string]string{
		"":         "",
		"=SUM(A1)": "'=SUM(A1)",
		"-10":      "'-10",
		"Cimento":  "Cimento",
		"@formula": "'@formula",
	}
	for in, want := range tests {
		if got := sanitizeExcelCell(in); got != want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeSheetName(t *testing.T) {
	if got := sanitizeSheetName("Obra [1/2]: casa?"); strings.ContainsAny(got, `[]/:?`) {
		t.Errorf("sanitizeSheetName left forbidden chars: %q", got)
	}
}

func TestSheetWriterKeepsFirstError(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	w := &sheetWriter{f: f, sheet: "Sheet1"}
	w.value("A1", "ok")
	if w.err != nil {
		t.Fatalf("valid write failed: %v", w.err)
	}

	w.value("not a cell", 1)
	first := w.err
	if first == nil {
		t.Fatal("invalid cell name did not record an error")
	}
	w.style("A1", "B1", 0)
	w.value("A2", "ignored")
	if w.err != first {
		t.Errorf("err = %v, want the first error %v", w.err, first)
	}
	if v, _ := f.GetCellValue("Sheet1", "A2"); v != "" {
		t.Errorf("A2 = %q, writes after an error should be skipped", v)
	}
}

func TestSheetWriterMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	w := &sheetWriter{f: f, sheet: "Nope"}
	w.style("A1", "B1", 0)
	if w.err == nil {
		t.Error("styling a missing sheet did not record an error")
	}
}
