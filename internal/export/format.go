package export

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Format is an output document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatXLSX Format = "xlsx"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported types.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat accepts "pdf" or "xlsx" (also "excel"), case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf", "":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FileName is the default file name for a format.
func (f Format) FileName() string {
	return "orcamento." + string(f)
}

// Generate renders doc in the given format.
func Generate(doc Document, f Format) ([]byte, error) {
	switch f {
	case FormatPDF:
		return GeneratePDF(doc)
	case FormatXLSX:
		return GenerateExcel(doc)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

// WriteFile renders doc and writes it to path.
func WriteFile(path string, doc Document, f Format) error {
	data, err := Generate(doc, f)
	if err != nil {
		return fmt.Errorf("generating %s: %w", f, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // exported documents are meant to be shared
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
