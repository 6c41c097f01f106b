// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
)

// Brazilian number layout: "." groups thousands, "," separates decimals.
const (
	brlFormat = "#.###,##"
	intFormat = "#.###,"
)

// FormatBRL formats a value in reais, e.g. 1234.5 -> "R$ 1.234,50".
func FormatBRL(v float64) string {
	if v < 0 {
		return "-R$ " + humanize.FormatFloat(brlFormat, -v)
	}
	return "R$ " + humanize.FormatFloat(brlFormat, v)
}

// FormatQty formats a quantity without trailing decimal zeros.
// e.g. 1100 -> "1.100", 1.2 -> "1,2", 0.25 -> "0,25"
func FormatQty(q float64) string {
	if q == math.Trunc(q) {
		return humanize.FormatFloat(intFormat, q)
	}
	s := humanize.FormatFloat(brlFormat, q)
	return strings.TrimRight(s, "0")
}

// FormatNumber adds dot separators to an integer.
// e.g., 1234567 -> "1.234.567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return humanize.FormatInteger(intFormat, int(n))
}

// FormatPercent formats a 0-1 float as a percentage string with a decimal comma.
func FormatPercent(f float64) string {
	return strings.Replace(fmt.Sprintf("%.1f%%", f*100), ".", ",", 1)
}

// FormatDecimal formats a float with the given precision and a decimal comma.
func FormatDecimal(v float64, prec int) string {
	return strings.Replace(fmt.Sprintf("%.*f", prec, v), ".", ",", 1)
}
