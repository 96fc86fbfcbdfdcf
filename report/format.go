// Package report renders calculation results for people: a console report
// laid out like the court clerk's worksheet, and a CSV of the breakdown.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
)

// Formatter writes a result in one output format.
type Formatter interface {
	Name() string
	Format(w io.Writer, in precatorio.Input, res precatorio.Result) error
}

// GetFormatterByName returns the formatter for a format name, or nil.
func GetFormatterByName(name string) Formatter {
	switch strings.ToLower(name) {
	case "console", "text", "":
		return ConsoleFormatter{}
	case "csv":
		return CSVFormatter{}
	default:
		return nil
	}
}

// FormatBRL formats money as Brazilian reais: R$ 1.234.567,89.
func FormatBRL(d decimal.Decimal) string {
	return "R$ " + FormatDecimalBR(d, generic.CentsPlaces)
}

// FormatDecimalBR formats a number with "." thousands and "," decimals.
func FormatDecimalBR(d decimal.Decimal, places int32) string {
	s := d.StringFixedBank(places)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if fracPart != "" {
		b.WriteByte(',')
		b.WriteString(fracPart)
	}
	return b.String()
}

// FormatDateBR formats a date as dd/mm/yyyy.
func FormatDateBR(d generic.Date) string {
	return d.Format("02/01/2006")
}

// FormatRate formats an annual rate: "1% a.a.", "0,5% a.a.".
func FormatRate(r generic.Rate) string {
	return strings.Replace(r.Percent.String(), ".", ",", 1) + "% a.a."
}

func kindLabel(kind precatorio.SegmentKind) string {
	switch kind {
	case precatorio.SegmentBeforeGrace:
		return "ANTES DO PERÍODO DE GRAÇA"
	case precatorio.SegmentAfterGrace:
		return "DEPOIS DO PERÍODO DE GRAÇA"
	case precatorio.SegmentGrace:
		return "DURANTE O PERÍODO DE GRAÇA"
	default:
		return fmt.Sprintf("PERÍODO (%s)", kind)
	}
}
