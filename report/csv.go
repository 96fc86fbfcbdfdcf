package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/warp/precatorio-engine/precatorio"
)

// CSVFormatter writes one row per interval plus a totals row.
// Numbers use "." decimals so spreadsheets in any locale can import them.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

var csvHeader = []string{
	"tipo", "inicio", "fim", "dias", "correcao_monetaria", "juros_mora", "subtotal",
}

func (CSVFormatter) Format(w io.Writer, _ precatorio.Input, res precatorio.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, l := range res.Breakdown.Lines {
		row := []string{
			string(l.Kind),
			l.Interval.Start.String(),
			l.Interval.End.String(),
			strconv.Itoa(l.Days),
			l.Correction.StringFixed(2),
			l.Interest.StringFixed(2),
			l.Subtotal().StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	total := []string{
		"total", "", "", "",
		res.Correction.StringFixed(2),
		res.Interest.StringFixed(2),
		res.Accretion.StringFixed(2),
	}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("write csv totals: %w", err)
	}

	cw.Flush()
	return cw.Error()
}
