package report_test

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
	"github.com/warp/precatorio-engine/report"
)

func scenarioA() (precatorio.Input, precatorio.Result) {
	in := precatorio.Input{
		Principal:    generic.MustParseDecimal("100000"),
		BaseDate:     generic.MustParseDate("2021-05-10"),
		IssuanceDate: generic.MustParseDate("2022-03-20"),
		FinalDate:    generic.MustParseDate("2026-01-29"),
		Rates:        precatorio.DefaultRates(),
	}
	return in, precatorio.Calculate(in)
}

func TestFormatBRL(t *testing.T) {
	tests := map[string]string{
		"0":           "R$ 0,00",
		"5.5":         "R$ 5,50",
		"999.99":      "R$ 999,99",
		"1000":        "R$ 1.000,00",
		"106213.70":   "R$ 106.213,70",
		"1234567.891": "R$ 1.234.567,89",
		"-4726.02":    "R$ -4.726,02",
	}
	for in, want := range tests {
		assert.Equal(t, want, report.FormatBRL(generic.MustParseDecimal(in)), in)
	}
}

func TestFormatDateAndRate(t *testing.T) {
	assert.Equal(t, "29/01/2026", report.FormatDateBR(generic.MustParseDate("2026-01-29")))
	assert.Equal(t, "0,5% a.a.", report.FormatRate(generic.NewRate(0.5)))
	assert.Equal(t, "1% a.a.", report.FormatRate(generic.NewRate(1)))
}

func TestGetFormatterByName(t *testing.T) {
	assert.Equal(t, "console", report.GetFormatterByName("console").Name())
	assert.Equal(t, "console", report.GetFormatterByName("").Name())
	assert.Equal(t, "csv", report.GetFormatterByName("CSV").Name())
	assert.Nil(t, report.GetFormatterByName("pdf"))
}

func TestConsoleFormatter(t *testing.T) {
	// GIVEN: The EC 114 three-slice calculation
	// WHEN: Rendering the console report to a buffer
	// THEN: Inputs, regime, each period and the totals appear in order,
	// with interest marked as suspended during the grace window
	in, res := scenarioA()
	var buf bytes.Buffer

	require.NoError(t, report.ConsoleFormatter{}.Format(&buf, in, res))
	out := buf.String()

	expected := []string{
		"RELATÓRIO DE CÁLCULO DE PRECATÓRIO",
		"Valor Homologado: R$ 100.000,00",
		"Data do Ofício: 20/03/2022",
		"REGIME CONSTITUCIONAL: EC 114",
		"Período de Graça: 01/04/2022 até 31/12/2023",
		"Juros de Mora: 0,5% a.a.",
		"Período 1 - ANTES DO PERÍODO DE GRAÇA",
		"Dias corridos: 326",
		"Correção Monetária: R$ 893,15",
		"Juros de Mora: R$ 446,58",
		"Período 2 - DURANTE O PERÍODO DE GRAÇA",
		"Juros de Mora: SUSPENSOS (R$ 0,00)",
		"Período 3 - DEPOIS DO PERÍODO DE GRAÇA",
		"Subtotal do período: R$ 3.123,29",
		"(+) Correção Monetária Total: R$ 4.726,02",
		"(+) Juros de Mora Total: R$ 1.487,68",
		"(=) Total de Acréscimos: R$ 6.213,70",
		"VALOR TOTAL DO PRECATÓRIO: R$ 106.213,70",
	}
	pos := 0
	for _, s := range expected {
		idx := strings.Index(out[pos:], s)
		require.GreaterOrEqual(t, idx, 0, "missing or out of order: %q\n%s", s, out)
		pos += idx + len(s)
	}
	assert.NotContains(t, out, "\x1b[", "no ANSI codes when writing to a buffer")
}

func TestConsoleFormatter_NoPeriods(t *testing.T) {
	in := precatorio.Input{
		Principal:    generic.MustParseDecimal("12345.67"),
		BaseDate:     generic.MustParseDate("2023-03-01"),
		IssuanceDate: generic.MustParseDate("2023-03-01"),
		FinalDate:    generic.MustParseDate("2023-03-01"),
		Rates:        precatorio.DefaultRates(),
	}
	var buf bytes.Buffer

	require.NoError(t, report.ConsoleFormatter{}.Format(&buf, in, precatorio.Calculate(in)))
	assert.Contains(t, buf.String(), "Nenhum período a calcular")
	assert.Contains(t, buf.String(), "VALOR TOTAL DO PRECATÓRIO: R$ 12.345,67")
}

func TestCSVFormatter(t *testing.T) {
	in, res := scenarioA()
	var buf bytes.Buffer

	require.NoError(t, report.CSVFormatter{}.Format(&buf, in, res))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, []string{"tipo", "inicio", "fim", "dias", "correcao_monetaria", "juros_mora", "subtotal"}, rows[0])
	assert.Equal(t, []string{"before_grace", "2021-05-10", "2022-04-01", "326", "893.15", "446.58", "1339.73"}, rows[1])
	assert.Equal(t, []string{"grace", "2022-04-01", "2023-12-31", "639", "1750.68", "0.00", "1750.68"}, rows[2])
	assert.Equal(t, []string{"after_grace", "2023-12-31", "2026-01-29", "760", "2082.19", "1041.10", "3123.29"}, rows[3])
	assert.Equal(t, []string{"total", "", "", "", "4726.02", "1487.68", "6213.70"}, rows[4])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, assert.AnError }

func TestConsoleFormatter_WriteError(t *testing.T) {
	in, res := scenarioA()
	err := report.ConsoleFormatter{}.Format(failingWriter{}, in, res)
	assert.ErrorIs(t, err, assert.AnError)
}
