package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/warp/precatorio-engine/precatorio"
)

const ruleWidth = 80

// ConsoleFormatter prints the detailed report: inputs, regime and grace
// window, rates, one block per interval, then the totals.
//
// Styling comes from a lipgloss renderer bound to the writer, so output
// to a file or buffer is plain text.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

type consoleStyles struct {
	title   lipgloss.Style
	section lipgloss.Style
	total   lipgloss.Style
	muted   lipgloss.Style
}

func newConsoleStyles(w io.Writer) consoleStyles {
	r := lipgloss.NewRenderer(w)
	return consoleStyles{
		title:   r.NewStyle().Bold(true),
		section: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		total:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (ConsoleFormatter) Format(w io.Writer, in precatorio.Input, res precatorio.Result) error {
	st := newConsoleStyles(w)
	p := &printer{w: w}
	heavy := strings.Repeat("=", ruleWidth)

	p.line(heavy)
	p.line(st.title.Render("RELATÓRIO DE CÁLCULO DE PRECATÓRIO"))
	p.line(heavy)

	p.line("")
	p.line(st.section.Render("DADOS DE ENTRADA:"))
	p.linef("   Valor Homologado: %s", FormatBRL(in.Principal))
	p.linef("   Data-base: %s", FormatDateBR(in.BaseDate))
	p.linef("   Data do Ofício: %s", FormatDateBR(in.IssuanceDate))
	p.linef("   Data Final: %s", FormatDateBR(in.FinalDate))

	p.line("")
	p.line(st.section.Render("REGIME CONSTITUCIONAL: " + res.Regime.String()))
	p.linef("   Período de Graça: %s até %s",
		FormatDateBR(res.GraceWindow.Start), FormatDateBR(res.GraceWindow.End))

	rates := res.Breakdown.Rates
	p.line("")
	p.line(st.section.Render("TAXAS APLICADAS:"))
	p.linef("   Correção Monetária: %s", FormatRate(rates.Correction))
	p.linef("   Juros de Mora: %s", FormatRate(rates.Interest))

	p.line("")
	p.line(heavy)
	p.line(st.title.Render("DIVISÃO TEMPORAL E CÁLCULOS POR PERÍODO"))
	p.line(heavy)

	if len(res.Breakdown.Lines) == 0 {
		p.line("")
		p.line(st.muted.Render("   Nenhum período a calcular (data-base igual à data final)."))
	}
	for i, l := range res.Breakdown.Lines {
		p.line("")
		p.line(st.section.Render(fmt.Sprintf("Período %d - %s", i+1, kindLabel(l.Kind))))
		p.linef("   Data Início: %s", FormatDateBR(l.Interval.Start))
		p.linef("   Data Fim: %s", FormatDateBR(l.Interval.End))
		p.linef("   Dias corridos: %d", l.Days)
		p.linef("   Correção Monetária: %s", FormatBRL(l.Correction))
		if l.Kind.ChargesInterest() {
			p.linef("   Juros de Mora: %s", FormatBRL(l.Interest))
		} else {
			p.line("   Juros de Mora: SUSPENSOS (R$ 0,00)")
		}
		p.linef("   Subtotal do período: %s", FormatBRL(l.Subtotal()))
	}

	p.line("")
	p.line(heavy)
	p.line(st.title.Render("TOTALIZAÇÃO"))
	p.line(heavy)
	p.linef("   Valor Principal: %s", FormatBRL(res.Principal))
	p.linef("   (+) Correção Monetária Total: %s", FormatBRL(res.Correction))
	p.linef("   (+) Juros de Mora Total: %s", FormatBRL(res.Interest))
	p.line("   " + strings.Repeat("-", 60))
	p.linef("   (=) Total de Acréscimos: %s", FormatBRL(res.Accretion))
	p.line("   " + strings.Repeat("=", 60))
	p.line(st.total.Render("   VALOR TOTAL DO PRECATÓRIO: " + FormatBRL(res.Total)))
	p.line(heavy)

	return p.err
}

// printer remembers the first write error so Format can report it once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, s)
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}
