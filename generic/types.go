/*
Package generic provides the domain-agnostic building blocks of the engine.

PURPOSE:
  Calendar dates, date periods, annual rates and the simple pro-rata
  accrual formula. Nothing in here knows about precatórios, regimes or
  grace windows; the precatorio package composes these pieces.

KEY CONCEPTS IN THIS FILE (types.go):
  - Rate: an annual percentage (1.0 = 1% per year)
  - Money rounding: every monetary figure is rounded to cents

DESIGN PRINCIPLES:
  1. Precision: uses decimal.Decimal to avoid floating-point drift
  2. Immutability: values are never modified after construction
  3. Purity: no I/O, no clocks (except Today), no shared state

USAGE:
  rate := generic.NewRate(1.0)
  interval := generic.NewPeriod(generic.MustParseDate("2021-05-10"),
      generic.MustParseDate("2022-04-01"))
  amount := generic.SimpleAccrual(decimal.NewFromInt(100000), interval, rate)

SEE ALSO:
  - date.go: Date type and day counting
  - period.go: Period (interval / window)
  - accrual.go: SimpleAccrual
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// RATE - Annual percentage
// =============================================================================

// Rate is an annual percentage rate. 1.0 means 1% per year.
type Rate struct {
	Percent decimal.Decimal
}

func NewRate(percent float64) Rate {
	return Rate{Percent: decimal.NewFromFloat(percent)}
}

func NewRateFromDecimal(percent decimal.Decimal) Rate {
	return Rate{Percent: percent}
}

// Fraction returns the rate as a fraction (1.0% -> 0.01).
func (r Rate) Fraction() decimal.Decimal { return r.Percent.Div(hundred) }
func (r Rate) IsNegative() bool          { return r.Percent.IsNegative() }
func (r Rate) IsZero() bool              { return r.Percent.IsZero() }
func (r Rate) Float64() float64          { f, _ := r.Percent.Float64(); return f }
func (r Rate) String() string            { return r.Percent.String() + "%" }

// =============================================================================
// MONEY
// =============================================================================

// CentsPlaces is the number of decimal places kept for monetary figures.
const CentsPlaces = 2

var hundred = decimal.NewFromInt(100)

// RoundCents rounds a monetary figure to the nearest cent, ties to even.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(CentsPlaces)
}

// SumCents adds already-rounded figures and rounds the total.
// The order (round each, then sum) matters for matching reference totals.
func SumCents(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return RoundCents(total)
}

// MustParseDecimal parses a decimal literal and panics if it is malformed.
func MustParseDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
