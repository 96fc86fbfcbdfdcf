/*
Package precatorio computes the monetary update of a judicial payment order.

PURPOSE:
  A precatório is updated from its base date to a final date with monetary
  correction over the whole span and moratory interest only outside the
  constitutional grace window. This package holds the engine:

    1. ResolveRegime - issuance date -> regime (CF / EC 114 / EC 136) + grace window
    2. Partition     - [base, final] -> full-rate intervals + grace-rate interval
    3. Calculate     - sums SimpleAccrual over the intervals into a Result

  All three are pure functions. Nothing is persisted and nothing is
  mutated after construction; calls may run in parallel freely.

ROUNDING:
  Every elementary accrual is rounded to cents, then the rounded values
  are summed and the sums rounded again.

DAY COUNT:
  Calendar days over a fixed 365-day year, simple interest. No leap-year
  adjustment.

SEE ALSO:
  - regime.go: Regime table
  - timeline.go: Partition
  - calculator.go: Calculate
  - validate.go: Boundary validation (used by api and cmd)
  - generic/accrual.go: SimpleAccrual
*/
package precatorio

import (
	"github.com/shopspring/decimal"
	"github.com/warp/precatorio-engine/generic"
)

// =============================================================================
// INPUT
// =============================================================================

// Rates are the annual percentages applied to the principal.
type Rates struct {
	Correction generic.Rate // monetary correction, whole timeline
	Interest   generic.Rate // moratory interest, outside the grace window only
}

// Default annual rates (percent per year).
const (
	DefaultCorrectionRate = 1.0
	DefaultInterestRate   = 0.5
)

// DefaultRates returns 1.0% p.a. correction and 0.5% p.a. interest.
func DefaultRates() Rates {
	return Rates{
		Correction: generic.NewRate(DefaultCorrectionRate),
		Interest:   generic.NewRate(DefaultInterestRate),
	}
}

// Input holds everything a calculation depends on.
type Input struct {
	Principal    decimal.Decimal // valor homologado
	BaseDate     generic.Date    // data-base (homologation / res judicata)
	IssuanceDate generic.Date    // data do ofício requisitório
	FinalDate    generic.Date    // evaluation date
	Rates        Rates
}

// =============================================================================
// RESULT
// =============================================================================

// Result is the structured outcome of a calculation.
type Result struct {
	Regime      Regime
	GraceWindow generic.Period // both ends inclusive

	Principal  decimal.Decimal
	Correction decimal.Decimal // correção monetária
	Interest   decimal.Decimal // juros de mora
	Accretion  decimal.Decimal // correction + interest
	Total      decimal.Decimal // principal + accretion

	Breakdown Breakdown
}

// Breakdown lists every interval used and the rates applied to them.
type Breakdown struct {
	FullRate  []generic.Period // correction + interest
	GraceRate []generic.Period // correction only
	Rates     Rates
	Lines     []Line // one per interval, chronological
}

// SegmentKind tells where an interval sits relative to the grace window.
type SegmentKind string

const (
	SegmentBeforeGrace SegmentKind = "before_grace"
	SegmentGrace       SegmentKind = "grace"
	SegmentAfterGrace  SegmentKind = "after_grace"
)

// ChargesInterest reports whether moratory interest runs in this segment.
func (k SegmentKind) ChargesInterest() bool {
	return k != SegmentGrace
}

// Line is the accrual over a single interval.
type Line struct {
	Kind       SegmentKind
	Interval   generic.Period
	Days       int
	Correction decimal.Decimal
	Interest   decimal.Decimal // zero during the grace window
}

// Subtotal returns correction + interest for the line.
func (l Line) Subtotal() decimal.Decimal {
	return l.Correction.Add(l.Interest)
}
