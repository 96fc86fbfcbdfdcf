package precatorio

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/warp/precatorio-engine/generic"
)

// =============================================================================
// CALCULATOR - Regime + timeline + accruals -> Result
// =============================================================================

// Calculate computes the updated value of a precatório.
//
//   - correction accrues over every interval, grace window included
//   - interest accrues over the full-rate intervals only
//   - each per-interval accrual is rounded to cents before summing
//
// Calculate does not validate its input; see Input.Validate. Any input
// produces a result: inverted dates degrade to empty intervals.
func Calculate(in Input) Result {
	resolution := ResolveRegime(in.IssuanceDate)
	grace := resolution.GraceWindow
	tl := Partition(in.BaseDate, in.FinalDate, grace)

	lines := make([]Line, 0, len(tl.FullRate)+len(tl.GraceRate))
	for _, interval := range tl.FullRate {
		kind := SegmentAfterGrace
		if interval.Start.Before(grace.Start) {
			kind = SegmentBeforeGrace
		}
		lines = append(lines, accrueLine(in, kind, interval))
	}
	for _, interval := range tl.GraceRate {
		lines = append(lines, accrueLine(in, SegmentGrace, interval))
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Interval.Start.Before(lines[j].Interval.Start)
	})

	correction := decimal.Zero
	interest := decimal.Zero
	for _, l := range lines {
		correction = correction.Add(l.Correction)
		interest = interest.Add(l.Interest)
	}

	return Result{
		Regime:      resolution.Regime,
		GraceWindow: grace,
		Principal:   in.Principal,
		Correction:  generic.RoundCents(correction),
		Interest:    generic.RoundCents(interest),
		Accretion:   generic.SumCents(correction, interest),
		Total:       generic.SumCents(in.Principal, correction, interest),
		Breakdown: Breakdown{
			FullRate:  tl.FullRate,
			GraceRate: tl.GraceRate,
			Rates:     in.Rates,
			Lines:     lines,
		},
	}
}

func accrueLine(in Input, kind SegmentKind, interval generic.Period) Line {
	line := Line{
		Kind:       kind,
		Interval:   interval,
		Days:       interval.Days(),
		Correction: generic.SimpleAccrual(in.Principal, interval, in.Rates.Correction),
		Interest:   decimal.Zero,
	}
	if kind.ChargesInterest() {
		line.Interest = generic.SimpleAccrual(in.Principal, interval, in.Rates.Interest)
	}
	return line
}
