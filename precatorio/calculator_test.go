package precatorio_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
)

// =============================================================================
// REFERENCE SCENARIOS
// =============================================================================

func TestCalculate_EC114ThreeSlices(t *testing.T) {
	// GIVEN: an EC 114 order with base before and final after the window
	// WHEN: calculating with default rates
	// THEN: correction runs over all three slices, interest skips the window
	res := precatorio.Calculate(input("100000", "2021-05-10", "2022-03-20", "2026-01-29"))

	assert.Equal(t, precatorio.RegimeEC114, res.Regime)
	assert.Equal(t, period("2022-04-01", "2023-12-31"), res.GraceWindow)

	assertMoney(t, "100000", res.Principal, "principal")
	assertMoney(t, "4726.02", res.Correction, "correction")
	assertMoney(t, "1487.68", res.Interest, "interest")
	assertMoney(t, "6213.70", res.Accretion, "accretion")
	assertMoney(t, "106213.70", res.Total, "total")

	require.Len(t, res.Breakdown.Lines, 3)
	want := []struct {
		kind       precatorio.SegmentKind
		days       int
		correction string
		interest   string
	}{
		{precatorio.SegmentBeforeGrace, 326, "893.15", "446.58"},
		{precatorio.SegmentGrace, 639, "1750.68", "0"},
		{precatorio.SegmentAfterGrace, 760, "2082.19", "1041.10"},
	}
	for i, w := range want {
		line := res.Breakdown.Lines[i]
		assert.Equal(t, w.kind, line.Kind)
		assert.Equal(t, w.days, line.Days)
		assertMoney(t, w.correction, line.Correction, string(w.kind)+" correction")
		assertMoney(t, w.interest, line.Interest, string(w.kind)+" interest")
	}
	assertMoney(t, "1339.73", res.Breakdown.Lines[0].Subtotal(), "subtotal")
}

func TestCalculate_CustomRates(t *testing.T) {
	in := input("100000", "2021-05-10", "2022-03-20", "2026-01-29")
	in.Rates = precatorio.Rates{Correction: generic.NewRate(2.5), Interest: generic.NewRate(1.0)}

	res := precatorio.Calculate(in)

	assertMoney(t, "11815.07", res.Correction, "correction")
	assertMoney(t, "2975.34", res.Interest, "interest")
	assertMoney(t, "114790.41", res.Total, "total")
	assert.Equal(t, in.Rates, res.Breakdown.Rates)
}

func TestCalculate_CF(t *testing.T) {
	res := precatorio.Calculate(input("250000", "2019-03-01", "2020-05-15", "2022-06-30"))

	assert.Equal(t, precatorio.RegimeCF, res.Regime)
	assert.Equal(t, period("2020-07-01", "2021-12-31"), res.GraceWindow)
	assert.Equal(t, []generic.Period{
		period("2019-03-01", "2020-07-01"),
		period("2021-12-31", "2022-06-30"),
	}, res.Breakdown.FullRate)
	assert.Equal(t, []generic.Period{period("2020-07-01", "2021-12-31")}, res.Breakdown.GraceRate)

	assertMoney(t, "8335.62", res.Correction, "correction")
	assertMoney(t, "2291.09", res.Interest, "interest")
	assertMoney(t, "10626.71", res.Accretion, "accretion")
	assertMoney(t, "260626.71", res.Total, "total")
}

func TestCalculate_EC136(t *testing.T) {
	res := precatorio.Calculate(input("80000", "2025-01-15", "2025-10-01", "2026-06-30"))

	assert.Equal(t, precatorio.RegimeEC136, res.Regime)
	assert.Equal(t, period("2025-02-01", "2026-12-31"), res.GraceWindow)
	assert.Equal(t, []generic.Period{period("2025-01-15", "2025-02-01")}, res.Breakdown.FullRate)
	assert.Equal(t, []generic.Period{period("2025-02-01", "2026-06-30")}, res.Breakdown.GraceRate)

	assertMoney(t, "1163.84", res.Correction, "correction")
	assertMoney(t, "18.63", res.Interest, "interest")
	assertMoney(t, "1182.47", res.Accretion, "accretion")
	assertMoney(t, "81182.47", res.Total, "total")
}

func TestCalculate_ZeroLengthSpan(t *testing.T) {
	// GIVEN: base, issuance and final on the same day
	// WHEN: calculating
	// THEN: nothing accrues and the total equals the principal
	res := precatorio.Calculate(input("12345.67", "2023-03-01", "2023-03-01", "2023-03-01"))

	assert.Equal(t, precatorio.RegimeEC114, res.Regime)
	assert.Equal(t, period("2023-04-01", "2024-12-31"), res.GraceWindow)
	assertMoney(t, "0", res.Correction, "correction")
	assertMoney(t, "0", res.Interest, "interest")
	assertMoney(t, "0", res.Accretion, "accretion")
	assertMoney(t, "12345.67", res.Total, "total")
	assert.Empty(t, res.Breakdown.FullRate)
	assert.Empty(t, res.Breakdown.GraceRate)
	assert.Empty(t, res.Breakdown.Lines)
}

func TestCalculate_GraceAfterFinal(t *testing.T) {
	// GIVEN: an order issued after the final date, so the window lies
	// entirely beyond the timeline
	// WHEN: calculating
	// THEN: the whole span is full-rate
	res := precatorio.Calculate(input("50000", "2020-01-10", "2024-05-01", "2023-06-30"))

	assert.Equal(t, precatorio.RegimeEC114, res.Regime)
	assert.Equal(t, period("2024-04-01", "2025-12-31"), res.GraceWindow)
	assert.Equal(t, []generic.Period{period("2020-01-10", "2023-06-30")}, res.Breakdown.FullRate)
	assert.Empty(t, res.Breakdown.GraceRate)
	require.Len(t, res.Breakdown.Lines, 1)
	assert.Equal(t, precatorio.SegmentBeforeGrace, res.Breakdown.Lines[0].Kind)

	assertMoney(t, "1735.62", res.Correction, "correction")
	assertMoney(t, "867.81", res.Interest, "interest")
	assertMoney(t, "2603.43", res.Accretion, "accretion")
	assertMoney(t, "52603.43", res.Total, "total")
}

func TestCalculate_RegimeBoundary(t *testing.T) {
	cf := precatorio.Calculate(input("1000", "2021-01-01", "2021-12-15", "2023-06-01"))
	assert.Equal(t, precatorio.RegimeCF, cf.Regime)
	assert.Equal(t, period("2021-07-01", "2022-12-31"), cf.GraceWindow)
	assertMoney(t, "24.13", cf.Correction, "cf correction")
	assertMoney(t, "4.56", cf.Interest, "cf interest")
	assertMoney(t, "1028.69", cf.Total, "cf total")

	ec := precatorio.Calculate(input("1000", "2021-01-01", "2021-12-16", "2023-06-01"))
	assert.Equal(t, precatorio.RegimeEC114, ec.Regime)
	assert.Equal(t, period("2021-04-01", "2022-12-31"), ec.GraceWindow)
	assertMoney(t, "24.14", ec.Correction, "ec correction")
	assertMoney(t, "3.31", ec.Interest, "ec interest")
	assertMoney(t, "1027.45", ec.Total, "ec total")
}

// =============================================================================
// PROPERTIES
// =============================================================================

func TestCalculate_TotalsMatchLines(t *testing.T) {
	cases := []precatorio.Input{
		input("100000", "2021-05-10", "2022-03-20", "2026-01-29"),
		input("250000", "2019-03-01", "2020-05-15", "2022-06-30"),
		input("80000", "2025-01-15", "2025-10-01", "2026-06-30"),
		input("987654.32", "2018-02-03", "2023-01-05", "2030-07-21"),
	}
	for _, in := range cases {
		res := precatorio.Calculate(in)

		correction, interest := decimal.Zero, decimal.Zero
		for _, l := range res.Breakdown.Lines {
			correction = correction.Add(l.Correction)
			interest = interest.Add(l.Interest)
			if l.Kind == precatorio.SegmentGrace {
				assert.True(t, l.Interest.IsZero(), "no interest inside the grace window")
			}
		}
		assertMoney(t, correction.String(), res.Correction, "correction")
		assertMoney(t, interest.String(), res.Interest, "interest")
		assertMoney(t, res.Correction.Add(res.Interest).String(), res.Accretion, "accretion")
		assertMoney(t, res.Principal.Add(res.Accretion).String(), res.Total, "total")
		assert.Len(t, res.Breakdown.Lines, len(res.Breakdown.FullRate)+len(res.Breakdown.GraceRate))
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	// GIVEN: the same input
	// WHEN: calculating repeatedly and concurrently
	// THEN: every result is identical
	in := input("100000", "2021-05-10", "2022-03-20", "2026-01-29")
	want := precatorio.Calculate(in)

	var wg sync.WaitGroup
	results := make([]precatorio.Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = precatorio.Calculate(in)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestCase_Calculate(t *testing.T) {
	c := precatorio.Case{ID: "c1", Input: input("100000", "2021-05-10", "2022-03-20", "2026-01-29")}
	assertMoney(t, "106213.70", c.Calculate().Total, "total")
}
