package precatorio_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
)

func TestResolveRegime_Boundaries(t *testing.T) {
	tests := []struct {
		issuance   string
		regime     precatorio.Regime
		graceStart string
		graceEnd   string
	}{
		{"1995-06-10", precatorio.RegimeCF, "1995-07-01", "1996-12-31"},
		{"2020-05-15", precatorio.RegimeCF, "2020-07-01", "2021-12-31"},
		{"2021-12-15", precatorio.RegimeCF, "2021-07-01", "2022-12-31"},
		{"2021-12-16", precatorio.RegimeEC114, "2021-04-01", "2022-12-31"},
		{"2022-03-20", precatorio.RegimeEC114, "2022-04-01", "2023-12-31"},
		{"2025-09-09", precatorio.RegimeEC114, "2025-04-01", "2026-12-31"},
		{"2025-09-10", precatorio.RegimeEC136, "2025-02-01", "2026-12-31"},
		{"2025-10-01", precatorio.RegimeEC136, "2025-02-01", "2026-12-31"},
		{"2040-01-01", precatorio.RegimeEC136, "2040-02-01", "2041-12-31"},
	}
	for _, tt := range tests {
		t.Run(tt.issuance, func(t *testing.T) {
			got := precatorio.ResolveRegime(d(tt.issuance))
			assert.Equal(t, tt.regime, got.Regime)
			assert.Equal(t, tt.graceStart, got.GraceWindow.Start.String())
			assert.Equal(t, tt.graceEnd, got.GraceWindow.End.String())
		})
	}
}

func TestResolveRegime_IsTotal(t *testing.T) {
	// GIVEN: every day from 2015 through 2030
	// WHEN: resolving the regime
	// THEN: exactly one known regime applies and the window closes on
	// Dec 31 of the following year
	known := map[precatorio.Regime]bool{
		precatorio.RegimeCF: true, precatorio.RegimeEC114: true, precatorio.RegimeEC136: true,
	}

	for day := d("2015-01-01"); day.BeforeOrEqual(d("2030-12-31")); day = day.AddDays(1) {
		got := precatorio.ResolveRegime(day)
		if !assert.True(t, known[got.Regime], "unknown regime %q for %s", got.Regime, day) {
			return
		}
		assert.Equal(t, generic.EndOfYear(day.Year()+1), got.GraceWindow.End)
		assert.Equal(t, day.Year(), got.GraceWindow.Start.Year())
		assert.Equal(t, 1, got.GraceWindow.Start.Day())
	}
}

func TestRegimes_Table(t *testing.T) {
	rules := precatorio.Regimes()

	assert.Len(t, rules, 3)
	assert.Equal(t, precatorio.RegimeCF, rules[0].Regime)
	assert.Equal(t, time.July, rules[0].GraceStartMonth)
	assert.Equal(t, "2021-12-15", rules[0].Through.String())
	assert.Equal(t, time.April, rules[1].GraceStartMonth)
	assert.Equal(t, "2025-09-09", rules[1].Through.String())
	assert.True(t, rules[2].Through.IsZero(), "last rule is open-ended")

	// Mutating the copy must not affect resolution.
	rules[0].Regime = "X"
	assert.Equal(t, precatorio.RegimeCF, precatorio.ResolveRegime(d("2020-01-01")).Regime)
}
