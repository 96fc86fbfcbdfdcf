package precatorio

import (
	"time"

	"github.com/warp/precatorio-engine/generic"
)

// =============================================================================
// REGIME - Constitutional regime governing the grace window
// =============================================================================

// Regime is the constitutional rule set in force when the requisition
// order (ofício requisitório) was issued.
type Regime string

const (
	RegimeCF    Regime = "CF"     // original constitutional text, art. 100
	RegimeEC114 Regime = "EC 114" // Constitutional Amendment 114/2021
	RegimeEC136 Regime = "EC 136" // Constitutional Amendment 136/2025
)

func (r Regime) String() string { return string(r) }

// RegimeRule is one row of the regime table.
type RegimeRule struct {
	Regime Regime

	// Through is the last issuance date (inclusive) the rule covers.
	// The zero Date means open-ended.
	Through generic.Date

	// GraceStartMonth is the month (day 1) of the issuance year in which
	// the grace window opens. It always closes on Dec 31 of the next year.
	GraceStartMonth time.Month
}

// regimeTable is consulted top to bottom; first match wins.
var regimeTable = []RegimeRule{
	{Regime: RegimeCF, Through: generic.NewDate(2021, time.December, 15), GraceStartMonth: time.July},
	{Regime: RegimeEC114, Through: generic.NewDate(2025, time.September, 9), GraceStartMonth: time.April},
	{Regime: RegimeEC136, GraceStartMonth: time.February},
}

// Regimes returns a copy of the regime table, in evaluation order.
func Regimes() []RegimeRule {
	rules := make([]RegimeRule, len(regimeTable))
	copy(rules, regimeTable)
	return rules
}

func (rule RegimeRule) covers(issuance generic.Date) bool {
	return rule.Through.IsZero() || issuance.BeforeOrEqual(rule.Through)
}

// GraceWindow returns the grace window for an order issued on the given date.
func (rule RegimeRule) GraceWindow(issuance generic.Date) generic.Period {
	year := issuance.Year()
	return generic.Period{
		Start: generic.NewDate(year, rule.GraceStartMonth, 1),
		End:   generic.EndOfYear(year + 1),
	}
}

// Resolution is the regime and grace window for an issuance date.
type Resolution struct {
	Regime      Regime
	GraceWindow generic.Period
}

// ResolveRegime maps an issuance date to its regime and grace window.
// Every date maps to exactly one regime.
func ResolveRegime(issuance generic.Date) Resolution {
	for _, rule := range regimeTable {
		if rule.covers(issuance) {
			return Resolution{Regime: rule.Regime, GraceWindow: rule.GraceWindow(issuance)}
		}
	}
	// Unreachable: the last rule is open-ended.
	last := regimeTable[len(regimeTable)-1]
	return Resolution{Regime: last.Regime, GraceWindow: last.GraceWindow(issuance)}
}
