package generic

import "github.com/shopspring/decimal"

// =============================================================================
// SIMPLE ACCRUAL - Linear pro-rata of an annual rate
// =============================================================================

// DaysPerYear is the fixed year length of the day count (actual/365).
// Leap years are not adjusted for.
const DaysPerYear = 365

var daysPerYear = decimal.NewFromInt(DaysPerYear)

// SimpleAccrual returns principal * (rate / 100) * (days / 365) over the
// interval, rounded to cents. Intervals with End <= Start accrue zero.
//
// The accrual is simple (non-compounding) and linear in days.
func SimpleAccrual(principal decimal.Decimal, interval Period, rate Rate) decimal.Decimal {
	if interval.IsEmpty() {
		return decimal.Zero
	}

	days := decimal.NewFromInt(int64(interval.Days()))
	amount := principal.Mul(rate.Fraction()).Mul(days).Div(daysPerYear)
	return RoundCents(amount)
}
