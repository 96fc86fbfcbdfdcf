package precatorio_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/warp/precatorio-engine/generic"
	"github.com/warp/precatorio-engine/precatorio"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func d(s string) generic.Date { return generic.MustParseDate(s) }

func period(start, end string) generic.Period {
	return generic.NewPeriod(d(start), d(end))
}

func input(principal, base, issuance, final string) precatorio.Input {
	return precatorio.Input{
		Principal:    generic.MustParseDecimal(principal),
		BaseDate:     d(base),
		IssuanceDate: d(issuance),
		FinalDate:    d(final),
		Rates:        precatorio.DefaultRates(),
	}
}

func assertMoney(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, generic.MustParseDecimal(want).Equal(got), "%s: want %s, got %s", field, want, got.String())
}
