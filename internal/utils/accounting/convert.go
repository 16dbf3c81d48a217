package accounting

import (
	"github.com/shopspring/decimal"

	"github.com/harutok/warikan/internal/core/domain"
)

// NormalizedPrecision is the number of decimal places a normalized amount is
// rounded to. Rounding happens exactly once, at conversion time.
const NormalizedPrecision = 2

// ToAccountingCurrency converts an amount in the given currency into the
// accounting currency using the supplied rate table. It returns the converted
// amount together with the effective rate that was applied, so callers can
// store both on the payment.
//
// The conversion never fails: when the table is absent, or the needed rate
// entries are missing, the amount is returned unchanged with a rate of one.
// Fabricating a rate is explicitly not an option.
//
// Lookup order:
//  1. The accounting currency itself passes through exactly, no rounding.
//  2. A direct SOURCE->accounting entry (e.g. "USDJPY") multiplies directly.
//  3. Otherwise triangulate through the table's base currency: source->base via
//     the inverse of the base->source entry, then base->accounting.
//
// The result is rounded half away from zero to NormalizedPrecision places.
func ToAccountingCurrency(amount decimal.Decimal, currencyCode string, table *domain.RateTable) (decimal.Decimal, decimal.Decimal) {
	one := decimal.NewFromInt(1)

	if currencyCode == domain.AccountingCurrency {
		return amount, one
	}
	if table == nil {
		return amount, one
	}

	if direct, ok := table.Rate(currencyCode + domain.AccountingCurrency); ok {
		return amount.Mul(direct).Round(NormalizedPrecision), direct
	}

	baseToSource, okSource := table.Rate(table.BaseCurrency + currencyCode)
	baseToAccounting, okAccounting := table.Rate(table.BaseCurrency + domain.AccountingCurrency)
	if !okSource || !okAccounting || baseToSource.IsZero() {
		return amount, one
	}

	rate := baseToAccounting.Div(baseToSource)
	return amount.Mul(rate).Round(NormalizedPrecision), rate
}
