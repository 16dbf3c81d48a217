package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/harutok/warikan/internal/core/domain"
	"github.com/harutok/warikan/internal/utils/accounting"
)

func testTable(rates map[string]string) *domain.RateTable {
	parsed := make(map[string]decimal.Decimal, len(rates))
	for pair, rate := range rates {
		parsed[pair] = decimal.RequireFromString(rate)
	}
	return &domain.RateTable{
		BaseCurrency: "USD",
		Rates:        parsed,
		FetchedAt:    time.Now(),
		ValidUntil:   time.Now().Add(time.Hour),
	}
}

func TestToAccountingCurrency_AccountingCurrencyPassthrough(t *testing.T) {
	table := testTable(map[string]string{"USDJPY": "150"})

	// No rounding pass: the amount must come back exactly as given.
	amount := decimal.RequireFromString("123.456")
	got, rate := accounting.ToAccountingCurrency(amount, "JPY", table)

	assert.True(t, got.Equal(amount), "expected %s, got %s", amount, got)
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestToAccountingCurrency_NilTablePassthrough(t *testing.T) {
	amount := decimal.RequireFromString("42.42")
	got, rate := accounting.ToAccountingCurrency(amount, "USD", nil)

	assert.True(t, got.Equal(amount))
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestToAccountingCurrency_DirectRate(t *testing.T) {
	table := testTable(map[string]string{"USDJPY": "146.55"})

	got, rate := accounting.ToAccountingCurrency(decimal.NewFromInt(100), "USD", table)

	assert.True(t, got.Equal(decimal.RequireFromString("14655")), "got %s", got)
	assert.True(t, rate.Equal(decimal.RequireFromString("146.55")))
}

func TestToAccountingCurrency_Triangulation(t *testing.T) {
	table := testTable(map[string]string{
		"USDJPY": "150",
		"USDEUR": "0.8",
	})

	// 10 EUR -> 10 / 0.8 USD -> * 150 JPY = 1875
	got, rate := accounting.ToAccountingCurrency(decimal.NewFromInt(10), "EUR", table)

	assert.True(t, got.Equal(decimal.RequireFromString("1875")), "got %s", got)
	assert.True(t, rate.Equal(decimal.RequireFromString("187.5")))
}

func TestToAccountingCurrency_TriangulationRounding(t *testing.T) {
	table := testTable(map[string]string{
		"USDJPY": "150",
		"USDKRW": "1300",
	})

	// 1000 / 1300 * 150 = 115.3846... -> 115.38
	got, _ := accounting.ToAccountingCurrency(decimal.NewFromInt(1000), "KRW", table)

	assert.True(t, got.Equal(decimal.RequireFromString("115.38")), "got %s", got)
}

func TestToAccountingCurrency_RoundsHalfAwayFromZero(t *testing.T) {
	table := testTable(map[string]string{"USDJPY": "150.5"})

	// 0.47 * 150.5 = 70.735 -> 70.74
	got, _ := accounting.ToAccountingCurrency(decimal.RequireFromString("0.47"), "USD", table)

	assert.True(t, got.Equal(decimal.RequireFromString("70.74")), "got %s", got)
}

func TestToAccountingCurrency_MissingSourceRate(t *testing.T) {
	table := testTable(map[string]string{"USDJPY": "150"})

	amount := decimal.RequireFromString("99.99")
	got, rate := accounting.ToAccountingCurrency(amount, "THB", table)

	assert.True(t, got.Equal(amount), "unconvertible amounts must pass through unchanged")
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestToAccountingCurrency_MissingAccountingRate(t *testing.T) {
	table := testTable(map[string]string{"USDEUR": "0.8"})

	amount := decimal.NewFromInt(10)
	got, rate := accounting.ToAccountingCurrency(amount, "EUR", table)

	assert.True(t, got.Equal(amount))
	assert.True(t, rate.Equal(decimal.NewFromInt(1)))
}

func TestToAccountingCurrency_UnknownCurrencyBehavesLikeAbsentTable(t *testing.T) {
	table := testTable(map[string]string{
		"USDJPY": "150",
		"USDEUR": "0.8",
	})

	amount := decimal.RequireFromString("7.77")
	withTable, _ := accounting.ToAccountingCurrency(amount, "ZZZ", table)
	withoutTable, _ := accounting.ToAccountingCurrency(amount, "ZZZ", nil)

	assert.True(t, withTable.Equal(withoutTable))
	assert.True(t, withTable.Equal(amount))
}
