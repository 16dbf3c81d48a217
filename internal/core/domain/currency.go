package domain

// AccountingCurrency is the single currency every payment is normalized into
// before settlement amounts are aggregated.
const AccountingCurrency = "JPY"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Precision    int    `json:"precision"`    // Display decimal places
}

// SupportedCurrencies is the closed set of currencies a payment may be recorded
// in. The accounting currency is always the first entry.
var SupportedCurrencies = []Currency{
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Precision: 0},
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2},
	{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Precision: 2},
	{CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan", Precision: 2},
	{CurrencyCode: "KRW", Symbol: "₩", Name: "South Korean Won", Precision: 0},
	{CurrencyCode: "THB", Symbol: "฿", Name: "Thai Baht", Precision: 2},
	{CurrencyCode: "SGD", Symbol: "S$", Name: "Singapore Dollar", Precision: 2},
}

// IsSupportedCurrency reports whether code is part of the closed currency set.
func IsSupportedCurrency(code string) bool {
	for _, c := range SupportedCurrencies {
		if c.CurrencyCode == code {
			return true
		}
	}
	return false
}

// FindCurrency returns the currency metadata for code, or nil if the code is
// not part of the supported set.
func FindCurrency(code string) *Currency {
	for i := range SupportedCurrencies {
		if SupportedCurrencies[i].CurrencyCode == code {
			return &SupportedCurrencies[i]
		}
	}
	return nil
}
