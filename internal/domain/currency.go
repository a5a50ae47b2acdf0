package domain

import "sort"

// DefaultCurrency is used when no currency is configured.
const DefaultCurrency = "USD"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CNY": "¥",
	"JPY": "¥",
	"CAD": "CAD$",
	"AUD": "AUD$",
}

// CurrencySymbol returns the display symbol for an ISO currency code.
func CurrencySymbol(code string) (string, bool) {
	s, ok := currencySymbols[code]
	return s, ok
}

// SupportedCurrencies returns the known currency codes in sorted order.
func SupportedCurrencies() []string {
	codes := make([]string, 0, len(currencySymbols))
	for c := range currencySymbols {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
