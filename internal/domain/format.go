package domain

import "strconv"

// FormatPrice renders amount prefixed with the currency symbol, falling back
// to the raw code. Always two decimals, no grouping.
func (t *ReferenceTables) FormatPrice(amount float64, currency CurrencyCode) string {
	sym, ok := t.SymbolFor(currency)
	if !ok {
		sym = string(currency)
	}
	return sym + strconv.FormatFloat(amount, 'f', 2, 64)
}

// FormatPrice formats with the built-in tables.
func FormatPrice(amount float64, currency CurrencyCode) string {
	return DefaultTables().FormatPrice(amount, currency)
}

// SamplePrices are the reference amounts shown alongside a detection.
var SamplePrices = []float64{9.99, 29.99, 99.99}
