package domain

import "sync"

// ReferenceTables holds the static lookup data used by probes and the
// formatter. A value is immutable once constructed; share it by pointer.
type ReferenceTables struct {
	countryCurrency map[CountryCode]CurrencyCode
	currencySymbol  map[CurrencyCode]string
	timezoneCountry map[string]CountryCode
}

// TableExtras are additional entries layered over the built-in tables.
// Extras win over built-ins on key collision.
type TableExtras struct {
	Countries map[CountryCode]CurrencyCode
	Symbols   map[CurrencyCode]string
	Timezones map[string]CountryCode
}

var builtinCountryCurrency = map[CountryCode]CurrencyCode{
	"US": "USD", "CA": "CAD", "MX": "MXN", "GB": "GBP", "FR": "EUR", "DE": "EUR",
	"IT": "EUR", "ES": "EUR", "NL": "EUR", "BE": "EUR", "AT": "EUR", "PT": "EUR",
	"GR": "EUR", "FI": "EUR", "IE": "EUR", "CH": "CHF", "NO": "NOK", "SE": "SEK",
	"DK": "DKK", "PL": "PLN", "CZ": "CZK", "HU": "HUF", "RO": "RON", "BG": "BGN",
	"HR": "EUR", "RS": "RSD", "RU": "RUB", "UA": "UAH", "CN": "CNY", "JP": "JPY",
	"KR": "KRW", "IN": "INR", "ID": "IDR", "TH": "THB", "MY": "MYR", "SG": "SGD",
	"PH": "PHP", "VN": "VND", "AU": "AUD", "NZ": "NZD", "BR": "BRL", "AR": "ARS",
	"CL": "CLP", "CO": "COP", "PE": "PEN", "ZA": "ZAR", "NG": "NGN", "KE": "KES",
	"EG": "EGP", "AE": "AED", "SA": "SAR", "IL": "ILS", "TR": "TRY",
}

var builtinCurrencySymbol = map[CurrencyCode]string{
	"USD": "$", "EUR": "€", "GBP": "£", "JPY": "¥", "CNY": "¥", "INR": "₹",
	"KRW": "₩", "CAD": "$", "AUD": "$", "CHF": "CHF", "SEK": "kr", "NOK": "kr",
	"DKK": "kr", "PLN": "zł", "CZK": "Kč", "HUF": "Ft", "RUB": "₽", "BRL": "R$",
	"MXN": "$", "SGD": "$", "HKD": "$", "NZD": "$", "ZAR": "R", "TRY": "₺",
	"AED": "د.إ", "SAR": "ر.س", "ILS": "₪", "THB": "฿", "MYR": "RM", "IDR": "Rp",
	"PHP": "₱", "VND": "₫", "EGP": "ج.م", "NGN": "₦", "KES": "KSh",
}

// Curated subset of IANA zones; not exhaustive.
var builtinTimezoneCountry = map[string]CountryCode{
	"America/New_York": "US", "America/Chicago": "US", "America/Los_Angeles": "US",
	"America/Denver": "US", "America/Toronto": "CA", "America/Vancouver": "CA",
	"Europe/London": "GB", "Europe/Paris": "FR", "Europe/Berlin": "DE",
	"Europe/Rome": "IT", "Europe/Madrid": "ES", "Europe/Amsterdam": "NL",
	"Europe/Stockholm": "SE", "Europe/Oslo": "NO", "Europe/Copenhagen": "DK",
	"Asia/Tokyo": "JP", "Asia/Shanghai": "CN", "Asia/Seoul": "KR",
	"Asia/Kolkata": "IN", "Asia/Singapore": "SG", "Asia/Bangkok": "TH",
	"Australia/Sydney": "AU", "Australia/Melbourne": "AU",
	"America/Sao_Paulo": "BR", "America/Mexico_City": "MX",
}

var defaultTables = sync.OnceValue(func() *ReferenceTables {
	return NewReferenceTables(TableExtras{})
})

// DefaultTables returns the process-wide built-in tables.
func DefaultTables() *ReferenceTables {
	return defaultTables()
}

// NewReferenceTables copies the built-in tables and layers extras on top.
func NewReferenceTables(extras TableExtras) *ReferenceTables {
	t := &ReferenceTables{
		countryCurrency: make(map[CountryCode]CurrencyCode, len(builtinCountryCurrency)+len(extras.Countries)),
		currencySymbol:  make(map[CurrencyCode]string, len(builtinCurrencySymbol)+len(extras.Symbols)),
		timezoneCountry: make(map[string]CountryCode, len(builtinTimezoneCountry)+len(extras.Timezones)),
	}

	for k, v := range builtinCountryCurrency {
		t.countryCurrency[k] = v
	}
	for k, v := range extras.Countries {
		t.countryCurrency[k] = v
	}

	for k, v := range builtinCurrencySymbol {
		t.currencySymbol[k] = v
	}
	for k, v := range extras.Symbols {
		t.currencySymbol[k] = v
	}

	for k, v := range builtinTimezoneCountry {
		t.timezoneCountry[k] = v
	}
	for k, v := range extras.Timezones {
		t.timezoneCountry[k] = v
	}

	return t
}

// CurrencyFor returns the currency used in a country.
func (t *ReferenceTables) CurrencyFor(c CountryCode) (CurrencyCode, bool) {
	cur, ok := t.countryCurrency[c]
	return cur, ok
}

// SymbolFor returns the display symbol for a currency.
func (t *ReferenceTables) SymbolFor(c CurrencyCode) (string, bool) {
	sym, ok := t.currencySymbol[c]
	return sym, ok
}

// CountryForTimezone maps an IANA zone identifier to a country.
func (t *ReferenceTables) CountryForTimezone(tz string) (CountryCode, bool) {
	c, ok := t.timezoneCountry[tz]
	return c, ok
}
