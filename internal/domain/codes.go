package domain

import "strings"

// CountryCode is an ISO-3166 alpha-2 code, upper-case.
type CountryCode string

// CurrencyCode is an ISO-4217 alpha-3 code, upper-case.
type CurrencyCode string

const (
	DefaultCountry  CountryCode  = "US"
	DefaultCurrency CurrencyCode = "USD"

	// UnknownCountry is the geolocation sentinel for "no data".
	UnknownCountry CountryCode = "XX"
)

// NormalizeCountry trims and upper-cases a country code.
func NormalizeCountry(s string) CountryCode {
	return CountryCode(strings.ToUpper(strings.TrimSpace(s)))
}

// NormalizeCurrency trims and upper-cases a currency code.
func NormalizeCurrency(s string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(s)))
}

// ValidCountry reports whether c looks like an alpha-2 code.
func ValidCountry(c CountryCode) bool {
	return len(c) == 2 && isUpperAlpha(string(c))
}

// ValidCurrency reports whether c looks like an alpha-3 code.
func ValidCurrency(c CurrencyCode) bool {
	return len(c) == 3 && isUpperAlpha(string(c))
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
