package usecase

import (
	"context"
	"fmt"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// SavePreference records a confirmed country/currency pair under the keys
// the stored-preference probe reads.
type SavePreference struct {
	writer ports.PreferenceWriter
	tables *domain.ReferenceTables
}

func NewSavePreference(writer ports.PreferenceWriter, tables *domain.ReferenceTables) *SavePreference {
	if tables == nil {
		tables = domain.DefaultTables()
	}
	return &SavePreference{writer: writer, tables: tables}
}

// Execute validates the pair and saves it. An empty currency is filled in
// from the country table.
func (uc *SavePreference) Execute(ctx context.Context, country, currency string) (domain.CountryCode, domain.CurrencyCode, error) {
	c := domain.NormalizeCountry(country)
	if !domain.ValidCountry(c) || c == domain.UnknownCountry {
		return "", "", &domain.OpError{
			Op:   "prefs.save",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("invalid country code %q: %w", country, domain.ErrInvalidConfig),
		}
	}

	cur := domain.NormalizeCurrency(currency)
	if cur == "" {
		var ok bool
		cur, ok = uc.tables.CurrencyFor(c)
		if !ok {
			return "", "", &domain.OpError{
				Op:   "prefs.save",
				Kind: domain.KindNotFound,
				Err:  fmt.Errorf("no currency known for %s, pass one explicitly: %w", c, domain.ErrUnknownCountry),
			}
		}
	}
	if !domain.ValidCurrency(cur) {
		return "", "", &domain.OpError{
			Op:   "prefs.save",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("invalid currency code %q: %w", currency, domain.ErrInvalidConfig),
		}
	}

	err := uc.writer.Save(ctx, map[string]string{
		ports.PreferenceCountryKey:  string(c),
		ports.PreferenceCurrencyKey: string(cur),
	})
	if err != nil {
		return "", "", err
	}
	return c, cur, nil
}

// Clear removes both keys.
func (uc *SavePreference) Clear(ctx context.Context) error {
	return uc.writer.Save(ctx, map[string]string{
		ports.PreferenceCountryKey:  "",
		ports.PreferenceCurrencyKey: "",
	})
}
