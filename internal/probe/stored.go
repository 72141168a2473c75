package probe

import (
	"context"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// StoredPreference reads a previously confirmed country/currency pair.
type StoredPreference struct {
	store ports.PreferenceStore
}

func NewStoredPreference(store ports.PreferenceStore) *StoredPreference {
	return &StoredPreference{store: store}
}

var _ ports.Probe = (*StoredPreference)(nil)

func (p *StoredPreference) Method() domain.Method { return domain.MethodStoredPreference }

// Detect succeeds only when both keys are present and non-empty. Values are
// reported as stored; they are not checked against the reference tables.
func (p *StoredPreference) Detect(ctx context.Context) domain.ProbeOutcome {
	if p.store == nil {
		return domain.Failed(p.Method(), "No preference store configured", nil)
	}

	country, okCountry, err := p.store.Lookup(ctx, ports.PreferenceCountryKey)
	if err != nil {
		return domain.Failed(p.Method(), err.Error(), nil)
	}
	currency, okCurrency, err := p.store.Lookup(ctx, ports.PreferenceCurrencyKey)
	if err != nil {
		return domain.Failed(p.Method(), err.Error(), nil)
	}

	c := domain.NormalizeCountry(country)
	cur := domain.NormalizeCurrency(currency)
	if !okCountry || !okCurrency || c == "" || cur == "" {
		return domain.Failed(p.Method(), "No preference found", nil)
	}

	return domain.Succeeded(p.Method(), c, cur, domain.Evidence{
		ports.PreferenceCountryKey:  country,
		ports.PreferenceCurrencyKey: currency,
	})
}
