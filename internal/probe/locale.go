package probe

import (
	"context"
	"strings"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// RuntimeCurrency asks the locale source for its resolved default currency.
type RuntimeCurrency struct {
	locale ports.LocaleSource
}

func NewRuntimeCurrency(locale ports.LocaleSource) *RuntimeCurrency {
	return &RuntimeCurrency{locale: locale}
}

var _ ports.Probe = (*RuntimeCurrency)(nil)

func (p *RuntimeCurrency) Method() domain.Method { return domain.MethodRuntimeCurrency }

func (p *RuntimeCurrency) Detect(_ context.Context) domain.ProbeOutcome {
	if p.locale == nil {
		return domain.Failed(p.Method(), "No locale source configured", nil)
	}

	raw, err := p.locale.DefaultCurrency()
	if err != nil {
		return domain.Failed(p.Method(), err.Error(), nil)
	}

	cur := domain.NormalizeCurrency(raw)
	if cur == "" {
		return domain.Failed(p.Method(), "No currency resolved", nil)
	}
	return domain.Succeeded(p.Method(), "", cur, domain.Evidence{"currency": raw})
}

// LanguageTags scans the preferred languages for the first region subtag that
// has a currency mapping.
type LanguageTags struct {
	locale ports.LocaleSource
	tables *domain.ReferenceTables
}

func NewLanguageTags(locale ports.LocaleSource, tables *domain.ReferenceTables) *LanguageTags {
	return &LanguageTags{locale: locale, tables: tables}
}

var _ ports.Probe = (*LanguageTags)(nil)

func (p *LanguageTags) Method() domain.Method { return domain.MethodLanguageTags }

func (p *LanguageTags) Detect(_ context.Context) domain.ProbeOutcome {
	if p.locale == nil {
		return domain.Failed(p.Method(), "No locale source configured", nil)
	}

	tags, err := p.locale.PreferredLanguages()
	if err != nil {
		return domain.Failed(p.Method(), err.Error(), nil)
	}

	for _, tag := range tags {
		region := RegionSubtag(tag)
		if region == "" {
			continue
		}
		if cur, ok := p.tables.CurrencyFor(region); ok {
			return domain.Succeeded(p.Method(), region, cur, domain.Evidence{
				"languages": tags,
				"tag":       tag,
			})
		}
	}

	return domain.Failed(p.Method(), "No country detected from languages", domain.Evidence{"languages": tags})
}

// RegionSubtag returns the upper-cased segment after the first hyphen of a
// language tag ("en-us" -> "US"), or "" when there is none.
func RegionSubtag(tag string) domain.CountryCode {
	parts := strings.Split(strings.TrimSpace(tag), "-")
	if len(parts) < 2 {
		return ""
	}
	// The second subtag as written, script or not ("zh-Hant-TW" -> "HANT");
	// language.Tag.Region() would infer TW and change which tags match.
	return domain.NormalizeCountry(parts[1])
}

// Timezone maps the host's IANA zone to a country.
type Timezone struct {
	locale ports.LocaleSource
	tables *domain.ReferenceTables
}

func NewTimezone(locale ports.LocaleSource, tables *domain.ReferenceTables) *Timezone {
	return &Timezone{locale: locale, tables: tables}
}

var _ ports.Probe = (*Timezone)(nil)

func (p *Timezone) Method() domain.Method { return domain.MethodTimezone }

func (p *Timezone) Detect(_ context.Context) domain.ProbeOutcome {
	if p.locale == nil {
		return domain.Failed(p.Method(), "No locale source configured", nil)
	}

	tz, err := p.locale.Timezone()
	if err != nil {
		return domain.Failed(p.Method(), err.Error(), nil)
	}

	ev := domain.Evidence{"timezone": tz}
	country, ok := p.tables.CountryForTimezone(tz)
	if !ok {
		return domain.Failed(p.Method(), "Timezone not mapped to country", ev)
	}

	// Unmapped currency stays empty; reconciliation keeps the prior currency.
	cur, _ := p.tables.CurrencyFor(country)
	return domain.Succeeded(p.Method(), country, cur, ev)
}
