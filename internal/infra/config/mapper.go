package config

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

// Map applies dto on top of the defaults, validating every field it sets.
func Map(path string, dto YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	y := dto.CurrencyDetect

	if y.Detection.Concurrent != nil {
		cfg.Detection.Concurrent = *y.Detection.Concurrent
	}

	if err := mapLookup(path, y.Lookup, &cfg.Lookup); err != nil {
		return domain.DefaultConfig(), err
	}

	if s := strings.TrimSpace(y.Preferences.File); s != "" {
		cfg.Preferences.File = s
	}
	cfg.Preferences.Cookie = strings.TrimSpace(y.Preferences.Cookie)

	if err := mapLocale(path, y.Locale, &cfg.Locale); err != nil {
		return domain.DefaultConfig(), err
	}

	tables, err := mapTables(path, y.Tables)
	if err != nil {
		return domain.DefaultConfig(), err
	}
	cfg.Tables = tables

	if s := strings.TrimSpace(y.Server.Addr); s != "" {
		cfg.Server.Addr = s
	}
	if s := strings.TrimSpace(y.Server.GameURL); s != "" {
		if err := checkURL(s); err != nil {
			return domain.DefaultConfig(), invalidField(path, "server.game_url", err.Error())
		}
		cfg.Server.GameURL = s
	}
	if s := strings.TrimSpace(y.Server.EmbedURL); s != "" {
		if err := checkURL(s); err != nil {
			return domain.DefaultConfig(), invalidField(path, "server.embed_url", err.Error())
		}
		cfg.Server.EmbedURL = s
	}

	return cfg, nil
}

func mapLookup(path string, y YAMLLookup, out *domain.LookupConfig) error {
	if s := strings.TrimSpace(y.Timeout); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return invalidField(path, "lookup.timeout", err.Error())
		}
		if d <= 0 {
			return invalidField(path, "lookup.timeout", "must be positive")
		}
		out.Timeout = d
	}
	if s := strings.TrimSpace(y.IPURL); s != "" {
		if err := checkURL(s); err != nil {
			return invalidField(path, "lookup.ip_url", err.Error())
		}
		out.IPURL = s
	}
	if s := strings.TrimSpace(y.GeoURL); s != "" {
		if !strings.Contains(s, "{{ip}}") {
			return invalidField(path, "lookup.geo_url", "must contain the {{ip}} placeholder")
		}
		if err := checkURL(strings.ReplaceAll(s, "{{ip}}", "0.0.0.0")); err != nil {
			return invalidField(path, "lookup.geo_url", err.Error())
		}
		out.GeoURL = s
	}
	if s := strings.TrimSpace(y.IPField); s != "" {
		if !strings.HasPrefix(s, "$") {
			return invalidField(path, "lookup.ip_field", "must be a JSONPath starting with $")
		}
		out.IPField = s
	}
	if s := strings.TrimSpace(y.GeoField); s != "" {
		if !strings.HasPrefix(s, "$") {
			return invalidField(path, "lookup.geo_field", "must be a JSONPath starting with $")
		}
		out.GeoField = s
	}
	return nil
}

func mapLocale(path string, y YAMLLocale, out *domain.LocaleConfig) error {
	if s := strings.TrimSpace(y.Currency); s != "" {
		cur := domain.NormalizeCurrency(s)
		if !domain.ValidCurrency(cur) {
			return invalidField(path, "locale.currency", fmt.Sprintf("invalid currency code %q", s))
		}
		out.Currency = string(cur)
	}
	for i, l := range y.Languages {
		l = strings.TrimSpace(l)
		if _, err := language.Parse(l); err != nil {
			return invalidField(path, fmt.Sprintf("locale.languages[%d]", i), fmt.Sprintf("invalid language tag %q", l))
		}
		out.Languages = append(out.Languages, l)
	}
	out.Timezone = strings.TrimSpace(y.Timezone)
	return nil
}

func mapTables(path string, y YAMLTables) (domain.TableExtras, error) {
	var extras domain.TableExtras

	for _, k := range slices.Sorted(maps.Keys(y.Countries)) {
		country := domain.NormalizeCountry(k)
		cur := domain.NormalizeCurrency(y.Countries[k])
		if !domain.ValidCountry(country) {
			return extras, invalidField(path, "tables.countries."+k, "invalid country code")
		}
		if !domain.ValidCurrency(cur) {
			return extras, invalidField(path, "tables.countries."+k, fmt.Sprintf("invalid currency code %q", y.Countries[k]))
		}
		if extras.Countries == nil {
			extras.Countries = map[domain.CountryCode]domain.CurrencyCode{}
		}
		extras.Countries[country] = cur
	}

	for _, k := range slices.Sorted(maps.Keys(y.Symbols)) {
		cur := domain.NormalizeCurrency(k)
		if !domain.ValidCurrency(cur) {
			return extras, invalidField(path, "tables.symbols."+k, "invalid currency code")
		}
		if y.Symbols[k] == "" {
			return extras, invalidField(path, "tables.symbols."+k, "symbol is empty")
		}
		if extras.Symbols == nil {
			extras.Symbols = map[domain.CurrencyCode]string{}
		}
		extras.Symbols[cur] = y.Symbols[k]
	}

	for _, k := range slices.Sorted(maps.Keys(y.Timezones)) {
		country := domain.NormalizeCountry(y.Timezones[k])
		if !domain.ValidCountry(country) {
			return extras, invalidField(path, "tables.timezones."+k, fmt.Sprintf("invalid country code %q", y.Timezones[k]))
		}
		if extras.Timezones == nil {
			extras.Timezones = map[string]domain.CountryCode{}
		}
		extras.Timezones[k] = country
	}

	return extras, nil
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must be http or https", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", raw)
	}
	return nil
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
