package domain

import (
	"slices"
	"time"
)

// DetectionReport is the result of one cascade invocation.
type DetectionReport struct {
	Outcomes []ProbeOutcome `json:"outcomes"`
	Country  CountryCode    `json:"country"`
	Currency CurrencyCode   `json:"currency"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// Outcome returns the audit entry for m.
func (r DetectionReport) Outcome(m Method) (ProbeOutcome, bool) {
	for _, o := range r.Outcomes {
		if o.Method == m {
			return o, true
		}
	}
	return ProbeOutcome{}, false
}

// Succeeded counts successful probes.
func (r DetectionReport) Succeeded() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.OK() {
			n++
		}
	}
	return n
}

// NewReport orders outcomes by Methods() and folds them into the final pair.
// The outcomes slice is not modified.
func NewReport(outcomes []ProbeOutcome) DetectionReport {
	ordered := slices.Clone(outcomes)
	slices.SortStableFunc(ordered, byRank)
	country, currency := Reconcile(ordered)
	return DetectionReport{Outcomes: ordered, Country: country, Currency: currency}
}

func byRank(a, b ProbeOutcome) int {
	return a.Method.Rank() - b.Method.Rank()
}

// decision is the fold accumulator.
type decision struct {
	country  CountryCode
	currency CurrencyCode
}

func (d decision) defaultCountry() bool  { return d.country == DefaultCountry }
func (d decision) defaultCurrency() bool { return d.currency == DefaultCurrency }

// set overwrites the non-empty parts of a detection.
func (d decision) set(det *Detection) decision {
	if det.Country != "" {
		d.country = det.Country
	}
	if det.Currency != "" {
		d.currency = det.Currency
	}
	return d
}

// Reconcile folds probe outcomes into a final (country, currency) pair.
//
// Outcomes are applied in Methods() order regardless of slice order:
//   - stored preference overwrites both;
//   - locale currency overwrites the currency while it is still USD;
//   - language tags overwrite both while the country is still US;
//   - timezone overwrites both while the country is still US and the zone
//     points elsewhere;
//   - IP geolocation overwrites both, including a stored preference.
//
// The result is never empty; it falls back to US/USD.
func Reconcile(outcomes []ProbeOutcome) (CountryCode, CurrencyCode) {
	ordered := slices.Clone(outcomes)
	slices.SortStableFunc(ordered, byRank)

	d := decision{country: DefaultCountry, currency: DefaultCurrency}
	for _, o := range ordered {
		d = apply(d, o)
	}

	if d.country == "" {
		d.country = DefaultCountry
	}
	if d.currency == "" {
		d.currency = DefaultCurrency
	}
	return d.country, d.currency
}

func apply(d decision, o ProbeOutcome) decision {
	if !o.OK() {
		return d
	}
	det := o.Detection

	switch o.Method {
	case MethodStoredPreference, MethodIPGeolocation:
		return d.set(det)

	case MethodRuntimeCurrency:
		if d.defaultCurrency() && det.Currency != "" {
			d.currency = det.Currency
		}
		return d

	case MethodLanguageTags:
		if d.defaultCountry() {
			return d.set(det)
		}
		return d

	case MethodTimezone:
		if d.defaultCountry() && det.Country != DefaultCountry {
			return d.set(det)
		}
		return d

	default:
		return d
	}
}
