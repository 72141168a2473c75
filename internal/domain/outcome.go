package domain

import (
	"encoding/json"
	"time"
)

// Method names one detection probe.
type Method string

const (
	MethodStoredPreference Method = "stored_preference"
	MethodRuntimeCurrency  Method = "runtime_locale_currency"
	MethodLanguageTags     Method = "language_tags"
	MethodTimezone         Method = "timezone"
	MethodIPGeolocation    Method = "ip_geolocation"
)

var methodOrder = [...]Method{
	MethodStoredPreference,
	MethodRuntimeCurrency,
	MethodLanguageTags,
	MethodTimezone,
	MethodIPGeolocation,
}

// Methods returns every method in invocation order.
func Methods() []Method {
	out := make([]Method, len(methodOrder))
	copy(out, methodOrder[:])
	return out
}

// Rank returns the position of m in invocation order, or -1.
func (m Method) Rank() int {
	for i, mm := range methodOrder {
		if mm == m {
			return i
		}
	}
	return -1
}

// Label is a human-readable name for the method.
func (m Method) Label() string {
	switch m {
	case MethodStoredPreference:
		return "Stored preference"
	case MethodRuntimeCurrency:
		return "Locale currency"
	case MethodLanguageTags:
		return "Preferred languages"
	case MethodTimezone:
		return "Timezone"
	case MethodIPGeolocation:
		return "IP geolocation"
	default:
		return string(m)
	}
}

// Evidence is diagnostic payload attached to an outcome. It never drives
// reconciliation.
type Evidence map[string]any

// Detection is the success arm of a ProbeOutcome.
type Detection struct {
	Country  CountryCode
	Currency CurrencyCode
	Evidence Evidence
}

// ProbeFailure is the failure arm of a ProbeOutcome.
type ProbeFailure struct {
	Reason   string
	Evidence Evidence
}

// ProbeOutcome is the result of one probe. Exactly one of Detection and
// Failure is set; build values with Succeeded or Failed.
type ProbeOutcome struct {
	Method    Method
	Detection *Detection
	Failure   *ProbeFailure
	Elapsed   time.Duration
}

// Succeeded builds a success outcome. A detection with neither country nor
// currency is not a success and is reported as a failure instead.
func Succeeded(m Method, country CountryCode, currency CurrencyCode, ev Evidence) ProbeOutcome {
	if country == "" && currency == "" {
		return Failed(m, "probe returned no country or currency", ev)
	}
	return ProbeOutcome{
		Method: m,
		Detection: &Detection{
			Country:  country,
			Currency: currency,
			Evidence: ev,
		},
	}
}

// Failed builds a failure outcome.
func Failed(m Method, reason string, ev Evidence) ProbeOutcome {
	if reason == "" {
		reason = "Unknown error"
	}
	return ProbeOutcome{
		Method:  m,
		Failure: &ProbeFailure{Reason: reason, Evidence: ev},
	}
}

// OK reports whether the probe succeeded.
func (o ProbeOutcome) OK() bool {
	return o.Detection != nil
}

// Country returns the detected country, if any.
func (o ProbeOutcome) Country() CountryCode {
	if o.Detection == nil {
		return ""
	}
	return o.Detection.Country
}

// Currency returns the detected currency, if any.
func (o ProbeOutcome) Currency() CurrencyCode {
	if o.Detection == nil {
		return ""
	}
	return o.Detection.Currency
}

// Reason returns the failure reason, or "" on success.
func (o ProbeOutcome) Reason() string {
	if o.Failure == nil {
		return ""
	}
	return o.Failure.Reason
}

// Evidence returns whichever arm's evidence is set.
func (o ProbeOutcome) Evidence() Evidence {
	switch {
	case o.Detection != nil:
		return o.Detection.Evidence
	case o.Failure != nil:
		return o.Failure.Evidence
	default:
		return nil
	}
}

type outcomeJSON struct {
	Method    Method       `json:"method"`
	Success   bool         `json:"success"`
	Country   CountryCode  `json:"country,omitempty"`
	Currency  CurrencyCode `json:"currency,omitempty"`
	Evidence  Evidence     `json:"evidence,omitempty"`
	Error     string       `json:"error,omitempty"`
	ElapsedMS int64        `json:"elapsed_ms"`
}

func (o ProbeOutcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(outcomeJSON{
		Method:    o.Method,
		Success:   o.OK(),
		Country:   o.Country(),
		Currency:  o.Currency(),
		Evidence:  o.Evidence(),
		Error:     o.Reason(),
		ElapsedMS: o.Elapsed.Milliseconds(),
	})
}
