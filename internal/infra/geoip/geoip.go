// Package geoip implements the public-IP and IP-to-country lookups over
// plain HTTP JSON services. Which field carries the answer is configured
// as a JSONPath expression so other providers can be swapped in.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/Saxenaa218/currency-conversion-test/internal/app/template"
	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/httpclient"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// Getter is the subset of httpclient.Executor used here.
type Getter interface {
	GetJSON(ctx context.Context, op, rawURL string) ([]byte, error)
}

var _ Getter = (*httpclient.Executor)(nil)

// IPLookup asks an echo service for the caller's public address.
type IPLookup struct {
	http  Getter
	url   string
	field string
}

var _ ports.IPResolver = (*IPLookup)(nil)

func NewIPLookup(http Getter, url, field string) *IPLookup {
	return &IPLookup{http: http, url: url, field: field}
}

func (l *IPLookup) PublicIP(ctx context.Context) (string, error) {
	const op = "geoip.ip"
	body, err := l.http.GetJSON(ctx, op, l.url)
	if err != nil {
		return "", err
	}
	return extract(op, l.url, body, l.field)
}

// CountryLookup resolves an address to a country code. The URL carries an
// {{ip}} placeholder.
type CountryLookup struct {
	http  Getter
	url   string
	field string
}

var _ ports.GeoResolver = (*CountryLookup)(nil)

func NewCountryLookup(http Getter, urlTemplate, field string) *CountryLookup {
	return &CountryLookup{http: http, url: urlTemplate, field: field}
}

func (l *CountryLookup) CountryCode(ctx context.Context, ip string) (string, error) {
	const op = "geoip.country"
	target, err := template.RenderURL(l.url, map[string]string{"ip": ip})
	if err != nil {
		return "", err
	}
	body, err := l.http.GetJSON(ctx, op, target)
	if err != nil {
		return "", err
	}
	return extract(op, target, body, l.field)
}

// extract evaluates path against the decoded reply. A missing field is
// reported as an empty string so callers apply their own validation.
func extract(op, url string, body []byte, path string) (string, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: url, Err: err}
	}

	if keys, ok := dottedKeys(path); ok && !hasKeys(doc, keys) {
		return "", nil
	}

	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: url, Err: err}
	}

	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	default:
		return fmt.Sprint(x), nil
	}
}

// dottedKeys splits a plain member path such as "$.location.country".
// Paths with brackets, wildcards or filters report ok=false.
func dottedKeys(path string) ([]string, bool) {
	rest, found := strings.CutPrefix(path, "$.")
	if !found || rest == "" || strings.ContainsAny(rest, "[]*?()@$ ") {
		return nil, false
	}
	keys := strings.Split(rest, ".")
	for _, k := range keys {
		if k == "" {
			return nil, false
		}
	}
	return keys, true
}

func hasKeys(doc any, keys []string) bool {
	cur := doc
	for _, k := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return false
		}
		if cur, ok = obj[k]; !ok {
			return false
		}
	}
	return true
}
