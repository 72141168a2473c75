package probe

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strings"
	"time"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

const defaultLookupTimeout = 5 * time.Second

// IPGeolocation resolves the public IP, then the country for that IP. The
// second lookup runs only when the first produced a routable address.
type IPGeolocation struct {
	ips     ports.IPResolver
	geo     ports.GeoResolver
	tables  *domain.ReferenceTables
	timeout time.Duration
}

type IPOption func(*IPGeolocation)

// WithLookupTimeout bounds each of the two lookups separately.
func WithLookupTimeout(d time.Duration) IPOption {
	return func(p *IPGeolocation) {
		if d > 0 {
			p.timeout = d
		}
	}
}

func NewIPGeolocation(ips ports.IPResolver, geo ports.GeoResolver, tables *domain.ReferenceTables, opts ...IPOption) *IPGeolocation {
	p := &IPGeolocation{
		ips:     ips,
		geo:     geo,
		tables:  tables,
		timeout: defaultLookupTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ ports.Probe = (*IPGeolocation)(nil)

func (p *IPGeolocation) Method() domain.Method { return domain.MethodIPGeolocation }

func (p *IPGeolocation) Detect(ctx context.Context) domain.ProbeOutcome {
	if p.ips == nil || p.geo == nil {
		return domain.Failed(p.Method(), "No geolocation service configured", nil)
	}

	ipCtx, cancel := context.WithTimeout(ctx, p.timeout)
	raw, err := p.ips.PublicIP(ipCtx)
	cancel()
	if err != nil {
		return domain.Failed(p.Method(), "IP detection failed: "+p.describe(err), nil)
	}

	raw = strings.TrimSpace(raw)
	addr, err := netip.ParseAddr(raw)
	if err != nil {
		return domain.Failed(p.Method(), "Invalid IP address from API", domain.Evidence{"ip": raw})
	}
	if addr.IsLoopback() {
		return domain.Failed(p.Method(), "Local IP detected, skipping geolocation", domain.Evidence{"ip": raw})
	}

	geoCtx, cancel := context.WithTimeout(ctx, p.timeout)
	code, err := p.geo.CountryCode(geoCtx, addr.String())
	cancel()
	if err != nil {
		if status, ok := domain.StatusCode(err); ok {
			return domain.Failed(p.Method(), fmt.Sprintf("Location API failed: %d", status), domain.Evidence{"ip": raw})
		}
		return domain.Failed(p.Method(), "Location detection failed: "+p.describe(err), domain.Evidence{"ip": raw})
	}

	ev := domain.Evidence{"ip": raw, "country_code": code}
	country := domain.NormalizeCountry(code)
	if country == "" || country == domain.UnknownCountry {
		return domain.Failed(p.Method(), "Invalid country code from API", ev)
	}

	cur, ok := p.tables.CurrencyFor(country)
	if !ok {
		cur = domain.DefaultCurrency
	}
	return domain.Succeeded(p.Method(), country, cur, ev)
}

func (p *IPGeolocation) describe(err error) string {
	if status, ok := domain.StatusCode(err); ok {
		return fmt.Sprintf("%d", status)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Sprintf("timed out after %s", p.timeout)
	}
	return err.Error()
}
