package ports

import "context"

// IPResolver returns the caller's public IP address.
type IPResolver interface {
	PublicIP(ctx context.Context) (string, error)
}

// GeoResolver maps an IP address to an ISO country code.
type GeoResolver interface {
	CountryCode(ctx context.Context, ip string) (string, error)
}
