package httpclient

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"
)

// ErrTooManyRedirects is returned when a lookup bounces more than
// Config.MaxRedirects times.
var ErrTooManyRedirects = errors.New("too many redirects")

type Config struct {
	// Timeout bounds a whole call; a context deadline can still cut it short.
	Timeout time.Duration

	DialTimeout     time.Duration
	TLSHandshake    time.Duration
	ResponseHeader  time.Duration
	IdleConnTimeout time.Duration

	// The IP and country lookups each hit one host.
	MaxIdleConnsPerHost int
	MaxRedirects        int
}

// DefaultConfig is tuned for small JSON lookups.
func DefaultConfig() Config {
	return ConfigFor(5 * time.Second)
}

// ConfigFor derives transport timeouts from the per-lookup budget. The
// executor's context deadline is the primary limit; Timeout and
// ResponseHeader only back it up, so they sit above the budget.
func ConfigFor(timeout time.Duration) Config {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	phase := max(timeout*3/5, 500*time.Millisecond)
	return Config{
		Timeout:             timeout * 2,
		DialTimeout:         phase,
		TLSHandshake:        phase,
		ResponseHeader:      timeout * 3 / 2,
		IdleConnTimeout:     90 * time.Second,
		MaxIdleConnsPerHost: 2,
		MaxRedirects:        3,
	}
}

func New(cfg Config) *http.Client {
	dialer := &net.Dialer{Timeout: cfg.DialTimeout}

	tr := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		IdleConnTimeout:       cfg.IdleConnTimeout,
		TLSHandshakeTimeout:   cfg.TLSHandshake,
		ResponseHeaderTimeout: cfg.ResponseHeader,
	}

	limit := cfg.MaxRedirects
	return &http.Client{
		Transport: tr,
		Timeout:   cfg.Timeout,
		CheckRedirect: func(_ *http.Request, via []*http.Request) error {
			if len(via) > limit {
				return fmt.Errorf("%w (%d)", ErrTooManyRedirects, len(via))
			}
			return nil
		},
	}
}
