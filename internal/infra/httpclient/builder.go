package httpclient

import (
	"context"
	"net/http"
	"strings"

	"github.com/Saxenaa218/currency-conversion-test/internal/buildinfo"
	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

// NewGetRequest builds a GET request that asks for JSON.
func NewGetRequest(ctx context.Context, rawURL string, headers map[string]string) (*http.Request, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Err:  domain.ErrInvalidConfig,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "httpclient.build",
			Kind: domain.KindInvalidConfig,
			Path: rawURL,
			Err:  err,
		}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", buildinfo.UserAgent())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}
