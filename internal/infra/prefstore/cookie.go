package prefstore

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/ports"
)

// CookieStore reads preferences out of a raw Cookie header value.
type CookieStore struct {
	values map[string]string
}

var _ ports.PreferenceStore = (*CookieStore)(nil)

// NewCookieStore parses header ("a=1; b=2"). Values are URL-unescaped when
// possible. Later duplicates do not override earlier ones.
func NewCookieStore(header string) (*CookieStore, error) {
	s := &CookieStore{values: map[string]string{}}
	if strings.TrimSpace(header) == "" {
		return s, nil
	}

	cookies, err := http.ParseCookie(header)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "prefstore.cookie",
			Kind: domain.KindInvalidConfig,
			Err:  err,
		}
	}
	for _, c := range cookies {
		if _, seen := s.values[c.Name]; seen {
			continue
		}
		v := c.Value
		if u, err := url.QueryUnescape(v); err == nil {
			v = u
		}
		s.values[c.Name] = v
	}
	return s, nil
}

func (s *CookieStore) Lookup(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}
