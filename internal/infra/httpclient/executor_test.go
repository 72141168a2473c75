package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

func TestExecutorTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	exec := NewExecutor(WithTimeout(20 * time.Millisecond))

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}

	resp, err := exec.Do(context.Background(), req)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if resp.Duration <= 0 {
		t.Fatalf("expected duration to be set")
	}
}

func TestGetJSONOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip":"8.8.8.8"}`))
	}))
	defer server.Close()

	body, err := NewExecutor().GetJSON(context.Background(), "test.get", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != `{"ip":"8.8.8.8"}` {
		t.Fatalf("unexpected body %q", body)
	}
}

func TestGetJSONStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := NewExecutor().GetJSON(context.Background(), "test.get", server.URL)
	if !domain.IsKind(err, domain.KindHTTPStatus) {
		t.Fatalf("expected http status kind, got %v", err)
	}
	code, ok := domain.StatusCode(err)
	if !ok || code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d ok=%v", code, ok)
	}
}

func TestGetJSONNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	_, err := NewExecutor().GetJSON(context.Background(), "test.get", url)
	if !domain.IsKind(err, domain.KindNetwork) {
		t.Fatalf("expected network kind, got %v", err)
	}
}

func TestGetJSONCapsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer server.Close()

	body, err := NewExecutor(WithMaxBodyBytes(4)).GetJSON(context.Background(), "test.get", server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(body) != "0123" {
		t.Fatalf("expected capped body, got %q", body)
	}
}

func TestConfigFor(t *testing.T) {
	cfg := ConfigFor(2 * time.Second)
	if cfg.Timeout <= 2*time.Second || cfg.ResponseHeader <= 2*time.Second {
		t.Fatalf("expected backstops above the budget, got %+v", cfg)
	}
	if cfg.DialTimeout >= 2*time.Second {
		t.Fatalf("expected dial timeout inside the budget, got %s", cfg.DialTimeout)
	}
	if got := ConfigFor(0).Timeout; got != DefaultConfig().Timeout {
		t.Fatalf("expected default for zero timeout, got %s", got)
	}
	if got := ConfigFor(100 * time.Millisecond).DialTimeout; got != 500*time.Millisecond {
		t.Fatalf("expected dial floor, got %s", got)
	}
}

func TestGetJSONStopsRedirectLoops(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer server.Close()

	_, err := NewExecutor(WithTimeout(time.Second)).GetJSON(context.Background(), "geoip.ip", server.URL+"/")
	if !errors.Is(err, ErrTooManyRedirects) {
		t.Fatalf("expected redirect limit, got %v", err)
	}
	if !domain.IsKind(err, domain.KindNetwork) {
		t.Fatalf("expected network kind, got %v", err)
	}
}
