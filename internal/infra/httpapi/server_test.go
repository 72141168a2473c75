package httpapi

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

func newTestServer() *Server {
	return NewServer(domain.DefaultConfig().Server, nil)
}

func get(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func oembedURL(params url.Values) string {
	return "/api/oembed?" + params.Encode()
}

func TestDimensions(t *testing.T) {
	cases := []struct {
		maxW, maxH int
		w, h       int
	}{
		{0, 0, 640, 360},
		{320, 0, 320, 180},
		{1000, 0, 640, 360},
		{0, 180, 320, 180},
		{500, 200, 356, 200},
		{-5, -5, 640, 360},
		{333, 0, 333, 187},
	}
	for _, c := range cases {
		w, h := Dimensions(c.maxW, c.maxH)
		if w != c.w || h != c.h {
			t.Errorf("Dimensions(%d,%d) = %dx%d, want %dx%d", c.maxW, c.maxH, w, h, c.w, c.h)
		}
	}
}

func TestOEmbed_GameURL(t *testing.T) {
	cfg := domain.DefaultConfig().Server
	rec := get(t, newTestServer().Handler(), http.MethodGet, oembedURL(url.Values{
		"url":      {cfg.GameURL},
		"maxwidth": {"320px"},
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "GET", rec.Header().Get("Access-Control-Allow-Methods"))

	var got OEmbed
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "rich", got.Type)
	require.Equal(t, "1.0", got.Version)
	require.Equal(t, 320, got.Width)
	require.Equal(t, 180, got.Height)
	require.Equal(t, "https://currency-conversion-test.onrender.com", got.ProviderURL)
	require.Equal(t, 640, got.ThumbnailWidth)
	require.Contains(t, got.HTML, `src="`+cfg.EmbedURL+`"`)
	require.Contains(t, got.HTML, `width="320" height="180"`)
}

func TestOEmbed_UnknownURL(t *testing.T) {
	rec := get(t, newTestServer().Handler(), http.MethodGet, oembedURL(url.Values{"url": {"https://example.com"}}))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.JSONEq(t, `{"error":"URL not found"}`, rec.Body.String())
}

func TestOEmbed_Options(t *testing.T) {
	rec := get(t, newTestServer().Handler(), http.MethodOptions, "/api/oembed")

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	require.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	require.Empty(t, rec.Body.String())
}

func TestOEmbed_MethodNotAllowed(t *testing.T) {
	rec := get(t, newTestServer().Handler(), http.MethodPost, "/api/oembed")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestServer().Handler(), http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `"ok"`))
}

func TestLeadingInt(t *testing.T) {
	cases := map[string]int{"": 0, "300": 300, "300px": 300, " 42 ": 42, "abc": 0, "-10": -10, "+7": 7}
	for in, want := range cases {
		if got := leadingInt(in); got != want {
			t.Errorf("leadingInt(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- newTestServer().Serve(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
