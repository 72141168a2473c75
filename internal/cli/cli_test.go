package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/infra/hostlocale"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	cmd := newRootCmd(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	a.close()
	return out.String(), err
}

// writeConfig points both lookups at srv and pins the host locale.
func writeConfig(t *testing.T, srvURL string) string {
	t.Helper()
	dir := t.TempDir()
	cfg := "currency_detect:\n" +
		"  lookup:\n" +
		"    timeout: 2s\n" +
		"    ip_url: " + srvURL + "/ip\n" +
		"    geo_url: " + srvURL + "/geo/{{ip}}/json/\n" +
		"  locale:\n" +
		"    currency: JPY\n" +
		"    languages: [ja-JP]\n" +
		"    timezone: Asia/Tokyo\n"
	path := filepath.Join(dir, "currency-detect.yaml")
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func geoServer(t *testing.T, ip, country string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ip", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"ip":"` + ip + `"}`))
	})
	mux.HandleFunc("/geo/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"country_code":"` + country + `"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestDetect_JSON(t *testing.T) {
	srv := geoServer(t, "203.0.113.5", "BR")
	cfg := writeConfig(t, srv.URL)

	out, err := runCLI(t, "detect", "--format", "json", "--config", cfg)
	if err != nil {
		t.Fatalf("detect failed: %v\n%s", err, out)
	}

	var payload struct {
		Report struct {
			Country  string            `json:"country"`
			Currency string            `json:"currency"`
			Outcomes []json.RawMessage `json:"outcomes"`
		} `json:"report"`
		Prices []string            `json:"prices"`
		Host   hostlocale.Snapshot `json:"host"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if payload.Report.Country != "BR" || payload.Report.Currency != "BRL" {
		t.Fatalf("expected BR/BRL, got %s/%s", payload.Report.Country, payload.Report.Currency)
	}
	if len(payload.Report.Outcomes) != 5 {
		t.Fatalf("expected 5 outcomes, got %d", len(payload.Report.Outcomes))
	}
	if len(payload.Prices) != 3 || payload.Prices[0] != "R$9.99" {
		t.Fatalf("unexpected prices %v", payload.Prices)
	}
	if payload.Host.Timezone != "Asia/Tokyo" || payload.Host.Currency != "JPY" {
		t.Fatalf("unexpected host snapshot %+v", payload.Host)
	}

	logPath := filepath.Join(filepath.Dir(cfg), ".currency-detect", "logs", "currency-detect.log")
	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("expected log file: %v", err)
	}
	if !strings.Contains(string(b), "detect.reconciled") || !strings.Contains(string(b), "run_id") {
		t.Fatalf("expected reconcile event in log:\n%s", b)
	}
}

func TestDetect_PrettyLoopback(t *testing.T) {
	srv := geoServer(t, "127.0.0.1", "BR")
	cfg := writeConfig(t, srv.URL)

	out, err := runCLI(t, "detect", "--sequential", "--config", cfg)
	if err != nil {
		t.Fatalf("detect failed: %v\n%s", err, out)
	}
	for _, want := range []string{
		"Country:    JP",
		"Currency:   JPY",
		"¥9.99",
		"Local IP detected, skipping geolocation",
		"timezone:  Asia/Tokyo",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestDetect_BadFormat(t *testing.T) {
	_, err := runCLI(t, "detect", "--format", "xml", "--config", writeConfig(t, "http://127.0.0.1:1"))
	if err == nil || !strings.Contains(err.Error(), "unsupported format") {
		t.Fatalf("expected format error, got %v", err)
	}
}

func TestFormat_ExplicitCurrency(t *testing.T) {
	cfg := writeConfig(t, "http://127.0.0.1:1")

	out, err := runCLI(t, "format", "9.99", "jpy", "--config", cfg)
	if err != nil {
		t.Fatalf("format failed: %v", err)
	}
	if out != "¥9.99\n" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = runCLI(t, "format", "1234.5", "XXX", "--config", cfg)
	if err != nil || out != "XXX1234.50\n" {
		t.Fatalf("unexpected output %q err=%v", out, err)
	}

	if _, err := runCLI(t, "format", "abc", "USD", "--config", cfg); err == nil {
		t.Fatalf("expected invalid amount error")
	}
}

func TestPrefs_SetShowClear(t *testing.T) {
	cfg := writeConfig(t, "http://127.0.0.1:1")

	out, err := runCLI(t, "prefs", "set", "de", "--config", cfg)
	if err != nil {
		t.Fatalf("prefs set failed: %v", err)
	}
	if !strings.Contains(out, "Saved DE/EUR") {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = runCLI(t, "prefs", "show", "--config", cfg)
	if err != nil {
		t.Fatalf("prefs show failed: %v", err)
	}
	if !strings.Contains(out, "user-country = DE") || !strings.Contains(out, "user-currency = EUR") {
		t.Fatalf("unexpected output %q", out)
	}

	if _, err := runCLI(t, "prefs", "clear", "--config", cfg); err != nil {
		t.Fatalf("prefs clear failed: %v", err)
	}
	out, _ = runCLI(t, "prefs", "show", "--config", cfg)
	if !strings.Contains(out, "(no preference stored)") {
		t.Fatalf("expected empty store, got %q", out)
	}

	if _, err := runCLI(t, "prefs", "set", "XX", "--config", cfg); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid country, got %v", err)
	}
}

func TestInit_WritesConfig(t *testing.T) {
	dir := t.TempDir()
	logCfg := writeConfig(t, "http://127.0.0.1:1")
	out, err := runCLI(t, "init", "--path", dir, "--config", logCfg)
	if err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if !strings.Contains(out, "wrote   currency-detect.yaml") {
		t.Fatalf("unexpected output %q", out)
	}
	if !fileExists(filepath.Join(dir, "currency-detect.yaml")) {
		t.Fatalf("expected config written")
	}

	out, err = runCLI(t, "init", "--path", dir, "--config", logCfg)
	if err != nil || !strings.Contains(out, "kept    currency-detect.yaml") {
		t.Fatalf("expected existing config kept, got %q err=%v", out, err)
	}

	ws, err := loadWorkspace(filepath.Join(dir, "currency-detect.yaml"))
	if err != nil {
		t.Fatalf("load written config: %v", err)
	}
	if len(ws.probes()) != 5 {
		t.Fatalf("expected five probes")
	}
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version", "--config", writeConfig(t, "http://127.0.0.1:1"))
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "currency-detect ") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestLoadWorkspace_MissingConfigFlag(t *testing.T) {
	_, err := loadWorkspace(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestLoadWorkspace_CookieWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "currency-detect.yaml")
	content := "currency_detect:\n  preferences:\n    cookie: \"user-country=FR; user-currency=EUR\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ws, err := loadWorkspace(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	v, ok, _ := ws.prefs.Lookup(t.Context(), "user-country")
	if !ok || v != "FR" {
		t.Fatalf("expected cookie store, got %q ok=%v", v, ok)
	}
	if ws.prefFile.Path() != filepath.Join(dir, ".currency-detect", "preferences.json") {
		t.Fatalf("expected preference file anchored at config root, got %s", ws.prefFile.Path())
	}
}

func TestPrintPrettyReport(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	r := domain.NewReport([]domain.ProbeOutcome{
		domain.Succeeded(domain.MethodRuntimeCurrency, "", "EUR", nil),
		domain.Failed(domain.MethodTimezone, "Timezone not mapped to country", nil),
	})
	r.StartedAt, r.EndedAt = start, start.Add(42*time.Millisecond)

	var b bytes.Buffer
	printPrettyReport(&b, r, domain.DefaultTables(), hostlocale.Snapshot{})
	out := b.String()
	for _, want := range []string{
		"Country:    US",
		"Currency:   EUR",
		"€9.99  €29.99  €99.99",
		"Duration:   42ms",
		"Probes (1/2 succeeded):",
		"-/EUR",
		"Timezone not mapped to country",
		"language:  -",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}
