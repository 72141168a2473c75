package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
)

type fakeDetector struct{}

func (fakeDetector) Execute(context.Context) domain.DetectionReport {
	return domain.NewReport(nil)
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(model)
	if !ok {
		t.Fatalf("expected model, got %T", next)
	}
	return mm, cmd
}

// reportFor is a full five-entry report decided by the timezone method.
func reportFor(country domain.CountryCode, currency domain.CurrencyCode) domain.DetectionReport {
	var outcomes []domain.ProbeOutcome
	for _, m := range domain.Methods() {
		if m == domain.MethodTimezone {
			outcomes = append(outcomes, domain.Succeeded(m, country, currency, domain.Evidence{"timezone": "Europe/Paris"}))
			continue
		}
		outcomes = append(outcomes, domain.Failed(m, "nope", nil))
	}
	return domain.NewReport(outcomes)
}

func TestModel_StaleResultIsIgnored(t *testing.T) {
	m := newModel(Deps{Detector: fakeDetector{}})

	m, _ = update(t, m, refreshMsg{reason: "first"})
	first := m.token
	m, _ = update(t, m, refreshMsg{reason: "second"})
	second := m.token

	m, _ = update(t, m, detectDoneMsg{token: first, report: reportFor("JP", "JPY")})
	if m.report != nil || !m.running {
		t.Fatalf("expected stale result to be dropped")
	}

	m, _ = update(t, m, detectDoneMsg{token: second, report: reportFor("FR", "EUR")})
	if m.report == nil || m.report.Country != "FR" || m.running {
		t.Fatalf("expected latest result applied, got %+v", m.report)
	}
	if m.runs != 1 {
		t.Fatalf("expected one committed run, got %d", m.runs)
	}

	view := m.View()
	for _, want := range []string{"FR · EUR", "€9.99", "€29.99", "€99.99", "Run #1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestModel_PrefsChangeTriggersRefresh(t *testing.T) {
	m := newModel(Deps{Detector: fakeDetector{}})

	m, cmd := update(t, m, prefsChangedMsg{})
	if cmd == nil {
		t.Fatalf("expected a refresh command")
	}
	msg, ok := cmd().(refreshMsg)
	if !ok || msg.reason != "prefs" {
		t.Fatalf("expected refreshMsg from prefs, got %#v", msg)
	}
	if m.toast == "" {
		t.Fatalf("expected a toast")
	}
}

func TestModel_DetailScreen(t *testing.T) {
	m := newModel(Deps{Detector: fakeDetector{}})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	m, _ = update(t, m, refreshMsg{})
	m, _ = update(t, m, detectDoneMsg{token: m.token, report: reportFor("FR", "EUR")})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.scr != screenDetail {
		t.Fatalf("expected detail screen, got %v", m.scr)
	}
	if m.selected.Method != domain.MethodStoredPreference {
		t.Fatalf("expected first probe selected, got %s", m.selected.Method)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scr != screenReport {
		t.Fatalf("expected back on report screen")
	}
}

func TestModel_NoDetector(t *testing.T) {
	m := newModel(Deps{})
	m, cmd := update(t, m, refreshMsg{})
	if cmd != nil || m.running {
		t.Fatalf("expected no run without a detector")
	}
	if m.toast != "No detector configured" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestModel_WatchFailure(t *testing.T) {
	m := newModel(Deps{Detector: fakeDetector{}})
	err := &domain.OpError{Op: "prefstore.watch", Kind: domain.KindExecution, Err: errors.New("inotify limit")}
	m, _ = update(t, m, watchFailedMsg{err: err})
	if m.toast != "Preference watch stopped (see logs)" {
		t.Fatalf("unexpected toast %q", m.toast)
	}
}

func TestGuard_RecoversFromUpdatePanic(t *testing.T) {
	// A model without a refresher panics on refresh.
	m := newModel(Deps{Detector: fakeDetector{}})
	m.refresher = nil
	m.report = &domain.DetectionReport{Country: "FR", Currency: "EUR"}

	next, cmd := newGuard(m).Update(refreshMsg{reason: "manual"})
	g, ok := next.(guard)
	if !ok {
		t.Fatalf("expected guard, got %T", next)
	}
	if cmd != nil {
		t.Fatalf("expected no command after a panic")
	}
	if g.m.toast != panicToast || g.m.running {
		t.Fatalf("unexpected state after panic: toast=%q running=%v", g.m.toast, g.m.running)
	}
	if g.m.report == nil || g.m.report.Country != "FR" {
		t.Fatalf("expected last report kept")
	}
}

func TestRenderOutcomeDetails(t *testing.T) {
	o := domain.Failed(domain.MethodIPGeolocation, "Local IP detected, skipping geolocation", domain.Evidence{"ip": "127.0.0.1"})
	out := renderOutcomeDetails(o)
	for _, want := range []string{"Error: Local IP detected", "- ip: 127.0.0.1"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestUserMessage(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&domain.OpError{Op: "config.load", Kind: domain.KindNotFound}, "Config not found"},
		{&domain.OpError{Op: "config.load", Kind: domain.KindInvalidConfig, Path: "/x/currency-detect.yaml", Err: errors.New("yaml: line 3: did not find expected key")}, "Invalid YAML at currency-detect.yaml line 3"},
		{&domain.OpError{Op: "prefstore.decode", Kind: domain.KindInvalidConfig, Path: "/x/preferences.json", Err: errors.New("unexpected end of JSON input")}, "Preference file is corrupt: preferences.json"},
		{&domain.OpError{Op: "geoip.ip", Kind: domain.KindNetwork}, "Network problem (see logs)"},
		{&domain.OpError{Op: "geoip.country", Kind: domain.KindHTTPStatus, Err: &domain.StatusError{Code: 429}}, "Location lookup rate limited, try again later"},
		{&domain.OpError{Op: "geoip.country", Kind: domain.KindHTTPStatus, Err: &domain.StatusError{Code: 503}}, "Location lookup failed: 503"},
		{&domain.OpError{Op: "config.map", Kind: domain.KindInvalidConfig, Path: "/x/currency-detect.yaml", Err: errors.New("field lookup.timeout: must be positive")}, "Invalid config: currency-detect.yaml"},
		{errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		if got := userMessage(c.err); got != c.want {
			t.Errorf("userMessage(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestClampString(t *testing.T) {
	if got := clampString("héllo world", 5); got != "héllo…" {
		t.Fatalf("unexpected clamp %q", got)
	}
	if got := clampString("short", 10); got != "short" {
		t.Fatalf("unexpected clamp %q", got)
	}
}
