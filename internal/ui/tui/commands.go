package tui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Saxenaa218/currency-conversion-test/internal/usecase"
)

// runTimeout caps one cascade; the IP probe alone may take two lookup
// timeouts.
const runTimeout = 30 * time.Second

func cmdRefresh(reason string) tea.Cmd {
	return func() tea.Msg { return refreshMsg{reason: reason} }
}

func cmdDetect(ctx context.Context, d usecase.Detector, token uint64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, runTimeout)
		defer cancel()
		return detectDoneMsg{token: token, report: d.Execute(ctx)}
	}
}

// watchPrefs forwards preference changes to the program until ctx ends.
func watchPrefs(ctx context.Context, deps Deps, send func(tea.Msg)) {
	if deps.WatchPrefs == nil {
		return
	}
	err := deps.WatchPrefs(ctx, func() { send(prefsChangedMsg{}) })
	if err != nil && !errors.Is(err, context.Canceled) {
		send(watchFailedMsg{err: err})
	}
}
