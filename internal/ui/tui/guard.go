package tui

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

const panicToast = "Unexpected error (see logs)"

// guard keeps the program alive when Update or View panics. The last
// committed report survives; an in-flight detection is abandoned.
type guard struct {
	m   model
	log *slog.Logger
}

func newGuard(m model) guard {
	return guard{m: m, log: m.log}
}

func (g guard) Init() tea.Cmd {
	return g.m.Init()
}

func (g guard) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		g.logPanic("tui.update", r, fmt.Sprintf("%T", msg))

		if g.m.refresher != nil {
			g.m.refresher.Stop()
		}
		g.m.running = false
		g.m.scr = screenReport
		g.m.toast = panicToast
		next, cmd = g, nil
	}()

	inner, c := g.m.Update(msg)
	if mm, ok := inner.(model); ok {
		g.m = mm
	}
	return g, c
}

func (g guard) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			g.logPanic("tui.view", r, "")
			out = panicToast
		}
	}()
	return g.m.View()
}

func (g guard) logPanic(where string, r any, msgType string) {
	g.log.Error("panic.recovered",
		"where", where,
		"msg_type", msgType,
		"token", g.m.token,
		"panic", fmt.Sprint(r),
		"stack", string(debug.Stack()),
	)
}

var _ tea.Model = guard{}
