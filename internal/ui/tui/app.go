package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Saxenaa218/currency-conversion-test/internal/domain"
	"github.com/Saxenaa218/currency-conversion-test/internal/usecase"
)

type screen int

const (
	screenReport screen = iota
	screenDetail
	screenHost
)

type outcomeItem struct {
	o domain.ProbeOutcome
}

func (i outcomeItem) Title() string {
	mark := "✓ "
	if !i.o.OK() {
		mark = "✗ "
	}
	return mark + i.o.Method.Label()
}
func (i outcomeItem) Description() string { return outcomeSummary(i.o) }
func (i outcomeItem) FilterValue() string { return i.o.Method.Label() }

type model struct {
	theme  Theme
	deps   Deps
	tables *domain.ReferenceTables
	log    *slog.Logger

	scr    screen
	probes list.Model
	spin   spinner.Model

	refresher *usecase.Refresher
	token     uint64
	running   bool
	runs      int
	report    *domain.DetectionReport
	selected  domain.ProbeOutcome

	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := tea.NewProgram(newGuard(m), tea.WithAltScreen())
	go watchPrefs(ctx, deps, p.Send)

	_, err := p.Run()
	m.refresher.Stop()
	return err
}

func newModel(deps Deps) model {
	tables := deps.Tables
	if tables == nil {
		tables = domain.DefaultTables()
	}
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	l := list.New(nil, list.NewDefaultDelegate(), 60, 20)
	l.Title = "Probes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return model{
		theme:     DefaultTheme(),
		deps:      deps,
		tables:    tables,
		log:       log,
		scr:       screenReport,
		probes:    l,
		spin:      sp,
		refresher: usecase.NewRefresher(),
	}
}

func (m model) Init() tea.Cmd { return cmdRefresh("startup") }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.probes.SetSize(msg.Width-6, msg.Height-18)
		return m, nil

	case refreshMsg:
		if m.deps.Detector == nil {
			m.toast = "No detector configured"
			return m, nil
		}
		token, ctx := m.refresher.Start(context.Background())
		m.token = token
		m.running = true
		m.toast = ""
		m.log.Debug("tui.refresh", "reason", msg.reason, "token", token)
		return m, tea.Batch(m.spin.Tick, cmdDetect(ctx, m.deps.Detector, token))

	case detectDoneMsg:
		if !m.refresher.Commit(msg.token) {
			m.log.Debug("tui.stale_result", "token", msg.token, "latest", m.token)
			return m, nil
		}
		m.running = false
		m.runs++
		r := msg.report
		m.report = &r

		items := make([]list.Item, 0, len(r.Outcomes))
		for _, o := range r.Outcomes {
			items = append(items, outcomeItem{o: o})
		}
		cmd := m.probes.SetItems(items)
		return m, cmd

	case prefsChangedMsg:
		m.toast = "Preference changed, detecting again"
		return m, cmdRefresh("prefs")

	case watchFailedMsg:
		m.log.Warn("tui.watch_failed", "err", msg.err)
		m.toast = userMessage(msg.err)
		return m, nil

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenReport || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			m.scr = screenReport
			return m, nil

		case "r":
			return m, cmdRefresh("manual")

		case "h":
			m.scr = screenHost
			return m, nil

		case "enter":
			if m.scr == screenReport {
				it, ok := m.probes.SelectedItem().(outcomeItem)
				if !ok {
					return m, nil
				}
				m.selected = it.o
				m.scr = screenDetail
				return m, nil
			}

		case "esc", "b":
			if m.scr != screenReport {
				m.scr = screenReport
				return m, nil
			}
		}
	}

	if m.scr == screenReport {
		var cmd tea.Cmd
		m.probes, cmd = m.probes.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("currency-detect") + "\n" +
		m.theme.Subtitle.Render("Best-effort country and currency for this machine") + "\n"
	if m.deps.ConfigPath != "" {
		header += m.theme.Help.Render("config: "+m.deps.ConfigPath) + "\n"
	}
	if m.deps.Debug {
		header += m.theme.Help.Render(fmt.Sprintf("debug · run token %d", m.token)) + "\n"
	}

	var toast string
	if m.toast != "" {
		toast = "\n" + m.theme.Toast.Render(m.toast)
	}

	switch m.scr {
	case screenReport:
		help := m.theme.Help.Render("↑/↓ navigate • enter details • h host • r refresh • q quit")
		body := m.renderResult()
		if m.report != nil {
			body += "\n\n" + m.theme.Card.Render(m.probes.View())
		}
		return wrap.Render(header + "\n" + body + "\n" + help + toast)

	case screenDetail:
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n%s",
				m.theme.Title.Render(m.selected.Method.Label()),
				renderOutcomeDetails(m.selected),
				m.theme.Help.Render("esc/b back • r refresh"),
			),
		)
		return wrap.Render(header + "\n" + card + toast)

	case screenHost:
		card := m.theme.Card.Render(
			fmt.Sprintf("%s\n\n%s\n\n%s",
				m.theme.Title.Render("Host"),
				renderHost(m.deps.Host),
				m.theme.Help.Render("esc/b back"),
			),
		)
		return wrap.Render(header + "\n" + card + toast)

	default:
		return wrap.Render(header + "\n" + "unknown state")
	}
}

func (m model) renderResult() string {
	if m.report == nil {
		return m.theme.Card.Render(m.spin.View() + " Detecting…")
	}

	r := m.report
	status := fmt.Sprintf("Run #%d · %d/%d probes succeeded · %dms",
		m.runs, r.Succeeded(), len(r.Outcomes), r.EndedAt.Sub(r.StartedAt).Milliseconds())
	if m.running {
		status += "  " + m.spin.View() + " refreshing"
	}

	statusStyle := m.theme.Help
	if r.Succeeded() == 0 {
		// Every probe failed; the result is the US/USD fallback.
		statusStyle = m.theme.Fail
	}

	return m.theme.Card.Render(
		m.theme.Big.Render(fmt.Sprintf("%s · %s", r.Country, r.Currency)) + "\n\n" +
			renderPrices(m.tables, r.Currency) + "\n\n" +
			statusStyle.Render(clampString(status, 80)),
	)
}
