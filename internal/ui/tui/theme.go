package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style

	// Big is the country/currency headline.
	Big   lipgloss.Style
	Fail  lipgloss.Style
	Toast lipgloss.Style
}

func DefaultTheme() Theme {
	faint := lipgloss.NewStyle().Faint(true)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: faint,
		Help:     faint,
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Big:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}
