package pairs

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	index   lipgloss.Style
	name    lipgloss.Style
	repeat  lipgloss.Style
	section lipgloss.Style
	label   lipgloss.Style
	empty   lipgloss.Style
	warning lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		index:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		repeat:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		section: lipgloss.NewStyle().MarginTop(1),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		empty:   lipgloss.NewStyle().Faint(true),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
