package tui

import "github.com/charmbracelet/lipgloss"

// Styles mirror the color roles of the original curses layout: groups in
// blue, datasets in green, errors in red, hints in yellow, selection
// reversed.
type Styles struct {
	Title    lipgloss.Style
	Group    lipgloss.Style
	Dataset  lipgloss.Style
	Selected lipgloss.Style
	Error    lipgloss.Style
	Hint     lipgloss.Style
	Status   lipgloss.Style
	Overlay  lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true),
		Group:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Dataset:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Status:   lipgloss.NewStyle().Faint(true),
		Overlay:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}
