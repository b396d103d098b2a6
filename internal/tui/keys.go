// Package tui provides the interactive terminal browser for h5walk.
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keyboard bindings of the browser view.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	Enter           key.Binding
	Leave           key.Binding
	Top             key.Binding
	Bottom          key.Binding
	Open            key.Binding
	Info            key.Binding
	ExportCSV       key.Binding
	ExportContainer key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns the browser bindings. With vim enabled the h/j/k/l
// keys double as arrows, matching the original keyboard layout of the tool.
func DefaultKeyMap(vim bool) KeyMap {
	up, down, enter, leave := []string{"up"}, []string{"down"}, []string{"enter", "right"}, []string{"left", "backspace"}
	if vim {
		up = append(up, "k")
		down = append(down, "j")
		enter = append(enter, "l")
		leave = append(leave, "h")
	}
	return KeyMap{
		Up:              key.NewBinding(key.WithKeys(up...), key.WithHelp("↑/k", "up")),
		Down:            key.NewBinding(key.WithKeys(down...), key.WithHelp("↓/j", "down")),
		Enter:           key.NewBinding(key.WithKeys(enter...), key.WithHelp("enter/l", "enter group")),
		Leave:           key.NewBinding(key.WithKeys(leave...), key.WithHelp("←/h", "parent")),
		Top:             key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:          key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Open:            key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open container")),
		Info:            key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "dataset info")),
		ExportCSV:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "export CSV")),
		ExportContainer: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export container")),
		Quit:            key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
