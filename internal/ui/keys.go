package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/huimingz/gcz/internal/prompt"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	Newline   key.Binding
	Clear     key.Binding
	Abort     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f")),
		Home:      key.NewBinding(key.WithKeys("home", "ctrl+a")),
		End:       key.NewBinding(key.WithKeys("end", "ctrl+e")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:    key.NewBinding(key.WithKeys("delete")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Newline:   key.NewBinding(key.WithKeys("ctrl+j"), key.WithHelp("ctrl+j", "new line")),
		Clear:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Abort:     key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "abort")),
	}
}

// helpFor returns the bindings worth showing at a stage.
func (k keyMap) helpFor(stage prompt.Stage) []key.Binding {
	switch stage {
	case prompt.StageType:
		return []key.Binding{k.Up, k.Down, k.Confirm, k.Clear, k.Abort}
	case prompt.StageBody:
		return []key.Binding{k.Confirm, k.Newline, k.Clear, k.Abort}
	default:
		return []key.Binding{k.Confirm, k.Clear, k.Abort}
	}
}

// event translates a key press into an engine event.
func (k keyMap) event(msg tea.KeyMsg) (prompt.Event, bool) {
	switch {
	case key.Matches(msg, k.Abort):
		return prompt.Press(prompt.KeyAbort), true
	case key.Matches(msg, k.Confirm):
		return prompt.Press(prompt.KeyEnter), true
	case key.Matches(msg, k.Newline):
		return prompt.Press(prompt.KeyNewline), true
	case key.Matches(msg, k.Up):
		return prompt.Press(prompt.KeyUp), true
	case key.Matches(msg, k.Down):
		return prompt.Press(prompt.KeyDown), true
	case key.Matches(msg, k.Left):
		return prompt.Press(prompt.KeyLeft), true
	case key.Matches(msg, k.Right):
		return prompt.Press(prompt.KeyRight), true
	case key.Matches(msg, k.Home):
		return prompt.Press(prompt.KeyHome), true
	case key.Matches(msg, k.End):
		return prompt.Press(prompt.KeyEnd), true
	case key.Matches(msg, k.Backspace):
		return prompt.Press(prompt.KeyBackspace), true
	case key.Matches(msg, k.Delete):
		return prompt.Press(prompt.KeyDelete), true
	case key.Matches(msg, k.Clear):
		return prompt.Press(prompt.KeyClear), true
	}

	switch msg.Type {
	case tea.KeyRunes:
		return prompt.Text(string(msg.Runes)), true
	case tea.KeySpace:
		return prompt.Text(" "), true
	}
	return prompt.Event{}, false
}
