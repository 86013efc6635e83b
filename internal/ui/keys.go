package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings of the main screen and the settings overlay.
// Text input is handled separately from these bindings.
type keyMap struct {
	Quit      key.Binding
	Submit    key.Binding
	Escape    key.Binding
	Complete  key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding
	KillLine  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "analyze"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Home:      key.NewBinding(key.WithKeys("home")),
		End:       key.NewBinding(key.WithKeys("end")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:    key.NewBinding(key.WithKeys("delete")),
		KillLine: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear line"),
		),
	}
}

// mainHelp adapts the key map to the help bubble for the main screen
type mainHelp struct {
	keys  keyMap
	mode  Mode
	empty bool
}

func (h mainHelp) ShortHelp() []key.Binding {
	switch h.mode {
	case ModeAnalyzing:
		return []key.Binding{withHelp(h.keys.Escape, "esc", "cancel"), h.keys.Quit}
	case ModeCommandMenu:
		return []key.Binding{
			withHelp(h.keys.Up, "↑↓", "select"),
			withHelp(h.keys.Submit, "enter", "run"),
			h.keys.Complete,
			withHelp(h.keys.Escape, "esc", "close"),
		}
	case ModeShowingResults:
		return []key.Binding{withHelp(h.keys.Submit, "enter", "re-analyze"), withHelp(h.keys.Escape, "esc", "dismiss"), h.keys.Quit}
	default:
		if h.empty {
			return []key.Binding{commandsHint, h.keys.Quit}
		}
		return []key.Binding{h.keys.Submit, h.keys.KillLine, commandsHint, h.keys.Quit}
	}
}

func (h mainHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// settingsHelp adapts the key map to the help bubble for the settings overlay
type settingsHelp struct {
	keys    keyMap
	editing bool
}

func (h settingsHelp) ShortHelp() []key.Binding {
	if h.editing {
		return []key.Binding{
			withHelp(h.keys.Submit, "enter", "save"),
			withHelp(h.keys.Escape, "esc", "cancel"),
		}
	}
	return []key.Binding{
		withHelp(h.keys.Up, "↑↓", "navigate"),
		withHelp(h.keys.Submit, "enter", "edit"),
		withHelp(h.keys.Complete, "tab", "next"),
		withHelp(h.keys.Escape, "esc", "close"),
	}
}

func (h settingsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// commandsHint only appears in help; typed slashes go through text input
var commandsHint = key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "commands"))

func withHelp(b key.Binding, k, desc string) key.Binding {
	b.SetHelp(k, desc)
	return b
}
