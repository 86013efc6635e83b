package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/mahoraga/internal/settings"
)

// handleSettingsKey routes a key to the settings overlay and applies its
// outcome. The live configuration changes only after a successful save.
func (m *Model) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	s := m.settings

	switch {
	case key.Matches(msg, m.keys.Escape):
		m.applySettingsOutcome(s.Escape())
	case key.Matches(msg, m.keys.Submit):
		m.applySettingsOutcome(s.Enter(m.store))
	case key.Matches(msg, m.keys.Up):
		s.Up()
	case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Complete):
		s.Down()
	case key.Matches(msg, m.keys.Left):
		s.Left()
	case key.Matches(msg, m.keys.Right):
		s.Right()
	case key.Matches(msg, m.keys.Home):
		s.Home()
	case key.Matches(msg, m.keys.End):
		s.End()
	case key.Matches(msg, m.keys.Backspace):
		s.Backspace()
	case key.Matches(msg, m.keys.Delete):
		s.Delete()
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		if len(msg.Runes) == 0 {
			s.Insert(" ")
		} else {
			s.Insert(string(msg.Runes))
		}
	}

	return nil
}

func (m *Model) applySettingsOutcome(outcome settings.Outcome) {
	switch outcome {
	case settings.OutcomeSaved:
		working := m.settings.Working()
		m.cfg = &working
		m.errMsg = ""
		m.screen = ScreenMain
		m.log.Info("settings saved for provider %s", working.Provider.Active)
	case settings.OutcomeClose:
		m.screen = ScreenMain
	}
}
