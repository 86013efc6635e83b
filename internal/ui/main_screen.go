package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/yildizm/mahoraga/internal/commands"
)

// handleMainKey routes a key on the main screen. While analyzing only Esc is
// accepted, and it abandons the request.
func (m *Model) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	if m.mode == ModeAnalyzing {
		if key.Matches(msg, m.keys.Escape) {
			m.cancelAnalysis()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Escape):
		switch m.mode {
		case ModeCommandMenu:
			m.mode = ModeIdle
			m.palette.Reset()
		case ModeShowingResults:
			m.mode = ModeIdle
		}
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Complete):
		if m.mode == ModeCommandMenu {
			if cmd, ok := m.palette.Current(); ok {
				m.prompt.Set(cmd.Name)
			}
			m.mode = ModeIdle
			m.palette.Reset()
		}
	case key.Matches(msg, m.keys.Up):
		if m.mode == ModeCommandMenu {
			m.palette.Up()
		}
	case key.Matches(msg, m.keys.Down):
		if m.mode == ModeCommandMenu {
			m.palette.Down()
		}
	case key.Matches(msg, m.keys.Left):
		m.prompt.Left()
	case key.Matches(msg, m.keys.Right):
		m.prompt.Right()
	case key.Matches(msg, m.keys.Home):
		m.prompt.Home()
	case key.Matches(msg, m.keys.End):
		m.prompt.End()
	case key.Matches(msg, m.keys.Backspace):
		if m.prompt.Backspace() {
			m.edited()
		}
	case key.Matches(msg, m.keys.Delete):
		if m.prompt.Delete() {
			m.edited()
		}
	case key.Matches(msg, m.keys.KillLine):
		if m.prompt.KillToLineStart() {
			m.edited()
		}
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		m.prompt.InsertString(string(msg.Runes))
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			m.prompt.Insert(' ')
		}
		m.edited()
	}

	return nil
}

// edited clears a stale error and re-derives the command menu after the
// prompt text changed
func (m *Model) edited() {
	m.errMsg = ""

	if m.palette.Sync(m.prompt.String()) {
		m.mode = ModeCommandMenu
	} else if m.mode == ModeCommandMenu {
		m.mode = ModeIdle
	}
}

// submit handles Enter: run the highlighted or exactly typed command, or
// analyze the prompt
func (m *Model) submit() tea.Cmd {
	if m.mode == ModeCommandMenu {
		cmd, ok := m.palette.Current()
		m.prompt.Clear()
		m.palette.Reset()
		m.mode = ModeIdle
		if !ok {
			return nil
		}
		return m.execute(cmd)
	}

	if m.prompt.HasPrefix("/") {
		cmd, ok := commands.Lookup(m.prompt.String())
		if !ok {
			return nil
		}
		m.prompt.Clear()
		m.palette.Reset()
		m.mode = ModeIdle
		return m.execute(cmd)
	}

	if !m.prompt.IsEmpty() {
		m.startAnalysis()
	}
	return nil
}

// execute applies exactly one command effect
func (m *Model) execute(cmd commands.Command) tea.Cmd {
	m.log.Debug("executing command %s", cmd.Name)

	switch cmd.Effect {
	case commands.EffectOpenSettings:
		m.settings.Open(m.cfg)
		m.screen = ScreenSettings
	case commands.EffectClear:
		m.prompt.Clear()
		m.palette.Reset()
		m.result = nil
		m.errMsg = ""
		m.mode = ModeIdle
	case commands.EffectExit:
		return m.quit()
	case commands.EffectCycleProvider:
		// The new selection stays in effect even if it cannot be persisted
		m.cfg.Provider.Active = m.cfg.Provider.Active.Next()
		if err := m.store.Save(m.cfg); err != nil {
			m.errMsg = fmt.Sprintf("Failed to save config: %v", err)
		} else {
			m.errMsg = ""
		}
	case commands.EffectResetDefaults:
		cfg, err := m.store.Reset()
		if err != nil {
			m.errMsg = fmt.Sprintf("Failed to reset config: %v", err)
			return nil
		}
		m.cfg = cfg
		m.errMsg = ""
	}

	return nil
}

// startAnalysis hands a snapshot of the prompt and configuration to the
// dispatcher. Callers guarantee the model is not already analyzing.
func (m *Model) startAnalysis() {
	m.mode = ModeAnalyzing
	m.result = nil
	m.errMsg = ""
	m.palette.Reset()

	m.word = "Analyzing"
	if len(analyzingWords) > 0 {
		m.word = analyzingWords[m.rng.Intn(len(analyzingWords))]
	}
	m.frame = 0
	m.ticks = 0

	m.dispatcher.Start(*m.cfg, m.prompt.String())
}

// cancelAnalysis returns to Idle and invalidates the in-flight request so a
// late reply cannot reopen the results
func (m *Model) cancelAnalysis() {
	m.dispatcher.Cancel()
	m.mode = ModeIdle
	m.log.Debug("analysis cancelled by user")
}
