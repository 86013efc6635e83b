package settings

import (
	"fmt"

	"github.com/yildizm/mahoraga/internal/config"
	"github.com/yildizm/mahoraga/internal/editor"
)

// Saver persists a configuration
type Saver interface {
	Save(cfg *config.Config) error
}

// Outcome tells the caller what a key did to the overlay as a whole
type Outcome int

const (
	// OutcomeNone keeps the overlay open
	OutcomeNone Outcome = iota
	// OutcomeClose leaves without committing the working copy
	OutcomeClose
	// OutcomeSaved leaves after the working copy was persisted
	OutcomeSaved
)

const savedMessage = "Settings saved!"

// Machine is the settings overlay state. It has two exclusive modes:
// navigation over the field list and editing of a single text field.
type Machine struct {
	working  config.Config
	selected int
	editing  bool
	edit     *editor.Buffer

	message      string
	messageError bool
}

func NewMachine() *Machine {
	return &Machine{
		working: *config.DefaultConfig(),
		edit:    editor.NewBuffer(""),
	}
}

// Open snapshots cfg into a fresh working copy and resets the cursor, so
// edits abandoned on a previous visit are gone.
func (m *Machine) Open(cfg *config.Config) {
	m.working = *cfg
	m.selected = 0
	m.editing = false
	m.edit.Clear()
	m.message = ""
	m.messageError = false
}

// Working returns a copy of the working configuration
func (m *Machine) Working() config.Config {
	return m.working
}

func (m *Machine) Fields() []Field {
	return FieldsFor(m.working.Provider.Active)
}

func (m *Machine) Selected() int {
	return m.selected
}

func (m *Machine) SelectedField() Field {
	fields := m.Fields()
	if m.selected >= len(fields) {
		return fields[len(fields)-1]
	}
	return fields[m.selected]
}

func (m *Machine) Editing() bool {
	return m.editing
}

// EditValue returns the unmasked edit buffer
func (m *Machine) EditValue() string {
	return m.edit.String()
}

func (m *Machine) EditCursor() int {
	return m.edit.Cursor()
}

// Message returns the status line and whether it reports a failure
func (m *Machine) Message() (string, bool) {
	return m.message, m.messageError
}

// FieldValue reads field from the working copy
func (m *Machine) FieldValue(f Field) string {
	return f.Value(&m.working)
}

func (m *Machine) Up() {
	if m.editing {
		return
	}
	if m.selected > 0 {
		m.selected--
		m.clearMessage()
	}
}

func (m *Machine) Down() {
	if m.editing {
		return
	}
	if m.selected < len(m.Fields())-1 {
		m.selected++
		m.clearMessage()
	}
}

// Left moves the edit cursor, or cycles the provider backwards when the
// selector is highlighted
func (m *Machine) Left() {
	if m.editing {
		m.edit.Left()
		return
	}
	if m.SelectedField().IsProviderSelector() {
		m.setProvider(m.working.Provider.Active.Prev())
	}
}

// Right moves the edit cursor, or cycles the provider forwards when the
// selector is highlighted
func (m *Machine) Right() {
	if m.editing {
		m.edit.Right()
		return
	}
	if m.SelectedField().IsProviderSelector() {
		m.setProvider(m.working.Provider.Active.Next())
	}
}

// The field list changes shape with the provider, so the cursor goes back to
// the selector.
func (m *Machine) setProvider(p config.ProviderType) {
	m.working.Provider.Active = p
	m.selected = 0
	m.editing = false
	m.edit.Clear()
}

// Enter commits an edit, starts one, or activates a button. Save persists
// the working copy through saver and reports OutcomeSaved only on success.
func (m *Machine) Enter(saver Saver) Outcome {
	field := m.SelectedField()

	if m.editing {
		field.Set(&m.working, m.edit.String())
		m.editing = false
		m.edit.Clear()
		return OutcomeNone
	}

	switch {
	case field == FieldSave:
		if err := saver.Save(&m.working); err != nil {
			m.message = fmt.Sprintf("Error: %v", err)
			m.messageError = true
			return OutcomeNone
		}
		m.message = savedMessage
		m.messageError = false
		return OutcomeSaved
	case field == FieldCancel:
		return OutcomeClose
	case field.IsText():
		m.editing = true
		m.edit.Set(field.Value(&m.working))
	}

	return OutcomeNone
}

// Escape abandons the current edit, or leaves the overlay from navigation
func (m *Machine) Escape() Outcome {
	if m.editing {
		m.editing = false
		m.edit.Clear()
		return OutcomeNone
	}
	return OutcomeClose
}

// Insert adds text to the edit buffer. Field values are single line, so
// line breaks are dropped.
func (m *Machine) Insert(text string) {
	if !m.editing {
		return
	}
	for _, r := range text {
		if r == '\n' || r == '\r' {
			continue
		}
		m.edit.Insert(r)
	}
}

func (m *Machine) Backspace() {
	if m.editing {
		m.edit.Backspace()
	}
}

func (m *Machine) Delete() {
	if m.editing {
		m.edit.Delete()
	}
}

func (m *Machine) Home() {
	if m.editing {
		m.edit.Home()
	}
}

func (m *Machine) End() {
	if m.editing {
		m.edit.End()
	}
}

func (m *Machine) clearMessage() {
	m.message = ""
	m.messageError = false
}
