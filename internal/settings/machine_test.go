package settings

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/mahoraga/internal/config"
)

type fakeSaver struct {
	saved *config.Config
	err   error
	calls int
}

func (f *fakeSaver) Save(cfg *config.Config) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	c := *cfg
	f.saved = &c
	return nil
}

func openMachine(t *testing.T, provider config.ProviderType) (*Machine, *config.Config) {
	t.Helper()
	live := config.DefaultConfig()
	live.Provider.Active = provider
	m := NewMachine()
	m.Open(live)
	return m, live
}

func selectField(t *testing.T, m *Machine, f Field) {
	t.Helper()
	for m.Selected() > 0 {
		m.Up()
	}
	for m.SelectedField() != f {
		before := m.Selected()
		m.Down()
		require.NotEqual(t, before, m.Selected(), "field %d not reachable", f)
	}
}

func TestMachine_NavigationClamps(t *testing.T) {
	m, _ := openMachine(t, config.ProviderOpenAI)

	m.Up()
	assert.Equal(t, 0, m.Selected())

	for i := 0; i < 20; i++ {
		m.Down()
	}
	assert.Equal(t, len(m.Fields())-1, m.Selected())
	assert.Equal(t, FieldCancel, m.SelectedField())
}

func TestMachine_ProviderSwitchResetsSelection(t *testing.T) {
	m, live := openMachine(t, config.ProviderAzure)

	// Left and Right away from the selector do nothing
	m.Down()
	m.Right()
	assert.Equal(t, config.ProviderAzure, m.Working().Provider.Active)
	assert.Equal(t, 1, m.Selected())

	m.Up()
	want := []config.ProviderType{config.ProviderOpenAI, config.ProviderAnthropic, config.ProviderAzure}
	for _, p := range want {
		m.Down()
		m.Up()
		m.Right()
		assert.Equal(t, p, m.Working().Provider.Active)
		assert.Equal(t, 0, m.Selected())
		assert.Equal(t, FieldsFor(p), m.Fields())
	}

	m.Left()
	assert.Equal(t, config.ProviderAnthropic, m.Working().Provider.Active)
	assert.Equal(t, config.ProviderAzure, live.Provider.Active, "live config is untouched")
}

func TestMachine_EditCommit(t *testing.T) {
	m, live := openMachine(t, config.ProviderOpenAI)
	selectField(t, m, FieldOpenAIModel)

	m.Enter(nil)
	require.True(t, m.Editing())
	assert.Equal(t, "gpt-4", m.EditValue())
	assert.Equal(t, 5, m.EditCursor())

	m.Backspace()
	m.Insert("o\nmini")
	m.Home()
	m.Delete()
	m.End()
	assert.Equal(t, "pt-omini", m.EditValue(), "line breaks are dropped")

	// Up and Down are ignored while editing
	m.Up()
	assert.Equal(t, FieldOpenAIModel, m.SelectedField())

	assert.Equal(t, OutcomeNone, m.Enter(nil))
	assert.False(t, m.Editing())
	assert.Equal(t, "pt-omini", m.Working().OpenAI.Model)
	assert.Equal(t, "gpt-4", live.OpenAI.Model)
}

func TestMachine_EditEscapeDiscards(t *testing.T) {
	m, _ := openMachine(t, config.ProviderAnthropic)
	selectField(t, m, FieldAnthropicAPIKey)

	m.Enter(nil)
	m.Insert("sk-ant")
	assert.Equal(t, OutcomeNone, m.Escape())

	assert.False(t, m.Editing())
	assert.Equal(t, "", m.Working().Anthropic.APIKey)
	assert.Equal(t, "", m.EditValue())
}

func TestMachine_EnterOnSelectorDoesNothing(t *testing.T) {
	m, _ := openMachine(t, config.ProviderAzure)
	assert.Equal(t, OutcomeNone, m.Enter(nil))
	assert.False(t, m.Editing())
}

func TestMachine_SaveSuccess(t *testing.T) {
	m, _ := openMachine(t, config.ProviderOpenAI)
	selectField(t, m, FieldOpenAIAPIKey)
	m.Enter(nil)
	m.Insert("sk-test")
	m.Enter(nil)

	selectField(t, m, FieldSave)
	saver := &fakeSaver{}
	assert.Equal(t, OutcomeSaved, m.Enter(saver))

	require.NotNil(t, saver.saved)
	assert.Equal(t, "sk-test", saver.saved.OpenAI.APIKey)
	msg, isErr := m.Message()
	assert.Equal(t, "Settings saved!", msg)
	assert.False(t, isErr)
}

func TestMachine_SaveFailureStaysOpen(t *testing.T) {
	m, _ := openMachine(t, config.ProviderOpenAI)
	selectField(t, m, FieldSave)

	saver := &fakeSaver{err: errors.New("disk full")}
	assert.Equal(t, OutcomeNone, m.Enter(saver))

	msg, isErr := m.Message()
	assert.Equal(t, "Error: disk full", msg)
	assert.True(t, isErr)

	// Moving clears the message
	m.Up()
	msg, _ = m.Message()
	assert.Empty(t, msg)
}

func TestMachine_CancelAndEscapeClose(t *testing.T) {
	m, _ := openMachine(t, config.ProviderAzure)
	assert.Equal(t, OutcomeClose, m.Escape())

	selectField(t, m, FieldCancel)
	saver := &fakeSaver{}
	assert.Equal(t, OutcomeClose, m.Enter(saver))
	assert.Zero(t, saver.calls)
}

func TestMachine_OpenDiscardsStagedEdits(t *testing.T) {
	m, live := openMachine(t, config.ProviderAzure)
	selectField(t, m, FieldAzureURL)
	m.Enter(nil)
	m.Insert("https://staged")
	m.Enter(nil)
	require.Equal(t, "https://staged", m.Working().Azure.URL)

	m.Escape()
	m.Open(live)

	assert.Equal(t, "", m.Working().Azure.URL)
	assert.Equal(t, 0, m.Selected())
	assert.False(t, m.Editing())
}
