package ui

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/yildizm/mahoraga/internal/ai"
	"github.com/yildizm/mahoraga/internal/config"
)

// stubAnalyzer answers with a fixed outcome, optionally waiting for release
type stubAnalyzer struct {
	result  *ai.AnalysisResult
	err     error
	release chan struct{}

	mu      sync.Mutex
	prompts []string
}

func (s *stubAnalyzer) Name() string {
	return "stub"
}

func (s *stubAnalyzer) Analyze(ctx context.Context, prompt string) (*ai.AnalysisResult, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.result, s.err
}

func (s *stubAnalyzer) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.prompts))
	copy(out, s.prompts)
	return out
}

func (s *stubAnalyzer) factory(*config.Config) (ai.Analyzer, error) {
	return s, nil
}

// memStore records saves in memory
type memStore struct {
	saved    []config.Config
	saveErr  error
	resetErr error
}

func (s *memStore) Save(cfg *config.Config) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saved = append(s.saved, *cfg)
	return nil
}

func (s *memStore) Reset() (*config.Config, error) {
	if s.resetErr != nil {
		return nil, s.resetErr
	}
	return config.DefaultConfig(), nil
}

func newTestModel(t *testing.T, stub *stubAnalyzer, store *memStore) *Model {
	t.Helper()
	if store == nil {
		store = &memStore{}
	}
	opts := Options{
		Version: "1.2.3",
		Rand:    rand.New(rand.NewSource(1)),
	}
	if stub != nil {
		opts.Factory = stub.factory
	}

	m := New(config.DefaultConfig(), store, opts)
	t.Cleanup(m.Close)
	return m
}

func typeText(m *Model, text string) {
	for _, r := range text {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(m *Model, keyType tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: keyType})
	return cmd
}

func tick(m *Model) {
	m.Update(tickMsg(time.Now()))
}

// tickUntil polls the model the way the program loop would until cond holds
func tickUntil(t *testing.T, m *Model, cond func() bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		tick(m)
		return cond()
	}, 2*time.Second, time.Millisecond)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}
