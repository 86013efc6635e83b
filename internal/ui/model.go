package ui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/yildizm/mahoraga/internal/ai"
	"github.com/yildizm/mahoraga/internal/ai/providers"
	"github.com/yildizm/mahoraga/internal/commands"
	"github.com/yildizm/mahoraga/internal/config"
	"github.com/yildizm/mahoraga/internal/editor"
	"github.com/yildizm/mahoraga/internal/logger"
	"github.com/yildizm/mahoraga/internal/settings"
)

// Screen is the top-level view. Settings is drawn over a frozen Main.
type Screen int

const (
	ScreenMain Screen = iota
	ScreenSettings
)

func (s Screen) String() string {
	if s == ScreenSettings {
		return "settings"
	}
	return "main"
}

// Mode is the main screen state. Exactly one mode is active at a time.
type Mode int

const (
	ModeIdle Mode = iota
	ModeAnalyzing
	ModeShowingResults
	ModeCommandMenu
)

func (m Mode) String() string {
	switch m {
	case ModeAnalyzing:
		return "analyzing"
	case ModeShowingResults:
		return "showing-results"
	case ModeCommandMenu:
		return "command-menu"
	default:
		return "idle"
	}
}

const (
	// DefaultPollInterval is how often the loop drains the completion channel
	DefaultPollInterval = 50 * time.Millisecond

	// DefaultTicksPerFrame is the number of polls per animation frame
	DefaultTicksPerFrame = 5

	animationFrames = 3
)

// analyzingWords title the prompt box while a request is in flight
var analyzingWords = []string{
	"Scrutinizing",
	"Dissecting",
	"Examining",
	"Evaluating",
	"Deconstructing",
	"Appraising",
	"Assessing",
	"Investigating",
	"Elucidating",
	"Interrogating",
}

// ConfigStore persists the configuration for the commands and the settings
// overlay
type ConfigStore interface {
	Save(cfg *config.Config) error
	Reset() (*config.Config, error)
}

// Options tunes the model. Zero values select the defaults.
type Options struct {
	PollInterval  time.Duration
	TicksPerFrame int
	Factory       providers.Factory
	Version       string
	Logger        *logger.Logger
	Rand          *rand.Rand

	// NoColor renders without ANSI colors, as does NO_COLOR in the environment
	NoColor bool
}

// tickMsg drives the poll loop
type tickMsg time.Time

// Model is the whole application state. Every handler runs on the bubbletea
// goroutine; only the dispatcher's background task runs elsewhere.
type Model struct {
	screen   Screen
	mode     Mode
	prompt   *editor.Buffer
	palette  commands.Palette
	result   *ai.AnalysisResult
	errMsg   string
	quitting bool

	cfg        *config.Config
	store      ConfigStore
	settings   *settings.Machine
	dispatcher *Dispatcher

	// Animation state, advanced by polls rather than wall-clock time
	word  string
	frame int
	ticks int

	width  int
	height int

	keys   keyMap
	help   help.Model
	styles *Styles
	opts   Options
	log    *logger.Logger
	rng    *rand.Rand
}

// New creates the model around a loaded configuration
func New(cfg *config.Config, store ConfigStore, opts Options) *Model {
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.TicksPerFrame <= 0 {
		opts.TicksPerFrame = DefaultTicksPerFrame
	}
	if opts.Logger == nil {
		opts.Logger = logger.New("ui", nil)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	return &Model{
		screen:     ScreenMain,
		mode:       ModeIdle,
		prompt:     editor.NewBuffer(""),
		cfg:        cfg,
		store:      store,
		settings:   settings.NewMachine(),
		dispatcher: NewDispatcher(opts.Factory, opts.Logger.WithComponent("dispatcher")),
		width:      80,
		height:     24,
		keys:       defaultKeyMap(),
		help:       help.New(),
		styles:     GetStyles(),
		opts:       opts,
		log:        opts.Logger,
		rng:        opts.Rand,
	}
}

// Init starts the poll loop
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.opts.PollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		return m.handleTick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleTick is one loop iteration: merge a finished analysis, then advance
// the animation. Input is handled as it arrives between ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	m.drainCompletion()

	if m.mode == ModeAnalyzing {
		m.ticks++
		if m.ticks >= m.opts.TicksPerFrame {
			m.frame = (m.frame + 1) % animationFrames
			m.ticks = 0
		}
	}

	return m, m.tick()
}

// drainCompletion is the only place the model leaves ModeAnalyzing other than
// an explicit cancel
func (m *Model) drainCompletion() {
	c, ok := m.dispatcher.Poll()
	if !ok {
		return
	}

	if c.err != nil {
		m.mode = ModeIdle
		m.result = nil
		m.errMsg = c.err.Error()
		return
	}

	m.mode = ModeShowingResults
	m.result = c.result
	m.errMsg = ""
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, m.quit()
	}

	switch m.screen {
	case ScreenSettings:
		return m, m.handleSettingsKey(msg)
	default:
		return m, m.handleMainKey(msg)
	}
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.dispatcher.Cancel()
	return tea.Quit
}

// Close releases the background analysis, waiting for it to return
func (m *Model) Close() {
	m.dispatcher.Close()
}

func (m *Model) Screen() Screen {
	return m.screen
}

func (m *Model) Mode() Mode {
	return m.mode
}

// Prompt returns the prompt text
func (m *Model) Prompt() string {
	return m.prompt.String()
}

// Cursor returns the prompt cursor as a rune offset
func (m *Model) Cursor() int {
	return m.prompt.Cursor()
}

func (m *Model) Result() *ai.AnalysisResult {
	return m.result
}

// Err returns the one-line error shown under the prompt, or ""
func (m *Model) Err() string {
	return m.errMsg
}

func (m *Model) Quitting() bool {
	return m.quitting
}

// Config returns the live configuration
func (m *Model) Config() *config.Config {
	return m.cfg
}

func (m *Model) Settings() *settings.Machine {
	return m.settings
}

func (m *Model) Palette() *commands.Palette {
	return &m.palette
}

// Animation returns the status word and the current dot frame
func (m *Model) Animation() (string, int) {
	return m.word, m.frame
}

// Run starts the TUI and blocks until the user quits
func Run(cfg *config.Config, store ConfigStore, opts Options) error {
	if opts.NoColor || IsColorDisabled() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	model := New(cfg, store, opts)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
