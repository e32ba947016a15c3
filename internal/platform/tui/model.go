package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/platform/audio"
	"github.com/vovakirdan/eggshot/internal/platform/session"
	"github.com/vovakirdan/eggshot/internal/registry"
	"github.com/vovakirdan/eggshot/internal/storage"
)

const statusDuration = 2 * time.Second

// Options carries the optional services a game session uses.
type Options struct {
	Store         *storage.Store
	Sound         *audio.Player
	Logger        *log.Logger
	ScreenshotDir string // defaults to ~/.eggshot/screenshots
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	fixedSeed bool
	keys      *KeyMapper
	holds     *HoldTracker
	recorder  *session.Recorder
	sound     *audio.Player
	logger    *log.Logger
	shotDir   string
	now       func() time.Time

	state       core.GameState
	paused      bool
	status      string
	statusUntil time.Time
	quitting    bool
	back        bool
	finished    bool
}

// NewModel creates a model and starts a fresh session of game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Typed nils must not reach the recorder's interfaces.
	var saver session.ScoreSaver
	if opts.Store != nil {
		saver = opts.Store
	}
	var cues session.CuePlayer
	if opts.Sound != nil {
		cues = opts.Sound
	}

	game.Reset(cfg)
	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		fixedSeed: fixed,
		keys:      NewKeyMapper(),
		holds:     NewHoldTracker(DefaultInitialHold, DefaultRepeatHold),
		recorder:  session.NewRecorder(game.ID(), saver, cues, logger),
		sound:     opts.Sound,
		logger:    logger,
		shotDir:   opts.ScreenshotDir,
		now:       time.Now,
		state:     game.State(),
	}
	logger.Info("session started", "game", game.ID(), "seed", cfg.Seed, "fps", cfg.TickRate, "run", m.recorder.RunID())
	m.reportConfig()
	return m
}

// configReporter is implemented by games that load their tuning from disk.
type configReporter interface {
	ConfigErr() error
}

func (m *Model) reportConfig() {
	cr, ok := m.game.(configReporter)
	if !ok {
		return
	}
	if err := cr.ConfigErr(); err != nil {
		m.logger.Warn("config not loaded, using defaults", "err", err)
		m.flash("config error, using defaults")
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// World coordinates do not depend on the terminal, so the session survives.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key, action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.finish()
		m.back = true
		return m, tea.Quit
	case core.ActionPause:
		m.setPaused(!m.paused)
	case core.ActionRestart:
		m.restart()
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
			m.flash("screenshot failed")
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.flash("saved " + filepath.Base(path))
		}
	case core.ActionMute:
		if m.sound.ToggleMute() {
			m.flash("sound off")
		} else {
			m.flash("sound on")
		}
	}

	if key != core.KeyNone && !m.paused {
		m.press(key)
	}
	return m, nil
}

// press feeds a terminal key press to the game. Rotation keys are held
// until the tracker expires them; fire toggles between charging and launch.
func (m *Model) press(k core.Key) {
	now := m.now()

	if k == core.KeyFire {
		if !m.holds.Tap(k, now) {
			m.game.HandleInput(core.InputEvent{Key: k, Down: true, Repeat: true})
			return
		}
		if !m.game.HandleInput(core.Press(k)) {
			m.game.HandleInput(core.Release(k))
		}
		return
	}

	if !m.holds.Press(k, now) {
		m.game.HandleInput(core.InputEvent{Key: k, Down: true, Repeat: true})
		return
	}
	m.game.HandleInput(core.Press(k))
}

func (m *Model) release(keys []core.Key) {
	for _, k := range keys {
		if k != core.KeyFire {
			m.game.HandleInput(core.Release(k))
		}
	}
}

func (m *Model) setPaused(paused bool) {
	if paused {
		m.release(m.holds.ReleaseAll())
	}
	m.paused = paused
	m.game.SetPaused(paused)
}

// restart ends the current run and starts a new one.
func (m *Model) restart() {
	m.recorder.Finish(m.game.State())
	m.release(m.holds.ReleaseAll())
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.paused = false
	m.state = m.game.State()
	m.logger.Info("restart", "seed", m.config.Seed)
	m.reportConfig()
}

func (m *Model) finish() {
	if m.finished {
		return
	}
	m.finished = true
	m.recorder.Finish(m.game.State())
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.back {
		return m, nil
	}

	m.release(m.holds.Expire(m.now()))

	res := m.game.Update(1 / float64(m.config.TickRate))
	m.state = res.State
	m.recorder.Observe(res)

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) flash(text string) {
	m.status = text
	m.statusUntil = m.now().Add(statusDuration)
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: screenshot: %w", err)
		}
		dir = filepath.Join(home, ".eggshot", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.now().Before(m.statusUntil) && m.screen.Height() > 0 {
		m.screen.DrawTextCenteredColored(m.screen.Height()-1, " "+m.status+" ", core.ColorBrightCyan)
	}
	return RenderScreen(m.screen)
}

// State returns the game counters after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Recorder returns the session recorder.
func (m Model) Recorder() *session.Recorder {
	return m.recorder
}

// Result describes how a game session ended.
type Result struct {
	Back  bool // return to the menu rather than exit
	RunID string
	Best  int
}

// Run plays game until the user quits or goes back.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, err
	}
	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	// Interrupted programs skip the quit key handler.
	m.finish()
	return Result{Back: m.back, RunID: m.recorder.RunID(), Best: m.recorder.Best()}, nil
}
