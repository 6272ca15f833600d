package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wheeljam/internal/core"
	"github.com/vovakirdan/wheeljam/internal/games/wheelgame"
	"github.com/vovakirdan/wheeljam/internal/storage"
)

// footerRows is the height reserved below the puzzle for the help line.
const footerRows = 1

// Recorder persists finished puzzles. *storage.Store satisfies it.
type Recorder interface {
	SavePuzzle(rec storage.PuzzleRecord) (string, error)
}

// Model is the Bubble Tea model running a wheel puzzle.
type Model struct {
	game       *wheelgame.Game
	screen     *core.Screen
	store      Recorder
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	saved      bool // Whether the current finished puzzle has been recorded
}

// NewModel creates a model for game. store and logger may be nil.
func NewModel(game *wheelgame.Game, store Recorder, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerRows, 1)),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
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
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Actions are buffered until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if a := m.keys.Action(msg); a != core.ActionNone {
		m.inputFrame.Set(a)
	}
	return m, nil
}

// handleResize keeps the puzzle running; only the buffers change size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if !m.gameState.Finished {
		m.saved = false
	} else if !m.saved {
		m.recordPuzzle()
		m.saved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// recordPuzzle stores the finished puzzle. Failures are logged; play continues.
func (m *Model) recordPuzzle() {
	if m.store == nil {
		return
	}

	res := m.game.Result()
	rec := storage.PuzzleRecord{
		ID:    res.ID,
		Seed:  res.Seed,
		Tally: res.Tally,
	}
	for _, p := range res.Picks {
		rec.Picks = append(rec.Picks, storage.Pick{
			Direction: p.Direction.String(),
			Base:      p.Payload.BaseValue,
			Slice:     p.Payload.SliceValue,
			Total:     p.Payload.TotalValue,
		})
	}

	if _, err := m.store.SavePuzzle(rec); err != nil {
		m.logger.Warn("could not save puzzle", "id", rec.ID, "err", err)
		return
	}
	m.logger.Debug("puzzle saved", "id", rec.ID, "tally", rec.Tally)
}

// saveScreenshot writes the current screen as plain text under ~/.wheeljam/screenshots.
func (m *Model) saveScreenshot() (string, error) {
	m.screen.Clear()
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".wheeljam", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// State returns the puzzle status as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderFrame(m.screen, m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game in the alternate screen.
func Run(game *wheelgame.Game, store Recorder, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
