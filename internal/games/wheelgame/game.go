// Package wheelgame hosts the wheel puzzle on the fixed-tick platform loop.
// It turns input frames into wheel submissions, advances the spin on every tick,
// and draws the wheel into a core.Screen.
package wheelgame

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/wheeljam/internal/config"
	"github.com/vovakirdan/wheeljam/internal/core"
	"github.com/vovakirdan/wheeljam/internal/wheel"
)

// ID is the identifier used for screenshots and logs.
const ID = "wheel"

// eventBuffer holds more events than a single tick can publish.
const eventBuffer = 32

// Pick is a confirmed selection: the payload under the selector when it was confirmed.
type Pick struct {
	Direction wheel.Direction
	Payload   wheel.Payload
}

// Result summarizes the current puzzle for history storage.
type Result struct {
	ID    string
	Seed  int64
	Picks []Pick
	Tally int
}

// Game runs one wheel puzzle after another.
type Game struct {
	cfg    config.WheelConfig
	logger *log.Logger

	machine     *wheel.Machine
	events      *wheel.ChannelListener
	unsubscribe func()

	rc       core.RuntimeConfig
	dt       time.Duration
	tick     uint64
	puzzleID string
	picks    []Pick
	finished bool
	fault    error
	message  string // Last notable event, shown under the HUD
}

// New creates a game for the given wheel configuration. A nil logger discards.
func New(cfg config.WheelConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{cfg: cfg, logger: logger}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Wheel of Fortune"
}

// Reset builds a fresh machine seeded from rc.Seed and starts the first puzzle.
// Configuration errors halt the game instead of panicking.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.unsubscribe != nil {
		g.unsubscribe()
		g.events.Close()
	}

	g.rc = rc
	g.dt = tickDuration(rc.TickRate)
	g.tick = 0
	g.fault = nil
	g.machine = nil
	g.clearPuzzle()

	opts, err := g.cfg.Options()
	if err != nil {
		g.halt(err)
		return
	}

	// Subscribe before the machine exists so the initial payload is not missed.
	hub := wheel.NewHub()
	g.events = wheel.NewChannelListener(eventBuffer)
	g.unsubscribe = hub.Subscribe(g.events.Listen)

	opts.Hub = hub
	opts.Rand = rand.New(rand.NewSource(rc.Seed))
	opts.Logger = g.logger

	m, err := wheel.NewMachine(opts)
	if err != nil {
		g.halt(err)
		return
	}
	g.machine = m
	g.drainEvents()
	g.logger.Info("puzzle started", "id", g.puzzleID, "seed", rc.Seed)
}

// Step advances the puzzle by one tick. Direction input is applied before
// confirm and rotate so a single frame can move and confirm.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.machine == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.restart()
	}

	if x, y := in.Axis(); x != 0 || y != 0 {
		g.check(g.machine.SubmitDirection(x, y))
	}
	if in.Has(core.ActionConfirm) {
		g.check(g.machine.SubmitConfirm())
	}
	if in.Has(core.ActionRotate) {
		g.check(g.machine.SubmitManualRotate())
	}
	g.check(g.machine.Tick(g.dt))

	g.drainEvents()
	return core.StepResult{State: g.State()}
}

// State returns the puzzle status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tally:    g.tally(),
		Finished: g.finished,
		Halted:   g.fault != nil,
	}
}

// Result returns the current puzzle's picks so far.
func (g *Game) Result() Result {
	return Result{
		ID:    g.puzzleID,
		Seed:  g.rc.Seed,
		Picks: append([]Pick(nil), g.picks...),
		Tally: g.tally(),
	}
}

// Err returns the error that halted the game, if any.
func (g *Game) Err() error {
	return g.fault
}

func (g *Game) restart() {
	g.clearPuzzle()
	g.fault = nil
	if err := g.machine.SubmitReset(); err != nil {
		g.halt(err)
		return
	}
	g.logger.Info("puzzle started", "id", g.puzzleID, "seed", g.rc.Seed)
}

func (g *Game) clearPuzzle() {
	g.puzzleID = uuid.NewString()
	g.picks = nil
	g.finished = false
	g.message = ""
}

func (g *Game) check(err error) {
	if err != nil && g.fault == nil {
		g.halt(err)
	}
}

func (g *Game) halt(err error) {
	g.fault = err
	g.message = fmt.Sprintf("Wheel halted: %v", err)
	g.logger.Error("puzzle halted", "id", g.puzzleID, "err", err)
}

func (g *Game) drainEvents() {
	if g.events == nil {
		return
	}
	for _, evt := range g.events.Drain() {
		switch e := evt.(type) {
		case wheel.RotationStartedEvent:
			if e.Manual {
				g.message = "Spinning the ring..."
				continue
			}
			g.picks = append(g.picks, Pick{Direction: e.Selector, Payload: e.Payload})
			g.message = fmt.Sprintf("Picked %s: %d x %d = %d",
				e.Selector, e.Payload.BaseValue, e.Payload.SliceValue, e.Payload.TotalValue)
		case wheel.PuzzleFinishedEvent:
			g.finished = true
			g.message = fmt.Sprintf("Puzzle complete! Tally %d. Press N for a new puzzle.", g.tally())
			g.logger.Info("puzzle finished", "id", g.puzzleID, "tally", g.tally(), "picks", len(g.picks))
		}
	}
}

func (g *Game) tally() int {
	sum := 0
	for _, p := range g.picks {
		sum += p.Payload.TotalValue
	}
	return sum
}

func tickDuration(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}
