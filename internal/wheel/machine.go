package wheel

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTargetSelections is the number of confirmed quadrants that ends a puzzle.
const DefaultTargetSelections = 4

// DefaultSpinDuration is the length of the curve used when none is configured.
const DefaultSpinDuration = 0.6

// State is the phase of the puzzle.
type State int

const (
	// StateAwaitingSelection accepts direction, confirm, and rotate input.
	StateAwaitingSelection State = iota
	// StateRotating ignores input until the active spin completes.
	StateRotating
	// StateLocked is terminal until Reset.
	StateLocked
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateAwaitingSelection:
		return "AwaitingSelection"
	case StateRotating:
		return "Rotating"
	case StateLocked:
		return "Locked"
	default:
		return "Unknown"
	}
}

// Options configures a Machine.
type Options struct {
	// BaseValues are assigned one per direction, lowest to highest by convention.
	BaseValues []int
	// SliceValues are the ring's multipliers, one per slice.
	SliceValues []int
	// TargetSelections ends the puzzle; 0 means DefaultTargetSelections.
	TargetSelections int
	// Curve shapes each spin. The zero Curve means EaseInOut(DefaultSpinDuration).
	Curve Curve

	Rand    *rand.Rand  // Source for mappings; nil seeds from the clock
	Rotator Rotator     // Receives ring orientation updates; optional
	Hub     *Hub        // Event hub; nil creates one
	Logger  *log.Logger // nil discards
}

// Machine is the wheel puzzle state machine. It is driven from a single goroutine:
// input through the Submit methods and animation through Tick.
type Machine struct {
	baseValues  []int
	sliceValues []int
	target      int
	curve       Curve
	rng         *rand.Rand
	rotator     Rotator
	hub         *Hub
	logger      *log.Logger

	state      State
	selector   Direction
	selections int
	mapping    ValueMapping
	layout     SliceLayout
	covers     [directionCount]bool
	ringSteps  int
	ringAngle  float64
	spin       *Spin
	payload    Payload
	fault      error
}

// NewMachine validates opts and starts the first puzzle. Configuration problems are
// reported as ErrConfig.
func NewMachine(opts Options) (*Machine, error) {
	if len(opts.BaseValues) != directionCount {
		return nil, fmt.Errorf("%w: base values: want %d entries, got %d",
			ErrConfig, directionCount, len(opts.BaseValues))
	}
	if len(opts.SliceValues) != directionCount {
		return nil, fmt.Errorf("%w: slice values: want %d entries, got %d",
			ErrConfig, directionCount, len(opts.SliceValues))
	}

	target := opts.TargetSelections
	if target == 0 {
		target = DefaultTargetSelections
	}
	if target < 0 || target > directionCount {
		return nil, fmt.Errorf("%w: target selections %d outside 1..%d",
			ErrConfig, target, directionCount)
	}

	curve := opts.Curve
	if curve.Duration() <= 0 {
		curve = EaseInOut(DefaultSpinDuration)
	}

	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	hub := opts.Hub
	if hub == nil {
		hub = NewHub()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := &Machine{
		baseValues:  append([]int(nil), opts.BaseValues...),
		sliceValues: append([]int(nil), opts.SliceValues...),
		target:      target,
		curve:       curve,
		rng:         rng,
		rotator:     opts.Rotator,
		hub:         hub,
		logger:      logger,
	}
	if err := m.Reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// Hub returns the hub the machine publishes to.
func (m *Machine) Hub() *Hub {
	return m.hub
}

// Reset starts a new puzzle: any spin in flight is dropped, the selector returns to Up,
// the ring to rest, and mapping, layout and covers are rebuilt. Valid in any state.
func (m *Machine) Reset() error {
	mapping, err := NewValueMapping(m.rng, m.baseValues)
	if err != nil {
		return err
	}
	layout, err := NewSliceLayout(m.rng, len(m.sliceValues))
	if err != nil {
		return err
	}

	if m.spin != nil {
		m.logger.Debug("spin aborted by reset", "progress", m.spin.Progress())
	}
	m.spin = nil
	m.fault = nil
	m.selector = Up
	m.selections = 0
	m.covers = [directionCount]bool{}
	m.ringSteps = 0
	m.setRing(0)
	m.mapping = mapping
	m.layout = layout
	m.state = StateAwaitingSelection

	return m.publishPayload()
}

// SubmitReset is Reset under the input-method name used by hosts.
func (m *Machine) SubmitReset() error {
	return m.Reset()
}

// SubmitDirection moves the selector toward a two-axis intent. Only the sign of each
// axis matters, and horizontal input wins over vertical. Ignored unless awaiting a
// selection.
func (m *Machine) SubmitDirection(x, y float64) error {
	if m.fault != nil {
		return m.fault
	}
	if m.state != StateAwaitingSelection {
		return nil
	}

	d, ok := DirectionFromInput(x, y)
	if !ok || d == m.selector {
		return nil
	}
	m.selector = d
	return m.publishPayload()
}

// SubmitConfirm selects the quadrant under the selector and spins the ring. Ignored
// unless awaiting a selection, and ignored for a quadrant that is already covered.
func (m *Machine) SubmitConfirm() error {
	if m.fault != nil {
		return m.fault
	}
	if m.state != StateAwaitingSelection || m.covers[m.selector] {
		return nil
	}

	m.covers[m.selector] = true
	m.selections++
	m.startSpin(false)
	return nil
}

// SubmitManualRotate spins the ring without selecting a quadrant.
// Ignored unless awaiting a selection.
func (m *Machine) SubmitManualRotate() error {
	if m.fault != nil {
		return m.fault
	}
	if m.state != StateAwaitingSelection {
		return nil
	}
	m.startSpin(true)
	return nil
}

// Tick advances the active spin by dt. When the spin settles the payload is
// recomputed and the end of the puzzle is checked.
func (m *Machine) Tick(dt time.Duration) error {
	if m.fault != nil {
		return m.fault
	}
	if m.spin == nil {
		return nil
	}
	if m.spin.Advance(dt) != SpinCompleted {
		return nil
	}

	m.spin = nil
	m.ringSteps = (m.ringSteps + 1) % directionCount
	m.logger.Debug("spin finished", "ring", m.ringAngle, "selections", m.selections)

	if err := m.publishPayload(); err != nil {
		return err
	}
	m.hub.Publish(RotationFinishedEvent{})
	m.endCheck()
	return nil
}

// Override installs a fixed mapping and layout in place of the random ones, for
// scripted puzzles. Only allowed while awaiting a selection.
func (m *Machine) Override(mapping ValueMapping, layout SliceLayout) error {
	if m.state != StateAwaitingSelection {
		return fmt.Errorf("%w: override while %s", ErrConfig, m.state)
	}
	if err := mapping.Validate(m.baseValues); err != nil {
		return fmt.Errorf("%w: mapping: %v", ErrConfig, err)
	}
	if err := layout.Validate(len(m.sliceValues)); err != nil {
		return fmt.Errorf("%w: layout: %v", ErrConfig, err)
	}

	m.mapping = mapping.Clone()
	m.layout = layout.Clone()
	return m.publishPayload()
}

func (m *Machine) startSpin(manual bool) {
	m.state = StateRotating
	m.hub.Publish(RotationStartedEvent{Selector: m.selector, Payload: m.payload, Manual: manual})
	m.spin = NewSpin(m.ringAngle, SpinStep, m.curve, RotatorFunc(m.setRing))
	m.logger.Debug("spin started", "from", m.ringAngle, "to", m.spin.Target(), "manual", manual)
}

func (m *Machine) endCheck() {
	if m.selections >= m.target {
		m.state = StateLocked
		m.logger.Debug("puzzle finished", "selections", m.selections)
		m.hub.Publish(PuzzleFinishedEvent{Selections: m.selections})
		return
	}
	m.state = StateAwaitingSelection
}

// publishPayload resolves the selector's payload and announces it. A failed
// resolution halts the machine until Reset.
func (m *Machine) publishPayload() error {
	p, err := Resolve(m.selector, m.EffectiveLayout(), m.mapping, m.sliceValues)
	if err != nil {
		m.fault = err
		m.spin = nil
		m.logger.Error("wheel halted", "err", err, "selector", m.selector, "state", m.state)
		return err
	}
	m.payload = p
	m.hub.Publish(DirectionChangedEvent{Selector: m.selector, Payload: p})
	return nil
}

func (m *Machine) setRing(degrees float64) {
	m.ringAngle = degrees
	if m.rotator != nil {
		m.rotator.SetOrientation(degrees)
	}
}

// State returns the current phase.
func (m *Machine) State() State {
	return m.state
}

// Selector returns the direction the selector points at.
func (m *Machine) Selector() Direction {
	return m.selector
}

// Selections returns how many quadrants have been confirmed.
func (m *Machine) Selections() int {
	return m.selections
}

// TargetSelections returns the selection count that ends the puzzle.
func (m *Machine) TargetSelections() int {
	return m.target
}

// Payload returns the most recently resolved payload.
func (m *Machine) Payload() Payload {
	return m.payload
}

// Covered reports whether the quadrant at d has been confirmed.
func (m *Machine) Covered(d Direction) bool {
	if !d.Valid() {
		return false
	}
	return m.covers[d]
}

// Mapping returns a copy of the base value mapping.
func (m *Machine) Mapping() ValueMapping {
	return m.mapping.Clone()
}

// Layout returns a copy of the slice layout with the ring at rest.
func (m *Machine) Layout() SliceLayout {
	return m.layout.Clone()
}

// EffectiveLayout returns where each slice sits after the settled spins.
func (m *Machine) EffectiveLayout() SliceLayout {
	return m.layout.Rotated(m.ringSteps)
}

// SliceValues returns a copy of the configured multipliers.
func (m *Machine) SliceValues() []int {
	return append([]int(nil), m.sliceValues...)
}

// RingAngle returns the ring orientation in degrees, including any spin in progress.
func (m *Machine) RingAngle() float64 {
	return m.ringAngle
}

// SpinProgress returns the active spin's progress, or 0 when the ring is at rest.
func (m *Machine) SpinProgress() float64 {
	if m.spin == nil {
		return 0
	}
	return m.spin.Progress()
}

// Err returns the fault that halted the machine, if any.
func (m *Machine) Err() error {
	return m.fault
}
