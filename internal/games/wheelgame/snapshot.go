package wheelgame

import "github.com/vovakirdan/wheeljam/internal/wheel"

// Snapshot captures the observable puzzle state for determinism testing.
type Snapshot struct {
	Tick       uint64
	PuzzleID   string
	State      string
	Selector   wheel.Direction
	Selections int
	Target     int
	Payload    wheel.Payload
	RingAngle  float64
	Covered    []wheel.Direction
	Picks      int
	Tally      int
	Finished   bool
	Halted     bool
}

// Snapshot returns the current puzzle snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		PuzzleID: g.puzzleID,
		State:    "halted",
		Picks:    len(g.picks),
		Tally:    g.tally(),
		Finished: g.finished,
		Halted:   g.fault != nil,
	}
	if g.machine == nil {
		return s
	}

	m := g.machine
	if !s.Halted {
		s.State = m.State().String()
	}
	s.Selector = m.Selector()
	s.Selections = m.Selections()
	s.Target = m.TargetSelections()
	s.Payload = m.Payload()
	s.RingAngle = m.RingAngle()
	for _, d := range wheel.Directions() {
		if m.Covered(d) {
			s.Covered = append(s.Covered, d)
		}
	}
	return s
}
