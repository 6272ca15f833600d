package wheel

import "time"

// SpinStep is the ring rotation applied by one spin: one quadrant clockwise.
const SpinStep = -90.0

// SpinStatus is the result of advancing a spin by one tick.
type SpinStatus int

const (
	// SpinRunning means the spin needs more ticks.
	SpinRunning SpinStatus = iota
	// SpinCompleted is returned once, on the tick the spin reaches its target.
	SpinCompleted
	// SpinIdle is returned for every tick after completion.
	SpinIdle
)

// String returns a human-readable name for the status.
func (s SpinStatus) String() string {
	switch s {
	case SpinRunning:
		return "Running"
	case SpinCompleted:
		return "Completed"
	case SpinIdle:
		return "Idle"
	default:
		return "Unknown"
	}
}

// Spin is a resumable rotation from one orientation to another, shaped by a Curve.
// The host calls Advance once per tick; nothing blocks between ticks.
type Spin struct {
	from    float64
	target  float64
	curve   Curve
	rotator Rotator
	elapsed time.Duration
	done    bool
}

// NewSpin prepares a rotation of delta degrees starting at from. No orientation is
// applied until the first Advance.
func NewSpin(from, delta float64, curve Curve, rotator Rotator) *Spin {
	return &Spin{
		from:    from,
		target:  NormalizeAngle(from + delta),
		curve:   curve,
		rotator: rotator,
	}
}

// Target returns the orientation the spin ends at.
func (s *Spin) Target() float64 {
	return s.target
}

// Elapsed returns the accumulated tick time.
func (s *Spin) Elapsed() time.Duration {
	return s.elapsed
}

// Progress returns the normalized progress in [0, 1].
func (s *Spin) Progress() float64 {
	total := s.curve.Duration()
	if s.done || total <= 0 {
		return 1
	}
	p := s.elapsed.Seconds() / total
	if p > 1 {
		return 1
	}
	return p
}

// Advance moves the spin forward by dt. Once the elapsed time reaches the curve's
// duration the rotator receives exactly the target orientation.
func (s *Spin) Advance(dt time.Duration) SpinStatus {
	if s.done {
		return SpinIdle
	}
	if dt > 0 {
		s.elapsed += dt
	}

	total := s.curve.Duration()
	if s.elapsed.Seconds() >= total {
		s.done = true
		s.apply(s.target)
		return SpinCompleted
	}

	weight := s.curve.Weight(s.elapsed.Seconds() / total)
	s.apply(Slerp(s.from, s.target, weight))
	return SpinRunning
}

func (s *Spin) apply(degrees float64) {
	if s.rotator != nil {
		s.rotator.SetOrientation(degrees)
	}
}
