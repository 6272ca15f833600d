package wheel

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestCurveEvaluate(t *testing.T) {
	c := EaseInOut(2)

	if got := c.Duration(); got != 2 {
		t.Errorf("Duration() = %v, want 2", got)
	}
	if got := c.Evaluate(-1); got != 0 {
		t.Errorf("Evaluate(-1) = %v, want 0", got)
	}
	if got := c.Evaluate(1); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Evaluate(1) = %v, want 0.5", got)
	}
	if got := c.Evaluate(5); got != 1 {
		t.Errorf("Evaluate(5) = %v, want 1", got)
	}
	if got := c.Weight(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Weight(0.5) = %v, want 0.5", got)
	}

	// Flat tangents ease in: the first quarter covers less than a quarter of the way.
	if got := c.Weight(0.25); got >= 0.25 || got <= 0 {
		t.Errorf("Weight(0.25) = %v, want in (0, 0.25)", got)
	}
}

func TestCurveLinearTangents(t *testing.T) {
	c, err := NewCurve(
		Keyframe{Time: 0, Value: 0, OutTangent: 1},
		Keyframe{Time: 1, Value: 1, InTangent: 1},
	)
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{0.1, 0.3, 0.7, 0.9} {
		if got := c.Evaluate(x); math.Abs(got-x) > 1e-9 {
			t.Errorf("Evaluate(%v) = %v, want %v", x, got, x)
		}
	}
}

func TestCurveMultipleKeys(t *testing.T) {
	c, err := NewCurve(
		Keyframe{Time: 0, Value: 0},
		Keyframe{Time: 0.5, Value: 1.1},
		Keyframe{Time: 1, Value: 1},
	)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Evaluate(0.5); got != 1.1 {
		t.Errorf("Evaluate at middle key = %v, want 1.1", got)
	}
	if got := c.Evaluate(0.75); got < 1 || got > 1.1 {
		t.Errorf("Evaluate(0.75) = %v, want within [1, 1.1]", got)
	}
}

func TestNewCurveRejects(t *testing.T) {
	tests := []struct {
		name string
		keys []Keyframe
	}{
		{"empty", nil},
		{"unordered", []Keyframe{{Time: 1}, {Time: 0.5}}},
		{"duplicate time", []Keyframe{{Time: 0}, {Time: 0}}},
		{"zero duration", []Keyframe{{Time: 0, Value: 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewCurve(tc.keys...); !errors.Is(err, ErrConfig) {
				t.Errorf("NewCurve() err = %v, want ErrConfig", err)
			}
		})
	}
}

func TestSlerpShortestArc(t *testing.T) {
	tests := []struct {
		from, to, w, want float64
	}{
		{0, 270, 0.5, 315},   // -90 the short way
		{0, 90, 0.5, 45},     // +90
		{90, 0, 1, 0},        // endpoint
		{350, 10, 0.5, 0},    // across zero
		{180, 90, 0, 180},    // start
		{270, 180, 0.5, 225}, // one quadrant clockwise
	}

	for _, tc := range tests {
		got := Slerp(tc.from, tc.to, tc.w)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Slerp(%v, %v, %v) = %v, want %v", tc.from, tc.to, tc.w, got, tc.want)
		}
	}
}

func TestSpinSnapsToTarget(t *testing.T) {
	var applied []float64
	rot := RotatorFunc(func(d float64) { applied = append(applied, d) })

	// A tick size that does not divide the duration evenly.
	c := EaseInOut(0.5)
	s := NewSpin(0, SpinStep, c, rot)
	dt := time.Second / 7

	completions := 0
	for i := 0; i < 100; i++ {
		switch s.Advance(dt) {
		case SpinCompleted:
			completions++
		case SpinIdle:
		case SpinRunning:
			if completions > 0 {
				t.Fatal("spin resumed running after completion")
			}
		}
	}

	if completions != 1 {
		t.Fatalf("SpinCompleted returned %d times, want 1", completions)
	}
	if s.Target() != 270 {
		t.Errorf("Target() = %v, want 270", s.Target())
	}
	last := applied[len(applied)-1]
	if last != 270 {
		t.Errorf("final orientation = %v, want exactly 270", last)
	}
	if got := s.Progress(); got != 1 {
		t.Errorf("Progress() after completion = %v, want 1", got)
	}

	// Intermediate orientations sweep clockwise between 360 and 270.
	for _, a := range applied[:len(applied)-1] {
		if a != 0 && (a < 270 || a > 360) {
			t.Errorf("intermediate orientation %v left the swept quadrant", a)
		}
	}
}

func TestSpinRepeatedStepsStayExact(t *testing.T) {
	angle := 0.0
	rot := RotatorFunc(func(d float64) { angle = d })
	want := []float64{270, 180, 90, 0}

	for i, w := range want {
		s := NewSpin(angle, SpinStep, EaseInOut(0.3), rot)
		for s.Advance(time.Second/60) != SpinCompleted {
		}
		if angle != w {
			t.Fatalf("after spin %d: orientation = %v, want %v", i+1, angle, w)
		}
	}
}

func TestSpinNegativeDeltaIgnored(t *testing.T) {
	s := NewSpin(0, SpinStep, EaseInOut(1), nil)
	s.Advance(-time.Second)
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v after negative tick, want 0", s.Elapsed())
	}
}
