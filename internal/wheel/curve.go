package wheel

import "fmt"

// Keyframe is one point of an easing curve. Tangents are slopes in value per second;
// zero tangents give the ease-in/ease-out shape.
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// Curve maps elapsed time to an interpolation weight. Between keyframes it is a cubic
// Hermite spline; outside the keyed range it holds the first or last value.
type Curve struct {
	keys []Keyframe
}

// NewCurve builds a curve from keyframes in strictly increasing time order. The last
// keyframe must lie after time zero since its time is the duration of a spin.
func NewCurve(keys ...Keyframe) (Curve, error) {
	if len(keys) == 0 {
		return Curve{}, fmt.Errorf("%w: curve has no keyframes", ErrConfig)
	}
	for i := 1; i < len(keys); i++ {
		if keys[i].Time <= keys[i-1].Time {
			return Curve{}, fmt.Errorf("%w: curve keyframe %d at %.3fs is not after %.3fs",
				ErrConfig, i, keys[i].Time, keys[i-1].Time)
		}
	}
	if keys[len(keys)-1].Time <= 0 {
		return Curve{}, fmt.Errorf("%w: curve duration must be positive", ErrConfig)
	}
	return Curve{keys: append([]Keyframe(nil), keys...)}, nil
}

// EaseInOut returns the two-key curve from (0, 0) to (duration, 1) with flat tangents.
func EaseInOut(duration float64) Curve {
	c, err := NewCurve(Keyframe{Time: 0, Value: 0}, Keyframe{Time: duration, Value: 1})
	if err != nil {
		panic(err)
	}
	return c
}

// Duration returns the time of the last keyframe.
func (c Curve) Duration() float64 {
	if len(c.keys) == 0 {
		return 0
	}
	return c.keys[len(c.keys)-1].Time
}

// Keys returns a copy of the keyframes.
func (c Curve) Keys() []Keyframe {
	return append([]Keyframe(nil), c.keys...)
}

// Evaluate returns the curve value at time t.
func (c Curve) Evaluate(t float64) float64 {
	if len(c.keys) == 0 {
		return 0
	}
	first, last := c.keys[0], c.keys[len(c.keys)-1]
	if t <= first.Time {
		return first.Value
	}
	if t >= last.Time {
		return last.Value
	}

	i := 1
	for c.keys[i].Time < t {
		i++
	}
	k0, k1 := c.keys[i-1], c.keys[i]

	dt := k1.Time - k0.Time
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}

// Weight evaluates the curve at a normalized progress in [0, 1] of its duration.
func (c Curve) Weight(progress float64) float64 {
	return c.Evaluate(progress * c.Duration())
}
