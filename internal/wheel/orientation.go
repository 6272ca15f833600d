package wheel

import "math"

// Rotator applies an orientation, in degrees, to whatever draws the slice ring.
type Rotator interface {
	SetOrientation(degrees float64)
}

// RotatorFunc adapts a function to the Rotator interface.
type RotatorFunc func(degrees float64)

// SetOrientation calls f(degrees).
func (f RotatorFunc) SetOrientation(degrees float64) {
	f(degrees)
}

// NormalizeAngle maps any angle in degrees into [0, 360).
func NormalizeAngle(degrees float64) float64 {
	a := math.Mod(degrees, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return a
}

// Slerp interpolates between two planar orientations along the shorter arc.
// A weight of 0 yields from and 1 yields to; the result is normalized.
func Slerp(from, to, weight float64) float64 {
	delta := math.Mod(to-from, 360)
	if delta > 180 {
		delta -= 360
	} else if delta < -180 {
		delta += 360
	}
	return NormalizeAngle(from + delta*weight)
}
