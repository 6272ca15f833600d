// Package wheel implements the selection wheel puzzle: a selector that points at one of
// four quadrants, a ring of multiplier slices that spins one quadrant per confirmed
// selection, and the payload resolved from the two.
//
// The package has no rendering or input dependencies. Hosts feed input through the
// Submit* methods, drive animation with Tick, and observe the puzzle through a Hub.
package wheel

import "math"

// Direction is one of the four canonical quadrants a selector or slice can occupy.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// directionCount is the number of canonical directions.
const directionCount = 4

// Directions returns the canonical directions in clockwise order starting at Up.
// A fresh slice is returned on every call so callers may consume it.
func Directions() []Direction {
	return []Direction{Up, Right, Down, Left}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the canonical directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// Angle returns the rest orientation of the direction in degrees, counter-clockwise
// from Up: Up 0, Left 90, Down 180, Right 270.
func (d Direction) Angle() float64 {
	switch d {
	case Right:
		return 270
	case Down:
		return 180
	case Left:
		return 90
	default:
		return 0
	}
}

// Clockwise returns the direction reached after n clockwise quadrant steps.
// Negative n steps counter-clockwise.
func (d Direction) Clockwise(n int) Direction {
	i := (int(d) + n) % directionCount
	if i < 0 {
		i += directionCount
	}
	return Direction(i)
}

// DirectionAt returns the direction whose rest orientation is nearest to the angle.
func DirectionAt(degrees float64) Direction {
	a := NormalizeAngle(degrees)
	// Counter-clockwise quadrant index: 0 Up, 1 Left, 2 Down, 3 Right.
	q := int(math.Round(a/90)) % directionCount
	return Up.Clockwise(-q)
}

// DirectionFromInput resolves a two-axis intent to a direction. Only the sign of each
// axis matters. Horizontal wins over vertical: right, left, up, down. ok is false when
// both axes are zero.
func DirectionFromInput(x, y float64) (d Direction, ok bool) {
	switch {
	case x > 0:
		return Right, true
	case x < 0:
		return Left, true
	case y > 0:
		return Up, true
	case y < 0:
		return Down, true
	}
	return Up, false
}

// removeDirection returns dirs without the first occurrence of d.
func removeDirection(dirs []Direction, d Direction) []Direction {
	for i, v := range dirs {
		if v == d {
			return append(dirs[:i], dirs[i+1:]...)
		}
	}
	return dirs
}
