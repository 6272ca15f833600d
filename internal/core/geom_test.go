package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(40, 12, 9, 5)
	if r.X != 36 || r.Y != 10 || r.W != 9 || r.H != 5 {
		t.Errorf("CenteredRect = %+v", r)
	}

	cx, cy := r.Center()
	if cx != 40 || cy != 12 {
		t.Errorf("Center() = (%d, %d), expected (40, 12)", cx, cy)
	}
}

func TestMin(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return the smaller value")
	}
}
