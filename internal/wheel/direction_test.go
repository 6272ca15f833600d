package wheel

import "testing"

func TestDirectionFromInput(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		want   Direction
		wantOK bool
	}{
		{"right", 1, 0, Right, true},
		{"left", -1, 0, Left, true},
		{"up", 0, 1, Up, true},
		{"down", 0, -1, Down, true},
		{"diagonal prefers horizontal", 1, 1, Right, true},
		{"left beats down", -0.2, -5, Left, true},
		{"magnitude ignored", 0, 0.001, Up, true},
		{"zero", 0, 0, Up, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := DirectionFromInput(tc.x, tc.y)
			if ok != tc.wantOK {
				t.Fatalf("DirectionFromInput(%v, %v) ok = %v, want %v", tc.x, tc.y, ok, tc.wantOK)
			}
			if ok && got != tc.want {
				t.Errorf("DirectionFromInput(%v, %v) = %s, want %s", tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestDirectionClockwise(t *testing.T) {
	tests := []struct {
		from Direction
		n    int
		want Direction
	}{
		{Up, 1, Right},
		{Right, 1, Down},
		{Down, 1, Left},
		{Left, 1, Up},
		{Up, 4, Up},
		{Up, -1, Left},
		{Right, -6, Left},
	}

	for _, tc := range tests {
		if got := tc.from.Clockwise(tc.n); got != tc.want {
			t.Errorf("%s.Clockwise(%d) = %s, want %s", tc.from, tc.n, got, tc.want)
		}
	}
}

func TestDirectionAngleRoundTrip(t *testing.T) {
	for _, d := range Directions() {
		if got := DirectionAt(d.Angle()); got != d {
			t.Errorf("DirectionAt(%v) = %s, want %s", d.Angle(), got, d)
		}
	}

	// One clockwise quadrant step is -90 degrees.
	for _, d := range Directions() {
		if got := DirectionAt(d.Angle() + SpinStep); got != d.Clockwise(1) {
			t.Errorf("DirectionAt(%s%+v) = %s, want %s", d, SpinStep, got, d.Clockwise(1))
		}
	}

	if got := DirectionAt(359.7); got != Up {
		t.Errorf("DirectionAt(359.7) = %s, want Up", got)
	}
}

func TestRemoveDirection(t *testing.T) {
	dirs := removeDirection(Directions(), Down)
	if len(dirs) != 3 {
		t.Fatalf("len = %d, want 3", len(dirs))
	}
	for _, d := range dirs {
		if d == Down {
			t.Error("Down should have been removed")
		}
	}

	if got := removeDirection(dirs, Down); len(got) != 3 {
		t.Errorf("removing an absent direction changed length to %d", len(got))
	}
}
