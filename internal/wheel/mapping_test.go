package wheel

import (
	"errors"
	"math/rand"
	"testing"
)

func TestNewValueMappingIsBijection(t *testing.T) {
	base := []int{-2, -1, 1, 2}
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		m, err := NewValueMapping(rng, base)
		if err != nil {
			t.Fatalf("NewValueMapping() failed: %v", err)
		}
		if err := m.Validate(base); err != nil {
			t.Fatalf("draw %d: %v (mapping %v)", i, err, m)
		}
	}
}

func TestNewSliceLayoutIsBijection(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		l, err := NewSliceLayout(rng, 4)
		if err != nil {
			t.Fatalf("NewSliceLayout() failed: %v", err)
		}
		if err := l.Validate(4); err != nil {
			t.Fatalf("draw %d: %v (layout %v)", i, err, l)
		}
	}
}

func TestMappingCoversAllPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	seen := make(map[[4]int]bool)

	for i := 0; i < 2000; i++ {
		m, err := NewValueMapping(rng, []int{0, 1, 2, 3})
		if err != nil {
			t.Fatal(err)
		}
		seen[[4]int{m[Up], m[Right], m[Down], m[Left]}] = true
	}

	// 4! orderings; a uniform draw hits all of them in 2000 tries.
	if len(seen) != 24 {
		t.Errorf("saw %d distinct mappings, want 24", len(seen))
	}
}

func TestMappingWrongLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := NewValueMapping(rng, []int{1, 2, 3}); !errors.Is(err, ErrConfig) {
		t.Errorf("NewValueMapping(3 values) err = %v, want ErrConfig", err)
	}
	if _, err := NewSliceLayout(rng, 5); !errors.Is(err, ErrConfig) {
		t.Errorf("NewSliceLayout(5) err = %v, want ErrConfig", err)
	}
}

func TestValidateRejects(t *testing.T) {
	base := []int{-2, -1, 1, 2}

	tests := []struct {
		name string
		m    ValueMapping
	}{
		{"missing direction", ValueMapping{Up: -2, Right: -1, Down: 1}},
		{"reused value", ValueMapping{Up: -2, Right: -2, Down: 1, Left: 2}},
		{"foreign value", ValueMapping{Up: -2, Right: -1, Down: 1, Left: 9}},
		{"invalid direction", ValueMapping{Up: -2, Right: -1, Down: 1, Direction(9): 2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.m.Validate(base); err == nil {
				t.Errorf("Validate(%v) = nil, want error", tc.m)
			}
		})
	}
}

func TestSliceLayoutRotated(t *testing.T) {
	l := SliceLayout{Up: 0, Right: 1, Down: 2, Left: 3}

	one := l.Rotated(1)
	want := SliceLayout{Right: 0, Down: 1, Left: 2, Up: 3}
	for d, i := range want {
		if one[d] != i {
			t.Errorf("Rotated(1)[%s] = %d, want %d", d, one[d], i)
		}
	}

	full := l.Rotated(4)
	for d, i := range l {
		if full[d] != i {
			t.Errorf("Rotated(4)[%s] = %d, want %d", d, full[d], i)
		}
	}

	// The receiver is untouched.
	if l[Up] != 0 {
		t.Errorf("Rotated mutated the layout: %v", l)
	}
}
