package wheel

import (
	"fmt"
	"math/rand"
	"sort"
)

// ValueMapping assigns a base value to every direction.
type ValueMapping map[Direction]int

// SliceLayout assigns a slice index to every direction with the ring at rest.
type SliceLayout map[Direction]int

// NewValueMapping draws a random bijection between the canonical directions and values.
// Values are handed out in order, each to a direction drawn uniformly from those still
// unassigned.
func NewValueMapping(rng *rand.Rand, values []int) (ValueMapping, error) {
	m, err := assign(rng, Directions(), values)
	if err != nil {
		return nil, fmt.Errorf("%w: base values: %v", ErrConfig, err)
	}
	return ValueMapping(m), nil
}

// NewSliceLayout draws a random bijection between the canonical directions and the
// indices 0..n-1 of a slice value list of length n.
func NewSliceLayout(rng *rand.Rand, n int) (SliceLayout, error) {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	m, err := assign(rng, Directions(), indices)
	if err != nil {
		return nil, fmt.Errorf("%w: slice values: %v", ErrConfig, err)
	}
	return SliceLayout(m), nil
}

// assign pairs each value with a direction drawn from the remaining pool.
func assign(rng *rand.Rand, pool []Direction, values []int) (map[Direction]int, error) {
	if len(values) != len(pool) {
		return nil, fmt.Errorf("want %d entries, got %d", len(pool), len(values))
	}

	m := make(map[Direction]int, len(pool))
	for _, v := range values {
		d := pool[rng.Intn(len(pool))]
		m[d] = v
		pool = removeDirection(pool, d)
	}
	return m, nil
}

// Clone returns an independent copy of the mapping.
func (m ValueMapping) Clone() ValueMapping {
	out := make(ValueMapping, len(m))
	for d, v := range m {
		out[d] = v
	}
	return out
}

// Validate checks that the mapping covers every canonical direction and that its values
// are exactly the given base values.
func (m ValueMapping) Validate(values []int) error {
	return validateBijection(m, values)
}

// Clone returns an independent copy of the layout.
func (l SliceLayout) Clone() SliceLayout {
	out := make(SliceLayout, len(l))
	for d, i := range l {
		out[d] = i
	}
	return out
}

// Validate checks that the layout places each of the n slice indices on exactly one
// canonical direction.
func (l SliceLayout) Validate(n int) error {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return validateBijection(l, indices)
}

// Rotated returns the layout after the ring has turned steps quadrants clockwise.
// The slice resting at Up ends up at Right after one step.
func (l SliceLayout) Rotated(steps int) SliceLayout {
	out := make(SliceLayout, len(l))
	for d, i := range l {
		out[d.Clockwise(steps)] = i
	}
	return out
}

// validateBijection reports whether m maps the canonical directions one-to-one onto want.
func validateBijection(m map[Direction]int, want []int) error {
	if len(m) != directionCount || len(want) != directionCount {
		return fmt.Errorf("want %d entries, got %d", directionCount, len(m))
	}
	for _, d := range Directions() {
		if _, ok := m[d]; !ok {
			return fmt.Errorf("direction %s is unassigned", d)
		}
	}

	got := make([]int, 0, len(m))
	for _, v := range m {
		got = append(got, v)
	}
	exp := append([]int(nil), want...)
	sort.Ints(got)
	sort.Ints(exp)
	for i := range got {
		if got[i] != exp[i] {
			return fmt.Errorf("assigned values %v do not match %v", got, exp)
		}
	}
	return nil
}
