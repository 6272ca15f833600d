package wheel

import "fmt"

// Payload is the outcome shown for the selector's quadrant. It is a value: every
// resolution produces a new one.
type Payload struct {
	BaseValue  int
	SliceValue int
	TotalValue int
}

// Resolve computes the payload for the selector given the ring's current layout.
// The layout must already account for ring rotation. A direction missing from either
// map, or a slice index outside sliceValues, is reported as ErrInvariant.
func Resolve(selector Direction, layout SliceLayout, mapping ValueMapping, sliceValues []int) (Payload, error) {
	base, ok := mapping[selector]
	if !ok {
		return Payload{}, fmt.Errorf("%w: no base value for %s", ErrInvariant, selector)
	}
	idx, ok := layout[selector]
	if !ok {
		return Payload{}, fmt.Errorf("%w: no slice at %s", ErrInvariant, selector)
	}
	if idx < 0 || idx >= len(sliceValues) {
		return Payload{}, fmt.Errorf("%w: slice index %d at %s out of range [0,%d)",
			ErrInvariant, idx, selector, len(sliceValues))
	}

	mult := sliceValues[idx]
	return Payload{
		BaseValue:  base,
		SliceValue: mult,
		TotalValue: base * mult,
	}, nil
}
