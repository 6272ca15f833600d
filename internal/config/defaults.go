package config

import (
	_ "embed"
)

//go:embed defaults/wheel.yaml
var defaultWheelYAML []byte

// DefaultWheelConfig returns the default wheel configuration.
func DefaultWheelConfig() WheelConfig {
	return WheelConfig{
		BaseValues:       []int{-2, -1, 1, 2},
		SliceValues:      []int{1, 2, 3, 4},
		TargetSelections: 4,
		Curve: []CurveKey{
			{Time: 0, Value: 0},
			{Time: 0.6, Value: 1},
		},
		Faces: map[int]string{
			-2: "-2 >:(",
			-1: "-1 :(",
			1:  "1 :)",
			2:  "2 :D",
		},
	}
}
