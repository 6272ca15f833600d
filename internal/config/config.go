// Package config provides YAML-based wheel configuration loading for wheeljam.
package config

import (
	"fmt"

	"github.com/vovakirdan/wheeljam/internal/wheel"
)

// WheelConfig contains all configuration for a wheel puzzle.
type WheelConfig struct {
	BaseValues       []int          `yaml:"base_values"`       // One per quadrant, lowest first
	SliceValues      []int          `yaml:"slice_values"`      // Ring multipliers, lowest first
	TargetSelections int            `yaml:"target_selections"` // Confirmations that end a puzzle
	Curve            []CurveKey     `yaml:"curve"`             // Spin easing, time in seconds
	Faces            map[int]string `yaml:"faces"`             // Text shown for each base value
}

// CurveKey is one keyframe of the spin easing curve.
type CurveKey struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"in_tangent"`
	OutTangent float64 `yaml:"out_tangent"`
}

// WheelCurve builds the easing curve from the configured keyframes.
func (c WheelConfig) WheelCurve() (wheel.Curve, error) {
	keys := make([]wheel.Keyframe, len(c.Curve))
	for i, k := range c.Curve {
		keys[i] = wheel.Keyframe{
			Time:       k.Time,
			Value:      k.Value,
			InTangent:  k.InTangent,
			OutTangent: k.OutTangent,
		}
	}
	return wheel.NewCurve(keys...)
}

// Validate reports configuration the wheel would reject at construction.
func (c WheelConfig) Validate() error {
	n := len(wheel.Directions())
	if len(c.BaseValues) != n {
		return fmt.Errorf("config: base_values: want %d entries, got %d", n, len(c.BaseValues))
	}
	if len(c.SliceValues) != n {
		return fmt.Errorf("config: slice_values: want %d entries, got %d", n, len(c.SliceValues))
	}
	if c.TargetSelections < 0 || c.TargetSelections > n {
		return fmt.Errorf("config: target_selections: %d outside 0..%d", c.TargetSelections, n)
	}
	if _, err := c.WheelCurve(); err != nil {
		return fmt.Errorf("config: curve: %w", err)
	}
	return nil
}

// Options converts the config into wheel options. Runtime collaborators (random
// source, hub, rotator, logger) are left for the caller to fill in.
func (c WheelConfig) Options() (wheel.Options, error) {
	if err := c.Validate(); err != nil {
		return wheel.Options{}, err
	}
	curve, err := c.WheelCurve()
	if err != nil {
		return wheel.Options{}, err
	}
	return wheel.Options{
		BaseValues:       append([]int(nil), c.BaseValues...),
		SliceValues:      append([]int(nil), c.SliceValues...),
		TargetSelections: c.TargetSelections,
		Curve:            curve,
	}, nil
}

// Face returns the text shown for a base value, or "<n>????" when none is configured.
func (c WheelConfig) Face(base int) string {
	if f, ok := c.Faces[base]; ok {
		return f
	}
	return fmt.Sprintf("%d????", base)
}
