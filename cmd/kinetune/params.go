// Package main provides CMA-ES tuning of the universe pointer kinematics.
package main

import (
	"github.com/pthm-cable/noble/config"
)

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Path    string  // Config path for logging
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable kinematics parameters.
// Base and rest rotation stay fixed so the idle tumble is unchanged.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "speed_gain", Path: "kinematics.speed_gain", Min: 2, Max: 40, Default: 15},
			{Name: "speed_rotation", Path: "kinematics.speed_rotation", Min: 0.01, Max: 0.3, Default: 0.1},
			{Name: "rotation_lerp", Path: "kinematics.rotation_lerp", Min: 0.005, Max: 0.3, Default: 0.05},
			{Name: "decay_lerp", Path: "kinematics.decay_lerp", Min: 0.001, Max: 0.1, Default: 0.01},
			{Name: "fov_gain", Path: "kinematics.fov_gain", Min: 50, Max: 1000, Default: 400},
			{Name: "fov_lerp", Path: "kinematics.fov_lerp", Min: 0.005, Max: 0.3, Default: 0.05},
			{Name: "glow_gain", Path: "kinematics.glow_gain", Min: 0.5, Max: 20, Default: 5},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

// DefaultVector returns the default parameter values as a slice.
func (pv *ParamVector) DefaultVector() []float64 {
	v := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		v[i] = spec.Default
	}
	return v
}

// Normalize converts raw parameter values to [0,1] range.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	normalized := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		normalized[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return normalized
}

// Denormalize converts [0,1] values back to raw parameter values.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	raw := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		raw[i] = spec.Min + normalized[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp ensures all values are within bounds.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	clamped := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		clamped[i] = min(max(v[i], spec.Min), spec.Max)
	}
	return clamped
}

// ApplyToConfig writes parameter values into the kinematics section.
// Order must match Specs order.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	c := pv.Clamp(values)
	k := &cfg.Kinematics
	k.SpeedGain = c[0]
	k.SpeedRotation = c[1]
	k.RotationLerp = c[2]
	k.DecayLerp = c[3]
	k.FOVGain = c[4]
	k.FOVLerp = c[5]
	k.GlowGain = c[6]
}

// ExtractFromConfig reads the current parameter values from a config.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	k := cfg.Kinematics
	return []float64{
		k.SpeedGain,
		k.SpeedRotation,
		k.RotationLerp,
		k.DecayLerp,
		k.FOVGain,
		k.FOVLerp,
		k.GlowGain,
	}
}
