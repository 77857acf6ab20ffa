package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/noble/config"
	"github.com/pthm-cable/noble/universe"
)

// Trace is a scripted pointer: Moving frames of motion followed by Rest
// frames with the pointer held still.
type Trace struct {
	Name   string
	Moving int
	Rest   int
	Path   func(frame int) (mgl32.Vec2, bool)
}

// Targets describe the feel the tuner aims for.
type Targets struct {
	PeakFOV   float64 // degrees above the base FOV during motion
	PeakGlow  float64 // shader glow scalar during motion
	SettleSec float64 // seconds for the spin to decay once the pointer rests
	IdleGlow  float64 // glow allowed while the pointer never moves
}

// DefaultTargets returns the storefront feel.
func DefaultTargets() Targets {
	return Targets{
		PeakFOV:   12,
		PeakGlow:  0.4,
		SettleSec: 3,
		IdleGlow:  0.01,
	}
}

// DefaultTraces returns a fast swipe, a slow circle and an idle pointer.
func DefaultTraces() []Trace {
	return []Trace{
		{
			Name: "swipe", Moving: 20, Rest: 600,
			Path: func(i int) (mgl32.Vec2, bool) {
				t := min(float32(i)/20, 1)
				return mgl32.Vec2{-0.8 + 1.6*t, 0}, true
			},
		},
		{
			Name: "circle", Moving: 180, Rest: 600,
			Path: func(i int) (mgl32.Vec2, bool) {
				a := float64(min(i, 180)) / 180 * 2 * math.Pi
				return mgl32.Vec2{float32(math.Cos(a)) * 0.5, float32(math.Sin(a)) * 0.5}, true
			},
		},
		{
			Name: "idle", Moving: 0, Rest: 300,
			Path: func(int) (mgl32.Vec2, bool) {
				return mgl32.Vec2{}, false
			},
		},
	}
}

// TraceResult summarises one replay.
type TraceResult struct {
	PeakFOV      float64 // max FOV above base
	PeakGlow     float64
	SettleFrames int     // frames after motion until the spin is within 10% of rest
	Jitter       float64 // standard deviation of the per-frame FOV change
}

// Replay steps fresh kinematics through a trace at 60Hz.
func Replay(params universe.KinematicsParams, tr Trace) TraceResult {
	k := universe.NewKinematics(params)
	frames := tr.Moving + tr.Rest

	var res TraceResult
	peakSpin := float64(params.BaseRotation)
	deltas := make([]float64, 0, frames)
	prevFOV := float64(k.FOV())
	res.SettleFrames = -1

	for i := 0; i < frames; i++ {
		p, ok := tr.Path(i)
		u := k.Step(p, ok, 1.0/60)

		fov := float64(k.FOV())
		deltas = append(deltas, fov-prevFOV)
		prevFOV = fov

		res.PeakFOV = max(res.PeakFOV, fov-float64(params.BaseFOV))
		res.PeakGlow = max(res.PeakGlow, float64(u.Speed))
		spin := float64(k.RotationSpeed())
		peakSpin = max(peakSpin, spin)
		if i < tr.Moving {
			continue
		}
		rest := float64(params.RestRotation)
		if res.SettleFrames < 0 && math.Abs(spin-rest) <= 0.1*math.Abs(peakSpin-rest) {
			res.SettleFrames = i - tr.Moving
		}
	}
	if res.SettleFrames < 0 {
		res.SettleFrames = tr.Rest
	}
	if len(deltas) > 1 {
		res.Jitter = stat.StdDev(deltas, nil)
	}
	return res
}

// Score turns the replays into a cost (lower = better).
func Score(results map[string]TraceResult, traces []Trace, tg Targets) float64 {
	var cost float64
	for _, tr := range traces {
		r := results[tr.Name]
		if tr.Moving == 0 {
			if r.PeakGlow > tg.IdleGlow {
				cost += sq((r.PeakGlow - tg.IdleGlow) / tg.IdleGlow)
			}
			continue
		}
		cost += sq((r.PeakFOV - tg.PeakFOV) / tg.PeakFOV)
		cost += sq((r.PeakGlow - tg.PeakGlow) / tg.PeakGlow)
		cost += sq((float64(r.SettleFrames)/60 - tg.SettleSec) / tg.SettleSec)
		cost += r.Jitter
	}
	return cost
}

func sq(x float64) float64 { return x * x }

// FitnessEvaluator replays the traces for a parameter vector.
type FitnessEvaluator struct {
	params  *ParamVector
	base    *config.Config
	traces  []Trace
	targets Targets

	last map[string]TraceResult
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, base *config.Config, traces []Trace, targets Targets) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:  params,
		base:    base,
		traces:  traces,
		targets: targets,
	}
}

// Evaluate computes the cost for raw parameter values.
func (fe *FitnessEvaluator) Evaluate(raw []float64) float64 {
	cfg := *fe.base
	fe.params.ApplyToConfig(&cfg, raw)
	kp := kinematicsFor(&cfg)

	results := make(map[string]TraceResult, len(fe.traces))
	for _, tr := range fe.traces {
		results[tr.Name] = Replay(kp, tr)
	}
	fe.last = results
	return Score(results, fe.traces, fe.targets)
}

// Last returns the replays from the most recent evaluation.
func (fe *FitnessEvaluator) Last() map[string]TraceResult {
	return fe.last
}

// kinematicsFor maps a config to kinematics parameters.
func kinematicsFor(cfg *config.Config) universe.KinematicsParams {
	k := cfg.Kinematics
	return universe.KinematicsParams{
		SpeedGain:      float32(k.SpeedGain),
		BaseRotation:   float32(k.BaseRotation),
		SpeedRotation:  float32(k.SpeedRotation),
		RestRotation:   float32(k.RestRotation),
		PointerLerp:    float32(k.PointerLerp),
		RotationLerp:   float32(k.RotationLerp),
		DecayLerp:      float32(k.DecayLerp),
		SecondaryRatio: float32(k.SecondaryRatio),
		BaseFOV:        float32(cfg.Universe.BaseFOV),
		FOVGain:        float32(k.FOVGain),
		FOVLerp:        float32(k.FOVLerp),
		GlowGain:       float32(k.GlowGain),
	}
}
