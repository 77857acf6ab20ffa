package main

import (
	"testing"

	"github.com/pthm-cable/noble/config"
	"github.com/pthm-cable/noble/universe"
)

func TestReplaySwipeWidensFOV(t *testing.T) {
	kp := universe.DefaultKinematicsParams()
	var swipe Trace
	for _, tr := range DefaultTraces() {
		if tr.Name == "swipe" {
			swipe = tr
		}
	}

	r := Replay(kp, swipe)
	if r.PeakFOV <= 0 {
		t.Errorf("expected swipe to widen FOV, got %.3f", r.PeakFOV)
	}
	if r.PeakGlow <= 0 {
		t.Errorf("expected swipe to raise glow, got %.3f", r.PeakGlow)
	}
	if r.SettleFrames <= 0 || r.SettleFrames > swipe.Rest {
		t.Errorf("expected settle within rest window, got %d frames", r.SettleFrames)
	}
}

func TestReplayIdleStaysDim(t *testing.T) {
	kp := universe.DefaultKinematicsParams()
	idle := Trace{Name: "idle", Rest: 120, Path: DefaultTraces()[2].Path}

	r := Replay(kp, idle)
	// Idle spin never exceeds rest rotation, so glow stays near rest*gain
	limit := float64(kp.RestRotation*kp.GlowGain) + 1e-6
	if r.PeakGlow > limit {
		t.Errorf("expected idle glow <= %.5f, got %.5f", limit, r.PeakGlow)
	}
}

func TestScorePrefersTargets(t *testing.T) {
	traces := []Trace{{Name: "swipe", Moving: 1, Rest: 1}}
	tg := Targets{PeakFOV: 10, PeakGlow: 1, SettleSec: 2, IdleGlow: 0.01}

	onTarget := map[string]TraceResult{"swipe": {PeakFOV: 10, PeakGlow: 1, SettleFrames: 120}}
	offTarget := map[string]TraceResult{"swipe": {PeakFOV: 20, PeakGlow: 3, SettleFrames: 600}}

	if got := Score(onTarget, traces, tg); got != 0 {
		t.Errorf("expected zero cost on target, got %f", got)
	}
	if Score(offTarget, traces, tg) <= Score(onTarget, traces, tg) {
		t.Error("expected off-target result to cost more")
	}
}

func TestParamVectorRoundTrip(t *testing.T) {
	pv := NewParamVector()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}

	values := pv.DefaultVector()
	values[0] = 1000 // out of range, clamped on apply
	pv.ApplyToConfig(cfg, values)

	got := pv.ExtractFromConfig(cfg)
	if got[0] != pv.Specs[0].Max {
		t.Errorf("expected speed_gain clamped to %v, got %v", pv.Specs[0].Max, got[0])
	}
	for i := 1; i < pv.Dim(); i++ {
		if got[i] != values[i] {
			t.Errorf("%s: expected %v, got %v", pv.Specs[i].Name, values[i], got[i])
		}
	}

	norm := pv.Normalize(pv.DefaultVector())
	back := pv.Denormalize(norm)
	for i, v := range pv.DefaultVector() {
		if d := back[i] - v; d > 1e-9 || d < -1e-9 {
			t.Errorf("%s: expected %v after normalize round trip, got %v", pv.Specs[i].Name, v, back[i])
		}
	}
}
