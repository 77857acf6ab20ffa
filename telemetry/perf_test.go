package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances by a fixed step each time it is read.
type fakeClock struct {
	t    time.Time
	step []time.Duration
	i    int
}

func (c *fakeClock) now() time.Time {
	if len(c.step) > 0 {
		c.t = c.t.Add(c.step[c.i%len(c.step)])
		c.i++
	}
	return c.t
}

func TestPerfCollector_BasicTiming(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseKinematics)
		time.Sleep(100 * time.Microsecond)
		pc.StartPhase(PhaseUniverse)
		time.Sleep(200 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()

	if stats.AvgFrame <= 0 {
		t.Error("expected positive average frame duration")
	}
	if _, ok := stats.PhaseAvg[PhaseKinematics]; !ok {
		t.Error("expected kinematics phase to be tracked")
	}
	if _, ok := stats.PhaseAvg[PhaseUniverse]; !ok {
		t.Error("expected universe phase to be tracked")
	}
	if stats.FPS <= 0 {
		t.Error("expected positive FPS")
	}
}

func TestPerfCollector_DeterministicStats(t *testing.T) {
	pc := NewPerfCollector(4)
	// Each clock read advances 1ms: four reads per frame give a 3ms frame
	// with 1ms in each phase
	clock := &fakeClock{t: time.Unix(0, 0), step: []time.Duration{time.Millisecond}}
	pc.now = clock.now

	for i := 0; i < 4; i++ {
		pc.StartFrame()
		pc.StartPhase("a")
		pc.StartPhase("b")
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.AvgFrame != 3*time.Millisecond {
		t.Errorf("expected 3ms frames, got %v", stats.AvgFrame)
	}
	if stats.StdDevFrame != 0 {
		t.Errorf("expected zero spread for identical frames, got %v", stats.StdDevFrame)
	}
	if stats.PhaseAvg["a"] != time.Millisecond || stats.PhaseAvg["b"] != time.Millisecond {
		t.Errorf("expected 1ms per phase, got %v", stats.PhaseAvg)
	}
	if fps := stats.FPS; fps < 333 || fps > 334 {
		t.Errorf("expected ~333 fps, got %f", fps)
	}
}

func TestPerfCollector_Percentile(t *testing.T) {
	pc := NewPerfCollector(20)
	for i := 1; i <= 20; i++ {
		d := time.Duration(i) * time.Millisecond
		clock := &fakeClock{t: time.Unix(0, 0), step: []time.Duration{0, d}}
		pc.now = clock.now
		pc.StartFrame()
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.MinFrame != time.Millisecond || stats.MaxFrame != 20*time.Millisecond {
		t.Errorf("expected min 1ms max 20ms, got %v %v", stats.MinFrame, stats.MaxFrame)
	}
	if stats.P95Frame != 19*time.Millisecond {
		t.Errorf("expected p95 19ms, got %v", stats.P95Frame)
	}
	if stats.StdDevFrame <= 0 {
		t.Error("expected positive spread")
	}
}

func TestPerfCollector_RollingWindow(t *testing.T) {
	pc := NewPerfCollector(5)

	for i := 0; i < 10; i++ {
		pc.StartFrame()
		pc.StartPhase(PhaseInput)
		pc.EndFrame()
	}

	if pc.SampleCount() != 5 {
		t.Errorf("expected window capped at 5, got %d", pc.SampleCount())
	}
}

func TestPerfCollector_PhasePercentages(t *testing.T) {
	pc := NewPerfCollector(10)

	for i := 0; i < 5; i++ {
		pc.StartFrame()
		pc.StartPhase("fast")
		time.Sleep(10 * time.Microsecond)
		pc.StartPhase("slow")
		time.Sleep(100 * time.Microsecond)
		pc.EndFrame()
	}

	stats := pc.Stats()
	if stats.PhasePct["slow"] <= stats.PhasePct["fast"] {
		t.Errorf("expected slow phase (%v%%) > fast phase (%v%%)", stats.PhasePct["slow"], stats.PhasePct["fast"])
	}
}

func TestPerfCollector_EmptyStats(t *testing.T) {
	stats := NewPerfCollector(10).Stats()

	if stats.AvgFrame != 0 {
		t.Error("expected zero avg frame duration for empty collector")
	}
	if stats.PhaseAvg == nil || stats.PhasePct == nil {
		t.Error("expected non-nil phase maps")
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	s := PerfStats{
		AvgFrame: 2 * time.Millisecond,
		PhasePct: map[string]float64{PhaseUniverse: 70, PhaseUI: 20},
	}
	row := s.ToCSV(600)
	if row.Frame != 600 || row.AvgFrameUS != 2000 {
		t.Errorf("unexpected row %+v", row)
	}
	if row.UniversePct != 70 || row.UIPct != 20 || row.StarsPct != 0 {
		t.Errorf("unexpected phase columns %+v", row)
	}
}
