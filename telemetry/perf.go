package telemetry

import (
	"log/slog"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Phase names for one rendered frame.
const (
	PhaseInput      = "input"
	PhaseKinematics = "kinematics"
	PhaseUniverse   = "universe"
	PhaseCarousel   = "carousel"
	PhaseStars      = "stars"
	PhaseUI         = "ui"
)

// Phases lists every frame phase in execution order.
var Phases = []string{
	PhaseInput, PhaseKinematics, PhaseUniverse,
	PhaseCarousel, PhaseStars, PhaseUI,
}

// PerfSample holds timing data for a single frame.
type PerfSample struct {
	FrameDuration time.Duration
	Phases        map[string]time.Duration
}

// PerfCollector tracks frame timings over a rolling window.
// Phases are timed back to back: starting a phase ends the previous one.
type PerfCollector struct {
	windowSize    int
	samples       []PerfSample
	writeIndex    int
	sampleCount   int
	currentPhases map[string]time.Duration
	frameStart    time.Time
	phaseStart    time.Time
	lastPhase     string

	now func() time.Time
}

// NewPerfCollector creates a new performance collector.
// windowSize: number of frames to aggregate over (e.g., 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:    windowSize,
		samples:       make([]PerfSample, windowSize),
		currentPhases: make(map[string]time.Duration),
		now:           time.Now,
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.frameStart = p.now()
	p.currentPhases = make(map[string]time.Duration)
	p.lastPhase = ""
}

// StartPhase begins timing a specific phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := p.now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}
	p.phaseStart = now
	p.lastPhase = phase
}

// EndFrame finishes timing the current frame and records the sample.
func (p *PerfCollector) EndFrame() {
	now := p.now()
	if p.lastPhase != "" {
		p.currentPhases[p.lastPhase] += now.Sub(p.phaseStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		FrameDuration: now.Sub(p.frameStart),
		Phases:        p.currentPhases,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// SampleCount returns the number of frames in the window.
func (p *PerfCollector) SampleCount() int {
	return p.sampleCount
}

// PerfStats holds aggregated frame statistics.
type PerfStats struct {
	AvgFrame    time.Duration
	MinFrame    time.Duration
	MaxFrame    time.Duration
	StdDevFrame time.Duration
	P95Frame    time.Duration

	// Phase breakdown (average durations and share of frame time)
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	FPS float64
}

// Stats computes aggregated statistics over the current window.
func (p *PerfCollector) Stats() PerfStats {
	if p.sampleCount == 0 {
		return PerfStats{
			PhaseAvg: make(map[string]time.Duration),
			PhasePct: make(map[string]float64),
		}
	}

	frames := make([]float64, p.sampleCount)
	var minFrame, maxFrame time.Duration
	phaseSum := make(map[string]time.Duration)

	for i := 0; i < p.sampleCount; i++ {
		s := p.samples[i]
		frames[i] = float64(s.FrameDuration)

		if i == 0 || s.FrameDuration < minFrame {
			minFrame = s.FrameDuration
		}
		if s.FrameDuration > maxFrame {
			maxFrame = s.FrameDuration
		}
		for phase, dur := range s.Phases {
			phaseSum[phase] += dur
		}
	}

	mean, std := stat.MeanStdDev(frames, nil)
	if p.sampleCount < 2 {
		std = 0
	}
	sort.Float64s(frames)
	p95 := stat.Quantile(0.95, stat.Empirical, frames, nil)

	avg := time.Duration(mean)
	phaseAvg := make(map[string]time.Duration)
	phasePct := make(map[string]float64)
	for phase, sum := range phaseSum {
		phaseAvg[phase] = sum / time.Duration(p.sampleCount)
		if avg > 0 {
			phasePct[phase] = float64(phaseAvg[phase]) / mean * 100
		}
	}

	var fps float64
	if avg > 0 {
		fps = float64(time.Second) / mean
	}

	return PerfStats{
		AvgFrame:    avg,
		MinFrame:    minFrame,
		MaxFrame:    maxFrame,
		StdDevFrame: time.Duration(std),
		P95Frame:    time.Duration(p95),
		PhaseAvg:    phaseAvg,
		PhasePct:    phasePct,
		FPS:         fps,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_frame_us", s.AvgFrame.Microseconds()),
		slog.Int64("min_frame_us", s.MinFrame.Microseconds()),
		slog.Int64("max_frame_us", s.MaxFrame.Microseconds()),
		slog.Int64("stddev_frame_us", s.StdDevFrame.Microseconds()),
		slog.Int64("p95_frame_us", s.P95Frame.Microseconds()),
	}

	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}

	for _, phase := range Phases {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", float64(int(pct*10))/10))
		}
	}

	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is a flat struct for CSV export of performance stats.
type PerfStatsCSV struct {
	Frame         int64   `csv:"frame"`
	AvgFrameUS    int64   `csv:"avg_frame_us"`
	MinFrameUS    int64   `csv:"min_frame_us"`
	MaxFrameUS    int64   `csv:"max_frame_us"`
	StdDevFrameUS int64   `csv:"stddev_frame_us"`
	P95FrameUS    int64   `csv:"p95_frame_us"`
	FPS           float64 `csv:"fps"`
	InputPct      float64 `csv:"input_pct"`
	KinematicsPct float64 `csv:"kinematics_pct"`
	UniversePct   float64 `csv:"universe_pct"`
	CarouselPct   float64 `csv:"carousel_pct"`
	StarsPct      float64 `csv:"stars_pct"`
	UIPct         float64 `csv:"ui_pct"`
}

// ToCSV converts PerfStats to a flat CSV-friendly struct.
func (s PerfStats) ToCSV(frame int64) PerfStatsCSV {
	return PerfStatsCSV{
		Frame:         frame,
		AvgFrameUS:    s.AvgFrame.Microseconds(),
		MinFrameUS:    s.MinFrame.Microseconds(),
		MaxFrameUS:    s.MaxFrame.Microseconds(),
		StdDevFrameUS: s.StdDevFrame.Microseconds(),
		P95FrameUS:    s.P95Frame.Microseconds(),
		FPS:           s.FPS,
		InputPct:      s.PhasePct[PhaseInput],
		KinematicsPct: s.PhasePct[PhaseKinematics],
		UniversePct:   s.PhasePct[PhaseUniverse],
		CarouselPct:   s.PhasePct[PhaseCarousel],
		StarsPct:      s.PhasePct[PhaseStars],
		UIPct:         s.PhasePct[PhaseUI],
	}
}
