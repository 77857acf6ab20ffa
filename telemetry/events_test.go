package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pthm-cable/noble/config"
)

func TestEventLogBounded(t *testing.T) {
	l := NewEventLog(3)
	for i := 0; i < 5; i++ {
		l.Record(Event{Frame: int64(i), Type: EventNavigate})
	}

	if l.Len() != 3 {
		t.Fatalf("expected 3 retained events, got %d", l.Len())
	}
	if l.Total() != 5 {
		t.Errorf("expected 5 total events, got %d", l.Total())
	}
	if first := l.Events()[0]; first.Frame != 2 {
		t.Errorf("expected oldest retained frame 2, got %d", first.Frame)
	}
	if last, ok := l.Last(); !ok || last.Frame != 4 {
		t.Errorf("expected last frame 4, got %d", last.Frame)
	}
}

func TestEventLogFlushResetsWindow(t *testing.T) {
	l := NewEventLog(0)
	l.Record(Event{Type: EventAddToCart})
	l.Record(Event{Type: EventAddToCart})
	l.Record(Event{Type: EventSelect})

	s := l.Flush(120, 2, 2, 1075, PerfStats{FPS: 60, P95Frame: 17 * time.Millisecond})
	if s.AddToCart != 2 || s.Select != 1 || s.Interactions() != 3 {
		t.Errorf("unexpected window %+v", s)
	}
	if s.P95FrameUS != 17000 {
		t.Errorf("expected p95 17000us, got %d", s.P95FrameUS)
	}

	if l.WindowCount(EventAddToCart) != 0 {
		t.Error("expected window counts reset after flush")
	}
	if l.Len() != 3 {
		t.Error("expected retained events to survive a flush")
	}
}

func TestNilOutputManager(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil || om != nil {
		t.Fatalf("expected nil manager for empty dir, got %v %v", om, err)
	}
	// Every method is a no-op on nil
	if err := om.WriteEvent(Event{}); err != nil {
		t.Error(err)
	}
	if err := om.WritePerf(PerfStats{}, 0); err != nil {
		t.Error(err)
	}
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Error(err)
	}
	if err := om.Close(); err != nil {
		t.Error(err)
	}
	if om.Dir() != "" {
		t.Error("expected empty dir")
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("creating output: %v", err)
	}

	for i := 0; i < 3; i++ {
		if err := om.WriteEvent(Event{Frame: int64(i), Type: EventNavigate, Index: i}); err != nil {
			t.Fatal(err)
		}
	}
	if err := om.WritePerf(PerfStats{AvgFrame: time.Millisecond}, 60); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	if err := om.WriteConfig(cfg); err != nil {
		t.Fatal(err)
	}
	if err := om.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "events.csv"))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "frame,time_sec,type") {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[2], "navigate") {
		t.Errorf("expected event type in row, got %q", lines[2])
	}

	if _, err := os.Stat(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("expected config snapshot: %v", err)
	}
	perf, err := os.ReadFile(filepath.Join(dir, "perf.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(perf), "avg_frame_us") {
		t.Error("expected perf header")
	}
}
