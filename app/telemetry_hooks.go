package app

import (
	"log/slog"

	"github.com/pthm-cable/noble/telemetry"
)

// recordEvent stamps a session event with the frame clock and stores it.
func (a *App) recordEvent(e telemetry.Event) {
	e.Frame = a.frame
	e.TimeSec = a.elapsed
	a.events.Record(e)
	if err := a.output.WriteEvent(e); err != nil {
		slog.Warn("writing event", "error", err)
	}
}

// flushIfDue closes the telemetry window once the log interval has passed.
func (a *App) flushIfDue() {
	interval := a.cfg.Telemetry.LogIntervalSec
	if interval <= 0 || a.elapsed < a.nextFlush {
		return
	}
	a.flushTelemetry()
	for a.nextFlush <= a.elapsed {
		a.nextFlush += interval
	}
}

// flushTelemetry summarises the frames and events since the last flush.
func (a *App) flushTelemetry() {
	perf := a.perf.Stats()
	totals := a.sess.Cart.ComputeTotals()
	window := a.events.Flush(a.frame, a.elapsed, a.sess.Cart.TotalItemCount(), totals.Total, perf)

	if a.opts.LogStats {
		slog.Info("perf", "frame", a.frame, "stats", perf)
		slog.Info("session", "stats", window)
	}
	if err := a.output.WritePerf(perf, a.frame); err != nil {
		slog.Warn("writing perf", "error", err)
	}
	if err := a.output.WriteWindow(window); err != nil {
		slog.Warn("writing window", "error", err)
	}
}
