package game

import (
	"log/slog"

	"github.com/pthm-cable/pasture/telemetry"
)

// SetOutput attaches CSV output and console stats logging.
func (w *World) SetOutput(om *telemetry.OutputManager, logStats bool) {
	w.output = om
	w.logStats = logStats
}

// SetStatsCallback registers a function called with every flushed window.
func (w *World) SetStatsCallback(fn func(telemetry.WindowStats)) {
	w.statsCallback = fn
}

// RecordFrame feeds frame timing to the perf collector.
func (w *World) RecordFrame() {
	w.perf.RecordFrame()
}

// flushTelemetry checks if the stats window should be flushed.
func (w *World) flushTelemetry(now int64) {
	if !w.collector.ShouldFlush(w.tick) {
		return
	}

	stats := w.collector.Flush(w.tick, now, len(w.sheep), len(w.wolves))
	perfStats := w.perf.Stats()

	if w.statsCallback != nil {
		w.statsCallback(stats)
	}

	if w.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if w.output != nil {
		if err := w.output.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := w.output.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}
