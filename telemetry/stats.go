package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a tick window.
type WindowStats struct {
	WindowStartTick int64   `csv:"-"`
	WindowEndTick   int64   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population counts at window end
	Sheep  int `csv:"sheep"`
	Wolves int `csv:"wolves"`

	// Events during window
	Births      int `csv:"births"`
	Kills       int `csv:"kills"`
	Starvations int `csv:"starvations"`
	CapDrops    int `csv:"cap_drops"`

	// Population over the window
	SheepMean float64 `csv:"sheep_mean"`
	SheepStd  float64 `csv:"sheep_std"`
	WolfMean  float64 `csv:"wolf_mean"`
	WolfStd   float64 `csv:"wolf_std"`
}

// ComputeCountStats returns the mean and sample standard deviation of
// values. The deviation is 0 with fewer than two samples.
func ComputeCountStats(values []float64) (mean, std float64) {
	switch len(values) {
	case 0:
		return 0, 0
	case 1:
		return values[0], 0
	}
	return stat.MeanStdDev(values, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_start", s.WindowStartTick),
		slog.Int64("window_end", s.WindowEndTick),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("sheep", s.Sheep),
		slog.Int("wolves", s.Wolves),
		slog.Int("births", s.Births),
		slog.Int("kills", s.Kills),
		slog.Int("starvations", s.Starvations),
		slog.Int("cap_drops", s.CapDrops),
		slog.Float64("sheep_mean", s.SheepMean),
		slog.Float64("sheep_std", s.SheepStd),
		slog.Float64("wolf_mean", s.WolfMean),
		slog.Float64("wolf_std", s.WolfStd),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"sheep", s.Sheep,
		"wolves", s.Wolves,
		"births", s.Births,
		"kills", s.Kills,
		"starvations", s.Starvations,
		"cap_drops", s.CapDrops,
		"sheep_mean", s.SheepMean,
		"sheep_std", s.SheepStd,
		"wolf_mean", s.WolfMean,
		"wolf_std", s.WolfStd,
	)
}
