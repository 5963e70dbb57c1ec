package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks int64

	// Current window tracking
	windowStartTick int64

	// Event counters for current window
	births      int
	kills       int
	starvations int
	capDrops    int

	// Per-tick population samples for the current window
	sheepSamples []float64
	wolfSamples  []float64
}

// NewCollector creates a new stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks:  windowTicks,
		sheepSamples: make([]float64, 0, windowTicks),
		wolfSamples:  make([]float64, 0, windowTicks),
	}
}

// Record counts an event in the current window.
func (c *Collector) Record(e Event) {
	switch e.Type {
	case EventBirth:
		c.births++
	case EventKill:
		c.kills++
	case EventStarve:
		c.starvations++
	case EventCapDrop:
		c.capDrops++
	}
}

// Sample records the population at the end of a tick.
func (c *Collector) Sample(sheep, wolves int) {
	c.sheepSamples = append(c.sheepSamples, float64(sheep))
	c.wolfSamples = append(c.wolfSamples, float64(wolves))
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int64) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// nowMS is the simulation clock reading at currentTick.
func (c *Collector) Flush(currentTick, nowMS int64, sheep, wolves int) WindowStats {
	sheepMean, sheepStd := ComputeCountStats(c.sheepSamples)
	wolfMean, wolfStd := ComputeCountStats(c.wolfSamples)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(nowMS) / 1000,

		Sheep:  sheep,
		Wolves: wolves,

		Births:      c.births,
		Kills:       c.kills,
		Starvations: c.starvations,
		CapDrops:    c.capDrops,

		SheepMean: sheepMean,
		SheepStd:  sheepStd,
		WolfMean:  wolfMean,
		WolfStd:   wolfStd,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.births = 0
	c.kills = 0
	c.starvations = 0
	c.capDrops = 0
	c.sheepSamples = c.sheepSamples[:0]
	c.wolfSamples = c.wolfSamples[:0]

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int64 {
	return c.windowTicks
}
