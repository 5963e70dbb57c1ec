package platform

import "time"

// Clock returns monotonic milliseconds.
type Clock interface {
	Now() int64
}

// WallClock measures milliseconds since it was created.
type WallClock struct {
	start time.Time
}

// NewWallClock starts a wall clock at zero.
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns milliseconds since creation.
func (c *WallClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock only moves when told to. Tests and headless runs use it to
// make simulated time independent of the host.
type ManualClock struct {
	ms int64
}

// Now returns the current simulated time.
func (c *ManualClock) Now() int64 {
	return c.ms
}

// Set jumps to ms.
func (c *ManualClock) Set(ms int64) {
	c.ms = ms
}

// Advance moves the clock forward by ms.
func (c *ManualClock) Advance(ms int64) {
	c.ms += ms
}
