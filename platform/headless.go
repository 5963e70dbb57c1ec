package platform

import "errors"

// errMissingAsset is returned for paths marked missing on a Headless platform.
var errMissingAsset = errors.New("no such file")

// HeadlessTexture is a texture that only knows its path and size.
type HeadlessTexture struct {
	Path string
	W, H int
}

// Size returns the nominal texture size.
func (t *HeadlessTexture) Size() (w, h int) {
	return t.W, t.H
}

// Blit records one draw call.
type Blit struct {
	Texture Texture
	Dst     Rect
}

// HeadlessSurface records draw calls instead of drawing them.
// Blits holds the calls made since the last Clear.
type HeadlessSurface struct {
	Width, Height int
	Background    Color
	Blits         []Blit
	Frames        int // Present calls
	LastHUD       HUD
}

// Clear starts a new frame.
func (s *HeadlessSurface) Clear(c Color) {
	s.Background = c
	s.Blits = s.Blits[:0]
}

// Blit records a draw call.
func (s *HeadlessSurface) Blit(tex Texture, dst Rect) {
	s.Blits = append(s.Blits, Blit{Texture: tex, Dst: dst})
}

// Present counts the frame.
func (s *HeadlessSurface) Present() {
	s.Frames++
}

// DrawHUD keeps the last HUD for inspection.
func (s *HeadlessSurface) DrawHUD(h HUD) {
	s.LastHUD = h
}

// Headless is a Platform without a window. Time is simulated: Delay
// advances the clock instead of sleeping.
type Headless struct {
	Clock   *ManualClock
	Surface *HeadlessSurface

	missing map[string]bool
	pending []Event
}

// NewHeadless creates a headless platform starting at time zero.
func NewHeadless() *Headless {
	return &Headless{
		Clock:   &ManualClock{},
		missing: make(map[string]bool),
	}
}

// MarkMissing makes LoadImage fail for path.
func (h *Headless) MarkMissing(path string) {
	h.missing[path] = true
}

// Push queues events for the next PollInput.
func (h *Headless) Push(events ...Event) {
	h.pending = append(h.pending, events...)
}

// CreateSurface returns a recording surface.
func (h *Headless) CreateSurface(width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, &InitError{Op: "create surface", Err: errors.New("non-positive size")}
	}
	h.Surface = &HeadlessSurface{Width: width, Height: height}
	return h.Surface, nil
}

// LoadImage returns a 32x32 texture unless path was marked missing.
func (h *Headless) LoadImage(path string) (Texture, error) {
	if h.missing[path] {
		return nil, &AssetLoadError{Path: path, Err: errMissingAsset}
	}
	return &HeadlessTexture{Path: path, W: 32, H: 32}, nil
}

// PollInput drains queued events.
func (h *Headless) PollInput() []Event {
	events := h.pending
	h.pending = nil
	return events
}

// Now returns simulated milliseconds.
func (h *Headless) Now() int64 {
	return h.Clock.Now()
}

// Delay advances simulated time.
func (h *Headless) Delay(ms int64) {
	if ms > 0 {
		h.Clock.Advance(ms)
	}
}

// Close is a no-op.
func (h *Headless) Close() error {
	return nil
}
