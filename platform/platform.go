// Package platform defines the rendering and input collaborator the
// simulation draws through, plus a headless implementation.
package platform

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Grass is the pasture background.
var Grass = Color{R: 0x02, G: 0xAA, B: 0x02}

// Rect is a destination rectangle in arena units.
type Rect struct {
	X, Y, W, H int
}

// Texture is a loaded image that can be blitted.
type Texture interface {
	Size() (w, h int)
}

// Surface is the canvas a frame is drawn on.
type Surface interface {
	// Clear paints the whole surface.
	Clear(c Color)
	// Blit draws tex scaled into dst.
	Blit(tex Texture, dst Rect)
	// Present shows the finished frame.
	Present()
}

// HUD is the read-only status line a backend may render.
type HUD struct {
	Tick    int64
	Sheep   int
	Wolves  int
	Stopped bool // simulation cutoff reached
}

// Overlay is implemented by surfaces that can render a HUD.
type Overlay interface {
	DrawHUD(h HUD)
}

// Platform is the window, asset, input and timing collaborator.
type Platform interface {
	// CreateSurface opens the drawing target. Failure is fatal (*InitError).
	CreateSurface(width, height int) (Surface, error)
	// LoadImage loads a texture. Failure returns *AssetLoadError.
	LoadImage(path string) (Texture, error)
	// PollInput returns the events gathered since the last call. It never blocks.
	PollInput() []Event
	// Now returns monotonic milliseconds.
	Now() int64
	// Delay sleeps for ms milliseconds.
	Delay(ms int64)
	// Close releases the platform.
	Close() error
}
