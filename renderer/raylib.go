// Package renderer is the windowed backend: raylib draws the scene and raygui
// draws the status bar.
package renderer

import (
	"errors"
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pasture/platform"
)

const hudHeight = 28

var errWindowNotReady = errors.New("window not ready")

// Texture is a GPU texture loaded by raylib.
type Texture struct {
	tex rl.Texture2D
}

// Size returns the texture size in pixels.
func (t *Texture) Size() (w, h int) {
	return int(t.tex.Width), int(t.tex.Height)
}

// Raylib is a Platform backed by a raylib window.
type Raylib struct {
	title     string
	targetFPS int32

	width, height int
	open          bool
	textures      []*Texture

	// Set by the HUD pause button, delivered on the next PollInput
	pausePressed bool
}

// New creates a backend. The window opens in CreateSurface.
func New(title string, targetFPS int) *Raylib {
	return &Raylib{title: title, targetFPS: int32(targetFPS)}
}

// CreateSurface opens the window.
func (r *Raylib) CreateSurface(width, height int) (platform.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, &platform.InitError{Op: "init window", Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), r.title)
	if !rl.IsWindowReady() {
		return nil, &platform.InitError{Op: "init window", Err: errWindowNotReady}
	}
	// Pacing is done by the frame loop through Delay
	rl.SetTargetFPS(0)

	r.width, r.height = width, height
	r.open = true
	return &surface{r: r}, nil
}

// LoadImage uploads an image file as a texture.
func (r *Raylib) LoadImage(path string) (platform.Texture, error) {
	if !rl.FileExists(path) {
		return nil, &platform.AssetLoadError{Path: path, Err: errors.New("file not found")}
	}
	tex := rl.LoadTexture(path)
	if tex.ID == 0 {
		return nil, &platform.AssetLoadError{Path: path, Err: errors.New("unsupported or corrupt image")}
	}
	t := &Texture{tex: tex}
	r.textures = append(r.textures, t)
	return t, nil
}

var arrowKeys = []struct {
	key int32
	dir platform.Direction
}{
	{rl.KeyUp, platform.DirUp},
	{rl.KeyDown, platform.DirDown},
	{rl.KeyLeft, platform.DirLeft},
	{rl.KeyRight, platform.DirRight},
}

// PollInput translates raylib input state into events.
func (r *Raylib) PollInput() []platform.Event {
	var events []platform.Event

	if rl.WindowShouldClose() {
		return append(events, platform.NewQuitEvent())
	}

	for _, k := range arrowKeys {
		if rl.IsKeyPressed(k.key) {
			events = append(events, platform.NewKeyDownEvent(k.dir))
		}
		if rl.IsKeyReleased(k.key) {
			events = append(events, platform.NewKeyUpEvent())
		}
	}

	if rl.IsKeyPressed(rl.KeyP) || r.pausePressed {
		events = append(events, platform.NewPauseEvent())
		r.pausePressed = false
	}

	// Clicks on the status bar belong to the HUD
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		if int(mouse.Y) < r.height-hudHeight {
			events = append(events, platform.NewClickEvent(int(mouse.X), int(mouse.Y)))
		}
	}

	return events
}

// Now returns milliseconds since the window opened.
func (r *Raylib) Now() int64 {
	return int64(rl.GetTime() * 1000)
}

// Delay waits for ms milliseconds.
func (r *Raylib) Delay(ms int64) {
	if ms > 0 {
		rl.WaitTime(float64(ms) / 1000)
	}
}

// Close unloads textures and closes the window.
func (r *Raylib) Close() error {
	if !r.open {
		return nil
	}
	for _, t := range r.textures {
		rl.UnloadTexture(t.tex)
	}
	r.textures = nil
	rl.CloseWindow()
	r.open = false
	return nil
}

// surface draws into the raylib back buffer. Clear begins a frame and
// Present ends it.
type surface struct {
	r       *Raylib
	drawing bool
}

func (s *surface) Clear(c platform.Color) {
	if !s.drawing {
		rl.BeginDrawing()
		s.drawing = true
	}
	rl.ClearBackground(rl.NewColor(c.R, c.G, c.B, 255))
}

func (s *surface) Blit(tex platform.Texture, dst platform.Rect) {
	t, ok := tex.(*Texture)
	if !ok || !s.drawing {
		return
	}
	src := rl.Rectangle{Width: float32(t.tex.Width), Height: float32(t.tex.Height)}
	dstRect := rl.Rectangle{X: float32(dst.X), Y: float32(dst.Y), Width: float32(dst.W), Height: float32(dst.H)}
	rl.DrawTexturePro(t.tex, src, dstRect, rl.Vector2{}, 0, rl.White)
}

func (s *surface) Present() {
	if !s.drawing {
		return
	}
	rl.EndDrawing()
	s.drawing = false
}

// DrawHUD draws the status bar along the bottom edge.
func (s *surface) DrawHUD(h platform.HUD) {
	if !s.drawing {
		return
	}
	y := float32(s.r.height - hudHeight)
	w := float32(s.r.width)

	gui.StatusBar(rl.Rectangle{X: 0, Y: y, Width: w, Height: hudHeight}, statusText(h))
	if h.Stopped {
		return
	}
	if gui.Button(rl.Rectangle{X: w - 90, Y: y + 3, Width: 84, Height: hudHeight - 6}, "Pause") {
		s.r.pausePressed = true
	}
}

func statusText(h platform.HUD) string {
	text := fmt.Sprintf("Score %d   Wolves %d   Tick %d", h.Sheep, h.Wolves, h.Tick)
	if h.Stopped {
		text += "   TIME UP"
	}
	return text
}
