// Package terminal renders the pasture as characters in a tcell screen.
package terminal

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/pasture/platform"
)

const eventBuffer = 100

// Glyph is a texture drawn as a single styled rune.
type Glyph struct {
	Rune  rune
	Style tcell.Style
}

// Size is one cell.
func (g *Glyph) Size() (w, h int) {
	return 1, 1
}

// DefaultGlyphs maps sprite file names to runes.
var DefaultGlyphs = map[string]Glyph{
	"sheep":  {Rune: 'o', Style: tcell.StyleDefault.Foreground(tcell.ColorWhite)},
	"wolf":   {Rune: 'W', Style: tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	"dog":    {Rune: 'd', Style: tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	"player": {Rune: '@', Style: tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)},
}

// Terminal is a Platform that draws arena coordinates scaled to the
// terminal's cells.
type Terminal struct {
	screen tcell.Screen
	clock  *platform.WallClock
	glyphs map[string]Glyph
	events chan tcell.Event
	done   chan struct{}

	closeOnce sync.Once

	arenaW, arenaH int
	mouseDown      bool
}

// New creates a backend on the controlling terminal.
func New() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &platform.InitError{Op: "open terminal", Err: err}
	}
	return NewWithScreen(screen), nil
}

// NewWithScreen creates a backend on an existing screen.
func NewWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		clock:  platform.NewWallClock(),
		glyphs: DefaultGlyphs,
		events: make(chan tcell.Event, eventBuffer),
		done:   make(chan struct{}),
	}
}

// CreateSurface initializes the screen and starts the event pump.
func (t *Terminal) CreateSurface(width, height int) (platform.Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, &platform.InitError{Op: "create surface", Err: fmt.Errorf("invalid size %dx%d", width, height)}
	}
	if err := t.screen.Init(); err != nil {
		return nil, &platform.InitError{Op: "init screen", Err: err}
	}
	t.screen.EnableMouse()
	t.screen.HideCursor()
	t.arenaW, t.arenaH = width, height

	go t.pump()

	return &surface{t: t}, nil
}

// pump forwards screen events until the screen is finalized or the
// backend is closed.
func (t *Terminal) pump() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
	}
}

// LoadImage resolves a sprite path to a glyph by its base name.
func (t *Terminal) LoadImage(path string) (platform.Texture, error) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if g, ok := t.glyphs[name]; ok {
		return &g, nil
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError || name == "." {
		return nil, &platform.AssetLoadError{Path: path, Err: errors.New("no glyph for sprite")}
	}
	return &Glyph{Rune: r, Style: tcell.StyleDefault}, nil
}

// PollInput drains pending events without blocking.
func (t *Terminal) PollInput() []platform.Event {
	var events []platform.Event
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				return append(events, platform.NewQuitEvent())
			}
			if pe, ok := t.translate(ev); ok {
				events = append(events, pe)
			}
		default:
			return events
		}
	}
}

// translate maps a tcell event to a platform event. Terminals do not report
// key releases, so space stops the player.
func (t *Terminal) translate(ev tcell.Event) (platform.Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return platform.NewQuitEvent(), true
		case tcell.KeyUp:
			return platform.NewKeyDownEvent(platform.DirUp), true
		case tcell.KeyDown:
			return platform.NewKeyDownEvent(platform.DirDown), true
		case tcell.KeyLeft:
			return platform.NewKeyDownEvent(platform.DirLeft), true
		case tcell.KeyRight:
			return platform.NewKeyDownEvent(platform.DirRight), true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return platform.NewQuitEvent(), true
			case ' ':
				return platform.NewKeyUpEvent(), true
			case 'p':
				return platform.NewPauseEvent(), true
			}
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		pressed := down && !t.mouseDown
		t.mouseDown = down
		if pressed {
			x, y := ev.Position()
			ax, ay := t.toArena(x, y)
			return platform.NewClickEvent(ax, ay), true
		}
	}
	return platform.Event{}, false
}

// arenaCells returns the cell grid the arena maps onto. The last row is the HUD.
func (t *Terminal) arenaCells() (cols, rows int) {
	cols, rows = t.screen.Size()
	if rows > 1 {
		rows--
	}
	return cols, rows
}

func (t *Terminal) toCell(x, y int) (col, row int) {
	cols, rows := t.arenaCells()
	return x * cols / t.arenaW, y * rows / t.arenaH
}

// toArena returns the arena coordinate at the center of a cell.
func (t *Terminal) toArena(col, row int) (x, y int) {
	cols, rows := t.arenaCells()
	if cols == 0 || rows == 0 {
		return 0, 0
	}
	return (2*col + 1) * t.arenaW / (2 * cols), (2*row + 1) * t.arenaH / (2 * rows)
}

// Now returns wall-clock milliseconds since the backend was created.
func (t *Terminal) Now() int64 {
	return t.clock.Now()
}

// Delay sleeps for ms milliseconds.
func (t *Terminal) Delay(ms int64) {
	if ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}
}

// Close restores the terminal and stops the event pump. It is safe to call
// more than once.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		t.screen.Fini()
	})
	return nil
}

type surface struct {
	t  *Terminal
	bg tcell.Style
}

func (s *surface) Clear(c platform.Color) {
	s.bg = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	s.t.screen.SetStyle(s.bg)
	s.t.screen.Clear()
}

// Blit places the glyph at the cell holding the sprite's center.
func (s *surface) Blit(tex platform.Texture, dst platform.Rect) {
	g, ok := tex.(*Glyph)
	if !ok {
		return
	}
	col, row := s.t.toCell(dst.X+dst.W/2, dst.Y+dst.H/2)
	cols, rows := s.t.arenaCells()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}
	_, bg, _ := s.bg.Decompose()
	s.t.screen.SetContent(col, row, g.Rune, nil, g.Style.Background(bg))
}

func (s *surface) Present() {
	s.t.screen.Show()
}

// DrawHUD writes the status line on the last row.
func (s *surface) DrawHUD(h platform.HUD) {
	cols, rows := s.t.screen.Size()
	if rows < 2 {
		return
	}
	text := fmt.Sprintf(" score %d  wolves %d  tick %d  [arrows] move [space] stop [p] pause [q] quit", h.Sheep, h.Wolves, h.Tick)
	if h.Stopped {
		text = fmt.Sprintf(" TIME UP  score %d  wolves %d  tick %d", h.Sheep, h.Wolves, h.Tick)
	}
	style := tcell.StyleDefault.Reverse(true)
	col := 0
	for _, r := range text {
		if col >= cols {
			break
		}
		s.t.screen.SetContent(col, rows-1, r, nil, style)
		col++
	}
	for ; col < cols; col++ {
		s.t.screen.SetContent(col, rows-1, ' ', nil, style)
	}
}
