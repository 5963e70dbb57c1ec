package game

import (
	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/platform"
)

// Render draws the current state without advancing it. The app uses it once
// the simulation has stopped.
func (w *World) Render() {
	w.surface.Clear(platform.Grass)

	query := w.entityFilter.Query()
	for query.Next() {
		pos, _, size, id, _, status, sprite := query.Get()
		if id.Kind == components.KindPlayer || status.Is(components.StatusDead) {
			continue
		}
		w.draw(pos, size, sprite)
	}

	w.draw(w.posMap.Get(w.player), w.sizeMap.Get(w.player), w.spriteMap.Get(w.player))
}

// draw blits an entity's sprite. Entities without a texture are skipped.
func (w *World) draw(pos *components.Position, size *components.Size, sprite *components.Sprite) {
	if !sprite.Drawable() {
		return
	}
	w.surface.Blit(sprite.Texture, platform.Rect{X: pos.X, Y: pos.Y, W: size.W, H: size.H})
}

// DrawHUD renders the status line when the surface supports it.
func (w *World) DrawHUD(stopped bool) {
	overlay, ok := w.surface.(platform.Overlay)
	if !ok {
		return
	}
	overlay.DrawHUD(platform.HUD{
		Tick:    w.tick,
		Sheep:   len(w.sheep),
		Wolves:  len(w.wolves),
		Stopped: stopped,
	})
}
