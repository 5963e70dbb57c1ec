package game

import (
	"log/slog"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/platform"
)

// Textures maps each kind to its sprite. A missing kind is not drawn.
type Textures map[components.Kind]platform.Texture

// ImageLoader loads textures from disk.
type ImageLoader interface {
	LoadImage(path string) (platform.Texture, error)
}

// LoadTextures loads one sprite per kind. Failures are logged and leave the
// kind undrawable; they never abort the run.
func LoadTextures(loader ImageLoader, assets config.AssetsConfig) Textures {
	paths := []struct {
		kind components.Kind
		path string
	}{
		{components.KindSheep, assets.Sheep},
		{components.KindWolf, assets.Wolf},
		{components.KindDog, assets.Dog},
		{components.KindPlayer, assets.Player},
	}

	textures := make(Textures, len(paths))
	for _, p := range paths {
		tex, err := loader.LoadImage(p.path)
		if err != nil {
			slog.Warn("sprite unavailable", "kind", p.kind.String(), "path", p.path, "error", err)
			continue
		}
		textures[p.kind] = tex
	}
	return textures
}
