package render

import (
	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
)

// Palette holds the parsed scene colors.
type Palette struct {
	Sky        core.Color
	GroundA    core.Color
	GroundB    core.Color
	Bush       core.Color
	Column     core.Color
	Projectile core.Color
	Actor      core.Color
}

// NewPalette parses the configured colors. Validation already rejected bad
// hex strings; an unvalidated config falls back to the default sky and black.
func NewPalette(cfg config.SceneConfig) Palette {
	return Palette{
		Sky:        core.HexOr(cfg.Ground.SkyColor, core.ColorSky),
		GroundA:    core.HexOr(cfg.Ground.ColorA, core.ColorBlack),
		GroundB:    core.HexOr(cfg.Ground.ColorB, core.ColorBlack),
		Bush:       core.HexOr(cfg.Obstacles.Bush.Color, core.ColorBlack),
		Column:     core.HexOr(cfg.Obstacles.Column.Color, core.ColorBlack),
		Projectile: core.HexOr(cfg.Projectiles.Color, core.ColorBlack),
		Actor:      core.HexOr(cfg.Actor.Color, core.ColorBlack),
	}
}

// GroundFar is the average of the two checker colors, used where bands are
// too thin to draw.
func (p Palette) GroundFar() core.Color {
	return p.GroundA.Over(p.GroundB.WithAlpha(0.5))
}
