package render

import (
	"math"
	"sort"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/projection"
	"github.com/vovakirdan/depthscroll/internal/sim"
)

// projectileSpin is the image rotation per frame of age, in radians.
const projectileSpin = 0.15

// Corner radius as a fraction of the sprite width for rounded fallbacks.
const (
	columnRadiusFrac = 0.25
	actorRadiusFrac  = 0.3
)

// sprite is a depth-sortable draw command.
type sprite struct {
	depth float64
	cmd   Command
}

// ObstacleSprite projects one obstacle. ok is false when the obstacle is
// culled or fully fogged.
func ObstacleSprite(p projection.Projector, e sim.Entity, worldZ float64, cfg config.SceneConfig, pal Palette, assets Assets) (Command, float64, bool) {
	r := cfg.Render
	rel := e.RelDepth(worldZ, cfg.Scroll.DepthBias)
	if rel < r.ConsiderNear || rel > r.ConsiderFar {
		return Command{}, rel, false
	}

	kind := cfg.Obstacles.Bush
	col := pal.Bush
	if e.Kind == sim.KindColumn {
		kind = cfg.Obstacles.Column
		col = pal.Column
	}

	w := kind.BaseSize * e.Size * p.GammaScale(rel, r.Gamma)
	h := w * kind.Aspect

	// Flatten the ground offset toward the horizon, then nudge down.
	groundY := p.ScreenY(rel)
	footY := groundY - r.PitchFlatten*(groundY-p.HorizonY) + r.DownOffsetFrac*p.Height

	sx := p.ScreenX(e.X, rel)
	dead := r.DeadZoneFrac * p.Width
	if off := sx - p.CenterX; math.Abs(off)-w/2 < dead {
		side := core.Sign(e.X)
		if side == 0 {
			side = core.Sign(off)
		}
		if side == 0 {
			side = 1
		}
		sx = p.CenterX + side*(dead+w/2)
	}

	margin := r.CullMarginFrac * p.Width
	if sx+w/2 < -margin || sx-w/2 > p.Width+margin {
		return Command{}, rel, false
	}

	alpha := ObstacleFog(r, cfg.Obstacles.SpawnDistance, rel)
	if alpha <= 0 {
		return Command{}, rel, false
	}

	rect := core.Rect{X: sx - w/2, Y: footY - h, W: w, H: h}
	name := e.Kind.String()
	switch {
	case hasAsset(assets, name):
		return Command{Op: OpImage, Rect: rect, Asset: name, Alpha: alpha, Color: col.WithAlpha(alpha)}, rel, true
	case e.Kind == sim.KindBush:
		return Command{Op: OpEllipse, Rect: rect, Color: col.WithAlpha(alpha), Alpha: alpha}, rel, true
	default:
		return Command{Op: OpRoundRect, Rect: rect, Radius: w * columnRadiusFrac, Color: col.WithAlpha(alpha), Alpha: alpha}, rel, true
	}
}

// ObstacleFog fades linearly from FogStartFrac to FogEndFrac of the spawn
// distance.
func ObstacleFog(r config.RenderConfig, spawnDistance, rel float64) float64 {
	start := r.FogStartFrac * spawnDistance
	end := r.FogEndFrac * spawnDistance
	return 1 - core.ClampF((rel-start)/(end-start), 0, 1)
}

// ProjectileSprite draws a projectile at its smoothed screen position with a
// linear depth scale, so it visibly shrinks as it recedes.
func ProjectileSprite(p projection.Projector, e sim.Entity, cfg config.SceneConfig, pal Palette, assets Assets) (Command, bool) {
	alpha := sim.ProjectileAlpha(cfg.Projectiles, e)
	if alpha <= 0 {
		return Command{}, false
	}

	size := cfg.Projectiles.Size * p.Scale(e.Rel)
	rect := core.Rect{X: e.ScreenX - size/2, Y: e.ScreenY - size/2, W: size, H: size}
	name := e.Kind.String()
	if hasAsset(assets, name) {
		return Command{
			Op:       OpImage,
			Rect:     rect,
			Asset:    name,
			Alpha:    alpha,
			Color:    pal.Projectile.WithAlpha(alpha),
			Rotation: float64(e.Age) * projectileSpin,
		}, true
	}
	return Command{Op: OpRect, Rect: rect, Color: pal.Projectile.WithAlpha(alpha), Alpha: alpha}, true
}

// Sprites returns the obstacle pass followed by the projectile pass, each
// sorted far to near. Projectiles always draw over obstacles.
func Sprites(p projection.Projector, entities []sim.Entity, worldZ float64, cfg config.SceneConfig, pal Palette, assets Assets) []Command {
	var obstacles, projectiles []sprite
	for _, e := range entities {
		if e.Kind == sim.KindProjectile {
			if cmd, ok := ProjectileSprite(p, e, cfg, pal, assets); ok {
				projectiles = append(projectiles, sprite{depth: e.Rel, cmd: cmd})
			}
			continue
		}
		if cmd, rel, ok := ObstacleSprite(p, e, worldZ, cfg, pal, assets); ok {
			obstacles = append(obstacles, sprite{depth: rel, cmd: cmd})
		}
	}

	cmds := make([]Command, 0, len(obstacles)+len(projectiles))
	cmds = appendFarToNear(cmds, obstacles)
	return appendFarToNear(cmds, projectiles)
}

func appendFarToNear(cmds []Command, list []sprite) []Command {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].depth > list[j].depth
	})
	for _, s := range list {
		cmds = append(cmds, s.cmd)
	}
	return cmds
}

// ActorSprite draws the player sprite from its placement.
func ActorSprite(pl sim.Placement, pal Palette, assets Assets) Command {
	rect := pl.Rect()
	if hasAsset(assets, ActorAsset) {
		return Command{Op: OpImage, Rect: rect, Asset: ActorAsset, Alpha: 1, Color: pal.Actor}
	}
	return Command{Op: OpRoundRect, Rect: rect, Radius: pl.W * actorRadiusFrac, Color: pal.Actor, Alpha: 1}
}
