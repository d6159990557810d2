package sim

import (
	"math"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/projection"
)

// ProjectileSystem spawns projectiles from the actor's muzzle and flies them
// away from the camera, drifting toward the viewport center as they recede.
type ProjectileSystem struct {
	cfg      config.ProjectileConfig
	cooldown float64 // Frames until the next shot
}

// NewProjectileSystem creates a projectile system ready to fire.
func NewProjectileSystem(cfg config.ProjectileConfig) *ProjectileSystem {
	return &ProjectileSystem{cfg: cfg}
}

// Progress maps a clamped relative depth to [0, 1].
func (ps *ProjectileSystem) Progress(rel float64) float64 {
	return core.ClampF((rel-ps.cfg.RelMin)/(ps.cfg.RelMax-ps.cfg.RelMin), 0, 1)
}

// Advance moves every live projectile one frame.
func (ps *ProjectileSystem) Advance(reg *Registry, scroll config.ScrollConfig, worldZ float64, p projection.Projector, scale float64) {
	// The closure term keeps relative depth growing even when the
	// actor is idle; the zoom-out must always progress.
	step := WorldStep(scroll, scale) + ps.cfg.ClosureSpeed*scale
	centerX, centerY := p.Width/2, p.Height/2

	snap := math.Max(ps.cfg.SnapMinPx, ps.cfg.SnapViewportFrac*p.Width)
	follow := 1 - math.Pow(1-ps.cfg.FollowLerp, scale)

	reg.Each(IsProjectile, func(e *Entity) {
		e.Depth += step
		e.Age++

		e.Rel = core.ClampF(e.Depth-worldZ, ps.cfg.RelMin, ps.cfg.RelMax)
		e.Progress = ps.Progress(e.Rel)
		e.Drift = core.Smoothstep(ps.cfg.DriftStart, ps.cfg.DriftEnd, e.Progress)

		targetX := core.Lerp(e.SpawnX, centerX, e.Drift)
		targetY := core.Lerp(e.AnchorY, centerY, e.Drift)
		e.X = p.WorldX(targetX, e.Rel)

		k := follow
		if math.Hypot(targetX-e.ScreenX, targetY-e.ScreenY) > snap {
			k = math.Max(k, ps.cfg.SnapLerpFloor)
		}
		e.ScreenX += (targetX - e.ScreenX) * k
		e.ScreenY += (targetY - e.ScreenY) * k
	})
}

// Fire counts the cooldown down and spawns a projectile from muzzle when it
// expires and the cap allows. It reports whether a projectile was spawned.
func (ps *ProjectileSystem) Fire(reg *Registry, worldZ float64, p projection.Projector, muzzle core.Point, scale float64) bool {
	ps.cooldown -= scale
	if ps.cooldown > 0 {
		return false
	}
	ps.cooldown = ps.cfg.CooldownFrames

	if reg.Count(IsProjectile) >= ps.cfg.Cap {
		return false
	}

	rel := ps.cfg.SpawnRelDepth
	reg.Add(Entity{
		Kind:     KindProjectile,
		X:        p.WorldX(muzzle.X, rel),
		Depth:    worldZ + rel,
		Size:     1,
		AnchorY:  muzzle.Y,
		SpawnX:   muzzle.X,
		ScreenX:  muzzle.X,
		ScreenY:  muzzle.Y,
		Rel:      core.ClampF(rel, ps.cfg.RelMin, ps.cfg.RelMax),
		Progress: ps.Progress(rel),
	})
	return true
}

// Alpha returns the projectile's opacity: a linear fog band by depth, then a
// fade to zero over the progress span after DriftEnd.
func (ps *ProjectileSystem) Alpha(e Entity) float64 {
	return ProjectileAlpha(ps.cfg, e)
}

// ProjectileAlpha is Alpha without a system value, for render passes.
func ProjectileAlpha(cfg config.ProjectileConfig, e Entity) float64 {
	alpha := 1.0
	if cfg.FogFar > cfg.FogNear {
		alpha = 1 - core.ClampF((e.Rel-cfg.FogNear)/(cfg.FogFar-cfg.FogNear), 0, 1)
	}
	if e.Progress > cfg.DriftEnd && cfg.DriftEnd < 1 {
		alpha *= core.ClampF((1-e.Progress)/(1-cfg.DriftEnd), 0, 1)
	}
	return alpha
}
