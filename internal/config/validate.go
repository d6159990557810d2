package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/depthscroll/internal/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid scene")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks the invariants the simulation relies on.
func (c SceneConfig) Validate() error {
	if c.Clock.Smoothing <= 0 || c.Clock.Smoothing > 1 {
		return invalid("clock.smoothing must be in (0, 1], got %g", c.Clock.Smoothing)
	}
	if c.Clock.MinDelta <= 0 || c.Clock.MaxDelta < c.Clock.MinDelta {
		return invalid("clock delta range [%g, %g] is empty", c.Clock.MinDelta, c.Clock.MaxDelta)
	}
	if c.Clock.TargetHz <= 0 {
		return invalid("clock.target_hz must be positive")
	}

	s := c.Scroll
	if s.GroundSpeed <= 0 || s.TileSize <= 0 {
		return invalid("scroll.ground_speed and scroll.tile_size must be positive")
	}
	if s.ObjectSpeedMult < 1 {
		return invalid("scroll.object_speed_mult must be >= 1, got %g", s.ObjectSpeedMult)
	}
	if s.NearPlane <= 0 || s.DepthBias <= 0 {
		return invalid("scroll.near_plane and scroll.depth_bias must be positive")
	}

	if c.Ground.TileWidth <= 0 || c.Ground.MaxBands <= 0 {
		return invalid("ground.tile_width and ground.max_bands must be positive")
	}

	o := c.Obstacles
	if o.RowSpacing <= 0 || o.SpawnDistance <= s.NearPlane {
		return invalid("obstacles.row_spacing must be positive and spawn_distance beyond the near plane")
	}
	if o.Budget < 0 || o.EmptyRowChance < 0 || o.EmptyRowChance > 100 {
		return invalid("obstacles.budget must be >= 0 and empty_row_chance within [0, 100]")
	}
	if o.LaneWidth <= 0 || o.LaneMinSpacing < 0 || o.MaxRowsPerFrame <= 0 {
		return invalid("obstacles lane_width/max_rows_per_frame must be positive")
	}
	if o.SpawnDistance-float64(o.MaxRowsPerFrame)*o.RowSpacing <= s.NearPlane {
		return invalid("obstacles.spawn_distance must exceed max_rows_per_frame * row_spacing beyond the near plane")
	}
	if o.SizeJitter < 0 || o.SizeJitter >= 1 {
		return invalid("obstacles.size_jitter must be in [0, 1)")
	}
	if len(o.Patterns) == 0 {
		return invalid("obstacles.patterns must not be empty")
	}
	if o.Bush.BaseSize <= 0 || o.Column.BaseSize <= 0 || o.Bush.Aspect <= 0 || o.Column.Aspect <= 0 {
		return invalid("obstacle kinds need positive base_size and aspect")
	}

	p := c.Projectiles
	if p.RelMin <= s.NearPlane {
		return invalid("projectiles.rel_min (%g) must lie beyond the near plane (%g)", p.RelMin, s.NearPlane)
	}
	if p.RelMin >= p.RelMax {
		return invalid("projectiles.rel_min must be below rel_max")
	}
	if p.SpawnRelDepth < p.RelMin || p.SpawnRelDepth >= p.RelMax {
		return invalid("projectiles.spawn_rel_depth must lie in [rel_min, rel_max)")
	}
	if p.FarBound < p.RelMax {
		return invalid("projectiles.far_bound (%g) must be at least rel_max (%g)", p.FarBound, p.RelMax)
	}
	if p.DriftStart < 0 || p.DriftStart >= p.DriftEnd || p.DriftEnd > 1 {
		return invalid("projectiles drift range must satisfy 0 <= drift_start < drift_end <= 1")
	}
	if p.ClosureSpeed <= 0 {
		return invalid("projectiles.closure_speed must be positive so projectiles keep receding")
	}
	if p.MaxAgeFrames <= 0 || p.Cap < 0 || p.CooldownFrames < 0 {
		return invalid("projectiles cap/cooldown must be >= 0 and max_age_frames positive")
	}
	if p.FollowLerp <= 0 || p.FollowLerp > 1 || p.SnapLerpFloor <= 0 || p.SnapLerpFloor > 1 {
		return invalid("projectiles follow_lerp and snap_lerp_floor must be in (0, 1]")
	}

	a := c.Actor
	if a.MaxNormX <= 0 || a.MaxNormY <= 0 {
		return invalid("actor max_norm_x/max_norm_y must be positive")
	}
	if a.MoveFramesMin <= 0 || a.MoveFramesMax < a.MoveFramesMin {
		return invalid("actor move frame range [%d, %d] is invalid", a.MoveFramesMin, a.MoveFramesMax)
	}
	if a.WaitFramesMin <= 0 || a.WaitFramesMax < a.WaitFramesMin {
		return invalid("actor wait frame range [%d, %d] is invalid", a.WaitFramesMin, a.WaitFramesMax)
	}
	if a.Friction < 0 || a.Friction >= 1 {
		return invalid("actor.friction must be in [0, 1)")
	}
	if a.Depth <= 0 {
		return invalid("actor.depth must be positive")
	}

	r := c.Render
	if r.HorizonFrac <= 0 || r.HorizonFrac >= 1 || r.FocalFrac <= 0 {
		return invalid("render horizon_frac must be in (0, 1) and focal_frac positive")
	}
	if r.Gamma <= 0 || r.Gamma > 1 {
		return invalid("render.gamma must be in (0, 1]")
	}
	if r.DepthEpsilon <= 0 {
		return invalid("render.depth_epsilon must be positive")
	}
	if r.FogEndFrac <= r.FogStartFrac {
		return invalid("render fog_end_frac must exceed fog_start_frac")
	}

	colors := map[string]string{
		"ground.color_a":    c.Ground.ColorA,
		"ground.color_b":    c.Ground.ColorB,
		"ground.sky_color":  c.Ground.SkyColor,
		"obstacles.bush":    c.Obstacles.Bush.Color,
		"obstacles.column":  c.Obstacles.Column.Color,
		"projectiles.color": c.Projectiles.Color,
		"actor.color":       c.Actor.Color,
	}
	for field, hex := range colors {
		if _, err := core.ParseHex(hex); err != nil {
			return invalid("%s: %v", field, err)
		}
	}
	return nil
}
