package render

import (
	"math"
	"testing"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/sim"
)

func TestObstacleFallbacks(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	p := testProjector(cfg, 160, 96)
	pal := NewPalette(cfg)

	tests := []struct {
		name   string
		kind   sim.Kind
		assets Assets
		want   Op
	}{
		{"bush without assets", sim.KindBush, nil, OpEllipse},
		{"column without assets", sim.KindColumn, nil, OpRoundRect},
		{"bush with asset", sim.KindBush, AssetSet{"bush": true}, OpImage},
		{"column missing its asset", sim.KindColumn, AssetSet{"bush": true}, OpRoundRect},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := sim.Entity{Kind: tc.kind, Lane: 4, X: 4 * cfg.Obstacles.LaneWidth, Depth: 6, Size: 1}
			cmd, _, ok := ObstacleSprite(p, e, 0, cfg, pal, tc.assets)
			if !ok {
				t.Fatal("obstacle should be visible")
			}
			if cmd.Op != tc.want {
				t.Errorf("Op = %s, expected %s", cmd.Op, tc.want)
			}
			if cmd.Op == OpImage && cmd.Asset != tc.kind.String() {
				t.Errorf("Asset = %q, expected %q", cmd.Asset, tc.kind.String())
			}
		})
	}
}

func TestObstacleDeadZone(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	p := testProjector(cfg, 160, 96)
	pal := NewPalette(cfg)
	dead := cfg.Render.DeadZoneFrac * p.Width

	for _, lane := range []int{-2, 2} {
		// Far away, lane 2 projects almost onto the center line
		e := sim.Entity{Kind: sim.KindColumn, Lane: lane, X: float64(lane) * cfg.Obstacles.LaneWidth, Depth: 20, Size: 1}
		cmd, _, ok := ObstacleSprite(p, e, 0, cfg, pal, nil)
		if !ok {
			t.Fatalf("lane %d obstacle should be visible", lane)
		}
		var inner float64
		if lane > 0 {
			inner = cmd.Rect.X - p.CenterX
		} else {
			inner = p.CenterX - cmd.Rect.Right()
		}
		if inner < dead-1e-9 {
			t.Errorf("lane %d: inner edge %f px from center, expected >= %f", lane, inner, dead)
		}
	}
}

func TestObstacleGammaDampsNearSize(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	p := testProjector(cfg, 160, 96)
	pal := NewPalette(cfg)

	width := func(depth float64) float64 {
		e := sim.Entity{Kind: sim.KindBush, Lane: 2, X: 1, Depth: depth - cfg.Scroll.DepthBias, Size: 1}
		cmd, _, ok := ObstacleSprite(p, e, 0, cfg, pal, nil)
		if !ok {
			t.Fatalf("obstacle at depth %f should be visible", depth)
		}
		return cmd.Rect.W
	}

	near, far := width(2), width(8)
	if near <= far {
		t.Fatalf("nearer obstacle should be larger: %f vs %f", near, far)
	}
	if ratio := near / far; ratio >= 4 {
		t.Errorf("size ratio %f should grow slower than the depth ratio 4", ratio)
	}
}

func TestObstacleCulling(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	p := testProjector(cfg, 160, 96)
	pal := NewPalette(cfg)

	tests := []struct {
		name  string
		depth float64
		x     float64
	}{
		{"inside near plane", 0, 3},
		{"beyond consideration range", cfg.Render.ConsiderFar + 5, 3},
		{"fully fogged", cfg.Render.FogEndFrac*cfg.Obstacles.SpawnDistance + 0.1, 3},
		{"far off screen", 2, 500},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := sim.Entity{Kind: sim.KindBush, X: tc.x, Depth: tc.depth - cfg.Scroll.DepthBias, Size: 1}
			if _, _, ok := ObstacleSprite(p, e, 0, cfg, pal, nil); ok {
				t.Error("obstacle should be culled")
			}
		})
	}
}

func TestObstacleFog(t *testing.T) {
	r := config.DefaultSceneConfig().Render
	const dist = 40.0

	tests := []struct {
		rel, want float64
	}{
		{0, 1},
		{r.FogStartFrac * dist, 1},
		{(r.FogStartFrac + r.FogEndFrac) / 2 * dist, 0.5},
		{r.FogEndFrac * dist, 0},
		{dist * 2, 0},
	}

	for _, tc := range tests {
		if got := ObstacleFog(r, dist, tc.rel); !core.AlmostEqual(got, tc.want, 1e-9) {
			t.Errorf("ObstacleFog(rel=%f) = %f, expected %f", tc.rel, got, tc.want)
		}
	}
}

func TestProjectileSprite(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	p := testProjector(cfg, 160, 96)
	pal := NewPalette(cfg)

	near := sim.Entity{Kind: sim.KindProjectile, Rel: 1, ScreenX: 80, ScreenY: 50, Age: 10}
	far := near
	far.Rel = 4

	a, ok := ProjectileSprite(p, near, cfg, pal, nil)
	if !ok || a.Op != OpRect {
		t.Fatalf("expected a square fallback, got %+v", a)
	}
	b, _ := ProjectileSprite(p, far, cfg, pal, nil)
	if ratio := a.Rect.W / b.Rect.W; !core.AlmostEqual(ratio, 4, 1e-9) {
		t.Errorf("projectile size should scale linearly with depth, ratio %f", ratio)
	}
	if cx := a.Rect.X + a.Rect.W/2; !core.AlmostEqual(cx, 80, 1e-9) {
		t.Errorf("sprite center X = %f, expected 80", cx)
	}

	img, _ := ProjectileSprite(p, near, cfg, pal, AssetSet{"projectile": true})
	if img.Op != OpImage || !core.AlmostEqual(img.Rotation, 10*projectileSpin, 1e-9) {
		t.Errorf("image projectile should rotate with age, got %+v", img)
	}

	faded := near
	faded.Progress = 1
	if _, ok := ProjectileSprite(p, faded, cfg, pal, nil); ok {
		t.Error("fully faded projectile should be skipped")
	}
}

func TestSpritesObstaclePassThenProjectiles(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	p := testProjector(cfg, 160, 96)
	entities := []sim.Entity{
		{Kind: sim.KindBush, Lane: 3, X: 3 * cfg.Obstacles.LaneWidth, Depth: 4, Size: 1},
		{Kind: sim.KindProjectile, Rel: 3, ScreenX: 70, ScreenY: 60},
		{Kind: sim.KindColumn, Lane: -4, X: -4 * cfg.Obstacles.LaneWidth, Depth: 15, Size: 1},
		{Kind: sim.KindProjectile, Rel: 8, ScreenX: 80, ScreenY: 50},
		{Kind: sim.KindBush, Lane: 5, X: 5 * cfg.Obstacles.LaneWidth, Depth: 9, Size: 1},
	}

	cmds := Sprites(p, entities, 0, cfg, NewPalette(cfg), nil)
	if len(cmds) != 5 {
		t.Fatalf("expected 5 sprites, got %d", len(cmds))
	}

	// Obstacles far to near, then projectiles far to near, even though the
	// rel 8 projectile is farther than the rel 4 bush
	want := []Op{OpRoundRect, OpEllipse, OpEllipse, OpRect, OpRect}
	for i, op := range want {
		if cmds[i].Op != op {
			t.Errorf("sprite %d Op = %s, expected %s", i, cmds[i].Op, op)
		}
	}
	if cmds[1].Rect.W >= cmds[2].Rect.W {
		t.Error("nearer bush should be drawn after and larger than the farther one")
	}
	if cmds[3].Rect.W >= cmds[4].Rect.W {
		t.Error("farther projectile should be drawn first and smaller")
	}
}

func TestActorSprite(t *testing.T) {
	pal := NewPalette(config.DefaultSceneConfig())
	pl := sim.Placement{FootX: 50, FootY: 80, W: 10, H: 20}

	cmd := ActorSprite(pl, pal, nil)
	if cmd.Op != OpRoundRect {
		t.Errorf("Op = %s, expected roundrect fallback", cmd.Op)
	}
	if cmd.Rect != (core.Rect{X: 45, Y: 60, W: 10, H: 20}) {
		t.Errorf("Rect = %+v", cmd.Rect)
	}
	if img := ActorSprite(pl, pal, AssetSet{ActorAsset: true}); img.Op != OpImage {
		t.Errorf("Op = %s, expected image", img.Op)
	}
	if math.IsNaN(cmd.Radius) || cmd.Radius <= 0 {
		t.Errorf("Radius = %f", cmd.Radius)
	}
}
