// Package sim implements the frame-driven simulation core: the frame clock,
// scroll state, entity registry, lane spawner, projectiles and the autonomous
// actor. It has no rendering or host dependencies; render passes read it
// through Snapshot and the accessors.
package sim

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/projection"
)

// Viewport is the host surface size in pixels, supplied every frame.
type Viewport struct {
	W, H float64
}

// Sim is the single simulation context. All state is mutated only by
// Update/Step; render passes only read.
type Sim struct {
	cfg    config.SceneConfig
	rng    *rand.Rand
	logger *log.Logger

	clock       *Clock
	scroll      Scroll
	registry    Registry
	spawner     *LaneSpawner
	projectiles *ProjectileSystem
	actor       *Actor

	frame   int64
	elapsed float64 // Simulated seconds
	scale   float64 // Scale of the last step
	stats   Stats
}

// Stats are cumulative event counters.
type Stats struct {
	Rows      int // Row iterations, empty ones included
	EmptyRows int
	Placed    int // Obstacles spawned
	Shots     int // Projectiles spawned
	Despawned int
}

// Option configures a Sim.
type Option func(*Sim)

// WithLogger routes debug events (rows, sweeps, shots) to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Sim) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithRand replaces the seeded random source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Sim) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// New creates a simulation from validated config. The same seed and the same
// sequence of frame scales reproduce the same run.
func New(cfg config.SceneConfig, seed int64, opts ...Option) *Sim {
	s := &Sim{
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(seed)),
		logger:      log.New(io.Discard),
		clock:       NewClock(cfg.Clock),
		spawner:     NewLaneSpawner(cfg.Obstacles, cfg.Scroll.DepthBias),
		projectiles: NewProjectileSystem(cfg.Projectiles),
		actor:       NewActor(cfg.Actor),
		scale:       1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Update samples the host timestamp through the clock and advances one frame.
// It returns the frame scale used.
func (s *Sim) Update(now time.Time, vp Viewport) float64 {
	scale := s.clock.Tick(now)
	s.Step(scale, vp)
	return scale
}

// Step advances one frame with an explicit scale, bypassing the clock.
func (s *Sim) Step(scale float64, vp Viewport) {
	s.scale = scale
	p := s.Projector(vp)

	s.scroll.Advance(s.cfg.Scroll, scale)
	worldZ := s.scroll.WorldZ

	if n := s.registry.RemoveWhere(s.expired); n > 0 {
		s.stats.Despawned += n
		s.logger.Debug("despawned", "frame", s.frame, "count", n)
	}

	for _, row := range s.spawner.Update(worldZ, &s.registry, s.rng) {
		s.stats.Rows++
		s.stats.Placed += row.Placed
		if row.Empty {
			s.stats.EmptyRows++
		}
		s.logger.Debug("row", "frame", s.frame, "depth", row.Depth, "empty", row.Empty, "pattern", row.Pattern, "placed", row.Placed)
	}

	// A new projectile advances in its spawn frame, so the next scroll step
	// can never carry it back inside the near plane.
	muzzle := s.actor.Place(p, s.elapsed).Muzzle
	if s.projectiles.Fire(&s.registry, worldZ, p, muzzle, scale) {
		s.stats.Shots++
		s.logger.Debug("fired", "frame", s.frame, "x", muzzle.X, "y", muzzle.Y)
	}
	s.projectiles.Advance(&s.registry, s.cfg.Scroll, worldZ, p, scale)

	s.actor.Update(s.rng, scale)

	s.frame++
	s.elapsed += scale / s.cfg.Clock.TargetHz
}

// expired is the despawn predicate evaluated once per frame before spawning.
func (s *Sim) expired(e Entity) bool {
	worldZ := s.scroll.WorldZ
	near := s.cfg.Scroll.NearPlane
	if e.Kind.IsObstacle() {
		return e.RelDepth(worldZ, s.cfg.Scroll.DepthBias) < near
	}
	rel := e.RelDepth(worldZ, 0)
	return rel < near || rel > s.cfg.Projectiles.FarBound || e.Age > s.cfg.Projectiles.MaxAgeFrames
}

// Projector derives the projection for a viewport. Nothing derived from the
// viewport is cached, so a resize takes effect on the next call.
func (s *Sim) Projector(vp Viewport) projection.Projector {
	r := s.cfg.Render
	return projection.New(vp.W, vp.H, r.HorizonFrac, r.FocalFrac, r.DepthEpsilon)
}

// Config returns the scene configuration.
func (s *Sim) Config() config.SceneConfig {
	return s.cfg
}

// Scroll returns the scroll counters.
func (s *Sim) Scroll() Scroll {
	return s.scroll
}

// Entities returns a copy of the live entity set.
func (s *Sim) Entities() []Entity {
	return s.registry.Snapshot()
}

// ObstacleCount returns the number of live obstacles.
func (s *Sim) ObstacleCount() int {
	return s.registry.Count(IsObstacle)
}

// ProjectileCount returns the number of live projectiles.
func (s *Sim) ProjectileCount() int {
	return s.registry.Count(IsProjectile)
}

// Actor returns a copy of the actor state.
func (s *Sim) Actor() Actor {
	return *s.actor
}

// ActorPlacement returns the actor's on-screen footprint, bob included.
func (s *Sim) ActorPlacement(vp Viewport) Placement {
	return s.actor.Place(s.Projector(vp), s.elapsed)
}

// Frame returns the number of steps taken.
func (s *Sim) Frame() int64 {
	return s.frame
}

// Elapsed returns simulated seconds.
func (s *Sim) Elapsed() float64 {
	return s.elapsed
}

// Scale returns the frame scale of the last step.
func (s *Sim) Scale() float64 {
	return s.scale
}

// Stats returns the cumulative event counters.
func (s *Sim) Stats() Stats {
	return s.stats
}

// LaneSchedule exposes the spawner's lane schedule.
func (s *Sim) LaneSchedule() LaneSchedule {
	return s.spawner.Schedule()
}
