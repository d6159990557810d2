package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/projection"
)

// Axis is one dimension of the actor's motion, in normalized units.
type Axis struct {
	Pos    float64
	Target float64
	Vel    float64
	Max    float64 // Pos stays within [-Max, Max]
}

// step integrates velocity and applies the range clamp. Hitting the clamp
// zeroes velocity.
func (a *Axis) step(scale float64) {
	a.Pos += a.Vel * scale
	if a.Pos > a.Max {
		a.Pos = a.Max
		a.Vel = 0
	} else if a.Pos < -a.Max {
		a.Pos = -a.Max
		a.Vel = 0
	}
}

// seek accelerates toward Target, easing off near arrival.
func (a *Axis) seek(accel, maxSpeed, scale float64) {
	dist := a.Target - a.Pos
	if dist == 0 {
		a.Vel = 0
		return
	}

	abs := math.Abs(dist)
	if abs < 0.06*a.Max {
		accel /= 2
	}
	if abs < 0.03*a.Max {
		accel /= 2
	}

	a.Vel += core.Sign(dist) * accel * scale
	a.Vel = core.ClampF(a.Vel, -maxSpeed, maxSpeed)

	// Never step past the target
	if math.Abs(a.Vel*scale) > abs && scale > 0 {
		a.Vel = dist / scale
	}
}

// Actor is the autonomous player sprite's two-axis move/wait state machine.
type Actor struct {
	X, Y   Axis
	Frames int  // Frames left in the current phase
	Moving bool // false while waiting

	cfg config.ActorConfig
}

// NewActor creates a centered, waiting actor.
func NewActor(cfg config.ActorConfig) *Actor {
	return &Actor{
		X:   Axis{Max: cfg.MaxNormX},
		Y:   Axis{Max: cfg.MaxNormY},
		cfg: cfg,
	}
}

// arrived reports whether both axes are within the stop epsilon of target.
func (a *Actor) arrived() bool {
	eps := a.cfg.StopEpsilon
	return math.Abs(a.X.Target-a.X.Pos) <= eps && math.Abs(a.Y.Target-a.Y.Pos) <= eps
}

// Update advances the state machine and the physics by one frame.
func (a *Actor) Update(rng *rand.Rand, scale float64) {
	if a.Moving && a.arrived() {
		a.Frames = 0
	}

	if a.Frames <= 0 {
		if a.Moving {
			a.Frames = randRange(rng, a.cfg.WaitFramesMin, a.cfg.WaitFramesMax)
			a.Moving = false
		} else {
			a.X.Target = randSign(rng) * (0.2 + 0.6*rng.Float64()) * a.X.Max
			a.Y.Target = randSign(rng) * (0.1 + 0.6*rng.Float64()) * a.Y.Max
			a.Frames = randRange(rng, a.cfg.MoveFramesMin, a.cfg.MoveFramesMax)
			a.Moving = true
		}
	}

	if a.Moving {
		a.X.seek(a.cfg.AccelX, a.cfg.MaxSpeedX, scale)
		a.Y.seek(a.cfg.AccelY, a.cfg.MaxSpeedY, scale)
	} else {
		decay := math.Pow(a.cfg.Friction, scale)
		a.X.Vel *= decay
		a.Y.Vel *= decay
	}

	a.X.step(scale)
	a.Y.step(scale)

	if a.Frames > 0 {
		a.Frames--
	}
}

// Placement is the actor's on-screen footprint for one frame.
type Placement struct {
	FootX, FootY float64 // Bottom-center of the sprite
	W, H         float64
	Muzzle       core.Point
}

// Rect returns the sprite's bounding rectangle.
func (pl Placement) Rect() core.Rect {
	return core.Rect{X: pl.FootX - pl.W/2, Y: pl.FootY - pl.H, W: pl.W, H: pl.H}
}

// Place maps the actor to pixels. The actor sits at a fixed depth, so its
// size only depends on the viewport. bobSeconds drives the vertical bob,
// which is layered on top of the state machine.
func (a *Actor) Place(p projection.Projector, bobSeconds float64) Placement {
	c := a.cfg
	h := math.Min(c.WorldHeight*p.Scale(c.Depth), c.MaxHeightFrac*p.Height)
	w := h * c.Aspect

	bob := math.Sin(2*math.Pi*c.BobHz*bobSeconds) * c.BobAmpPx
	footX := p.CenterX + a.X.Pos*c.SpanXFrac*p.Width
	footY := c.BaseYFrac*p.Height + a.Y.Pos*c.SpanYFrac*p.Height + bob

	return Placement{
		FootX:  footX,
		FootY:  footY,
		W:      w,
		H:      h,
		Muzzle: core.Point{X: footX, Y: footY - c.MuzzleFrac*h},
	}
}

// randRange returns a uniform int in [lo, hi].
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// randSign returns -1 or 1 with equal probability.
func randSign(rng *rand.Rand) float64 {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
