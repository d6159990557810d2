package sim

import (
	"time"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
)

// Clock smooths raw frame intervals into a per-frame scale factor.
// Scale is ~1 at the target rate, above 1 when frames run slow and
// below 1 when they run fast.
type Clock struct {
	cfg      config.ClockConfig
	last     time.Time
	started  bool
	smoothed float64 // Seconds
}

// NewClock creates a clock seeded at the target frame interval.
func NewClock(cfg config.ClockConfig) *Clock {
	return &Clock{
		cfg:      cfg,
		smoothed: 1 / cfg.TargetHz,
	}
}

// Tick samples the host timestamp and returns the frame scale.
// The first call only records the timestamp.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return c.Scale()
	}

	raw := now.Sub(c.last).Seconds()
	c.last = now

	// Absorb stalls and hitches
	raw = core.ClampF(raw, c.cfg.MinDelta, c.cfg.MaxDelta)
	c.smoothed += (raw - c.smoothed) * c.cfg.Smoothing

	return c.Scale()
}

// Scale returns the current frame scale without sampling.
func (c *Clock) Scale() float64 {
	return c.smoothed * c.cfg.TargetHz
}

// Smoothed returns the smoothed frame interval in seconds.
func (c *Clock) Smoothed() float64 {
	return c.smoothed
}
