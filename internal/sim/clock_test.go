package sim

import (
	"testing"
	"time"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
)

func TestClockFirstTickIsUnitScale(t *testing.T) {
	c := NewClock(config.DefaultSceneConfig().Clock)
	if got := c.Tick(time.Unix(100, 0)); !core.AlmostEqual(got, 1, 1e-9) {
		t.Errorf("first Tick() = %f, expected 1", got)
	}
}

func TestClockSteadyRate(t *testing.T) {
	cfg := config.DefaultSceneConfig().Clock
	c := NewClock(cfg)
	now := time.Unix(0, 0)
	interval := time.Second / 60

	c.Tick(now)
	for i := 0; i < 50; i++ {
		now = now.Add(interval)
		if got := c.Tick(now); !core.AlmostEqual(got, 1, 1e-3) {
			t.Fatalf("Tick() at target rate = %f, expected ~1", got)
		}
	}
}

func TestClockClampsStall(t *testing.T) {
	cfg := config.DefaultSceneConfig().Clock
	c := NewClock(cfg)
	now := time.Unix(0, 0)
	c.Tick(now)

	// A one second hitch is clamped to MaxDelta before smoothing
	got := c.Tick(now.Add(time.Second))
	expected := (1/cfg.TargetHz + (cfg.MaxDelta-1/cfg.TargetHz)*cfg.Smoothing) * cfg.TargetHz
	if !core.AlmostEqual(got, expected, 1e-9) {
		t.Errorf("Tick() after stall = %f, expected %f", got, expected)
	}
	if got >= cfg.MaxDelta*cfg.TargetHz {
		t.Errorf("smoothed scale %f should stay below the clamp ceiling", got)
	}
}

func TestClockClampsBurst(t *testing.T) {
	cfg := config.DefaultSceneConfig().Clock
	c := NewClock(cfg)
	now := time.Unix(0, 0)
	c.Tick(now)

	// Zero-length and backwards intervals clamp to MinDelta
	for i := 0; i < 200; i++ {
		c.Tick(now)
	}
	floor := cfg.MinDelta * cfg.TargetHz
	if got := c.Scale(); got < floor-1e-9 {
		t.Errorf("Scale() = %f, expected >= %f", got, floor)
	}
	if got := c.Tick(now.Add(-time.Second)); got < floor-1e-9 {
		t.Errorf("Tick() with a backwards timestamp = %f, expected >= %f", got, floor)
	}
}
