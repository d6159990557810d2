package config

import "fmt"

// Pace represents a named scroll pace preset.
type Pace string

const (
	PaceCalm   Pace = "calm"
	PaceNormal Pace = "normal"
	PaceRush   Pace = "rush"
)

// ParsePace converts a CLI value to a Pace. Empty input means the config's own tuning.
func ParsePace(s string) (Pace, error) {
	switch Pace(s) {
	case "", PaceCalm, PaceNormal, PaceRush:
		return Pace(s), nil
	default:
		return "", fmt.Errorf("config: unknown pace %q (want calm, normal or rush)", s)
	}
}

// ApplyPace modifies the config based on a pace preset.
func ApplyPace(cfg *SceneConfig, pace Pace) {
	switch pace {
	case PaceCalm:
		cfg.Scroll.GroundSpeed *= 0.6
		cfg.Obstacles.EmptyRowChance = min(100, cfg.Obstacles.EmptyRowChance+20)
		cfg.Obstacles.Budget = cfg.Obstacles.Budget * 3 / 4
		cfg.Projectiles.CooldownFrames *= 1.5
	case PaceRush:
		cfg.Scroll.GroundSpeed *= 1.6
		cfg.Obstacles.EmptyRowChance = max(0, cfg.Obstacles.EmptyRowChance-20)
		cfg.Obstacles.Budget = cfg.Obstacles.Budget * 3 / 2
		cfg.Projectiles.CooldownFrames *= 0.6
	}
}
