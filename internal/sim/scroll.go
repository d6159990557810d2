package sim

import "github.com/vovakirdan/depthscroll/internal/config"

// Scroll holds the camera and world depth counters.
type Scroll struct {
	// CameraZ drives the looping ground texture and stays in [0, TileSize).
	CameraZ float64
	// WorldZ is the unwrapped depth every entity is measured against.
	WorldZ float64
	// Wraps counts ground tile wraps so tile parity survives a wrap.
	Wraps int64

	travel float64 // Accumulated frame scale
}

// Advance moves both counters by one frame.
func (s *Scroll) Advance(cfg config.ScrollConfig, scale float64) {
	s.CameraZ += cfg.GroundSpeed * scale
	for s.CameraZ >= cfg.TileSize {
		s.CameraZ -= cfg.TileSize
		s.Wraps++
	}

	// Derived from accumulated scale rather than summed per frame so that
	// worldZ after N unit frames is exactly N * speed * mult.
	s.travel += scale
	s.WorldZ = s.travel * cfg.GroundSpeed * cfg.ObjectSpeedMult
}

// WorldStep returns how far worldZ moves in one frame at the given scale.
func WorldStep(cfg config.ScrollConfig, scale float64) float64 {
	return cfg.GroundSpeed * cfg.ObjectSpeedMult * scale
}
