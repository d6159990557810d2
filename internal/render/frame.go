package render

import (
	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/sim"
)

// Frame builds the full draw list for one frame: sky, ground bands far to
// near, the obstacle pass, the projectile pass, then the actor on top.
// Tuning comes from the simulation's own config, so render and update always
// agree on depth bias and tile size.
func Frame(s *sim.Sim, vp sim.Viewport, assets Assets) []Command {
	if vp.W <= 0 || vp.H <= 0 {
		return nil
	}

	cfg := s.Config()
	p := s.Projector(vp)
	pal := NewPalette(cfg)
	scroll := s.Scroll()

	cmds := []Command{{
		Op:    OpRect,
		Rect:  core.Rect{W: vp.W, H: vp.H},
		Color: pal.Sky,
		Alpha: 1,
	}}
	cmds = append(cmds, GroundBands(p, scroll, cfg, pal)...)
	cmds = append(cmds, Sprites(p, s.Entities(), scroll.WorldZ, cfg, pal, assets)...)
	cmds = append(cmds, ActorSprite(s.ActorPlacement(vp), pal, assets))
	return cmds
}
