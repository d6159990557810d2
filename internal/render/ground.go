package render

import (
	"math"

	"github.com/vovakirdan/depthscroll/internal/config"
	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/projection"
	"github.com/vovakirdan/depthscroll/internal/sim"
)

// horizonPx is how close to the horizon a band's far edge may get before the
// probe stops; anything nearer is sub-pixel.
const horizonPx = 0.5

// maxColumns bounds the horizontal tiling of a single band.
const maxColumns = 512

// bandDepths returns the near and far world depths of tile band k.
func bandDepths(k int, tile, cameraZ, bias float64) (near, far float64) {
	near = float64(k+1)*tile - cameraZ + bias
	return near, near + tile
}

// GroundBands returns the checkerboard ground: a flat base, then quads from
// the farthest band to the nearest.
func GroundBands(p projection.Projector, scroll sim.Scroll, cfg config.SceneConfig, pal Palette) []Command {
	g := cfg.Ground
	tile := cfg.Scroll.TileSize
	bias := cfg.Scroll.DepthBias
	if p.Width <= 0 || p.Height <= p.HorizonY {
		return nil
	}

	// Nearest band: the one whose near edge is at or beyond the bottom row.
	bottom := p.DepthAtY(p.Height)
	first := int(math.Floor((bottom+scroll.CameraZ-bias)/tile)) - 1
	if first < 0 {
		first = 0
	}

	// Probe forward for the farthest band still visibly below the horizon.
	last := first
	for k := first; k < first+g.MaxBands; k++ {
		_, far := bandDepths(k, tile, scroll.CameraZ, bias)
		if p.ScreenY(far)-p.HorizonY < horizonPx {
			break
		}
		last = k
	}

	// Bands below MinBandPx are skipped; a flat base keeps the sky from
	// showing through between them and the horizon.
	cmds := make([]Command, 0, (last-first+1)*8+1)
	cmds = append(cmds, Command{
		Op:    OpRect,
		Rect:  core.Rect{X: 0, Y: p.HorizonY, W: p.Width, H: p.Height - p.HorizonY},
		Color: pal.GroundFar(),
		Alpha: 1,
	})
	for k := last; k >= first; k-- {
		near, far := bandDepths(k, tile, scroll.CameraZ, bias)
		yNear := p.ScreenY(near)
		yFar := p.ScreenY(far)

		if k == first {
			yNear = math.Max(yNear, p.Height) + g.BottomExtendPx
		} else {
			if yNear-yFar < g.MinBandPx {
				continue
			}
			// Overlap into the nearer band, which is drawn afterwards
			yNear += g.SeamOverlapPx
		}

		cmds = appendBandTiles(cmds, p, k, scroll.Wraps, near, far, yNear, yFar, g.TileWidth, pal)
	}
	return cmds
}

// appendBandTiles tiles one band horizontally, culling quads fully outside
// the viewport.
func appendBandTiles(cmds []Command, p projection.Projector, k int, wraps int64, near, far, yNear, yFar, tileW float64, pal Palette) []Command {
	// The near edge is the widest, so its visible span bounds the columns.
	c0 := int(math.Floor(p.WorldX(0, near) / tileW))
	c1 := int(math.Floor(p.WorldX(p.Width, near) / tileW))
	if c1-c0 > maxColumns {
		mid := (c0 + c1) / 2
		c0, c1 = mid-maxColumns/2, mid+maxColumns/2
	}

	for c := c0; c <= c1; c++ {
		x0, x1 := float64(c)*tileW, float64(c+1)*tileW
		quad := [4]core.Point{
			{X: p.ScreenX(x0, near), Y: yNear},
			{X: p.ScreenX(x1, near), Y: yNear},
			{X: p.ScreenX(x1, far), Y: yFar},
			{X: p.ScreenX(x0, far), Y: yFar},
		}
		if quadOutside(quad, p.Width) {
			continue
		}

		col := pal.GroundA
		if tileParity(k, wraps, c) == 1 {
			col = pal.GroundB
		}
		cmds = append(cmds, Command{Op: OpQuad, Points: quad, Color: col, Alpha: 1})
	}
	return cmds
}

// tileParity keeps the checker pattern stable across cameraZ wraps.
func tileParity(k int, wraps int64, c int) int {
	v := (int64(k) + wraps + int64(c)) % 2
	if v < 0 {
		v += 2
	}
	return int(v)
}

func quadOutside(q [4]core.Point, width float64) bool {
	minX, maxX := q[0].X, q[0].X
	for _, pt := range q[1:] {
		minX = math.Min(minX, pt.X)
		maxX = math.Max(maxX, pt.X)
	}
	return maxX < 0 || minX > width
}
