// Package render turns a simulation snapshot into an ordered list of draw
// commands. It never mutates simulation state; hosts execute the commands on
// whatever surface they own.
package render

import "github.com/vovakirdan/depthscroll/internal/core"

// Op is the kind of primitive a Command draws.
type Op uint8

const (
	OpRect Op = iota
	OpQuad
	OpEllipse
	OpRoundRect
	OpImage
)

func (o Op) String() string {
	switch o {
	case OpRect:
		return "rect"
	case OpQuad:
		return "quad"
	case OpEllipse:
		return "ellipse"
	case OpRoundRect:
		return "roundrect"
	case OpImage:
		return "image"
	default:
		return "unknown"
	}
}

// Command is one draw call. Which fields matter depends on Op:
// OpQuad uses Points, the others use Rect. Color already carries Alpha for
// shape ops; OpImage uses Asset, Alpha and Rotation (radians, about the
// rect center).
type Command struct {
	Op       Op
	Points   [4]core.Point
	Rect     core.Rect
	Radius   float64
	Color    core.Color
	Alpha    float64
	Asset    string
	Rotation float64
}

// Assets reports which named images a host can draw. A nil Assets has none.
type Assets interface {
	Has(name string) bool
}

// AssetSet is a fixed set of available asset names.
type AssetSet map[string]bool

// Has implements Assets.
func (s AssetSet) Has(name string) bool {
	return s[name]
}

// hasAsset treats a nil Assets as empty.
func hasAsset(a Assets, name string) bool {
	return a != nil && a.Has(name)
}

// ActorAsset is the asset name of the player sprite.
const ActorAsset = "actor"
