// Package projection maps world depth and lateral offset to screen space
// for a fixed camera looking down the forward axis.
package projection

import "math"

// Projector holds the per-frame projection parameters. It is derived from
// the viewport every frame and never cached across a resize.
type Projector struct {
	Width    float64 // Viewport width in pixels
	Height   float64 // Viewport height in pixels
	CenterX  float64
	HorizonY float64
	Focal    float64
	Epsilon  float64 // Depths are floor-clamped to this before division
}

// New derives a projector from viewport dimensions.
// horizonFrac and focalFrac are fractions of the viewport height.
func New(width, height, horizonFrac, focalFrac, epsilon float64) Projector {
	if epsilon <= 0 {
		epsilon = 1e-3
	}
	return Projector{
		Width:    width,
		Height:   height,
		CenterX:  width / 2,
		HorizonY: horizonFrac * height,
		Focal:    focalFrac * height,
		Epsilon:  epsilon,
	}
}

// depth clamps d so that divisions stay finite and positive.
func (p Projector) depth(d float64) float64 {
	return math.Max(p.Epsilon, d)
}

// Scale returns pixels per world unit at depth d.
func (p Projector) Scale(d float64) float64 {
	return p.Focal / p.depth(d)
}

// ScreenY returns the screen row of the ground at depth d.
// Screen Y grows downward, so farther depths approach the horizon from below.
func (p Projector) ScreenY(d float64) float64 {
	return p.HorizonY + p.Scale(d)
}

// ScreenX returns the screen column of lateral offset worldX at depth d.
func (p Projector) ScreenX(worldX, d float64) float64 {
	return p.CenterX + worldX*p.Scale(d)
}

// WorldX inverts ScreenX: the lateral offset that projects to screenX at depth d.
func (p Projector) WorldX(screenX, d float64) float64 {
	return (screenX - p.CenterX) / p.Scale(d)
}

// DepthAtY inverts ScreenY for rows below the horizon.
// Rows at or above the horizon map to +Inf.
func (p Projector) DepthAtY(y float64) float64 {
	below := y - p.HorizonY
	if below <= 0 {
		return math.Inf(1)
	}
	return p.Focal / below
}

// GammaScale returns a damped pixels-per-unit: near depths grow sub-linearly
// so close sprites do not blow up.
func (p Projector) GammaScale(d, gamma float64) float64 {
	return p.Focal / math.Pow(p.depth(d), gamma)
}
