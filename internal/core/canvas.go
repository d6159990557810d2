package core

import (
	"math"
	"sort"
	"strings"
)

// Canvas is an RGBA pixel buffer that hosts without a GPU rasterize draw
// commands into. Every fill blends with the existing pixel and clips to the
// buffer bounds.
type Canvas struct {
	width  int
	height int
	pixels []Color // Flat slice: [y*width + x]

	// Reusable buffer for scanline intersections
	intersectionBuf []float64
}

// NewCanvas creates a canvas with the given pixel dimensions.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Resize changes the canvas dimensions. Content is discarded.
func (c *Canvas) Resize(width, height int) {
	width = Clamp(width, 0, math.MaxInt32)
	height = Clamp(height, 0, math.MaxInt32)
	if width == c.width && height == c.height && c.pixels != nil {
		return
	}
	c.width = width
	c.height = height
	c.pixels = make([]Color, width*height)
}

// Clear fills the entire canvas with an opaque color.
func (c *Canvas) Clear(col Color) {
	col.A = 255
	for i := range c.pixels {
		c.pixels[i] = col
	}
}

// At returns the pixel at (x, y); out-of-bounds reads return black.
func (c *Canvas) At(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return ColorBlack
	}
	return c.pixels[y*c.width+x]
}

// blend composites col over the pixel at (x, y).
func (c *Canvas) blend(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	i := y*c.width + x
	c.pixels[i] = c.pixels[i].Over(col)
}

// span blends col over pixels [x0, x1) of row y.
func (c *Canvas) span(y, x0, x1 int, col Color) {
	if y < 0 || y >= c.height {
		return
	}
	x0 = Clamp(x0, 0, c.width)
	x1 = Clamp(x1, 0, c.width)
	for x := x0; x < x1; x++ {
		c.blend(x, y, col)
	}
}

// rowRange returns the pixel rows whose centers lie within [top, bottom).
func (c *Canvas) rowRange(top, bottom float64) (int, int) {
	y0 := int(math.Ceil(top - 0.5))
	y1 := int(math.Ceil(bottom - 0.5))
	return Clamp(y0, 0, c.height), Clamp(y1, 0, c.height)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(r Rect, col Color) {
	if col.A == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	y0, y1 := c.rowRange(r.Y, r.Bottom())
	x0 := int(math.Ceil(r.X - 0.5))
	x1 := int(math.Ceil(r.Right() - 0.5))
	for y := y0; y < y1; y++ {
		c.span(y, x0, x1, col)
	}
}

// FillPolygon fills a polygon using a scanline algorithm sampled at pixel
// centers. Suitable for the convex quads produced by the ground pass.
func (c *Canvas) FillPolygon(points []Point, col Color) {
	if len(points) < 3 || col.A == 0 {
		return
	}

	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0, y1 := c.rowRange(minY, maxY)

	n := len(points)
	for y := y0; y < y1; y++ {
		yc := float64(y) + 0.5
		xs := c.intersectionBuf[:0]
		for i := 0; i < n; i++ {
			p1 := points[i]
			p2 := points[(i+1)%n]
			if (p1.Y <= yc && p2.Y > yc) || (p2.Y <= yc && p1.Y > yc) {
				xs = append(xs, p1.X+(yc-p1.Y)*(p2.X-p1.X)/(p2.Y-p1.Y))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			c.span(y, int(math.Ceil(xs[i]-0.5)), int(math.Ceil(xs[i+1]-0.5)), col)
		}
		c.intersectionBuf = xs
	}
}

// FillQuad fills a convex quad given in winding order.
func (c *Canvas) FillQuad(q [4]Point, col Color) {
	c.FillPolygon(q[:], col)
}

// FillEllipse fills the ellipse inscribed in r.
func (c *Canvas) FillEllipse(r Rect, col Color) {
	if col.A == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	rx, ry := r.W/2, r.H/2
	y0, y1 := c.rowRange(r.Y, r.Bottom())
	for y := y0; y < y1; y++ {
		dy := (float64(y) + 0.5 - cy) / ry
		if dy*dy > 1 {
			continue
		}
		half := rx * math.Sqrt(1-dy*dy)
		c.span(y, int(math.Ceil(cx-half-0.5)), int(math.Ceil(cx+half-0.5)), col)
	}
}

// FillRoundRect fills a rectangle whose corners are rounded by radius.
func (c *Canvas) FillRoundRect(r Rect, radius float64, col Color) {
	if col.A == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	radius = ClampF(radius, 0, math.Min(r.W, r.H)/2)
	y0, y1 := c.rowRange(r.Y, r.Bottom())
	for y := y0; y < y1; y++ {
		yc := float64(y) + 0.5
		inset := 0.0
		var dy float64
		switch {
		case yc < r.Y+radius:
			dy = r.Y + radius - yc
		case yc > r.Bottom()-radius:
			dy = yc - (r.Bottom() - radius)
		}
		if dy > 0 {
			inset = radius - math.Sqrt(math.Max(0, radius*radius-dy*dy))
		}
		c.span(y, int(math.Ceil(r.X+inset-0.5)), int(math.Ceil(r.Right()-inset-0.5)), col)
	}
}

// asciiRamp orders glyphs from dark to bright.
const asciiRamp = " .:-=+*#%@"

// ASCII renders the canvas as text, one glyph per pixel pair stacked
// vertically so the output keeps the pixel aspect of half-block terminals.
func (c *Canvas) ASCII() string {
	var sb strings.Builder
	sb.Grow(c.width*(c.height/2+1) + c.height)
	for y := 0; y+1 < c.height; y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			l := (c.At(x, y).Luma() + c.At(x, y+1).Luma()) / 2
			idx := Clamp(int(l*float64(len(asciiRamp))), 0, len(asciiRamp)-1)
			sb.WriteByte(asciiRamp[idx])
		}
	}
	return sb.String()
}
