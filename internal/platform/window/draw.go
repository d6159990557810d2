package window

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/depthscroll/internal/core"
	"github.com/vovakirdan/depthscroll/internal/render"
)

// ellipseSegments is the polygon resolution of filled ellipses.
const ellipseSegments = 32

// painter executes draw commands on an ebiten image.
type painter struct {
	images   Images
	whiteImg *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newPainter(images Images) *painter {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &painter{images: images, whiteImg: white}
}

func rgba(c core.Color) color.RGBA {
	// vector expects premultiplied color
	a := uint32(c.A)
	return color.RGBA{
		R: uint8(uint32(c.R) * a / 255),
		G: uint8(uint32(c.G) * a / 255),
		B: uint8(uint32(c.B) * a / 255),
		A: c.A,
	}
}

func (p *painter) draw(dst *ebiten.Image, cmds []render.Command) {
	for _, cmd := range cmds {
		switch cmd.Op {
		case render.OpRect:
			r := cmd.Rect
			vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(cmd.Color), false)
		case render.OpQuad:
			var path vector.Path
			path.MoveTo(float32(cmd.Points[0].X), float32(cmd.Points[0].Y))
			for _, pt := range cmd.Points[1:] {
				path.LineTo(float32(pt.X), float32(pt.Y))
			}
			path.Close()
			p.fill(dst, &path, cmd.Color)
		case render.OpEllipse:
			p.fill(dst, ellipsePath(cmd.Rect), cmd.Color)
		case render.OpRoundRect:
			p.fill(dst, roundRectPath(cmd.Rect, cmd.Radius), cmd.Color)
		case render.OpImage:
			p.image(dst, cmd)
		}
	}
}

// fill rasterizes a closed path with a flat color through DrawTriangles.
// Vertex colors are straight alpha, the default color scale mode.
func (p *painter) fill(dst *ebiten.Image, path *vector.Path, c core.Color) {
	if c.A == 0 {
		return
	}
	p.vertices, p.indices = path.AppendVerticesAndIndicesForFilling(p.vertices[:0], p.indices[:0])
	r, g, b, a := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range p.vertices {
		p.vertices[i].SrcX = 0.5
		p.vertices[i].SrcY = 0.5
		p.vertices[i].ColorR = r
		p.vertices[i].ColorG = g
		p.vertices[i].ColorB = b
		p.vertices[i].ColorA = a
	}
	dst.DrawTriangles(p.vertices, p.indices, p.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// image draws a sprite scaled into the command rect, rotated about its
// center. Missing images fall back to a flat rect.
func (p *painter) image(dst *ebiten.Image, cmd render.Command) {
	img := p.images[cmd.Asset]
	if img == nil {
		r := cmd.Rect
		vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(cmd.Color), false)
		return
	}

	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	r := cmd.Rect

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-iw/2, -ih/2)
	op.GeoM.Scale(r.W/iw, r.H/ih)
	op.GeoM.Rotate(cmd.Rotation)
	op.GeoM.Translate(r.X+r.W/2, r.Y+r.H/2)
	op.ColorScale.ScaleAlpha(float32(cmd.Alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func ellipsePath(r core.Rect) *vector.Path {
	var path vector.Path
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		x := float32(cx + r.W/2*math.Cos(a))
		y := float32(cy + r.H/2*math.Sin(a))
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()
	return &path
}

func roundRectPath(r core.Rect, radius float64) *vector.Path {
	radius = core.ClampF(radius, 0, math.Min(r.W, r.H)/2)
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.Right()), float32(r.Bottom())
	rad := float32(radius)

	var path vector.Path
	path.MoveTo(x0+rad, y0)
	path.LineTo(x1-rad, y0)
	path.ArcTo(x1, y0, x1, y0+rad, rad)
	path.LineTo(x1, y1-rad)
	path.ArcTo(x1, y1, x1-rad, y1, rad)
	path.LineTo(x0+rad, y1)
	path.ArcTo(x0, y1, x0, y1-rad, rad)
	path.LineTo(x0, y0+rad)
	path.ArcTo(x0, y0, x0+rad, y0, rad)
	path.Close()
	return &path
}
