package render

import "github.com/vovakirdan/depthscroll/internal/core"

// Rasterize executes commands on a pixel canvas. Canvases carry no images,
// so OpImage falls back to its bounding rectangle.
func Rasterize(c *core.Canvas, cmds []Command) {
	for _, cmd := range cmds {
		switch cmd.Op {
		case OpRect, OpImage:
			c.FillRect(cmd.Rect, cmd.Color)
		case OpQuad:
			c.FillQuad(cmd.Points, cmd.Color)
		case OpEllipse:
			c.FillEllipse(cmd.Rect, cmd.Color)
		case OpRoundRect:
			c.FillRoundRect(cmd.Rect, cmd.Radius, cmd.Color)
		}
	}
}
