package core

import (
	"strings"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(40, 20)

	if c.Width() != 40 {
		t.Errorf("Width() = %d, expected 40", c.Width())
	}
	if c.Height() != 20 {
		t.Errorf("Height() = %d, expected 20", c.Height())
	}

	c.Clear(ColorSky)
	if c.At(10, 10) != ColorSky {
		t.Errorf("Clear should fill every pixel, got %+v", c.At(10, 10))
	}

	// Out of bounds reads are black
	if c.At(-1, 0) != ColorBlack || c.At(0, 100) != ColorBlack {
		t.Error("Out of bounds At should return black")
	}
}

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(ColorBlack)
	red := RGB(255, 0, 0)
	c.FillRect(Rect{X: 2, Y: 2, W: 3, H: 3}, red)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if c.At(x, y) != red {
				t.Errorf("FillRect: expected red at (%d, %d), got %+v", x, y, c.At(x, y))
			}
		}
	}
	if c.At(1, 1) != ColorBlack || c.At(5, 5) != ColorBlack {
		t.Error("FillRect should not affect outside area")
	}

	// Clipping must not panic
	c.FillRect(Rect{X: -5, Y: -5, W: 100, H: 100}, red)
	if c.At(9, 9) != red {
		t.Error("Clipped FillRect should still cover the canvas")
	}
}

func TestCanvasFillPolygon(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(ColorBlack)
	green := RGB(0, 255, 0)

	// Trapezoid: wide at the bottom, narrow at the top
	quad := []Point{{X: 2, Y: 18}, {X: 18, Y: 18}, {X: 14, Y: 4}, {X: 6, Y: 4}}
	c.FillPolygon(quad, green)

	if c.At(10, 10) != green {
		t.Errorf("Interior pixel should be filled, got %+v", c.At(10, 10))
	}
	if c.At(3, 5) != ColorBlack {
		t.Error("Pixel outside the narrow top should be untouched")
	}
	if c.At(10, 2) != ColorBlack || c.At(10, 19) != ColorBlack {
		t.Error("Pixels above/below the quad should be untouched")
	}
}

func TestCanvasTransparentFillIsNoop(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Clear(ColorWhite)
	c.FillPolygon([]Point{{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}}, Color{R: 255, A: 0})
	c.FillEllipse(Rect{W: 8, H: 8}, Color{G: 255, A: 0})

	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if c.At(x, y) != ColorWhite {
				t.Fatalf("Alpha 0 fill changed pixel (%d, %d) to %+v", x, y, c.At(x, y))
			}
		}
	}
}

func TestCanvasFillEllipseAndRoundRect(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Clear(ColorBlack)
	blue := RGB(0, 0, 255)

	c.FillEllipse(Rect{X: 0, Y: 0, W: 20, H: 20}, blue)
	if c.At(10, 10) != blue {
		t.Error("Ellipse center should be filled")
	}
	if c.At(0, 0) != ColorBlack {
		t.Error("Ellipse corner should be untouched")
	}

	c.Clear(ColorBlack)
	c.FillRoundRect(Rect{X: 0, Y: 0, W: 20, H: 20}, 6, blue)
	if c.At(10, 0) != blue {
		t.Error("Round rect top edge center should be filled")
	}
	if c.At(0, 0) != ColorBlack {
		t.Error("Round rect corner should be cut")
	}
}

func TestCanvasASCII(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Clear(ColorBlack)
	c.FillRect(Rect{X: 0, Y: 0, W: 4, H: 2}, ColorWhite)

	out := c.ASCII()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("ASCII() should produce 2 lines, got %d", len(lines))
	}
	if lines[0] != "@@@@" {
		t.Errorf("Bright row = %q, expected @@@@", lines[0])
	}
	if lines[1] != "    " {
		t.Errorf("Dark row = %q, expected spaces", lines[1])
	}
}
