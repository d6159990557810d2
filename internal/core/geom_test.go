package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 5, Y: 5, W: 10, H: 10},
			expected: true,
		},
		{
			name:     "non-overlapping horizontal",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 15, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "adjacent (no overlap)",
			a:        Rect{X: 0, Y: 0, W: 10, H: 10},
			b:        Rect{X: 10, Y: 0, W: 10, H: 10},
			expected: false,
		},
		{
			name:     "contained rect",
			a:        Rect{X: 0, Y: 0, W: 20, H: 20},
			b:        Rect{X: 5, Y: 5, W: 5, H: 5},
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected float64
	}{
		{"below range", 0.1, 0},
		{"at start", 0.2, 0},
		{"midpoint", 0.5, 0.5},
		{"at end", 0.8, 1},
		{"above range", 0.95, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Smoothstep(0.2, 0.8, tc.x); !AlmostEqual(got, tc.expected, 1e-9) {
				t.Errorf("Smoothstep(0.2, 0.8, %f) = %f, expected %f", tc.x, got, tc.expected)
			}
		})
	}

	// Monotonic across the ramp
	prev := -1.0
	for i := 0; i <= 100; i++ {
		v := Smoothstep(0.2, 0.8, float64(i)/100)
		if v < prev {
			t.Fatalf("Smoothstep not monotonic at %d: %f < %f", i, v, prev)
		}
		prev = v
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(10, 20, 0.25) = %f, expected 12.5", got)
	}
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp at t=0 should return a, got %f", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp at t=1 should return b, got %f", got)
	}
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#3f7d3a")
	if err != nil {
		t.Fatalf("ParseHex() failed: %v", err)
	}
	if c != RGB(0x3f, 0x7d, 0x3a) {
		t.Errorf("ParseHex() = %+v", c)
	}
	if c.Hex() != "#3f7d3a" {
		t.Errorf("Hex() = %q, expected #3f7d3a", c.Hex())
	}

	c, err = ParseHex("#ff000080")
	if err != nil {
		t.Fatalf("ParseHex() with alpha failed: %v", err)
	}
	if c.A != 0x80 {
		t.Errorf("Alpha = %d, expected 128", c.A)
	}

	if _, err := ParseHex("green"); err == nil {
		t.Error("ParseHex should reject named colors")
	}
}

func TestHexOr(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected Color
	}{
		{"valid", "#102030", RGB(0x10, 0x20, 0x30)},
		{"named color", "green", ColorSky},
		{"empty", "", ColorSky},
		{"bad digits", "#zzzzzz", ColorSky},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := HexOr(tc.in, ColorSky); got != tc.expected {
				t.Errorf("HexOr(%q) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColorOver(t *testing.T) {
	dst := RGB(0, 0, 0)
	if got := dst.Over(Color{R: 255, A: 0}); got != dst {
		t.Errorf("Transparent src should leave dst, got %+v", got)
	}
	if got := dst.Over(RGB(10, 20, 30)); got != RGB(10, 20, 30) {
		t.Errorf("Opaque src should replace dst, got %+v", got)
	}
	half := dst.Over(Color{R: 200, A: 128})
	if half.R < 95 || half.R > 105 {
		t.Errorf("Half alpha blend R = %d, expected ~100", half.R)
	}
}
