package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/depthscroll/internal/core"
)

// halfBlock shows the top pixel as foreground and the bottom as background.
const halfBlock = "▀"

// cellColors is the pixel pair shown in one terminal cell.
type cellColors struct {
	top, bottom core.Color
}

// HalfBlockRenderer converts a canvas to styled terminal text. Styles are
// cached per color pair since the scene uses few distinct colors.
type HalfBlockRenderer struct {
	renderer *lipgloss.Renderer
	styles   map[cellColors]lipgloss.Style
}

// NewHalfBlockRenderer creates a renderer. A nil lipgloss renderer uses the
// process default; SSH sessions pass their own so color profiles match the
// client terminal.
func NewHalfBlockRenderer(r *lipgloss.Renderer) *HalfBlockRenderer {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &HalfBlockRenderer{
		renderer: r,
		styles:   make(map[cellColors]lipgloss.Style),
	}
}

func (h *HalfBlockRenderer) style(cc cellColors) lipgloss.Style {
	if st, ok := h.styles[cc]; ok {
		return st
	}
	st := h.renderer.NewStyle().
		Foreground(lipgloss.Color(cc.top.Hex())).
		Background(lipgloss.Color(cc.bottom.Hex()))
	h.styles[cc] = st
	return st
}

// Render converts the canvas to text, one line per two pixel rows.
// Runs of cells with the same color pair share one escape sequence.
func (h *HalfBlockRenderer) Render(c *core.Canvas) string {
	var sb strings.Builder
	rows := c.Height() / 2
	sb.Grow(c.Width()*rows*4 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		y := row * 2

		x := 0
		for x < c.Width() {
			start := cellColors{top: c.At(x, y), bottom: c.At(x, y+1)}
			n := 0
			for x < c.Width() && (cellColors{top: c.At(x, y), bottom: c.At(x, y+1)}) == start {
				n++
				x++
			}
			sb.WriteString(h.style(start).Render(strings.Repeat(halfBlock, n)))
		}
	}
	return sb.String()
}
