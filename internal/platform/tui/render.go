package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// halfBlock draws the top pixel as foreground and the bottom as background.
const halfBlock = "▀"

// cellColors is the pixel pair shown by one terminal cell.
type cellColors struct {
	top, bottom core.Color
}

// Renderer converts pixel frames to styled terminal text.
// Styles are cached per color pair.
type Renderer struct {
	styles map[cellColors]lipgloss.Style
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(map[cellColors]lipgloss.Style)}
}

func (r *Renderer) style(c cellColors) lipgloss.Style {
	if s, ok := r.styles[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.top.Hex())).
		Background(lipgloss.Color(c.bottom.Hex()))
	r.styles[c] = s
	return s
}

// Scale returns the pixel block size needed to fit a w×h frame into
// cols×rows terminal cells, two pixel rows per cell.
func Scale(w, h, cols, rows int) int {
	if cols <= 0 || rows <= 0 {
		return 1
	}
	f := max((w+cols-1)/cols, (h+2*rows-1)/(2*rows))
	return max(f, 1)
}

// Frame renders s scaled down by factor f. Each f×f block shows the first
// pixel that differs from bg, so small objects survive downscaling.
// Adjacent cells with the same colors share one escape sequence.
func (r *Renderer) Frame(s *core.Screen, bg core.Color, f int) string {
	if f < 1 {
		f = 1
	}
	cols := (s.Width() + f - 1) / f
	pixRows := (s.Height() + f - 1) / f

	var sb strings.Builder
	sb.Grow(cols * (pixRows/2 + 1) * 4)

	for py := 0; py < pixRows; py += 2 {
		if py > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < cols {
			start := r.cell(s, bg, f, x, py)

			var run strings.Builder
			for x < cols && r.cell(s, bg, f, x, py) == start {
				run.WriteString(halfBlock)
				x++
			}
			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// cell returns the colors of terminal cell (cx, py/2).
func (r *Renderer) cell(s *core.Screen, bg core.Color, f, cx, py int) cellColors {
	return cellColors{
		top:    sampleBlock(s, bg, cx*f, py*f, f),
		bottom: sampleBlock(s, bg, cx*f, (py+1)*f, f),
	}
}

// sampleBlock picks the color representing an f×f pixel block.
// Pixels outside the screen read as black.
func sampleBlock(s *core.Screen, bg core.Color, x0, y0, f int) core.Color {
	first := s.Get(x0, y0)
	if f == 1 || first != bg {
		return first
	}
	for y := y0; y < y0+f && y < s.Height(); y++ {
		for x := x0; x < x0+f && x < s.Width(); x++ {
			if c := s.Get(x, y); c != bg {
				return c
			}
		}
	}
	return first
}
