package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/servicestudio/shell/internal/domain/entity"
)

type styleID int

const (
	styleDesktop styleID = iota
	styleBody
	styleBorder
	styleBorderFront
	styleStrip
	styleHeaderImage
	styleTab
	styleTabActive
	styleTabHidden
	styleTabFixed
	styleGhostTab
	styleGhostFacsimile
	styleCount
)

type cell struct {
	r     rune
	style styleID
}

// canvas is a grid of styled cells drawn back to front.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' ', style: styleDesktop}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, style styleID) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, style: style}
}

func (c *canvas) fill(r entity.Rect, ch rune, style styleID) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.set(x, y, ch, style)
		}
	}
}

// text writes s from (x, y), cut to limit cells.
func (c *canvas) text(x, y, limit int, s string, style styleID) {
	s = runewidth.Truncate(s, limit, "…")
	for _, r := range s {
		if limit <= 0 {
			return
		}
		c.set(x, y, r, style)
		x++
		limit--
	}
}

// box draws a frame along the edges of r.
func (c *canvas) box(r entity.Rect, border lipgloss.Border, style styleID) {
	if r.W < 2 || r.H < 2 {
		return
	}
	first := func(s string) rune {
		for _, ch := range s {
			return ch
		}
		return ' '
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		c.set(x, r.Y, first(border.Top), style)
		c.set(x, bottom, first(border.Bottom), style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		c.set(r.X, y, first(border.Left), style)
		c.set(right, y, first(border.Right), style)
	}
	c.set(r.X, r.Y, first(border.TopLeft), style)
	c.set(right, r.Y, first(border.TopRight), style)
	c.set(r.X, bottom, first(border.BottomLeft), style)
	c.set(right, bottom, first(border.BottomRight), style)
}

// render joins rows, styling each run of equal cells once.
func (c *canvas) render(styles [styleCount]lipgloss.Style) string {
	var out strings.Builder
	var run strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := c.cells[y*c.w : (y+1)*c.w]
		for x := 0; x < len(row); {
			style := row[x].style
			run.Reset()
			for x < len(row) && row[x].style == style {
				run.WriteRune(row[x].r)
				x++
			}
			out.WriteString(styles[style].Render(run.String()))
		}
	}
	return out.String()
}

// plain returns the canvas text without styling.
func (c *canvas) plain() string {
	var out strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		for _, cl := range c.cells[y*c.w : (y+1)*c.w] {
			out.WriteRune(cl.r)
		}
	}
	return out.String()
}
