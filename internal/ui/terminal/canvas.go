package terminal

import "strings"

type cell struct {
	r     rune
	class class
}

// canvas is a fixed grid of styled cells painted back to front.
type canvas struct {
	w, h  int
	cells []cell
}

func newCanvas(w, h int) *canvas {
	w, h = max(w, 0), max(h, 0)
	c := &canvas{w: w, h: h, cells: make([]cell, w*h)}
	for i := range c.cells {
		c.cells[i] = cell{r: ' '}
	}
	return c
}

func (c *canvas) set(x, y int, r rune, cl class) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = cell{r: r, class: cl}
}

// text writes s from (x, y) clipped to width cells.
func (c *canvas) text(x, y int, s string, width int, cl class) {
	i := 0
	for _, r := range s {
		if i >= width {
			return
		}
		c.set(x+i, y, r, cl)
		i++
	}
}

func (c *canvas) fill(r rect, ch rune, cl class) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			c.set(x, y, ch, cl)
		}
	}
}

func (c *canvas) hline(x, y, w int, cl class) {
	for i := range w {
		c.set(x+i, y, '─', cl)
	}
}

func (c *canvas) vline(x, y, h int, cl class) {
	for i := range h {
		c.set(x, y+i, '│', cl)
	}
}

// box draws a bordered rectangle with title on the top border.
func (c *canvas) box(r rect, title string, body, titleClass class) {
	if r.w < 2 || r.h < 2 {
		return
	}
	c.fill(r, ' ', body)
	c.hline(r.x+1, r.y, r.w-2, body)
	c.hline(r.x+1, r.y+r.h-1, r.w-2, body)
	c.vline(r.x, r.y+1, r.h-2, body)
	c.vline(r.x+r.w-1, r.y+1, r.h-2, body)
	c.set(r.x, r.y, '┌', body)
	c.set(r.x+r.w-1, r.y, '┐', body)
	c.set(r.x, r.y+r.h-1, '└', body)
	c.set(r.x+r.w-1, r.y+r.h-1, '┘', body)
	if title != "" {
		c.text(r.x+2, r.y, " "+title+" ", r.w-4, titleClass)
	}
}

// render paints the grid, grouping runs of equal style.
func (c *canvas) render(styles Styles) string {
	var sb strings.Builder
	var run []rune
	for y := range c.h {
		row := c.cells[y*c.w : (y+1)*c.w]
		for x := 0; x < len(row); {
			cl := row[x].class
			run = run[:0]
			for x < len(row) && row[x].class == cl {
				run = append(run, row[x].r)
				x++
			}
			sb.WriteString(styles.of(cl).Render(string(run)))
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// plain returns the grid without styling. Used by tests.
func (c *canvas) plain() string {
	var sb strings.Builder
	for y := range c.h {
		for x := range c.w {
			sb.WriteRune(c.cells[y*c.w+x].r)
		}
		if y < c.h-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
