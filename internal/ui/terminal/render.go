package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/ui/drawer"
)

const (
	glyphClosed   = '○'
	glyphOpen     = '●'
	glyphFloating = '◆'
	glyphGhost    = "⠿ "
)

// paint draws the container, its edges and the floating overlays.
func (m Model) paint() *canvas {
	h := m.containerHeight()
	c := newCanvas(m.width, h)
	f := m.frame()

	paintCenter(c, f.center, m.container.Center())

	for _, e := range entity.Edges {
		edge := m.container.Edge(e)
		if !edge.Visible() {
			continue
		}
		rects := f.edges[e]
		paintSplit(c, m.container, edge, rects.split)
		paintDivider(c, edge, rects.divider)
		paintStrip(c, edge, rects.strip, e == m.focus)
	}

	for _, w := range m.surfaces.Windows() {
		paintWindow(c, w)
	}

	if m.pointer.dragging {
		if item := m.container.Session().Item(); item != nil {
			p := m.pointer.lastPoint
			c.text(int(p.X), int(p.Y), glyphGhost+item.Title(), m.width, classGhost)
		}
	}
	return c
}

func paintCenter(c *canvas, r rect, content any) {
	if r.empty() {
		return
	}
	for i, line := range contentLines(content) {
		if i >= r.h {
			break
		}
		c.text(r.x+1, r.y+i, line, r.w-1, classNormal)
	}
}

func paintStrip(c *canvas, m *drawer.EdgeManager, r rect, focused bool) {
	if r.empty() {
		return
	}
	c.fill(r, ' ', classStrip)
	if focused {
		if m.Edge().IsHorizontal() {
			c.set(r.x+r.w-1, r.y, '•', classMarker)
		} else {
			c.set(r.x, r.y+r.h-1, '•', classMarker)
		}
	}

	extents := m.Strip().Extents()
	for _, ext := range extents {
		item := m.Strip().Item(ext.ID)
		label := controlLabel(item)
		cl := controlClass(item)
		start := int(math.Round(ext.Span.Start))
		if m.Edge().IsHorizontal() {
			c.text(start, r.y, label, int(ext.Span.Length), cl)
		} else {
			c.text(r.x, start, label, r.w, cl)
		}
	}

	idx, ok := m.Marker()
	if !ok {
		return
	}
	at := int(m.Strip().Origin())
	switch {
	case idx < len(extents):
		at = int(extents[idx].Span.Start) - 1
	case len(extents) > 0:
		at = int(math.Ceil(extents[len(extents)-1].Span.End()))
	}
	if m.Edge().IsHorizontal() {
		c.set(max(at, r.x), r.y, '┃', classMarker)
	} else {
		c.hline(r.x, max(at, r.y), r.w, classMarker)
	}
}

func paintSplit(c *canvas, cont *drawer.Container, m *drawer.EdgeManager, r rect) {
	if r.empty() {
		return
	}
	ids := m.Split().Items()
	for i, span := range panelSpans(m, r) {
		item := cont.Lookup(ids[i])
		if item == nil {
			continue
		}
		start := int(math.Round(span.Start))
		end := int(math.Round(span.End()))
		var pr rect
		if m.Edge().IsHorizontal() {
			pr = newRect(start, r.y, end-start, r.h)
		} else {
			pr = newRect(r.x, start, r.w, end-start)
		}
		paintPanel(c, pr, item.Title(), item.Content(), classBorder, classTitle)
	}
}

func paintPanel(c *canvas, r rect, title string, content any, body, titleClass class) {
	c.box(r, title, body, titleClass)
	inner := newRect(r.x+1, r.y+1, r.w-2, r.h-2)
	for i, line := range contentLines(content) {
		if i >= inner.h {
			break
		}
		cl := classNormal
		if body == classOverlay {
			cl = classOverlay
		}
		c.text(inner.x, inner.y+i, line, inner.w, cl)
	}
}

func paintDivider(c *canvas, m *drawer.EdgeManager, r rect) {
	if r.empty() {
		return
	}
	cl := classDivider
	if m.Resizing() {
		cl = classDividerActive
	}
	if m.Edge().IsHorizontal() {
		for y := r.y; y < r.y+r.h; y++ {
			c.hline(r.x, y, r.w, cl)
		}
		return
	}
	for x := r.x; x < r.x+r.w; x++ {
		c.vline(x, r.y, r.h, cl)
	}
}

func paintWindow(c *canvas, w *Window) {
	paintPanel(c, w.bounds(), w.Title(), w.Content(), classOverlay, classOverlayTitle)
	cr := w.closeRect()
	c.text(cr.x, cr.y, closeButton, cr.w, classOverlayTitle)
}

func controlLabel(item *entity.DrawerItem) string {
	glyph := glyphClosed
	switch {
	case item.Floating():
		glyph = glyphFloating
	case item.Visible():
		glyph = glyphOpen
	}
	return string(glyph) + item.Title()
}

func controlClass(item *entity.DrawerItem) class {
	switch {
	case item.Disabled():
		return classDisabled
	case item.Floating():
		return classFloating
	case item.Visible():
		return classOpen
	default:
		return classStrip
	}
}

// contentLines renders arbitrary item content as text.
func contentLines(content any) []string {
	var s string
	switch v := content.(type) {
	case nil:
		return nil
	case string:
		s = v
	case fmt.Stringer:
		s = v.String()
	default:
		s = fmt.Sprint(v)
	}
	return strings.Split(s, "\n")
}
