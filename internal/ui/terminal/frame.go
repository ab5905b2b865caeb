package terminal

import (
	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/ui/drawer"
)

type rect struct {
	x, y, w, h int
}

func newRect(x, y, w, h int) rect {
	return rect{x: x, y: y, w: max(w, 0), h: max(h, 0)}
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && y >= r.y && x < r.x+r.w && y < r.y+r.h
}

func (r rect) empty() bool {
	return r.w == 0 || r.h == 0
}

// edgeRects are the screen areas of one edge.
type edgeRects struct {
	strip   rect
	split   rect
	divider rect
}

// frame is the screen layout of the container: every edge plus the center.
type frame struct {
	edges  map[entity.Edge]edgeRects
	center rect
}

type edgeExtent struct {
	strip, split, divider int
}

func measure(m *drawer.EdgeManager) edgeExtent {
	if !m.Visible() {
		return edgeExtent{}
	}
	ext := edgeExtent{strip: int(m.StripThickness())}
	if m.Split().Shown() {
		ext.split = int(m.Split().Size())
		ext.divider = int(m.DividerWidth())
	}
	return ext
}

func (e edgeExtent) total() int { return e.strip + e.split + e.divider }

// layoutFrame lays the container out on a w by h grid. Top and bottom span
// the width between the side strips; left and right fill the rows between
// the top and bottom regions.
func layoutFrame(c *drawer.Container, w, h int) frame {
	top := measure(c.Edge(entity.EdgeTop))
	bottom := measure(c.Edge(entity.EdgeBottom))
	left := measure(c.Edge(entity.EdgeLeft))
	right := measure(c.Edge(entity.EdgeRight))

	innerX, innerW := left.strip, w-left.strip-right.strip
	topEnd := top.total()
	bottomStart := h - bottom.total()
	middle := bottomStart - topEnd

	f := frame{edges: make(map[entity.Edge]edgeRects, len(entity.Edges))}

	f.edges[entity.EdgeTop] = edgeRects{
		strip:   newRect(innerX, 0, innerW, top.strip),
		split:   newRect(innerX, top.strip, innerW, top.split),
		divider: newRect(innerX, top.strip+top.split, innerW, top.divider),
	}
	f.edges[entity.EdgeBottom] = edgeRects{
		strip:   newRect(innerX, h-bottom.strip, innerW, bottom.strip),
		split:   newRect(innerX, h-bottom.strip-bottom.split, innerW, bottom.split),
		divider: newRect(innerX, bottomStart, innerW, bottom.divider),
	}
	f.edges[entity.EdgeLeft] = edgeRects{
		strip:   newRect(0, top.strip, left.strip, h-top.strip-bottom.strip),
		split:   newRect(left.strip, topEnd, left.split, middle),
		divider: newRect(left.strip+left.split, topEnd, left.divider, middle),
	}
	f.edges[entity.EdgeRight] = edgeRects{
		strip:   newRect(w-right.strip, top.strip, right.strip, h-top.strip-bottom.strip),
		split:   newRect(w-right.strip-right.split, topEnd, right.split, middle),
		divider: newRect(w-right.total(), topEnd, right.divider, middle),
	}

	f.center = newRect(left.total(), topEnd, w-left.total()-right.total(), middle)
	return f
}

// syncStrips aligns each strip's coordinate origin with its screen position
// so the engine's insertion index matches what is drawn.
func syncStrips(c *drawer.Container, f frame) {
	for _, e := range entity.Edges {
		r := f.edges[e].strip
		if e.IsHorizontal() {
			c.Edge(e).Strip().SetOrigin(float64(r.x))
		} else {
			c.Edge(e).Strip().SetOrigin(float64(r.y))
		}
	}
}

type hitKind int

const (
	hitNone hitKind = iota
	hitControl
	hitStrip
	hitDivider
	hitPanel
	hitCenter
	hitWindowBody
	hitWindowTitle
	hitWindowClose
)

type hit struct {
	kind   hitKind
	edge   entity.Edge
	item   entity.ItemID
	window *Window
}

// hitTest resolves what lies under (x, y), floating windows first.
func hitTest(c *drawer.Container, s *Surfaces, f frame, x, y int) hit {
	if s != nil {
		if w, part := s.At(x, y); w != nil {
			return hit{kind: part, window: w, item: w.ItemID()}
		}
	}

	for _, e := range entity.Edges {
		m := c.Edge(e)
		if !m.Visible() {
			continue
		}
		rects := f.edges[e]
		switch {
		case rects.strip.contains(x, y):
			coord := float64(y)
			if e.IsHorizontal() {
				coord = float64(x)
			}
			if id, ok := m.Strip().ControlAt(coord); ok {
				return hit{kind: hitControl, edge: e, item: id}
			}
			return hit{kind: hitStrip, edge: e}
		case rects.divider.contains(x, y):
			return hit{kind: hitDivider, edge: e}
		case rects.split.contains(x, y):
			return hit{kind: hitPanel, edge: e, item: panelAt(m, rects.split, x, y)}
		}
	}

	if f.center.contains(x, y) {
		return hit{kind: hitCenter}
	}
	return hit{}
}

func panelAt(m *drawer.EdgeManager, r rect, x, y int) entity.ItemID {
	items := m.Split().Items()
	spans := panelSpans(m, r)
	coord := float64(y)
	if m.Edge().IsHorizontal() {
		coord = float64(x)
	}
	for i, span := range spans {
		if span.Contains(coord) {
			return items[i]
		}
	}
	return ""
}

func panelSpans(m *drawer.EdgeManager, r rect) []entity.Span {
	if m.Edge().IsHorizontal() {
		return m.Split().PanelSpans(float64(r.x), float64(r.w))
	}
	return m.Split().PanelSpans(float64(r.y), float64(r.h))
}
