package drawer

import (
	"slices"

	"github.com/bnema/drawerpane/internal/domain/entity"
)

// ControlExtent is the rendered extent of one strip control along the
// strip's primary axis.
type ControlExtent struct {
	ID   entity.ItemID
	Span entity.Span
}

// control is the view-model entry for one toggle control.
type control struct {
	item   *entity.DrawerItem
	handle any
	length float64
	lifted bool
}

// Strip is the ordered row (or column) of toggle controls of an edge. It is
// the edge's ownership record: an item is on an edge iff it is in its strip.
// Controls are addressed by item identity; the host may bind an opaque
// handle to each one.
type Strip struct {
	controls      []*control
	byID          map[entity.ItemID]*control
	origin        float64
	spacing       float64
	defaultLength float64
}

// NewStrip creates an empty strip whose controls default to defaultLength
// along the strip axis, separated by spacing.
func NewStrip(defaultLength, spacing float64) *Strip {
	if defaultLength <= 0 {
		defaultLength = 1
	}
	if spacing < 0 {
		spacing = 0
	}
	return &Strip{
		byID:          make(map[entity.ItemID]*control),
		defaultLength: defaultLength,
		spacing:       spacing,
	}
}

// Len returns the number of items owned by the strip, lifted ones included.
func (s *Strip) Len() int {
	return len(s.controls)
}

// Items returns the owned items in strip order.
func (s *Strip) Items() []*entity.DrawerItem {
	items := make([]*entity.DrawerItem, len(s.controls))
	for i, c := range s.controls {
		items[i] = c.item
	}
	return items
}

// Contains reports whether the strip owns id.
func (s *Strip) Contains(id entity.ItemID) bool {
	_, ok := s.byID[id]
	return ok
}

// Item returns the owned item with id, or nil.
func (s *Strip) Item(id entity.ItemID) *entity.DrawerItem {
	if c, ok := s.byID[id]; ok {
		return c.item
	}
	return nil
}

// IndexOf returns the strip index of id, or -1.
func (s *Strip) IndexOf(id entity.ItemID) int {
	return slices.IndexFunc(s.controls, func(c *control) bool { return c.item.ID() == id })
}

// Insert places item at index, clamped to [0, Len]. An item already owned
// is moved.
func (s *Strip) Insert(item *entity.DrawerItem, index int) int {
	c, ok := s.byID[item.ID()]
	if ok {
		s.Remove(item.ID())
		c.lifted = false
	} else {
		c = &control{item: item, length: s.defaultLength}
	}

	index = max(0, min(index, len(s.controls)))
	s.controls = slices.Insert(s.controls, index, c)
	s.byID[item.ID()] = c
	return index
}

// Remove drops id from the strip and returns the index it held, or -1.
func (s *Strip) Remove(id entity.ItemID) int {
	i := s.IndexOf(id)
	if i < 0 {
		return -1
	}
	s.controls = slices.Delete(s.controls, i, i+1)
	delete(s.byID, id)
	return i
}

// Lift hides the control of id from the displayed strip while keeping
// ownership. Used while the control is being dragged.
func (s *Strip) Lift(id entity.ItemID) bool {
	c, ok := s.byID[id]
	if !ok {
		return false
	}
	c.lifted = true
	return true
}

// Unlift returns a lifted control to the displayed strip.
func (s *Strip) Unlift(id entity.ItemID) {
	if c, ok := s.byID[id]; ok {
		c.lifted = false
	}
}

// Lifted reports whether the control of id is lifted.
func (s *Strip) Lifted(id entity.ItemID) bool {
	c, ok := s.byID[id]
	return ok && c.lifted
}

// Displayed returns the items whose controls are shown, in strip order.
func (s *Strip) Displayed() []*entity.DrawerItem {
	items := make([]*entity.DrawerItem, 0, len(s.controls))
	for _, c := range s.controls {
		if !c.lifted {
			items = append(items, c.item)
		}
	}
	return items
}

// SetOrigin sets the coordinate where the first control starts.
func (s *Strip) SetOrigin(origin float64) {
	s.origin = origin
}

// Origin returns the coordinate where the first control starts.
func (s *Strip) Origin() float64 {
	return s.origin
}

// SetControlLength records the rendered length of the control of id.
func (s *Strip) SetControlLength(id entity.ItemID, length float64) {
	if c, ok := s.byID[id]; ok && length > 0 {
		c.length = length
	}
}

// BindHandle attaches an opaque host handle to the control of id.
func (s *Strip) BindHandle(id entity.ItemID, handle any) {
	if c, ok := s.byID[id]; ok {
		c.handle = handle
	}
}

// Handle returns the host handle bound to the control of id.
func (s *Strip) Handle(id entity.ItemID) any {
	if c, ok := s.byID[id]; ok {
		return c.handle
	}
	return nil
}

// Extents lays out the displayed controls from the origin and returns
// their extents in strip order.
func (s *Strip) Extents() []ControlExtent {
	extents := make([]ControlExtent, 0, len(s.controls))
	pos := s.origin
	for _, c := range s.controls {
		if c.lifted {
			continue
		}
		extents = append(extents, ControlExtent{
			ID:   c.item.ID(),
			Span: entity.Span{Start: pos, Length: c.length},
		})
		pos += c.length + s.spacing
	}
	return extents
}

// InsertionIndex returns the index among displayed controls of the first
// control whose center exceeds coord, or the displayed count if none does.
func (s *Strip) InsertionIndex(coord float64) int {
	extents := s.Extents()
	for i, e := range extents {
		if e.Span.Center() > coord {
			return i
		}
	}
	return len(extents)
}

// ControlAt returns the displayed control under coord.
func (s *Strip) ControlAt(coord float64) (entity.ItemID, bool) {
	for _, e := range s.Extents() {
		if e.Span.Contains(coord) {
			return e.ID, true
		}
	}
	return "", false
}
