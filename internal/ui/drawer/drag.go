package drawer

import (
	"context"
	"fmt"

	"github.com/bnema/drawerpane/internal/domain/entity"
)

// BeginDrag lifts the control of id out of the strip and records it in the
// shared drag session. Disabled items cannot be dragged.
func (m *EdgeManager) BeginDrag(ctx context.Context, id entity.ItemID) error {
	item := m.strip.Item(id)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	if item.Disabled() || !m.visible {
		return nil
	}

	if err := m.session.Begin(item, m, m.strip.IndexOf(id)); err != nil {
		return err
	}
	m.strip.Lift(id)

	m.logger.Debug().Str("item_id", string(id)).Int("index", m.session.OriginIndex()).Msg("drag started")
	return nil
}

// accepts reports whether a drag carrying payload may be dropped here.
func (m *EdgeManager) accepts(payload Payload) bool {
	if !m.visible || !payload.IsDrawerItem() || !m.session.Active() {
		return false
	}
	item := m.session.Item()
	if payload.ItemID != "" && payload.ItemID != item.ID() {
		return false
	}
	return item.AllowsEdge(m.edge)
}

// axis returns the pointer coordinate along the strip axis.
func (m *EdgeManager) axis(pointer entity.Point) float64 {
	if m.edge.IsHorizontal() {
		return pointer.X
	}
	return pointer.Y
}

// DragOver moves the insertion marker under pointer. It returns false when
// the drag is not acceptable on this edge.
func (m *EdgeManager) DragOver(payload Payload, pointer entity.Point) bool {
	if !m.accepts(payload) {
		return false
	}
	m.marker = m.strip.InsertionIndex(m.axis(pointer))
	return true
}

// DragExit removes the insertion marker.
func (m *EdgeManager) DragExit() {
	m.marker = -1
}

// Marker returns the index of the insertion marker among displayed controls.
func (m *EdgeManager) Marker() (int, bool) {
	return m.marker, m.marker >= 0
}

// Drop completes the drag on this edge: the item is taken from its origin
// edge and inserted at the index under pointer. It returns false when the
// drop is refused, leaving the session to the drag-done handler.
func (m *EdgeManager) Drop(ctx context.Context, payload Payload, pointer entity.Point) bool {
	if !m.accepts(payload) {
		return false
	}

	item := m.session.Item()
	origin := m.session.Origin()
	index := m.strip.InsertionIndex(m.axis(pointer))

	if origin != nil && origin != m {
		origin.release(item)
		origin.marker = -1
	} else {
		m.strip.Remove(item.ID())
	}
	at := m.strip.Insert(item, index)
	m.session.Clear()
	m.marker = -1

	if m.singleOpen && item.Visible() && !item.Floating() {
		m.closeOthers(item)
	}
	m.relayout()

	m.logger.Debug().Str("item_id", string(item.ID())).Int("index", at).Msg("item dropped")
	return true
}

// EndDrag runs on the origin edge when the drag gesture finishes. If no edge
// accepted the drop, the item goes back to the index it was lifted from and,
// when floatable, switches to float mode.
func (m *EdgeManager) EndDrag(ctx context.Context, dropped bool) error {
	if !m.session.Active() || m.session.Origin() != m {
		return nil
	}

	item := m.session.Item()
	index := m.session.OriginIndex()
	m.session.Clear()
	m.marker = -1

	m.strip.Remove(item.ID())
	m.strip.Insert(item, index)
	m.relayout()

	m.logger.Debug().
		Str("item_id", string(item.ID())).
		Bool("dropped", dropped).
		Int("index", index).
		Msg("drag cancelled")

	if !item.Floatable() {
		return nil
	}
	return m.SetFloatMode(ctx, item, true)
}
