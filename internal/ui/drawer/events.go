package drawer

import (
	"context"
	"fmt"

	"github.com/bnema/drawerpane/internal/domain/entity"
)

// Event is an input event routed to an edge by the host.
type Event interface {
	isEvent()
}

// ToggleEvent is a click on a strip control.
type ToggleEvent struct{ ID entity.ItemID }

// FloatModeEvent flips the float indicator of a control.
type FloatModeEvent struct {
	ID       entity.ItemID
	Selected bool
}

// DragStartEvent starts dragging a control.
type DragStartEvent struct{ ID entity.ItemID }

// DragOverEvent reports the pointer over the strip during a drag.
type DragOverEvent struct {
	Payload Payload
	Pointer entity.Point
}

// DragExitEvent reports the pointer leaving the strip during a drag.
type DragExitEvent struct{}

// DropEvent releases a drag over the strip.
type DropEvent struct {
	Payload Payload
	Pointer entity.Point
}

// DragDoneEvent is delivered to the origin edge when a drag gesture ends.
type DragDoneEvent struct{ Dropped bool }

// DividerPressEvent presses the resize divider.
type DividerPressEvent struct{}

// DividerDragEvent moves the pressed divider. Pointer is the coordinate on
// the axis perpendicular to the edge.
type DividerDragEvent struct{ Pointer float64 }

// DividerReleaseEvent releases the divider.
type DividerReleaseEvent struct{}

func (ToggleEvent) isEvent()         {}
func (FloatModeEvent) isEvent()      {}
func (DragStartEvent) isEvent()      {}
func (DragOverEvent) isEvent()       {}
func (DragExitEvent) isEvent()       {}
func (DropEvent) isEvent()           {}
func (DragDoneEvent) isEvent()       {}
func (DividerPressEvent) isEvent()   {}
func (DividerDragEvent) isEvent()    {}
func (DividerReleaseEvent) isEvent() {}

// Dispatch applies ev to the edge. The boolean reports whether the event was
// accepted: drags and drops the edge refused, and divider moves outside the
// allowed range, return false.
func (m *EdgeManager) Dispatch(ctx context.Context, ev Event) (bool, error) {
	switch e := ev.(type) {
	case ToggleEvent:
		return true, m.Toggle(ctx, e.ID)
	case FloatModeEvent:
		item := m.strip.Item(e.ID)
		if item == nil {
			return false, fmt.Errorf("%w: %s", ErrUnknownItem, e.ID)
		}
		if item.Disabled() {
			return false, nil
		}
		return true, m.SetFloatMode(ctx, item, e.Selected)
	case DragStartEvent:
		if err := m.BeginDrag(ctx, e.ID); err != nil {
			return false, err
		}
		return m.session.Origin() == m, nil
	case DragOverEvent:
		return m.DragOver(e.Payload, e.Pointer), nil
	case DragExitEvent:
		m.DragExit()
		return true, nil
	case DropEvent:
		return m.Drop(ctx, e.Payload, e.Pointer), nil
	case DragDoneEvent:
		return true, m.EndDrag(ctx, e.Dropped)
	case DividerPressEvent:
		return m.DividerPress(), nil
	case DividerDragEvent:
		return m.DividerDrag(e.Pointer), nil
	case DividerReleaseEvent:
		m.DividerRelease()
		return true, nil
	default:
		return false, fmt.Errorf("%w: unsupported event %T", entity.ErrIllegalArgument, ev)
	}
}
