package drawer

import (
	"errors"
	"fmt"

	"github.com/bnema/drawerpane/internal/domain/entity"
)

// DataFormat tags a drag payload as a drawer item drag. Drops carrying any
// other format are ignored by every edge.
const DataFormat = "application/x-drawerpane-item"

var (
	// ErrDragInProgress is returned when a drag starts while another is in flight.
	ErrDragInProgress = errors.New("drag already in progress")
	// ErrUnknownItem is returned when an event names an item the edge does not hold.
	ErrUnknownItem = errors.New("unknown item")
)

// Payload is the data carried by a drag operation.
type Payload struct {
	Format string
	ItemID entity.ItemID
}

// NewPayload returns the payload for dragging item id.
func NewPayload(id entity.ItemID) Payload {
	return Payload{Format: DataFormat, ItemID: id}
}

// IsDrawerItem reports whether p carries the drawer item marker.
func (p Payload) IsDrawerItem() bool {
	return p.Format == DataFormat
}

// DragSession is the single, container-wide slot holding the item being
// dragged. Only one drag may be in flight.
type DragSession struct {
	item        *entity.DrawerItem
	origin      *EdgeManager
	originIndex int
}

// NewDragSession creates an empty drag session.
func NewDragSession() *DragSession {
	return &DragSession{originIndex: -1}
}

// Begin records the dragged item, the edge it was lifted from and its strip index.
func (s *DragSession) Begin(item *entity.DrawerItem, origin *EdgeManager, index int) error {
	if item == nil {
		return fmt.Errorf("%w: nil item", entity.ErrIllegalArgument)
	}
	if s.item != nil {
		return fmt.Errorf("%w: %s is in flight", ErrDragInProgress, s.item)
	}
	s.item = item
	s.origin = origin
	s.originIndex = index
	return nil
}

// Active reports whether a drag is in flight.
func (s *DragSession) Active() bool {
	return s.item != nil
}

// Item returns the dragged item, or nil.
func (s *DragSession) Item() *entity.DrawerItem {
	return s.item
}

// Origin returns the edge the item was lifted from, or nil.
func (s *DragSession) Origin() *EdgeManager {
	return s.origin
}

// OriginIndex returns the strip index the item was lifted from, or -1.
func (s *DragSession) OriginIndex() int {
	return s.originIndex
}

// Clear empties the slot.
func (s *DragSession) Clear() {
	s.item = nil
	s.origin = nil
	s.originIndex = -1
}
