package drawer

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/logging"
	"github.com/bnema/drawerpane/internal/ui/layout"
)

// EdgeOptions configures the geometry and policy of one edge.
type EdgeOptions struct {
	MaxSplitFraction float64
	SplitSize        float64
	DividerWidth     float64
	StripThickness   float64
	ControlLength    float64
	ControlSpacing   float64
	SingleOpen       bool
	Hidden           bool
}

// DefaultEdgeOptions returns the defaults for edge e.
func DefaultEdgeOptions(e entity.Edge) EdgeOptions {
	opts := EdgeOptions{
		MaxSplitFraction: 0.30,
		SplitSize:        30,
		DividerWidth:     1,
		StripThickness:   1,
		ControlLength:    8,
		ControlSpacing:   1,
	}
	if !e.IsHorizontal() {
		opts.StripThickness = 3
		opts.ControlLength = 1
	}
	return opts
}

// EdgeManager owns the strip, the split region and the drag and resize
// behavior of one edge. It is not safe for concurrent use; every call must
// come from the host's event loop.
type EdgeManager struct {
	edge    entity.Edge
	strip   *Strip
	split   *layout.SplitRegion
	session *DragSession
	floats  *FloatingController

	singleOpen     bool
	visible        bool
	marker         int
	resizing       bool
	dividerWidth   float64
	stripThickness float64
	width, height  float64

	logger zerolog.Logger
}

// NewEdgeManager creates the manager of edge e sharing session and floats
// with the other edges of the container.
func NewEdgeManager(ctx context.Context, e entity.Edge, session *DragSession, floats *FloatingController, opts EdgeOptions) *EdgeManager {
	log := logging.FromContext(ctx)

	orientation := layout.OrientationHorizontal
	if !e.IsHorizontal() {
		orientation = layout.OrientationVertical
	}

	return &EdgeManager{
		edge:           e,
		strip:          NewStrip(opts.ControlLength, opts.ControlSpacing),
		split:          layout.NewSplitRegion(orientation, opts.SplitSize, opts.MaxSplitFraction),
		session:        session,
		floats:         floats,
		singleOpen:     opts.SingleOpen,
		visible:        !opts.Hidden,
		marker:         -1,
		dividerWidth:   opts.DividerWidth,
		stripThickness: opts.StripThickness,
		logger:         log.With().Str("component", "edge").Str("edge", e.String()).Logger(),
	}
}

// Edge returns the side this manager handles.
func (m *EdgeManager) Edge() entity.Edge { return m.edge }

// Strip returns the toggle strip view-model.
func (m *EdgeManager) Strip() *Strip { return m.strip }

// Split returns the split region geometry.
func (m *EdgeManager) Split() *layout.SplitRegion { return m.split }

// Items returns the items of the strip in order.
func (m *EdgeManager) Items() []*entity.DrawerItem {
	return m.strip.Items()
}

// Contains reports whether item is owned by this edge.
func (m *EdgeManager) Contains(item *entity.DrawerItem) bool {
	return item != nil && m.strip.Contains(item.ID())
}

// OpenDocked returns the open, non-floating items in strip order. This is
// exactly the content of the split region.
func (m *EdgeManager) OpenDocked() []*entity.DrawerItem {
	var docked []*entity.DrawerItem
	for _, item := range m.strip.Items() {
		if item.Visible() && !item.Floating() {
			docked = append(docked, item)
		}
	}
	return docked
}

// AddItem appends item to the end of the strip.
func (m *EdgeManager) AddItem(ctx context.Context, item *entity.DrawerItem) {
	m.InsertItem(ctx, item, m.strip.Len())
}

// InsertItem places item at index in the strip. A nil item is ignored.
func (m *EdgeManager) InsertItem(ctx context.Context, item *entity.DrawerItem, index int) {
	if item == nil {
		return
	}

	at := m.strip.Insert(item, index)
	m.logger.Debug().Str("item_id", string(item.ID())).Int("index", at).Msg("item added")

	m.relayout()
}

// RemoveItem drops item from this edge, closing its floating surface.
// Absent items are ignored.
func (m *EdgeManager) RemoveItem(ctx context.Context, item *entity.DrawerItem) {
	if !m.Contains(item) {
		return
	}

	m.floats.closeWindow(ctx, item)
	if m.session.Item() == item {
		m.session.Clear()
		m.marker = -1
	}
	m.strip.Remove(item.ID())
	m.logger.Debug().Str("item_id", string(item.ID())).Msg("item removed")

	m.relayout()
}

// release drops item from the strip without touching its floating surface.
// It is the origin half of a cross-edge transfer.
func (m *EdgeManager) release(item *entity.DrawerItem) {
	if m.strip.Remove(item.ID()) < 0 {
		return
	}
	m.relayout()
}

// SetOpenState opens or closes item. Opening a floating item asks for a
// floating surface; opening a docked item applies the single-open policy
// first. Closing tears down any floating surface.
func (m *EdgeManager) SetOpenState(ctx context.Context, item *entity.DrawerItem, open bool) error {
	if item == nil {
		return nil
	}
	if !m.Contains(item) {
		return fmt.Errorf("%w: %s is not on the %s edge", ErrUnknownItem, item, m.edge)
	}

	defer m.relayout()

	if !open {
		m.floats.closeWindow(ctx, item)
		item.SetVisible(false)
		m.logger.Debug().Str("item_id", string(item.ID())).Msg("item closed")
		return nil
	}

	if item.Floating() {
		return m.floats.Float(ctx, item)
	}

	if m.singleOpen {
		m.closeOthers(item)
	}
	item.SetVisible(true)
	m.logger.Debug().Str("item_id", string(item.ID())).Msg("item docked")
	return nil
}

// Toggle flips the open state of the item behind a strip control.
// Disabled items are inert.
func (m *EdgeManager) Toggle(ctx context.Context, id entity.ItemID) error {
	item := m.strip.Item(id)
	if item == nil {
		return fmt.Errorf("%w: %s", ErrUnknownItem, id)
	}
	if item.Disabled() {
		return nil
	}
	return m.SetOpenState(ctx, item, !item.Visible())
}

// SetFloatMode drives the float indicator of a control. Selecting it marks
// the item floating and floats it right away if it is open; clearing it
// docks an open item back into the split region.
func (m *EdgeManager) SetFloatMode(ctx context.Context, item *entity.DrawerItem, on bool) error {
	if item == nil {
		return nil
	}
	if !m.Contains(item) {
		return fmt.Errorf("%w: %s is not on the %s edge", ErrUnknownItem, item, m.edge)
	}
	if on == item.Floating() {
		return nil
	}

	defer m.relayout()

	if !on {
		if err := m.floats.Dock(ctx, item); err != nil {
			return err
		}
		if item.Visible() {
			return m.SetOpenState(ctx, item, true)
		}
		return nil
	}

	if err := item.SetFloating(true); err != nil {
		return err
	}
	if !item.Visible() {
		return nil
	}
	if err := m.floats.Float(ctx, item); err != nil {
		_ = item.SetFloating(false)
		return err
	}
	return nil
}

// Disable sets the disabled flag of item. Its control stays in the strip
// but toggling it does nothing.
func (m *EdgeManager) Disable(item *entity.DrawerItem, disabled bool) {
	if !m.Contains(item) {
		return
	}
	item.SetDisabled(disabled)
}

// SetSingleOpen selects between one and many simultaneously open docked
// items. Switching does not close anything; the policy applies on the next
// open.
func (m *EdgeManager) SetSingleOpen(single bool) {
	m.singleOpen = single
}

// SingleOpen reports the open policy.
func (m *EdgeManager) SingleOpen() bool { return m.singleOpen }

// SetVisible shows or hides the whole edge (strip, split region and divider).
func (m *EdgeManager) SetVisible(visible bool) {
	m.visible = visible
	if !visible {
		m.resizing = false
		m.marker = -1
	}
}

// Visible reports whether the edge is displayed.
func (m *EdgeManager) Visible() bool { return m.visible }

// onUserClosedSurface unchecks the toggle of item after the user closed its
// floating surface.
func (m *EdgeManager) onUserClosedSurface(item *entity.DrawerItem) {
	if !m.Contains(item) {
		return
	}
	item.SetVisible(false)
	m.relayout()
}

func (m *EdgeManager) closeOthers(keep *entity.DrawerItem) {
	for _, other := range m.strip.Items() {
		if other == keep || other.Floating() || !other.Visible() {
			continue
		}
		other.SetVisible(false)
	}
}

// relayout recomputes the split region from the strip. The split region is
// never edited directly.
func (m *EdgeManager) relayout() {
	docked := m.OpenDocked()
	ids := make([]entity.ItemID, len(docked))
	for i, item := range docked {
		ids[i] = item.ID()
	}
	m.split.SetItems(ids)
	if !m.split.Shown() {
		m.resizing = false
	}
}
