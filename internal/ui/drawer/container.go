// Package drawer implements the dockable drawer engine: a center region
// surrounded by four edges, each with a strip of toggle controls and a split
// region of docked items. Items can be reordered or moved between edges by
// dragging their controls and detached into floating surfaces.
package drawer

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/logging"
)

// Options configures a Container.
type Options struct {
	// Edges overrides the geometry and policy per edge. Missing edges use
	// DefaultEdgeOptions.
	Edges    map[entity.Edge]EdgeOptions
	Floating FloatingOptions
	// Surfaces opens floating surfaces. Nil disables floating.
	Surfaces SurfaceOpener
}

// Container is the root of the engine. It owns the four edge managers, the
// shared drag session and the floating controller.
type Container struct {
	edges   map[entity.Edge]*EdgeManager
	session *DragSession
	floats  *FloatingController
	center  any
	logger  zerolog.Logger
}

// NewContainer creates a container with four empty edges.
func NewContainer(ctx context.Context, opts Options) *Container {
	log := logging.FromContext(ctx)

	c := &Container{
		edges:   make(map[entity.Edge]*EdgeManager, len(entity.Edges)),
		session: NewDragSession(),
		floats:  NewFloatingController(ctx, opts.Surfaces, opts.Floating),
		logger:  log.With().Str("component", "container").Logger(),
	}

	for _, e := range entity.Edges {
		edgeOpts, ok := opts.Edges[e]
		if !ok {
			edgeOpts = DefaultEdgeOptions(e)
		}
		c.edges[e] = NewEdgeManager(ctx, e, c.session, c.floats, edgeOpts)
	}

	c.floats.SetOnUserClose(func(_ context.Context, item *entity.DrawerItem) {
		if owner := c.owner(item); owner != nil {
			owner.onUserClosedSurface(item)
		}
	})

	return c
}

// Edge returns the manager of edge e, or nil for an invalid edge.
func (c *Container) Edge(e entity.Edge) *EdgeManager {
	return c.edges[e]
}

// Session returns the shared drag session.
func (c *Container) Session() *DragSession { return c.session }

// Floating returns the floating controller.
func (c *Container) Floating() *FloatingController { return c.floats }

// SetCenterContent replaces the center content.
func (c *Container) SetCenterContent(content any) {
	c.center = content
}

// Center returns the center content.
func (c *Container) Center() any { return c.center }

// AddItem appends item to edge e. An item already on another edge is moved.
// Invalid edges and nil items are ignored.
func (c *Container) AddItem(ctx context.Context, e entity.Edge, item *entity.DrawerItem) {
	m := c.edges[e]
	if m == nil || item == nil {
		return
	}
	c.detach(item, m)
	m.AddItem(ctx, item)
}

// InsertItem places item at index on edge e, moving it from another edge
// if needed.
func (c *Container) InsertItem(ctx context.Context, e entity.Edge, item *entity.DrawerItem, index int) {
	m := c.edges[e]
	if m == nil || item == nil {
		return
	}
	c.detach(item, m)
	m.InsertItem(ctx, item, index)
}

// detach releases item from any edge other than keep.
func (c *Container) detach(item *entity.DrawerItem, keep *EdgeManager) {
	if owner := c.owner(item); owner != nil && owner != keep {
		owner.release(item)
		c.logger.Debug().
			Str("item_id", string(item.ID())).
			Str("from", owner.Edge().String()).
			Str("to", keep.Edge().String()).
			Msg("item moved between edges")
	}
}

// RemoveItem removes item from whichever edge holds it. Unowned items are
// ignored.
func (c *Container) RemoveItem(ctx context.Context, item *entity.DrawerItem) {
	if owner := c.owner(item); owner != nil {
		owner.RemoveItem(ctx, item)
	}
}

// Show opens item on its edge. Disabled and unowned items are ignored.
func (c *Container) Show(ctx context.Context, item *entity.DrawerItem) error {
	owner := c.owner(item)
	if owner == nil || item.Disabled() {
		return nil
	}
	return owner.SetOpenState(ctx, item, true)
}

// Hide closes item on its edge.
func (c *Container) Hide(ctx context.Context, item *entity.DrawerItem) error {
	owner := c.owner(item)
	if owner == nil {
		return nil
	}
	return owner.SetOpenState(ctx, item, false)
}

// SetEdgeVisible shows or hides edge e.
func (c *Container) SetEdgeVisible(e entity.Edge, visible bool) {
	if m := c.edges[e]; m != nil {
		m.SetVisible(visible)
	}
}

// SetEdgeSingleOpenMode selects the open policy of edge e.
func (c *Container) SetEdgeSingleOpenMode(e entity.Edge, single bool) {
	if m := c.edges[e]; m != nil {
		m.SetSingleOpen(single)
	}
}

// SetItemDisabled enables or disables the control of item.
func (c *Container) SetItemDisabled(item *entity.DrawerItem, disabled bool) {
	if owner := c.owner(item); owner != nil {
		owner.Disable(item, disabled)
	}
}

// Items returns the items of edge e in strip order.
func (c *Container) Items(e entity.Edge) []*entity.DrawerItem {
	if m := c.edges[e]; m != nil {
		return m.Items()
	}
	return nil
}

// EdgeOf returns the edge owning item.
func (c *Container) EdgeOf(item *entity.DrawerItem) (entity.Edge, bool) {
	if owner := c.owner(item); owner != nil {
		return owner.Edge(), true
	}
	return 0, false
}

// Lookup finds an item by id across all edges.
func (c *Container) Lookup(id entity.ItemID) *entity.DrawerItem {
	for _, e := range entity.Edges {
		if item := c.edges[e].Strip().Item(id); item != nil {
			return item
		}
	}
	return nil
}

// CancelDrag aborts the drag in flight as if no edge accepted the drop.
func (c *Container) CancelDrag(ctx context.Context) error {
	origin := c.session.Origin()
	if origin == nil {
		return nil
	}
	return origin.EndDrag(ctx, false)
}

// SetContainerSize propagates the container dimensions to every edge.
func (c *Container) SetContainerSize(width, height float64) {
	for _, m := range c.edges {
		m.SetContainerSize(width, height)
	}
}

// Close tears down every floating surface.
func (c *Container) Close(ctx context.Context) {
	c.floats.closeAll(ctx, c.Lookup)
}

func (c *Container) owner(item *entity.DrawerItem) *EdgeManager {
	if item == nil {
		return nil
	}
	for _, e := range entity.Edges {
		if m := c.edges[e]; m.Contains(item) {
			return m
		}
	}
	return nil
}
