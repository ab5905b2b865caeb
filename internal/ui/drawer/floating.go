package drawer

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/logging"
)

// ErrNoSurfaceOpener is returned when floating is requested without a host
// able to open surfaces.
var ErrNoSurfaceOpener = errors.New("no surface opener configured")

// Surface is a detached top-level window hosting one floating item.
type Surface interface {
	// Position returns the current window position.
	Position() entity.Point
	// Close tears the window down. It must not invoke OnCloseRequest.
	Close()
}

// SurfaceRequest describes the surface to open for a floating item.
type SurfaceRequest struct {
	ItemID     entity.ItemID
	Title      string
	Icon       string
	StyleSheet string
	Content    any
	// Position is nil for default placement.
	Position *entity.Point
	Width    int
	Height   int

	// OnCloseRequest is invoked by the host when the user closes the window.
	OnCloseRequest func(final entity.Point)
	// OnMove is invoked by the host when the user moves the window.
	OnMove func(pos entity.Point)
}

// SurfaceOpener is the host capability that creates floating surfaces.
type SurfaceOpener interface {
	OpenSurface(ctx context.Context, req SurfaceRequest) (Surface, error)
}

// PositionStore persists the last floating position of items.
type PositionStore interface {
	Get(ctx context.Context, id entity.ItemID) (*entity.FloatingPosition, error)
	Save(ctx context.Context, pos *entity.FloatingPosition) error
}

// FloatingOptions configures a FloatingController.
type FloatingOptions struct {
	DefaultWidth  int
	DefaultHeight int
	// Store is optional; nil disables cross-session positions.
	Store PositionStore
}

// FloatingController owns the floating surfaces of all edges and mediates
// the docked/floating transitions.
type FloatingController struct {
	opener  SurfaceOpener
	store   PositionStore
	width   int
	height  int
	windows map[entity.ItemID]Surface
	// closing guards against hosts that report a close request while the
	// controller itself is tearing the surface down.
	closing     map[entity.ItemID]bool
	onUserClose func(ctx context.Context, item *entity.DrawerItem)
	logger      zerolog.Logger
}

// NewFloatingController creates a controller opening surfaces through opener.
func NewFloatingController(ctx context.Context, opener SurfaceOpener, opts FloatingOptions) *FloatingController {
	log := logging.FromContext(ctx)

	return &FloatingController{
		opener:  opener,
		store:   opts.Store,
		width:   opts.DefaultWidth,
		height:  opts.DefaultHeight,
		windows: make(map[entity.ItemID]Surface),
		closing: make(map[entity.ItemID]bool),
		logger:  log.With().Str("component", "floating").Logger(),
	}
}

// SetOnUserClose registers the callback run after the user closed a
// floating surface. The container uses it to uncheck the owning toggle.
func (c *FloatingController) SetOnUserClose(fn func(ctx context.Context, item *entity.DrawerItem)) {
	c.onUserClose = fn
}

// IsOpen reports whether item id currently has a floating surface.
func (c *FloatingController) IsOpen(id entity.ItemID) bool {
	_, ok := c.windows[id]
	return ok
}

// Float detaches item into a new surface placed at its last known position.
// The caller recomputes the owning edge's split layout afterwards.
func (c *FloatingController) Float(ctx context.Context, item *entity.DrawerItem) error {
	if item == nil {
		return nil
	}
	if !item.Floatable() {
		return fmt.Errorf("%w: %s is not floatable", entity.ErrInvalidState, item)
	}
	if c.IsOpen(item.ID()) {
		item.SetVisible(true)
		return item.SetFloating(true)
	}
	if c.opener == nil {
		return ErrNoSurfaceOpener
	}

	req := SurfaceRequest{
		ItemID:     item.ID(),
		Title:      item.Title(),
		Icon:       item.Icon(),
		StyleSheet: item.FloatStyleSheet(),
		Content:    item.Content(),
		Position:   c.resolvePosition(ctx, item),
		Width:      c.width,
		Height:     c.height,
		OnCloseRequest: func(final entity.Point) {
			c.handleCloseRequest(ctx, item, final)
		},
		OnMove: func(pos entity.Point) {
			item.SetFloatingPosition(pos)
		},
	}

	surface, err := c.opener.OpenSurface(ctx, req)
	if err != nil {
		return fmt.Errorf("open floating surface for %s: %w", item, err)
	}

	c.windows[item.ID()] = surface
	if err := item.SetFloating(true); err != nil {
		return err
	}
	item.SetVisible(true)

	c.logger.Debug().Str("item_id", string(item.ID())).Msg("item floated")
	return nil
}

// Dock tears down the floating surface of item, if any, through the
// toggle-originated close path and clears its floating flag. Docking into
// the split region is left to the owning edge.
func (c *FloatingController) Dock(ctx context.Context, item *entity.DrawerItem) error {
	if item == nil {
		return nil
	}
	if item.Floating() {
		c.closeWindow(ctx, item)
	}
	return item.SetFloating(false)
}

// closeWindow tears down the surface of item without notifying the owning
// edge. It records the final position. Returns false if nothing was open.
func (c *FloatingController) closeWindow(ctx context.Context, item *entity.DrawerItem) bool {
	surface, ok := c.windows[item.ID()]
	if !ok {
		return false
	}

	c.closing[item.ID()] = true
	defer delete(c.closing, item.ID())

	c.recordPosition(ctx, item, surface.Position())
	delete(c.windows, item.ID())
	surface.Close()

	c.logger.Debug().Str("item_id", string(item.ID())).Msg("floating surface closed")
	return true
}

// handleCloseRequest is the user-initiated close path: the host is already
// closing the surface.
func (c *FloatingController) handleCloseRequest(ctx context.Context, item *entity.DrawerItem, final entity.Point) {
	if c.closing[item.ID()] {
		return
	}
	if _, ok := c.windows[item.ID()]; !ok {
		return
	}

	c.recordPosition(ctx, item, final)
	delete(c.windows, item.ID())
	_ = item.SetFloating(false)

	c.logger.Debug().Str("item_id", string(item.ID())).Msg("floating surface closed by user")

	if c.onUserClose != nil {
		c.onUserClose(ctx, item)
	}
}

func (c *FloatingController) resolvePosition(ctx context.Context, item *entity.DrawerItem) *entity.Point {
	if p, ok := item.FloatingPosition(); ok {
		return &p
	}
	if c.store == nil {
		return nil
	}

	stored, err := c.store.Get(ctx, item.ID())
	if err != nil {
		c.logger.Warn().Err(err).Str("item_id", string(item.ID())).Msg("failed to load floating position")
		return nil
	}
	if stored == nil {
		return nil
	}
	p := stored.Point()
	item.SetFloatingPosition(p)
	return &p
}

func (c *FloatingController) recordPosition(ctx context.Context, item *entity.DrawerItem, pos entity.Point) {
	item.SetFloatingPosition(pos)
	if c.store == nil {
		return
	}
	if err := c.store.Save(ctx, entity.NewFloatingPosition(item.ID(), pos)); err != nil {
		c.logger.Warn().Err(err).Str("item_id", string(item.ID())).Msg("failed to save floating position")
	}
}

// closeAll tears down every surface. Used on container shutdown.
func (c *FloatingController) closeAll(ctx context.Context, items func(entity.ItemID) *entity.DrawerItem) {
	for id := range c.windows {
		if item := items(id); item != nil {
			c.closeWindow(ctx, item)
		}
	}
}
