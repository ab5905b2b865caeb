package terminal

import (
	"context"
	"math"
	"slices"

	"github.com/rs/zerolog"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/logging"
	"github.com/bnema/drawerpane/internal/ui/drawer"
)

const (
	minWindowWidth  = 12
	minWindowHeight = 4
	closeButton     = "[x]"
)

// Window is a floating overlay drawn above the container.
type Window struct {
	owner *Surfaces
	req   drawer.SurfaceRequest
	x, y  int
	w, h  int
}

var _ drawer.Surface = (*Window)(nil)

// ItemID returns the item hosted by the window.
func (w *Window) ItemID() entity.ItemID { return w.req.ItemID }

// Title returns the window title.
func (w *Window) Title() string {
	if w.req.Icon != "" {
		return w.req.Icon + " " + w.req.Title
	}
	return w.req.Title
}

// Content returns the hosted content.
func (w *Window) Content() any { return w.req.Content }

// StyleSheet returns the stylesheet reference requested by the item.
func (w *Window) StyleSheet() string { return w.req.StyleSheet }

// Position returns the top-left corner.
func (w *Window) Position() entity.Point {
	return entity.Point{X: float64(w.x), Y: float64(w.y)}
}

// Close removes the window without notifying the engine.
func (w *Window) Close() {
	w.owner.remove(w)
}

func (w *Window) bounds() rect {
	return newRect(w.x, w.y, w.w, w.h)
}

// closeRect is the [x] button on the title border.
func (w *Window) closeRect() rect {
	n := len(closeButton)
	return newRect(w.x+w.w-n-1, w.y, n, 1)
}

// Surfaces hosts floating windows as overlays. It implements
// drawer.SurfaceOpener.
type Surfaces struct {
	windows []*Window // back to front
	cascade int
	logger  zerolog.Logger
}

var _ drawer.SurfaceOpener = (*Surfaces)(nil)

// NewSurfaces creates an empty overlay stack.
func NewSurfaces(ctx context.Context) *Surfaces {
	log := logging.FromContext(ctx)
	return &Surfaces{
		logger: log.With().Str("component", "surfaces").Logger(),
	}
}

// OpenSurface places a new overlay on top of the stack. Without a stored
// position, windows cascade from the top-left corner.
func (s *Surfaces) OpenSurface(_ context.Context, req drawer.SurfaceRequest) (drawer.Surface, error) {
	w := &Window{
		owner: s,
		req:   req,
		w:     max(req.Width, minWindowWidth),
		h:     max(req.Height, minWindowHeight),
	}
	if req.Position != nil {
		w.x = int(math.Round(req.Position.X))
		w.y = int(math.Round(req.Position.Y))
	} else {
		w.x = 4 + 2*(s.cascade%8)
		w.y = 2 + s.cascade%8
		s.cascade++
	}
	s.windows = append(s.windows, w)

	s.logger.Debug().
		Str("item_id", string(req.ItemID)).
		Int("x", w.x).
		Int("y", w.y).
		Msg("window opened")
	return w, nil
}

// Windows returns the open windows back to front.
func (s *Surfaces) Windows() []*Window {
	return slices.Clone(s.windows)
}

// Window returns the window hosting id, or nil.
func (s *Surfaces) Window(id entity.ItemID) *Window {
	for _, w := range s.windows {
		if w.ItemID() == id {
			return w
		}
	}
	return nil
}

// At returns the top-most window under (x, y) and the part that was hit.
func (s *Surfaces) At(x, y int) (*Window, hitKind) {
	for i := len(s.windows) - 1; i >= 0; i-- {
		w := s.windows[i]
		switch {
		case w.closeRect().contains(x, y):
			return w, hitWindowClose
		case !w.bounds().contains(x, y):
			continue
		case y == w.y:
			return w, hitWindowTitle
		default:
			return w, hitWindowBody
		}
	}
	return nil, hitNone
}

// Raise moves w to the top of the stack.
func (s *Surfaces) Raise(w *Window) {
	i := slices.Index(s.windows, w)
	if i < 0 || i == len(s.windows)-1 {
		return
	}
	s.windows = append(slices.Delete(s.windows, i, i+1), w)
}

// Move places w at (x, y) and reports the move to the engine.
func (s *Surfaces) Move(w *Window, x, y int) {
	if w.x == x && w.y == y {
		return
	}
	w.x, w.y = x, y
	if w.req.OnMove != nil {
		w.req.OnMove(w.Position())
	}
}

// RequestClose is the user closing w: the overlay goes away first, then the
// engine is told where it was.
func (s *Surfaces) RequestClose(w *Window) {
	if !s.remove(w) {
		return
	}
	s.logger.Debug().Str("item_id", string(w.ItemID())).Msg("window closed by user")
	if w.req.OnCloseRequest != nil {
		w.req.OnCloseRequest(w.Position())
	}
}

func (s *Surfaces) remove(w *Window) bool {
	i := slices.Index(s.windows, w)
	if i < 0 {
		return false
	}
	s.windows = slices.Delete(s.windows, i, i+1)
	return true
}
