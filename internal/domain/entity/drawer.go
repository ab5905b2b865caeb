package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ItemID uniquely identifies a drawer item for its whole lifetime.
type ItemID string

// DrawerItem is one collapsible panel hosted on an edge of the container.
// It holds no reference to the edge that owns it; ownership is looked up
// from the container.
type DrawerItem struct {
	id              ItemID
	title           string
	icon            string
	content         any
	floatable       bool
	allowedEdges    []Edge
	floatStyleSheet string

	visible          bool
	floating         bool
	disabled         bool
	floatingPosition *Point
}

// ItemOption configures a DrawerItem at construction.
type ItemOption func(*DrawerItem)

// WithID sets a stable identity. Required for floating positions to be
// restored across sessions.
func WithID(id ItemID) ItemOption {
	return func(d *DrawerItem) {
		if id != "" {
			d.id = id
		}
	}
}

// WithIcon sets the icon shown on the strip control.
func WithIcon(icon string) ItemOption {
	return func(d *DrawerItem) { d.icon = icon }
}

// WithFloatable sets whether the item may be detached into its own surface.
func WithFloatable(floatable bool) ItemOption {
	return func(d *DrawerItem) { d.floatable = floatable }
}

// WithAllowedEdges restricts the edges the item may be dropped on.
// No edges means all edges are allowed.
func WithAllowedEdges(edges ...Edge) ItemOption {
	return func(d *DrawerItem) { d.allowedEdges = slices.Clone(edges) }
}

// WithVisible sets the initial open flag.
func WithVisible(visible bool) ItemOption {
	return func(d *DrawerItem) { d.visible = visible }
}

// WithFloatStyleSheet sets a stylesheet applied to the floating surface.
func WithFloatStyleSheet(ref string) ItemOption {
	return func(d *DrawerItem) { d.floatStyleSheet = ref }
}

// NewDrawerItem creates a drawer item. Content and title are required.
func NewDrawerItem(content any, title string, opts ...ItemOption) (*DrawerItem, error) {
	if content == nil {
		return nil, fmt.Errorf("%w: content must not be nil", ErrIllegalArgument)
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title must not be empty", ErrIllegalArgument)
	}

	d := &DrawerItem{
		id:        ItemID(uuid.NewString()),
		title:     title,
		content:   content,
		floatable: true,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *DrawerItem) ID() ItemID              { return d.id }
func (d *DrawerItem) Title() string           { return d.title }
func (d *DrawerItem) Icon() string            { return d.icon }
func (d *DrawerItem) Content() any            { return d.content }
func (d *DrawerItem) Floatable() bool         { return d.floatable }
func (d *DrawerItem) FloatStyleSheet() string { return d.floatStyleSheet }
func (d *DrawerItem) Visible() bool           { return d.visible }
func (d *DrawerItem) Floating() bool          { return d.floating }
func (d *DrawerItem) Disabled() bool          { return d.disabled }

// AllowedEdges returns a copy of the allowed edge set.
func (d *DrawerItem) AllowedEdges() []Edge {
	return slices.Clone(d.allowedEdges)
}

// AllowsEdge reports whether the item may be placed on e.
func (d *DrawerItem) AllowsEdge(e Edge) bool {
	if !e.Valid() {
		return false
	}
	return len(d.allowedEdges) == 0 || slices.Contains(d.allowedEdges, e)
}

// SetVisible sets the open flag.
func (d *DrawerItem) SetVisible(visible bool) {
	d.visible = visible
}

// SetFloating sets the floating flag. Floating a non-floatable item fails.
func (d *DrawerItem) SetFloating(floating bool) error {
	if floating && !d.floatable {
		return fmt.Errorf("%w: item %q cannot float", ErrInvalidState, d.title)
	}
	d.floating = floating
	return nil
}

// SetDisabled sets the disabled flag.
func (d *DrawerItem) SetDisabled(disabled bool) {
	d.disabled = disabled
}

// FloatingPosition returns the last recorded floating window position.
func (d *DrawerItem) FloatingPosition() (Point, bool) {
	if d.floatingPosition == nil {
		return Point{}, false
	}
	return *d.floatingPosition, true
}

// SetFloatingPosition records the floating window position.
func (d *DrawerItem) SetFloatingPosition(p Point) {
	d.floatingPosition = &p
}

func (d *DrawerItem) String() string {
	return fmt.Sprintf("%s(%s)", d.title, d.id)
}
