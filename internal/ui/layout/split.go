// Package layout provides the geometry of an edge's split region: the
// ordered docked panels, their equal-partition dividers and the size fence
// against the container.
package layout

import (
	"slices"

	"github.com/bnema/drawerpane/internal/domain/entity"
)

// Orientation is the axis along which the panels of a split region are laid out.
type Orientation int

const (
	OrientationHorizontal Orientation = iota // panels left to right
	OrientationVertical                      // panels top to bottom
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// SplitRegion is the resizable area of an edge that shows every open,
// docked item. The divider positions are fractions of the region's length.
type SplitRegion struct {
	orientation Orientation
	items       []entity.ItemID
	dividers    []float64
	size        float64 // extent across the edge (width for left/right, height for top/bottom)
	maxFraction float64
}

// NewSplitRegion creates an empty split region. size is its initial
// thickness; maxFraction caps size relative to the container extent.
func NewSplitRegion(orientation Orientation, size, maxFraction float64) *SplitRegion {
	if size < 0 {
		size = 0
	}
	return &SplitRegion{
		orientation: orientation,
		size:        size,
		maxFraction: clampRatio(maxFraction),
	}
}

// SetItems replaces the docked panels and repositions the dividers so that
// every panel gets an equal share.
func (sr *SplitRegion) SetItems(ids []entity.ItemID) {
	sr.items = slices.Clone(ids)

	n := len(sr.items)
	if n <= 1 {
		sr.dividers = nil
		return
	}

	sr.dividers = make([]float64, n-1)
	percent := 1.0 / float64(n)
	for i := 1; i < n; i++ {
		sr.dividers[i-1] = float64(i) * percent
	}
}

// Items returns the docked panels in display order.
func (sr *SplitRegion) Items() []entity.ItemID {
	return slices.Clone(sr.items)
}

// Len returns the number of docked panels.
func (sr *SplitRegion) Len() int {
	return len(sr.items)
}

// Shown reports whether the region (and the divider fencing it) is displayed.
// An empty region is removed from display.
func (sr *SplitRegion) Shown() bool {
	return len(sr.items) > 0
}

// Dividers returns the divider positions as fractions in (0, 1).
func (sr *SplitRegion) Dividers() []float64 {
	return slices.Clone(sr.dividers)
}

// Orientation returns the panel axis.
func (sr *SplitRegion) Orientation() Orientation {
	return sr.orientation
}

// Size returns the current thickness of the region.
func (sr *SplitRegion) Size() float64 {
	return sr.size
}

// MaxFraction returns the fence applied by SetSize.
func (sr *SplitRegion) MaxFraction() float64 {
	return sr.maxFraction
}

// SetSize applies a new thickness if it stays within the fence relative to
// containerExtent. It returns false, leaving the size untouched, otherwise.
func (sr *SplitRegion) SetSize(size, containerExtent float64) bool {
	if !sr.Fits(size, containerExtent) {
		return false
	}
	sr.size = size
	return true
}

// Fits reports whether size respects the fence for containerExtent.
func (sr *SplitRegion) Fits(size, containerExtent float64) bool {
	if size < 0 || containerExtent <= 0 {
		return false
	}
	return size/containerExtent <= sr.maxFraction
}

// PanelSpans splits length into one span per docked panel according to the
// divider positions.
func (sr *SplitRegion) PanelSpans(start, length float64) []entity.Span {
	n := len(sr.items)
	if n == 0 {
		return nil
	}

	spans := make([]entity.Span, n)
	prev := 0.0
	for i := range n {
		next := 1.0
		if i < len(sr.dividers) {
			next = sr.dividers[i]
		}
		spans[i] = entity.Span{
			Start:  start + prev*length,
			Length: (next - prev) * length,
		}
		prev = next
	}
	return spans
}

// clampRatio ensures the ratio is within [0.0, 1.0].
func clampRatio(ratio float64) float64 {
	if ratio < 0.0 {
		return 0.0
	}
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}
