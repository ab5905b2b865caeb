package terminal

import "github.com/charmbracelet/lipgloss"

// class selects the style of a canvas cell.
type class uint8

const (
	classNormal class = iota
	classMuted
	classTitle
	classBorder
	classStrip
	classOpen
	classFloating
	classDisabled
	classDivider
	classDividerActive
	classMarker
	classGhost
	classOverlay
	classOverlayTitle
	classStatus
	classError
)

// Styles holds the lipgloss styles used to paint the container.
type Styles struct {
	Normal        lipgloss.Style
	Muted         lipgloss.Style
	Title         lipgloss.Style
	Border        lipgloss.Style
	Strip         lipgloss.Style
	Open          lipgloss.Style
	Floating      lipgloss.Style
	Disabled      lipgloss.Style
	Divider       lipgloss.Style
	DividerActive lipgloss.Style
	Marker        lipgloss.Style
	Ghost         lipgloss.Style
	Overlay       lipgloss.Style
	OverlayTitle  lipgloss.Style
	Status        lipgloss.Style
	Error         lipgloss.Style
}

// DefaultStyles returns a dark palette.
func DefaultStyles() Styles {
	var (
		background = lipgloss.Color("#0a0a0b")
		surface    = lipgloss.Color("#1a1a1b")
		variant    = lipgloss.Color("#2d2d2d")
		text       = lipgloss.Color("#ffffff")
		muted      = lipgloss.Color("#909090")
		accent     = lipgloss.Color("#4ade80")
		border     = lipgloss.Color("#333333")
	)
	return NewStyles(background, surface, variant, text, muted, accent, border, lipgloss.Color("#ef4444"))
}

// NewStyles derives the container styles from a palette.
func NewStyles(background, surface, variant, text, muted, accent, border, errColor lipgloss.Color) Styles {
	return Styles{
		Normal:        lipgloss.NewStyle().Foreground(text),
		Muted:         lipgloss.NewStyle().Foreground(muted),
		Title:         lipgloss.NewStyle().Foreground(text).Bold(true),
		Border:        lipgloss.NewStyle().Foreground(border),
		Strip:         lipgloss.NewStyle().Foreground(muted).Background(surface),
		Open:          lipgloss.NewStyle().Foreground(accent).Background(surface).Bold(true),
		Floating:      lipgloss.NewStyle().Foreground(background).Background(accent),
		Disabled:      lipgloss.NewStyle().Foreground(border).Background(surface),
		Divider:       lipgloss.NewStyle().Foreground(border),
		DividerActive: lipgloss.NewStyle().Foreground(accent),
		Marker:        lipgloss.NewStyle().Foreground(accent).Background(surface).Bold(true),
		Ghost:         lipgloss.NewStyle().Foreground(background).Background(accent).Bold(true),
		Overlay:       lipgloss.NewStyle().Foreground(text).Background(variant),
		OverlayTitle:  lipgloss.NewStyle().Foreground(accent).Background(variant).Bold(true),
		Status:        lipgloss.NewStyle().Foreground(muted),
		Error:         lipgloss.NewStyle().Foreground(errColor),
	}
}

func (s Styles) of(c class) lipgloss.Style {
	switch c {
	case classMuted:
		return s.Muted
	case classTitle:
		return s.Title
	case classBorder:
		return s.Border
	case classStrip:
		return s.Strip
	case classOpen:
		return s.Open
	case classFloating:
		return s.Floating
	case classDisabled:
		return s.Disabled
	case classDivider:
		return s.Divider
	case classDividerActive:
		return s.DividerActive
	case classMarker:
		return s.Marker
	case classGhost:
		return s.Ghost
	case classOverlay:
		return s.Overlay
	case classOverlayTitle:
		return s.OverlayTitle
	case classStatus:
		return s.Status
	case classError:
		return s.Error
	default:
		return s.Normal
	}
}
