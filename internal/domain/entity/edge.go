package entity

import (
	"fmt"
	"strings"
)

// Edge identifies one side of the drawer container.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Edges lists all edges in layout order.
var Edges = []Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeLeft:
		return "left"
	default:
		return fmt.Sprintf("edge(%d)", int(e))
	}
}

// Valid reports whether e is one of the four edges.
func (e Edge) Valid() bool {
	return e >= EdgeTop && e <= EdgeLeft
}

// IsHorizontal is true for edges whose strip runs left to right.
func (e Edge) IsHorizontal() bool {
	return e == EdgeTop || e == EdgeBottom
}

// IsFar is true for edges whose divider moves opposite to growth (right, bottom).
func (e Edge) IsFar() bool {
	return e == EdgeRight || e == EdgeBottom
}

// ParseEdge converts a name such as "left" into an Edge.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return EdgeTop, nil
	case "right":
		return EdgeRight, nil
	case "bottom":
		return EdgeBottom, nil
	case "left":
		return EdgeLeft, nil
	}
	return 0, fmt.Errorf("%w: unknown edge %q", ErrIllegalArgument, s)
}
