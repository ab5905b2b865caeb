// Package entity defines domain entities for the drawer container.
package entity

// Point is a position in container (scene) coordinates.
type Point struct {
	X, Y float64
}

// Span is a one-dimensional extent along a strip axis.
type Span struct {
	Start  float64
	Length float64
}

// Center returns the midpoint of the span.
func (s Span) Center() float64 {
	return s.Start + s.Length/2
}

// End returns the first coordinate past the span.
func (s Span) End() float64 {
	return s.Start + s.Length
}

// Contains reports whether v falls within [Start, End).
func (s Span) Contains(v float64) bool {
	return v >= s.Start && v < s.End()
}
