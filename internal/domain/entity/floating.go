package entity

import "time"

// FloatingPosition is the last recorded window position of a floating item.
// It is the only piece of drawer layout that outlives a session.
type FloatingPosition struct {
	ItemID    ItemID
	X, Y      float64
	UpdatedAt time.Time
}

// NewFloatingPosition creates a position record stamped with the current time.
func NewFloatingPosition(id ItemID, p Point) *FloatingPosition {
	return &FloatingPosition{
		ItemID:    id,
		X:         p.X,
		Y:         p.Y,
		UpdatedAt: time.Now(),
	}
}

// Point returns the stored coordinates.
func (f *FloatingPosition) Point() Point {
	return Point{X: f.X, Y: f.Y}
}
