package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDrawerItem_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		content any
		title   string
	}{
		{"nil content", nil, "Files"},
		{"empty title", "body", ""},
		{"blank title", "body", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := NewDrawerItem(tt.content, tt.title)
			assert.Nil(t, item)
			assert.True(t, errors.Is(err, ErrIllegalArgument))
		})
	}
}

func TestNewDrawerItem_Defaults(t *testing.T) {
	item, err := NewDrawerItem("body", "Files")
	require.NoError(t, err)

	assert.NotEmpty(t, item.ID())
	assert.True(t, item.Floatable())
	assert.False(t, item.Visible())
	assert.False(t, item.Floating())
	assert.False(t, item.Disabled())
	_, ok := item.FloatingPosition()
	assert.False(t, ok)
}

func TestNewDrawerItem_IDsAreUnique(t *testing.T) {
	a, err := NewDrawerItem("a", "A")
	require.NoError(t, err)
	b, err := NewDrawerItem("b", "B")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestDrawerItem_SetFloating_NonFloatable(t *testing.T) {
	item, err := NewDrawerItem("body", "Console", WithFloatable(false))
	require.NoError(t, err)

	err = item.SetFloating(true)
	assert.ErrorIs(t, err, ErrInvalidState)
	assert.False(t, item.Floating())

	assert.NoError(t, item.SetFloating(false))
}

func TestDrawerItem_AllowsEdge(t *testing.T) {
	all, err := NewDrawerItem("body", "Any")
	require.NoError(t, err)
	for _, e := range Edges {
		assert.True(t, all.AllowsEdge(e), e.String())
	}

	sides, err := NewDrawerItem("body", "Sides", WithAllowedEdges(EdgeLeft, EdgeRight))
	require.NoError(t, err)
	assert.True(t, sides.AllowsEdge(EdgeLeft))
	assert.True(t, sides.AllowsEdge(EdgeRight))
	assert.False(t, sides.AllowsEdge(EdgeTop))
	assert.False(t, sides.AllowsEdge(EdgeBottom))
	assert.False(t, sides.AllowsEdge(Edge(9)))
}

func TestDrawerItem_FloatingPositionRoundTrip(t *testing.T) {
	item, err := NewDrawerItem("body", "Files", WithID("files"))
	require.NoError(t, err)

	item.SetFloatingPosition(Point{X: 120, Y: 48})
	p, ok := item.FloatingPosition()
	require.True(t, ok)
	assert.Equal(t, Point{X: 120, Y: 48}, p)
	assert.Equal(t, ItemID("files"), item.ID())
}

func TestParseEdge(t *testing.T) {
	for _, e := range Edges {
		got, err := ParseEdge(e.String())
		require.NoError(t, err)
		assert.Equal(t, e, got)
	}

	_, err := ParseEdge("center")
	assert.ErrorIs(t, err, ErrIllegalArgument)
}

func TestEdge_Orientation(t *testing.T) {
	assert.True(t, EdgeTop.IsHorizontal())
	assert.True(t, EdgeBottom.IsHorizontal())
	assert.False(t, EdgeLeft.IsHorizontal())
	assert.True(t, EdgeRight.IsFar())
	assert.True(t, EdgeBottom.IsFar())
	assert.False(t, EdgeTop.IsFar())
	assert.False(t, EdgeLeft.IsFar())
}

func TestSpan_Center(t *testing.T) {
	s := Span{Start: 10, Length: 6}
	assert.Equal(t, 13.0, s.Center())
	assert.True(t, s.Contains(10))
	assert.False(t, s.Contains(16))
}
