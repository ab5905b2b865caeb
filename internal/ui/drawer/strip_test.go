package drawer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/ui/drawer"
)

func newStrip(t *testing.T, titles ...string) *drawer.Strip {
	t.Helper()
	s := drawer.NewStrip(8, 1)
	for _, title := range titles {
		s.Insert(newItem(t, title), s.Len())
	}
	return s
}

func TestStrip_InsertClampsIndex(t *testing.T) {
	s := newStrip(t, "a", "b")

	assert.Equal(t, 0, s.Insert(newItem(t, "first"), -5))
	assert.Equal(t, 3, s.Insert(newItem(t, "last"), 99))
	assert.Equal(t, []entity.ItemID{"first", "a", "b", "last"}, ids(s.Items()))
}

func TestStrip_InsertMovesOwnedItem(t *testing.T) {
	s := newStrip(t, "a", "b", "c")
	a := s.Item("a")

	s.Insert(a, 2)

	assert.Equal(t, []entity.ItemID{"b", "c", "a"}, ids(s.Items()))
	assert.Equal(t, 3, s.Len())
}

func TestStrip_RemoveReturnsIndex(t *testing.T) {
	s := newStrip(t, "a", "b", "c")

	assert.Equal(t, 1, s.Remove("b"))
	assert.Equal(t, -1, s.Remove("b"))
	assert.False(t, s.Contains("b"))
	assert.Nil(t, s.Item("b"))
}

func TestStrip_ExtentsAreCumulative(t *testing.T) {
	s := newStrip(t, "a", "b", "c")
	s.SetOrigin(2)
	s.SetControlLength("b", 4)

	extents := s.Extents()
	require.Len(t, extents, 3)
	assert.Equal(t, entity.Span{Start: 2, Length: 8}, extents[0].Span)
	assert.Equal(t, entity.Span{Start: 11, Length: 4}, extents[1].Span)
	assert.Equal(t, entity.Span{Start: 16, Length: 8}, extents[2].Span)
}

func TestStrip_LiftedControlsAreNotDisplayed(t *testing.T) {
	s := newStrip(t, "w", "x", "y", "z")
	require.True(t, s.Lift("x"))

	assert.True(t, s.Lifted("x"))
	assert.True(t, s.Contains("x"))
	assert.Equal(t, []entity.ItemID{"w", "y", "z"}, ids(s.Displayed()))
	assert.Len(t, s.Extents(), 3)

	s.Unlift("x")
	assert.Len(t, s.Extents(), 4)
}

func TestStrip_InsertionIndex(t *testing.T) {
	// centers at 4, 13, 22
	s := newStrip(t, "a", "b", "c")

	tests := []struct {
		name  string
		coord float64
		want  int
	}{
		{"before first center", 3, 0},
		{"on first center", 4, 1},
		{"between first and second", 10, 1},
		{"past second center", 15, 2},
		{"past every center", 50, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.InsertionIndex(tt.coord))
		})
	}
}

func TestStrip_InsertionIndexEmpty(t *testing.T) {
	s := drawer.NewStrip(8, 1)
	assert.Equal(t, 0, s.InsertionIndex(42))
}

func TestStrip_ControlAt(t *testing.T) {
	s := newStrip(t, "a", "b")

	id, ok := s.ControlAt(10)
	require.True(t, ok)
	assert.Equal(t, entity.ItemID("b"), id)

	_, ok = s.ControlAt(8.5)
	assert.False(t, ok)
}

func TestStrip_BindHandle(t *testing.T) {
	s := newStrip(t, "a")
	s.BindHandle("a", 7)
	assert.Equal(t, 7, s.Handle("a"))
	assert.Nil(t, s.Handle("missing"))
}

func TestDragSession_SingleItemInFlight(t *testing.T) {
	session := drawer.NewDragSession()
	a := newItem(t, "a")

	assert.False(t, session.Active())
	assert.Equal(t, -1, session.OriginIndex())

	require.NoError(t, session.Begin(a, nil, 2))
	assert.True(t, session.Active())
	assert.Same(t, a, session.Item())
	assert.Equal(t, 2, session.OriginIndex())

	err := session.Begin(newItem(t, "b"), nil, 0)
	require.ErrorIs(t, err, drawer.ErrDragInProgress)
	assert.Same(t, a, session.Item())

	session.Clear()
	assert.False(t, session.Active())
	assert.Nil(t, session.Origin())
}

func TestDragSession_BeginNilItem(t *testing.T) {
	err := drawer.NewDragSession().Begin(nil, nil, 0)
	require.ErrorIs(t, err, entity.ErrIllegalArgument)
}

func TestPayload_Marker(t *testing.T) {
	assert.True(t, drawer.NewPayload("a").IsDrawerItem())
	assert.False(t, drawer.Payload{Format: "text/plain", ItemID: "a"}.IsDrawerItem())
}
