package drawer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/ui/drawer"
)

func openOne(t *testing.T, c *drawer.Container, e entity.Edge) *drawer.EdgeManager {
	t.Helper()
	ctx := context.Background()
	item := newItem(t, e.String()+"-item")
	c.AddItem(ctx, e, item)
	require.NoError(t, c.Show(ctx, item))
	return c.Edge(e)
}

func TestResize_NearEdgeFollowsPointer(t *testing.T) {
	c := newContainer(t, nil, nil)
	left := openOne(t, c, entity.EdgeLeft)

	// strip 3 + split 20
	require.InDelta(t, 23, left.DividerStart(), 1e-9)
	require.True(t, left.DividerPress())

	assert.True(t, left.DividerDrag(33))
	assert.InDelta(t, 30, left.Split().Size(), 1e-9)
	assert.InDelta(t, 33, left.DividerStart(), 1e-9)

	assert.True(t, left.DividerDrag(28))
	assert.InDelta(t, 25, left.Split().Size(), 1e-9)

	left.DividerRelease()
	assert.False(t, left.DividerDrag(40))
	assert.InDelta(t, 25, left.Split().Size(), 1e-9)
}

func TestResize_FarEdgeIsSignFlipped(t *testing.T) {
	c := newContainer(t, nil, nil)
	bottom := openOne(t, c, entity.EdgeBottom)

	// height 100 - strip 1 - split 20 - divider 1
	require.InDelta(t, 78, bottom.DividerStart(), 1e-9)
	require.True(t, bottom.DividerPress())

	assert.True(t, bottom.DividerDrag(73))
	assert.InDelta(t, 25, bottom.Split().Size(), 1e-9)

	assert.True(t, bottom.DividerDrag(83))
	assert.InDelta(t, 15, bottom.Split().Size(), 1e-9)
}

func TestResize_ClampedAtMaxFraction(t *testing.T) {
	c := newContainer(t, nil, nil)
	right := openOne(t, c, entity.EdgeRight)
	require.True(t, right.DividerPress())

	// width 200 with fraction 0.3 caps the split at 60
	start := right.DividerStart()
	assert.False(t, right.DividerDrag(start-50))
	assert.InDelta(t, 20, right.Split().Size(), 1e-9)

	assert.True(t, right.DividerDrag(start-40))
	assert.InDelta(t, 60, right.Split().Size(), 1e-9)
	assert.LessOrEqual(t, right.Split().Size()/200, right.Split().MaxFraction())

	assert.False(t, right.ResizeBy(-1))
	assert.InDelta(t, 60, right.Split().Size(), 1e-9)
}

func TestResize_NeverNegative(t *testing.T) {
	c := newContainer(t, nil, nil)
	top := openOne(t, c, entity.EdgeTop)
	require.True(t, top.DividerPress())

	assert.False(t, top.DividerDrag(-100))
	assert.InDelta(t, 20, top.Split().Size(), 1e-9)

	assert.True(t, top.DividerDrag(1))
	assert.InDelta(t, 0, top.Split().Size(), 1e-9)
}

func TestResize_PressIgnoredWithoutDockedItems(t *testing.T) {
	c := newContainer(t, nil, nil)
	top := c.Edge(entity.EdgeTop)
	c.AddItem(context.Background(), entity.EdgeTop, newItem(t, "closed"))

	assert.False(t, top.DividerPress())
	assert.False(t, top.Resizing())
	assert.False(t, top.DividerDrag(50))
}

func TestResize_HidingSplitEndsResize(t *testing.T) {
	ctx := context.Background()
	c := newContainer(t, nil, nil)
	top := openOne(t, c, entity.EdgeTop)
	require.True(t, top.DividerPress())

	require.NoError(t, c.Hide(ctx, top.Items()[0]))
	assert.False(t, top.Resizing())
}

func TestResize_ShrinkingContainerCutsSplitToCap(t *testing.T) {
	c := newContainer(t, nil, nil)
	left := openOne(t, c, entity.EdgeLeft)

	c.SetContainerSize(50, 100)
	assert.InDelta(t, 15, left.Split().Size(), 1e-9)

	c.SetContainerSize(200, 100)
	assert.InDelta(t, 15, left.Split().Size(), 1e-9)
}
