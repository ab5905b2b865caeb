package terminal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/drawerpane/internal/domain/entity"
)

func TestLayoutFrame_EmptyEdges(t *testing.T) {
	c := newTestContainer(t, nil)
	f := layoutFrame(c, 80, 20)

	// only strips take room while nothing is open
	assert.Equal(t, newRect(3, 0, 74, 1), f.edges[entity.EdgeTop].strip)
	assert.Equal(t, newRect(3, 19, 74, 1), f.edges[entity.EdgeBottom].strip)
	assert.Equal(t, newRect(0, 1, 3, 18), f.edges[entity.EdgeLeft].strip)
	assert.Equal(t, newRect(77, 1, 3, 18), f.edges[entity.EdgeRight].strip)
	assert.Equal(t, newRect(3, 1, 74, 18), f.center)
	assert.True(t, f.edges[entity.EdgeBottom].split.empty())
}

func TestLayoutFrame_OpenBottomMatchesEngineDivider(t *testing.T) {
	ctx := context.Background()
	c := newTestContainer(t, nil)
	item := newTestItem(t, "alpha")
	c.AddItem(ctx, entity.EdgeBottom, item)
	require.NoError(t, c.Show(ctx, item))
	c.SetContainerSize(80, 22)

	f := layoutFrame(c, 80, 22)
	bottom := f.edges[entity.EdgeBottom]

	assert.Equal(t, newRect(3, 15, 74, 6), bottom.split)
	assert.Equal(t, newRect(3, 14, 74, 1), bottom.divider)
	assert.Equal(t, float64(bottom.divider.y), c.Edge(entity.EdgeBottom).DividerStart())
	assert.Equal(t, newRect(3, 1, 74, 13), f.center)
}

func TestLayoutFrame_HiddenEdgeTakesNoRoom(t *testing.T) {
	c := newTestContainer(t, nil)
	c.SetEdgeVisible(entity.EdgeLeft, false)

	f := layoutFrame(c, 80, 20)
	assert.True(t, f.edges[entity.EdgeLeft].strip.empty())
	assert.Equal(t, 0, f.center.x)
}

func TestHitTest(t *testing.T) {
	ctx := context.Background()
	c := newTestContainer(t, nil)
	alpha := newTestItem(t, "alpha")
	c.AddItem(ctx, entity.EdgeBottom, alpha)
	require.NoError(t, c.Show(ctx, alpha))
	c.SetContainerSize(80, 22)

	f := layoutFrame(c, 80, 22)
	syncStrips(c, f)

	tests := []struct {
		name string
		x, y int
		want hit
	}{
		{"control", 5, 21, hit{kind: hitControl, edge: entity.EdgeBottom, item: "alpha"}},
		{"empty strip", 50, 21, hit{kind: hitStrip, edge: entity.EdgeBottom}},
		{"divider", 40, 14, hit{kind: hitDivider, edge: entity.EdgeBottom}},
		{"panel", 40, 17, hit{kind: hitPanel, edge: entity.EdgeBottom, item: "alpha"}},
		{"center", 40, 5, hit{kind: hitCenter}},
		{"left strip", 1, 5, hit{kind: hitStrip, edge: entity.EdgeLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hitTest(c, nil, f, tt.x, tt.y))
		})
	}
}

func TestHitTest_WindowsFirst(t *testing.T) {
	ctx := context.Background()
	s := NewSurfaces(ctx)
	c := newTestContainer(t, s)
	alpha := newTestItem(t, "alpha", entity.WithFloatable(true))
	c.AddItem(ctx, entity.EdgeBottom, alpha)
	c.SetContainerSize(80, 22)
	require.NoError(t, c.Edge(entity.EdgeBottom).SetFloatMode(ctx, alpha, true))
	require.NoError(t, c.Show(ctx, alpha))

	w := s.Window("alpha")
	require.NotNil(t, w)

	f := layoutFrame(c, 80, 22)
	h := hitTest(c, s, f, w.x+1, w.y+1)
	assert.Equal(t, hitWindowBody, h.kind)
	assert.Same(t, w, h.window)
}
