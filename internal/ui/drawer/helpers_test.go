package drawer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/ui/drawer"
	"github.com/bnema/drawerpane/internal/ui/drawer/mocks"
)

func newItem(t *testing.T, title string, opts ...entity.ItemOption) *entity.DrawerItem {
	t.Helper()
	opts = append([]entity.ItemOption{entity.WithID(entity.ItemID(title))}, opts...)
	item, err := entity.NewDrawerItem(title+" content", title, opts...)
	require.NoError(t, err)
	return item
}

// testEdgeOptions keeps the split region well under the size fence so the
// resize tests have room in both directions.
func testEdgeOptions(e entity.Edge) drawer.EdgeOptions {
	opts := drawer.DefaultEdgeOptions(e)
	opts.SplitSize = 20
	return opts
}

func newContainer(t *testing.T, opener drawer.SurfaceOpener, store drawer.PositionStore) *drawer.Container {
	t.Helper()

	edges := make(map[entity.Edge]drawer.EdgeOptions, len(entity.Edges))
	for _, e := range entity.Edges {
		edges[e] = testEdgeOptions(e)
	}

	c := drawer.NewContainer(context.Background(), drawer.Options{
		Edges:    edges,
		Surfaces: opener,
		Floating: drawer.FloatingOptions{DefaultWidth: 40, DefaultHeight: 12, Store: store},
	})
	c.SetContainerSize(200, 100)
	return c
}

func ids(items []*entity.DrawerItem) []entity.ItemID {
	out := make([]entity.ItemID, len(items))
	for i, item := range items {
		out[i] = item.ID()
	}
	return out
}

// assertDockedInvariant checks that the split region holds exactly the open,
// non-floating items of the strip in strip order.
func assertDockedInvariant(t *testing.T, m *drawer.EdgeManager) {
	t.Helper()
	var want []entity.ItemID
	for _, item := range m.Items() {
		if item.Visible() && !item.Floating() {
			want = append(want, item.ID())
		}
	}
	require.Equal(t, want, ids(m.OpenDocked()))
	if len(want) == 0 {
		require.Empty(t, m.Split().Items())
		require.False(t, m.Split().Shown())
		return
	}
	require.Equal(t, want, m.Split().Items())
}

// expectOpen registers one OpenSurface call for id and captures its request.
func expectOpen(t *testing.T, opener *mocks.MockSurfaceOpener, id entity.ItemID) (*mocks.MockSurface, *drawer.SurfaceRequest) {
	t.Helper()
	surface := mocks.NewMockSurface(t)
	req := &drawer.SurfaceRequest{}
	opener.EXPECT().
		OpenSurface(mock.Anything, mock.MatchedBy(func(r drawer.SurfaceRequest) bool { return r.ItemID == id })).
		RunAndReturn(func(_ context.Context, r drawer.SurfaceRequest) (drawer.Surface, error) {
			*req = r
			return surface, nil
		}).
		Once()
	return surface, req
}
