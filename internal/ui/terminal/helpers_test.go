package terminal

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/ui/drawer"
)

const (
	testWidth  = 80
	testHeight = 24
	// rows left for the container once the status and help lines are drawn
	testContainerHeight = testHeight - 2
	bottomStripY        = testContainerHeight - 1
)

func newTestItem(t *testing.T, title string, opts ...entity.ItemOption) *entity.DrawerItem {
	t.Helper()
	opts = append([]entity.ItemOption{entity.WithID(entity.ItemID(title))}, opts...)
	item, err := entity.NewDrawerItem(title+" content", title, opts...)
	require.NoError(t, err)
	return item
}

func newTestContainer(t *testing.T, surfaces *Surfaces) *drawer.Container {
	t.Helper()

	bottom := drawer.DefaultEdgeOptions(entity.EdgeBottom)
	bottom.SplitSize = 6
	bottom.MaxSplitFraction = 0.5

	return drawer.NewContainer(context.Background(), drawer.Options{
		Edges:    map[entity.Edge]drawer.EdgeOptions{entity.EdgeBottom: bottom},
		Floating: drawer.FloatingOptions{DefaultWidth: 30, DefaultHeight: 8},
		Surfaces: surfaces,
	})
}

// newTestModel builds a sized model with the given items on the bottom edge.
func newTestModel(t *testing.T, items ...*entity.DrawerItem) (Model, *drawer.Container, *Surfaces) {
	t.Helper()

	ctx := context.Background()
	surfaces := NewSurfaces(ctx)
	c := newTestContainer(t, surfaces)
	for _, item := range items {
		c.AddItem(ctx, entity.EdgeBottom, item)
	}

	m := NewModel(ctx, ModelConfig{Container: c, Surfaces: surfaces})
	m = send(t, m, tea.WindowSizeMsg{Width: testWidth, Height: testHeight})
	require.Equal(t, testContainerHeight, m.containerHeight())
	return m, c, surfaces
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}

func rightPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
