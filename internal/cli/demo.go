package cli

import (
	"context"
	"fmt"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/ui/drawer"
)

const demoCenter = `drawerpane

Click a control on any edge to open its drawer.
Drag a control along its strip to reorder it, or onto
another strip to move it there. Drop it anywhere else
to float it. Right click a control to toggle floating.
Drag a divider to resize a docked region.`

type demoItem struct {
	id      entity.ItemID
	title   string
	icon    string
	content string
	opts    []entity.ItemOption
}

// demoItems are the drawers of the demo layout. IDs are stable so floating
// positions carry over between sessions.
var demoItems = map[entity.Edge][]demoItem{
	entity.EdgeTop: {
		{id: "search", title: "Search", icon: "/", content: "query: _"},
		{id: "outline", title: "Outline", icon: "≡", content: "main\n  run\n  parse"},
	},
	entity.EdgeRight: {
		{
			id: "inspector", title: "Inspector", icon: "i",
			content: "side edges only",
			opts:    []entity.ItemOption{entity.WithAllowedEdges(entity.EdgeLeft, entity.EdgeRight)},
		},
		{id: "properties", title: "Props", icon: "p", content: "width: 30\nheight: 12"},
	},
	entity.EdgeBottom: {
		{
			id: "terminal", title: "Terminal", icon: ">", content: "$ go test ./...",
			opts: []entity.ItemOption{entity.WithFloatable(false)},
		},
		{id: "problems", title: "Problems", icon: "!", content: "no problems"},
		{
			id: "log", title: "Log", icon: "#", content: "drawer log",
			opts: []entity.ItemOption{entity.WithFloatStyleSheet("log.css")},
		},
	},
	entity.EdgeLeft: {
		{id: "files", title: "Files", icon: "F", content: "cmd/\ninternal/\ngo.mod"},
		{id: "git", title: "Git", icon: "G", content: "main ✓"},
	},
}

// PopulateDemo fills c with the demo drawers and center content.
func PopulateDemo(ctx context.Context, c *drawer.Container) error {
	for _, e := range entity.Edges {
		for _, d := range demoItems[e] {
			opts := append([]entity.ItemOption{entity.WithID(d.id), entity.WithIcon(d.icon)}, d.opts...)
			item, err := entity.NewDrawerItem(d.content, d.title, opts...)
			if err != nil {
				return fmt.Errorf("create drawer %s: %w", d.id, err)
			}
			c.AddItem(ctx, e, item)
		}
	}
	c.SetCenterContent(demoCenter)
	return nil
}
