package cli

import (
	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/infrastructure/config"
	"github.com/bnema/drawerpane/internal/ui/drawer"
	"github.com/bnema/drawerpane/internal/ui/terminal"
)

func edgeConfig(cfg *config.Config, e entity.Edge) config.EdgeConfig {
	switch e {
	case entity.EdgeTop:
		return cfg.Drawers.Edges.Top
	case entity.EdgeRight:
		return cfg.Drawers.Edges.Right
	case entity.EdgeBottom:
		return cfg.Drawers.Edges.Bottom
	default:
		return cfg.Drawers.Edges.Left
	}
}

// EdgeOptions maps the drawers section of cfg onto engine options.
func EdgeOptions(cfg *config.Config) map[entity.Edge]drawer.EdgeOptions {
	d := cfg.Drawers
	opts := make(map[entity.Edge]drawer.EdgeOptions, len(entity.Edges))

	for _, e := range entity.Edges {
		o := drawer.DefaultEdgeOptions(e)
		o.MaxSplitFraction = d.MaxSplitFraction
		o.SplitSize = d.DefaultSplitSize
		o.DividerWidth = d.DividerWidth
		o.ControlSpacing = d.ControlSpacing
		o.StripThickness = d.StripThickness
		if !e.IsHorizontal() {
			o.StripThickness = d.VerticalStripThickness
		}

		ec := edgeConfig(cfg, e)
		o.Hidden = !ec.Visible
		o.SingleOpen = ec.SingleOpen
		opts[e] = o
	}
	return opts
}

// ContainerOptions builds the engine options for cfg. A nil store disables
// cross-session floating positions.
func ContainerOptions(cfg *config.Config, surfaces drawer.SurfaceOpener, store drawer.PositionStore) drawer.Options {
	return drawer.Options{
		Edges: EdgeOptions(cfg),
		Floating: drawer.FloatingOptions{
			DefaultWidth:  cfg.Floating.DefaultWidth,
			DefaultHeight: cfg.Floating.DefaultHeight,
			Store:         store,
		},
		Surfaces: surfaces,
	}
}

// EdgePolicies extracts the live-reloadable edge state from cfg.
func EdgePolicies(cfg *config.Config) terminal.EdgePolicyMsg {
	msg := make(terminal.EdgePolicyMsg, len(entity.Edges))
	for _, e := range entity.Edges {
		ec := edgeConfig(cfg, e)
		msg[e] = terminal.EdgePolicy{Visible: ec.Visible, SingleOpen: ec.SingleOpen}
	}
	return msg
}
