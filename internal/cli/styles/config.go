package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Renderer renders command output with styled text.
type Renderer struct {
	theme *Theme
}

// NewRenderer creates a renderer with the given theme.
func NewRenderer(theme *Theme) *Renderer {
	return &Renderer{theme: theme}
}

// RenderConfig renders the effective configuration with its file path.
func (r *Renderer) RenderConfig(path string, yaml []byte) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	if path == "" {
		path = "(defaults, no config file)"
	}
	return fmt.Sprintf(
		"\n  %s Config %s\n\n%s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		indent(strings.TrimRight(string(yaml), "\n"), "    "),
	)
}

// RenderPositions renders the stored floating positions table.
func (r *Renderer) RenderPositions(dbPath, table string, count int) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	header := fmt.Sprintf("\n  %s Floating positions %s\n",
		iconStyle.Render(IconDatabase),
		r.theme.Subtle.Render(dbPath),
	)
	if count == 0 {
		return header + fmt.Sprintf("  %s %s\n",
			iconStyle.Render(IconInfo),
			r.theme.Subtle.Render("No positions recorded yet. Float a drawer and move its window."),
		)
	}
	return header + "\n" + indent(table, "  ") + "\n"
}

// RenderCleared renders the result of clearing positions.
func (r *Renderer) RenderCleared(what string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s Cleared %s\n", iconStyle.Render(IconTrash), what)
}

// RenderCanceled renders an aborted operation.
func (r *Renderer) RenderCanceled() string {
	return fmt.Sprintf("\n  %s\n", r.theme.Subtle.Render("Canceled."))
}

// RenderError renders an error message.
func (r *Renderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
