package styles

import (
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/drawerpane/internal/domain/entity"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// nothing is selectable in a printed table
	s.Selected = lipgloss.NewStyle()
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// PositionTableColumns returns columns for the floating positions table.
func PositionTableColumns() []table.Column {
	return []table.Column{
		{Title: "Item", Width: 24},
		{Title: "X", Width: 8},
		{Title: "Y", Width: 8},
		{Title: "Updated", Width: 20},
	}
}

// PositionRow converts a stored floating position to a table row.
func PositionRow(pos *entity.FloatingPosition) table.Row {
	updated := "-"
	if !pos.UpdatedAt.IsZero() {
		updated = pos.UpdatedAt.Local().Format(time.DateTime)
	}
	return table.Row{
		string(pos.ItemID),
		strconv.FormatFloat(pos.X, 'f', -1, 64),
		strconv.FormatFloat(pos.Y, 'f', -1, 64),
		updated,
	}
}
