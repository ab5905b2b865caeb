package styles_test

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/drawerpane/internal/cli/styles"
	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/infrastructure/config"
)

func testTheme() *styles.Theme {
	return styles.NewTheme(config.DefaultConfig())
}

func TestNewTheme_UsesConfiguredPalette(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.Palette.Accent = "#ff00ff"

	theme := styles.NewTheme(cfg)
	assert.Equal(t, lipgloss.Color("#ff00ff"), theme.Accent)
	assert.Equal(t, lipgloss.Color("#ff00ff"), theme.Success)
}

func TestNewTheme_NilConfigFallsBack(t *testing.T) {
	theme := styles.NewTheme(nil)
	assert.Equal(t, lipgloss.Color(config.DefaultDarkPalette().Background), theme.Background)
}

func TestConfirm_YesQuitsImmediately(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Clear?", "")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	confirm := next.(styles.ConfirmModel)

	require.NotNil(t, cmd)
	assert.True(t, confirm.Done())
	assert.True(t, confirm.Result())
}

func TestConfirm_EnterUsesSelection(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Clear?", "3 positions")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	confirm := next.(styles.ConfirmModel)
	assert.True(t, confirm.Done())
	assert.False(t, confirm.Result())

	m = styles.NewConfirm(testTheme(), "Clear?", "")
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, next.(styles.ConfirmModel).Result())
}

func TestConfirm_EscapeCancels(t *testing.T) {
	m := styles.NewConfirm(testTheme(), "Clear?", "")
	assert.Contains(t, m.View(), "Clear?")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	confirm := next.(styles.ConfirmModel)
	assert.True(t, confirm.Done())
	assert.False(t, confirm.Result())
	assert.Empty(t, confirm.View())
}

func TestPositionRow(t *testing.T) {
	pos := &entity.FloatingPosition{ItemID: "logs", X: 12, Y: 3.5}
	row := styles.PositionRow(pos)
	assert.Equal(t, "logs", row[0])
	assert.Equal(t, "12", row[1])
	assert.Equal(t, "3.5", row[2])
	assert.Equal(t, "-", row[3])

	pos.UpdatedAt = time.Date(2026, 1, 2, 3, 4, 5, 0, time.Local)
	assert.Equal(t, "2026-01-02 03:04:05", styles.PositionRow(pos)[3])
}

func TestRenderer(t *testing.T) {
	r := styles.NewRenderer(testTheme())

	out := r.RenderConfig("/tmp/drawerpane/config.yaml", []byte("logging:\n  level: info\n"))
	assert.Contains(t, out, "config.yaml")
	assert.Contains(t, out, "    logging:")

	assert.Contains(t, r.RenderPositions("/tmp/db", "", 0), "No positions recorded")
	assert.Contains(t, r.RenderError(errors.New("boom")), "boom")
	assert.Contains(t, r.RenderCleared("2 positions"), "Cleared 2 positions")
}
