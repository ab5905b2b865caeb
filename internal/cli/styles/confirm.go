package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no confirmation dialog run as its own program.
// It quits as soon as the user decides.
type ConfirmModel struct {
	Message string
	Detail  string
	Yes     bool // Current selection

	confirmed bool
	canceled  bool
	keys      ConfirmKeyMap
	theme     *Theme
}

// ConfirmKeyMap defines keybindings for the confirm dialog.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeyMap returns the default keybindings.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		Toggle:  key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab"), key.WithHelp("←/→", "switch")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a dialog defaulting to "No".
func NewConfirm(theme *Theme, message, detail string) ConfirmModel {
	return ConfirmModel{
		Message: message,
		Detail:  detail,
		keys:    DefaultConfirmKeyMap(),
		theme:   theme,
	}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msgKey, m.keys.Yes):
		// y answers right away
		m.Yes, m.confirmed = true, true
		return m, tea.Quit
	case key.Matches(msgKey, m.keys.No):
		m.Yes, m.confirmed = false, true
		return m, tea.Quit
	case key.Matches(msgKey, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(msgKey, m.keys.Confirm):
		m.confirmed = true
		return m, tea.Quit
	case key.Matches(msgKey, m.keys.Cancel):
		m.canceled = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	if m.Done() {
		return ""
	}
	t := m.theme

	yesStyle, noStyle := t.InactiveButton, t.ActiveButton
	if m.Yes {
		yesStyle, noStyle = t.ActiveButton, t.InactiveButton
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, noStyle.Render("No"), "  ", yesStyle.Render("Yes"))

	parts := []string{t.Title.Render(m.Message)}
	if m.Detail != "" {
		parts = append(parts, t.Subtle.Render(m.Detail))
	}
	parts = append(parts,
		"",
		buttons,
		"",
		t.Subtle.Render("y/n or ←/→ to select • enter to confirm • esc to cancel"),
	)

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// Done returns true if the dialog is complete.
func (m ConfirmModel) Done() bool {
	return m.confirmed || m.canceled
}

// Result returns true if user confirmed "Yes".
func (m ConfirmModel) Result() bool {
	return m.confirmed && m.Yes
}
