// Package terminal hosts the drawer container in a terminal with Bubble Tea.
// The screen is the container's coordinate space: one cell is one unit.
package terminal

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/bnema/drawerpane/internal/domain/entity"
	"github.com/bnema/drawerpane/internal/logging"
	"github.com/bnema/drawerpane/internal/ui/drawer"
)

// pointerState tracks the gesture started by the last left press.
type pointerState struct {
	// a press on a control becomes a toggle on release, or a drag on motion
	press     *hit
	pressAt   entity.Point
	dragging  bool
	hover     entity.Edge
	hovering  bool
	resizing  *drawer.EdgeManager
	moving    *Window
	grabDX    int
	grabDY    int
	lastPoint entity.Point
}

// Model is the Bubble Tea model hosting a drawer container.
type Model struct {
	help   help.Model
	keys   keyMap
	styles Styles

	container *drawer.Container
	surfaces  *Surfaces

	width   int
	height  int
	focus   entity.Edge
	pointer *pointerState
	status  string
	err     error

	ctx    context.Context
	logger zerolog.Logger
}

// ModelConfig holds the dependencies of the model.
type ModelConfig struct {
	Container *drawer.Container
	Surfaces  *Surfaces
	Styles    *Styles
	Help      *help.Model
}

// EdgePolicy is the live-reloadable state of one edge.
type EdgePolicy struct {
	Visible    bool
	SingleOpen bool
}

// EdgePolicyMsg applies edge policies, typically after a config reload.
type EdgePolicyMsg map[entity.Edge]EdgePolicy

// NewModel creates a host for cfg.Container. Surfaces must be the opener the
// container was built with.
func NewModel(ctx context.Context, cfg ModelConfig) Model {
	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}
	h := help.New()
	if cfg.Help != nil {
		h = *cfg.Help
	}
	log := logging.FromContext(ctx)

	return Model{
		help:      h,
		keys:      defaultKeyMap(),
		styles:    styles,
		container: cfg.Container,
		surfaces:  cfg.Surfaces,
		width:     80,
		height:    24,
		focus:     entity.EdgeBottom,
		pointer:   &pointerState{},
		ctx:       ctx,
		logger:    log.With().Str("component", "terminal").Logger(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case EdgePolicyMsg:
		for e, p := range msg {
			m.container.SetEdgeVisible(e, p.Visible)
			m.container.SetEdgeSingleOpenMode(e, p.SingleOpen)
		}
		m.setStatus("configuration reloaded")
		m.resize()
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.container.Close(m.ctx)
		return *m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
	case key.Matches(msg, m.keys.FocusNext):
		m.focus = entity.Edges[(int(m.focus)+1)%len(entity.Edges)]
	case key.Matches(msg, m.keys.FocusPrev):
		m.focus = entity.Edges[(int(m.focus)+len(entity.Edges)-1)%len(entity.Edges)]
	case key.Matches(msg, m.keys.EdgeToggle):
		n, _ := strconv.Atoi(msg.String())
		e := entity.Edges[n-1]
		m.container.SetEdgeVisible(e, !m.container.Edge(e).Visible())
		m.setStatus(fmt.Sprintf("%s edge %s", e, onOff(m.container.Edge(e).Visible())))
		m.resize()
	case key.Matches(msg, m.keys.SingleOpen):
		single := !m.container.Edge(m.focus).SingleOpen()
		m.container.SetEdgeSingleOpenMode(m.focus, single)
		m.setStatus(fmt.Sprintf("%s edge single-open %s", m.focus, onOff(single)))
	case key.Matches(msg, m.keys.Cancel):
		m.report(m.container.CancelDrag(m.ctx))
		m.pointer = &pointerState{}
	}
	return *m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	f := m.frame()
	p := entity.Point{X: float64(msg.X), Y: float64(msg.Y)}
	m.pointer.lastPoint = p

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.press(f, msg.X, msg.Y, p)
		case tea.MouseButtonRight:
			h := hitTest(m.container, m.surfaces, f, msg.X, msg.Y)
			if h.kind == hitControl {
				m.flipFloatMode(h)
			}
		}
	case tea.MouseActionMotion:
		m.motion(f, msg.X, msg.Y, p)
	case tea.MouseActionRelease:
		m.release(f, msg.X, msg.Y, p)
	}
}

func (m *Model) press(f frame, x, y int, p entity.Point) {
	h := hitTest(m.container, m.surfaces, f, x, y)
	m.pointer = &pointerState{lastPoint: p}

	switch h.kind {
	case hitWindowClose:
		m.surfaces.RequestClose(h.window)
	case hitWindowTitle:
		m.surfaces.Raise(h.window)
		m.pointer.moving = h.window
		m.pointer.grabDX, m.pointer.grabDY = x-h.window.x, y-h.window.y
	case hitWindowBody:
		m.surfaces.Raise(h.window)
	case hitControl:
		m.focus = h.edge
		m.pointer.press = &h
		m.pointer.pressAt = p
	case hitDivider:
		m.focus = h.edge
		edge := m.container.Edge(h.edge)
		if ok, err := edge.Dispatch(m.ctx, drawer.DividerPressEvent{}); ok && err == nil {
			m.pointer.resizing = edge
		}
	case hitStrip, hitPanel:
		m.focus = h.edge
	}
}

func (m *Model) motion(f frame, x, y int, p entity.Point) {
	ptr := m.pointer
	switch {
	case ptr.moving != nil:
		w := ptr.moving
		nx := clamp(x-ptr.grabDX, 0, max(m.width-w.w, 0))
		ny := clamp(y-ptr.grabDY, 0, max(m.containerHeight()-1, 0))
		m.surfaces.Move(w, nx, ny)
	case ptr.resizing != nil:
		coord := p.Y
		if !ptr.resizing.Edge().IsHorizontal() {
			coord = p.X
		}
		_, err := ptr.resizing.Dispatch(m.ctx, drawer.DividerDragEvent{Pointer: coord})
		m.report(err)
	case ptr.press != nil && !ptr.dragging:
		if p == ptr.pressAt {
			return
		}
		origin := m.container.Edge(ptr.press.edge)
		ok, err := origin.Dispatch(m.ctx, drawer.DragStartEvent{ID: ptr.press.item})
		m.report(err)
		if !ok {
			ptr.press = nil
			return
		}
		ptr.dragging = true
		m.dragOver(f, x, y, p)
	case ptr.dragging:
		m.dragOver(f, x, y, p)
	}
}

func (m *Model) dragOver(f frame, x, y int, p entity.Point) {
	ptr := m.pointer
	session := m.container.Session()
	if !session.Active() {
		return
	}
	h := hitTest(m.container, nil, f, x, y)
	over := h.kind == hitControl || h.kind == hitStrip

	if ptr.hovering && (!over || h.edge != ptr.hover) {
		_, _ = m.container.Edge(ptr.hover).Dispatch(m.ctx, drawer.DragExitEvent{})
		ptr.hovering = false
	}
	if !over {
		return
	}
	payload := drawer.NewPayload(session.Item().ID())
	if ok, _ := m.container.Edge(h.edge).Dispatch(m.ctx, drawer.DragOverEvent{Payload: payload, Pointer: p}); ok {
		ptr.hover, ptr.hovering = h.edge, true
	}
}

func (m *Model) release(f frame, x, y int, p entity.Point) {
	ptr := m.pointer
	defer func() { m.pointer = &pointerState{lastPoint: p} }()

	switch {
	case ptr.moving != nil:
		return
	case ptr.resizing != nil:
		_, err := ptr.resizing.Dispatch(m.ctx, drawer.DividerReleaseEvent{})
		m.report(err)
	case ptr.dragging:
		m.drop(f, x, y, p)
	case ptr.press != nil:
		_, err := m.container.Edge(ptr.press.edge).Dispatch(m.ctx, drawer.ToggleEvent{ID: ptr.press.item})
		m.report(err)
	}
}

func (m *Model) drop(f frame, x, y int, p entity.Point) {
	session := m.container.Session()
	if !session.Active() {
		return
	}
	origin := session.Origin()
	item := session.Item()

	dropped := false
	h := hitTest(m.container, nil, f, x, y)
	if h.kind == hitControl || h.kind == hitStrip {
		target := m.container.Edge(h.edge)
		dropped, _ = target.Dispatch(m.ctx, drawer.DropEvent{Payload: drawer.NewPayload(item.ID()), Pointer: p})
		if dropped {
			m.focus = h.edge
		}
	}
	if m.pointer.hovering {
		_, _ = m.container.Edge(m.pointer.hover).Dispatch(m.ctx, drawer.DragExitEvent{})
	}

	_, err := origin.Dispatch(m.ctx, drawer.DragDoneEvent{Dropped: dropped})
	m.report(err)

	if dropped {
		m.setStatus(fmt.Sprintf("moved %s to %s", item.Title(), h.edge))
	} else if item.Floating() {
		m.setStatus(fmt.Sprintf("%s will float when opened", item.Title()))
	}
	m.resize()
}

func (m *Model) flipFloatMode(h hit) {
	item := m.container.Lookup(h.item)
	if item == nil || !item.Floatable() {
		return
	}
	ok, err := m.container.Edge(h.edge).Dispatch(m.ctx, drawer.FloatModeEvent{ID: h.item, Selected: !item.Floating()})
	m.report(err)
	if ok && err == nil {
		m.setStatus(fmt.Sprintf("%s float mode %s", item.Title(), onOff(item.Floating())))
	}
}

func (m *Model) report(err error) {
	m.err = err
	if err != nil {
		m.logger.Warn().Err(err).Msg("drawer event failed")
	}
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.err = nil
}

// footer renders the status line and the help view.
func (m Model) footer() string {
	status := m.styles.Status.Render(fmt.Sprintf("focus: %s  %s", m.focus, m.status))
	if m.err != nil {
		status = m.styles.Error.Render(m.err.Error())
	}
	return lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))
}

func (m Model) containerHeight() int {
	return max(m.height-lipgloss.Height(m.footer()), 0)
}

// resize propagates the drawable area to the engine and realigns strips.
func (m *Model) resize() {
	m.container.SetContainerSize(float64(m.width), float64(m.containerHeight()))
	syncStrips(m.container, layoutFrame(m.container, m.width, m.containerHeight()))
}

func (m Model) frame() frame {
	f := layoutFrame(m.container, m.width, m.containerHeight())
	syncStrips(m.container, f)
	return f
}

// View implements tea.Model.
func (m Model) View() string {
	c := m.paint()
	return lipgloss.JoinVertical(lipgloss.Left, c.render(m.styles), m.footer())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
