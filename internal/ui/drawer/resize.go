package drawer

// SetContainerSize records the container dimensions used for the divider
// position and the split size cap. A split region left over the cap by a
// shrinking container is cut down to the cap.
func (m *EdgeManager) SetContainerSize(width, height float64) {
	m.width = width
	m.height = height

	extent := m.extent()
	if extent > 0 && !m.split.Fits(m.split.Size(), extent) {
		m.split.SetSize(m.split.MaxFraction()*extent, extent)
	}
}

// StripThickness returns the thickness of the toggle strip.
func (m *EdgeManager) StripThickness() float64 { return m.stripThickness }

// DividerWidth returns the thickness of the resize divider.
func (m *EdgeManager) DividerWidth() float64 { return m.dividerWidth }

// extent is the container dimension perpendicular to the edge.
func (m *EdgeManager) extent() float64 {
	if m.edge.IsHorizontal() {
		return m.height
	}
	return m.width
}

// DividerStart returns the coordinate of the divider on the axis
// perpendicular to the edge.
func (m *EdgeManager) DividerStart() float64 {
	if m.edge.IsFar() {
		return m.extent() - m.stripThickness - m.split.Size() - m.dividerWidth
	}
	return m.stripThickness + m.split.Size()
}

// Resizing reports whether a divider drag is in progress.
func (m *EdgeManager) Resizing() bool { return m.resizing }

// DividerPress starts a resize. It is ignored while the split region is
// hidden.
func (m *EdgeManager) DividerPress() bool {
	if !m.visible || !m.split.Shown() {
		return false
	}
	m.resizing = true
	return true
}

// DividerDrag resizes the split region so the divider follows pointer. The
// new size is applied only if it stays within [0, maxFraction*extent].
func (m *EdgeManager) DividerDrag(pointer float64) bool {
	if !m.resizing {
		return false
	}
	return m.ResizeBy(pointer - m.DividerStart())
}

// ResizeBy grows the split region by delta measured along the axis pointing
// away from the near edge. The sign is flipped for far edges.
func (m *EdgeManager) ResizeBy(delta float64) bool {
	if m.edge.IsFar() {
		delta = -delta
	}
	applied := m.split.SetSize(m.split.Size()+delta, m.extent())
	if applied {
		m.logger.Trace().Float64("size", m.split.Size()).Msg("split resized")
	}
	return applied
}

// DividerRelease ends a resize.
func (m *EdgeManager) DividerRelease() {
	m.resizing = false
}
