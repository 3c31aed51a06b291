package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/buffer"
)

const wheelStep = 3

func (m Model) updateMouse(msg tea.MouseMsg) Model {
	if msg.Action == tea.MouseActionPress {
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonWheelUp:
			return m.ScrollBy(-wheelStep)
		case tea.MouseButtonWheelDown:
			return m.ScrollBy(wheelStep)
		}
	}

	if !m.st.focused || m.buf == nil {
		return m
	}

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.mouseInBounds(msg.X, msg.Y) {
			return m
		}
		p := m.screenToDocPos(msg.X, msg.Y)
		if msg.Shift {
			anchor := m.buf.Cursor()
			if r, ok := m.buf.Selection(); ok {
				anchor = r.Start
			}
			m.mouseAnchor = anchor
			m.buf.SetSelection(buffer.Range{Start: anchor, End: p})
		} else {
			m.mouseAnchor = p
			m.buf.SetCursor(p)
		}
		m.mouseDragging = true

	case tea.MouseActionMotion:
		if !m.mouseDragging {
			return m
		}
		x := clamp(msg.X, 0, max(m.width-1, 0))
		y := clamp(msg.Y, 0, max(m.height-1, 0))
		m.buf.SetSelection(buffer.Range{Start: m.mouseAnchor, End: m.screenToDocPos(x, y)})

	case tea.MouseActionRelease:
		m.mouseDragging = false
	}
	return m
}

func (m Model) mouseInBounds(x, y int) bool {
	if m.width <= 0 || m.height <= 0 {
		return false
	}
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// screenToDocPos maps view-local cell coordinates to a document position.
func (m Model) screenToDocPos(x, y int) buffer.Pos {
	row := clamp(m.yOffset+y, 0, max(m.buf.LineCount()-1, 0))
	target := x - m.gutterWidth() + m.xOffset
	if target <= 0 {
		return buffer.Pos{Row: row}
	}

	cell := 0
	for col, c := range m.buf.Line(row) {
		w := m.clusterWidth(c, cell)
		if target < cell+w {
			return buffer.Pos{Row: row, GraphemeCol: col}
		}
		cell += w
	}
	return buffer.Pos{Row: row, GraphemeCol: len(m.buf.Line(row))}
}
