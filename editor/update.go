package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/clipboard"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.st.focused || m.buf == nil {
		return m, nil
	}

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Paste {
		return m, m.paste(string(msg.Runes))
	}

	km := m.cfg.KeyMap
	ro := m.st.readOnly

	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})
	case key.Matches(msg, km.PageUp):
		m.movePage(-1)
	case key.Matches(msg, km.PageDown):
		m.movePage(1)

	case key.Matches(msg, km.Backspace):
		if !ro {
			m.buf.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !ro {
			m.buf.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !ro {
			m.buf.InsertNewline()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.copySelection()
		if !ro {
			m.buf.DeleteSelection()
		}
	case key.Matches(msg, km.Paste):
		return m, m.pasteClipboard()

	default:
		if ro {
			return m, nil
		}
		switch {
		case msg.Type == tea.KeyTab:
			m.buf.InsertText("\t")
		case msg.Type == tea.KeySpace:
			m.buf.InsertText(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.buf.InsertText(string(msg.Runes))
		}
	}

	return m, nil
}

func (m *Model) movePage(dir int) {
	step := max(m.height, 1)
	cur := m.buf.Cursor()
	m.buf.SetCursor(buffer.Pos{Row: cur.Row + dir*step, GraphemeCol: cur.GraphemeCol})
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	if s, ok := m.buf.SelectedText(); ok && s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

func (m Model) pasteClipboard() tea.Cmd {
	if m.cfg.Clipboard == nil {
		return nil
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return nil
	}
	return m.paste(s)
}

// paste inserts the text of a paste unless it carries images, which are
// left to the OnPaste host.
func (m Model) paste(s string) tea.Cmd {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	ev := clipboard.FromPaste(s)
	if !m.st.readOnly && len(ev.Images()) == 0 {
		m.buf.InsertText(s)
	}
	if m.cfg.OnPaste == nil {
		return nil
	}
	return m.cfg.OnPaste(ev)
}
