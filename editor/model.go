package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/buffer"
)

// surfaceState is shared by every copy of a Model and by its Ref.
type surfaceState struct {
	focused  bool
	readOnly bool
}

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer
	st  *surfaceState

	width, height int
	yOffset       int
	xOffset       int

	mouseDragging bool
	mouseAnchor   buffer.Pos

	lastBufVersion  uint64
	lastTextVersion uint64
	lastCursor      buffer.Pos
}

func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg: cfg,
		buf: buffer.New(cfg.Text),
		st:  &surfaceState{focused: true, readOnly: cfg.ReadOnly},
	}
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = m.buf.Cursor()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Ref returns the handle hosts use to drive the editor from outside the
// update loop.
func (m Model) Ref() *Ref {
	return &Ref{buf: m.buf, st: m.st}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.followCursor()
	return m
}

func (m Model) Width() int { return m.width }

func (m Model) Height() int { return m.height }

// YOffset returns the document row rendered at the top of the view.
func (m Model) YOffset() int { return m.yOffset }

func (m Model) Focus() Model {
	m.st.focused = true
	m.followCursor()
	return m
}

func (m Model) Blur() Model {
	m.st.focused = false
	m.mouseDragging = false
	return m
}

func (m Model) Focused() bool { return m.st.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m = m.updateMouse(msg)
	}

	// The host may have mutated the buffer through the Ref since the last
	// update; sync catches both cases.
	var changed tea.Cmd
	m, changed = m.syncFromBuffer()
	return m, tea.Batch(cmd, changed)
}

func (m Model) syncFromBuffer() (Model, tea.Cmd) {
	if m.buf == nil || m.buf.Version() == m.lastBufVersion {
		return m, nil
	}
	m.lastBufVersion = m.buf.Version()

	if cur := m.buf.Cursor(); cur != m.lastCursor {
		m.lastCursor = cur
		m.followCursor()
	}

	if m.buf.TextVersion() == m.lastTextVersion {
		return m, nil
	}
	m.lastTextVersion = m.buf.TextVersion()
	if m.cfg.OnChange == nil {
		return m, nil
	}
	return m, m.cfg.OnChange(buildChangeEvent(m.buf))
}

// followCursor scrolls just enough to keep the cursor in view.
func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()

	if h := m.height; h > 0 {
		if cur.Row < m.yOffset {
			m.yOffset = cur.Row
		} else if cur.Row >= m.yOffset+h {
			m.yOffset = cur.Row - h + 1
		}
	}
	m.yOffset = clamp(m.yOffset, 0, max(m.buf.LineCount()-1, 0))

	if w := m.contentWidth(); w > 0 {
		x := m.cellOffset(cur.Row, cur.GraphemeCol)
		if x < m.xOffset {
			m.xOffset = x
		} else if x >= m.xOffset+w {
			m.xOffset = x - w + 1
		}
	} else {
		m.xOffset = 0
	}
}

// ScrollBy moves the view by delta rows without moving the cursor.
func (m Model) ScrollBy(delta int) Model {
	if m.buf == nil {
		return m
	}
	maxTop := max(m.buf.LineCount()-m.height, 0)
	m.yOffset = clamp(m.yOffset+delta, 0, maxTop)
	return m
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
