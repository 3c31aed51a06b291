package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/internal/grapheme"
)

type cellKind uint8

const (
	kindText cellKind = iota
	kindEmbed
	kindSelection
	kindCursor
)

// View renders exactly Height rows starting at YOffset.
//
// Only visible rows are touched, so rendering cost does not depend on the
// document size.
func (m Model) View() string {
	if m.buf == nil || m.height <= 0 {
		return ""
	}

	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()
	gw := m.gutterWidth()
	digits := max(gw-1, 0)

	out := make([]string, 0, m.height)
	for i := 0; i < m.height; i++ {
		row := m.yOffset + i
		if row >= m.buf.LineCount() {
			out = append(out, "")
			continue
		}

		var sb strings.Builder
		if gw > 0 {
			numStyle := m.cfg.Style.LineNum
			if m.st.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(row, cursor, sel, selOK))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m Model) renderLine(row int, cursor buffer.Pos, sel buffer.Range, selOK bool) string {
	line := m.buf.Line(row)
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, len(line))
	cursorCol := -1
	if m.st.focused && row == cursor.Row {
		cursorCol = clamp(cursor.GraphemeCol, 0, len(line))
	}

	left := m.xOffset
	right := int(^uint(0) >> 1)
	if w := m.contentWidth(); w > 0 {
		right = left + w
	}

	var (
		sb      strings.Builder
		run     strings.Builder
		runKind cellKind
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(m.styleFor(runKind).Render(run.String()))
		run.Reset()
	}
	emit := func(kind cellKind, text string) {
		if kind != runKind {
			flush()
			runKind = kind
		}
		run.WriteString(text)
	}

	cell := 0
	for col, c := range line {
		w := m.clusterWidth(c, cell)
		start, end := cell, cell+w
		cell = end
		if end <= left {
			continue
		}
		if start >= right {
			break
		}

		kind := kindText
		if buffer.IsEmbed(c) {
			kind = kindEmbed
		}
		if hasSel && col >= selStart && col < selEnd {
			kind = kindSelection
		}
		if col == cursorCol {
			kind = kindCursor
		}

		text := m.displayText(c, w)
		if start < left || end > right {
			// Wide clusters cut by the view edge render as blanks.
			text = strings.Repeat(" ", min(end, right)-max(start, left))
		}
		emit(kind, text)
	}
	if cursorCol == len(line) && cell >= left && cell < right {
		emit(kindCursor, " ")
	}
	flush()
	return sb.String()
}

func (m Model) styleFor(k cellKind) lipgloss.Style {
	switch k {
	case kindEmbed:
		return m.cfg.Style.Embed
	case kindSelection:
		return m.cfg.Style.Selection
	case kindCursor:
		return m.cfg.Style.Cursor
	default:
		return m.cfg.Style.Text
	}
}

func (m Model) displayText(c string, w int) string {
	switch {
	case c == "\t":
		return strings.Repeat(" ", w)
	case buffer.IsEmbed(c):
		return embedPlaceholder(c)
	}
	return c
}

// clusterWidth returns the cell width of c when drawn at visual column cell.
func (m Model) clusterWidth(c string, cell int) int {
	if buffer.IsEmbed(c) {
		return runewidth.StringWidth(embedPlaceholder(c))
	}
	return max(grapheme.Width(c, cell, m.cfg.TabWidth), 1)
}

// cellOffset returns the visual column of the cluster at col on row.
func (m Model) cellOffset(row, col int) int {
	if m.buf == nil || row < 0 || row >= m.buf.LineCount() {
		return 0
	}
	line := m.buf.Line(row)
	cell := 0
	for _, c := range line[:clamp(col, 0, len(line))] {
		cell += m.clusterWidth(c, cell)
	}
	return cell
}

func (m Model) gutterWidth() int {
	if !m.cfg.ShowLineNums || m.buf == nil {
		return 0
	}
	return gutterDigits(m.buf.LineCount()) + 1
}

// contentWidth is the number of text cells per row; zero means unbounded.
func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(m.width-m.gutterWidth(), 1)
}

func gutterDigits(lineCount int) int {
	return len(fmt.Sprint(max(lineCount, 1)))
}

// embedPlaceholder renders an inline image as its media type, e.g. [image/png].
func embedPlaceholder(c string) string {
	data, _ := buffer.EmbedData(c)
	rest, ok := strings.CutPrefix(data, "data:")
	if !ok {
		return "[image]"
	}
	mime, _, _ := strings.Cut(rest, ";")
	mime, _, _ = strings.Cut(mime, ",")
	if mime == "" {
		return "[image]"
	}
	return "[" + mime + "]"
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok {
		return 0, 0, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.GraphemeCol
	}
	if row == sel.End.Row {
		end = sel.End.GraphemeCol
	}
	return start, end, start < end
}
