package buffer

import (
	"strings"

	"github.com/iw2rmb/inkwell/internal/grapheme"
)

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the document state of the editor surface: text, cursor and
// selection.
//
// Version moves on every effective state change; TextVersion moves only when
// the text itself changes.
type Buffer struct {
	lines [][]string

	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState
}

func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

func (b *Buffer) Text() string {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		for _, c := range line {
			n += len(c)
		}
	}

	var sb strings.Builder
	sb.Grow(max(n, 0))
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range line {
			sb.WriteString(c)
		}
	}
	return sb.String()
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the clusters of row. The slice must not be modified.
func (b *Buffer) Line(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SetSelection selects r and moves the cursor to its (unnormalized) end.
func (b *Buffer) SetSelection(r Range) {
	r = ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: r.Start, end: r.End}
	if r.IsEmpty() {
		next = selectionState{}
	}
	if selectionStateEqual(b.sel, next) && b.cursor == r.End {
		return
	}
	b.sel = next
	b.cursor = r.End
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	b.sel = selectionState{}
	b.version++
}

// SelectedText returns the text of the active selection.
func (b *Buffer) SelectedText() (string, bool) {
	r, ok := b.Selection()
	if !ok {
		return "", false
	}
	return textForLinesRange(b.lines, r), true
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func selectionStateEqual(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a == b
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, splitClusters(s))
	}
	return lines
}

// splitClusters splits a single line into grapheme clusters, keeping embed
// markup as one cluster.
func splitClusters(s string) []string {
	if !strings.Contains(s, embedPrefix) {
		return grapheme.Split(s)
	}

	var out []string
	for s != "" {
		i := strings.Index(s, embedPrefix)
		if i < 0 {
			break
		}
		j := strings.IndexByte(s[i+len(embedPrefix):], embedSuffix)
		if j < 0 {
			break
		}
		end := i + len(embedPrefix) + j + 1
		out = append(out, grapheme.Split(s[:i])...)
		out = append(out, s[i:end])
		s = s[end:]
	}
	return append(out, grapheme.Split(s)...)
}
