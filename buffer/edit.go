package buffer

import (
	"strings"

	"github.com/iw2rmb/inkwell/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.replace(r, s)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if r, ok := b.Selection(); ok {
		b.replace(r, "")
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col > 0:
		b.replace(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
	case row > 0:
		// Join with the previous line.
		start := Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		b.replace(Range{Start: start, End: b.cursor}, "")
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if r, ok := b.Selection(); ok {
		b.replace(r, "")
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case col < len(b.lines[row]):
		b.replace(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
	case row < len(b.lines)-1:
		// Join with the next line.
		b.replace(Range{Start: b.cursor, End: Pos{Row: row + 1, GraphemeCol: 0}}, "")
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	if r, ok := b.Selection(); ok {
		b.replace(r, "")
	}
}

// replace swaps r for text, leaves the cursor after the inserted text and
// clears the selection.
func (b *Buffer) replace(r Range, text string) bool {
	next, changed := b.replaceRange(r, text)
	if !changed {
		return false
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}
	if textForLinesRange(b.lines, r) == text {
		return b.cursor, false
	}

	parts := strings.Split(text, "\n")
	ins := make([][]string, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, splitClusters(p))
	}
	return b.spliceClusters(r, ins), true
}

// spliceClusters replaces r with the given rows of clusters and returns the
// position right after the inserted content.
func (b *Buffer) spliceClusters(r Range, ins [][]string) Pos {
	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol

	prefix := b.lines[startRow][:startCol:startCol]
	suffix := b.lines[endRow][endCol:]

	repl := make([][]string, 0, len(ins))
	var next Pos
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		next = Pos{Row: startRow, GraphemeCol: len(prefix) + len(ins[0])}
	} else {
		first := make([]string, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, ins[i])
		}

		lastPart := ins[len(ins)-1]
		last := make([]string, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		next = Pos{Row: startRow + len(ins) - 1, GraphemeCol: len(lastPart)}
	}

	if len(repl) == endRow-startRow+1 {
		copy(b.lines[startRow:endRow+1], repl)
		return next
	}

	out := make([][]string, 0, len(b.lines)-(endRow-startRow+1)+len(repl))
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)
	b.lines = out
	return next
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		if row > r.Start.Row {
			sb.WriteByte('\n')
		}
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
