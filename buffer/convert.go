package buffer

// Offsets address the document as a flat sequence of clusters in which every
// line break counts as one. This is the index space of the editor surface's
// selection cursor.

// DocLen returns the document length in offset units.
func (b *Buffer) DocLen() int {
	n := len(b.lines) - 1
	for _, line := range b.lines {
		n += len(line)
	}
	return n
}

// OffsetFromPos converts an in-bounds position to a document offset.
func (b *Buffer) OffsetFromPos(p Pos) (int, bool) {
	if b.clampPos(p) != p {
		return 0, false
	}
	off := p.GraphemeCol
	for row := 0; row < p.Row; row++ {
		off += len(b.lines[row]) + 1
	}
	return off, true
}

// PosFromOffset converts a document offset in [0, DocLen()] to a position.
func (b *Buffer) PosFromOffset(off int) (Pos, bool) {
	if off < 0 {
		return Pos{}, false
	}
	for row, line := range b.lines {
		if off <= len(line) {
			return Pos{Row: row, GraphemeCol: off}, true
		}
		off -= len(line) + 1
	}
	return Pos{}, false
}

// CursorOffset returns the cursor as a document offset.
func (b *Buffer) CursorOffset() int {
	off, _ := b.OffsetFromPos(b.cursor)
	return off
}
