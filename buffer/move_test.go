package buffer

import "testing"

func TestBuffer_Move_GraphemeWrapsLines(t *testing.T) {
	b := New("ab\nc")
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})

	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 0}); got != want {
		t.Fatalf("cursor after right at EOL=%v, want %v", got, want)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if got, want := b.Cursor(), (Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor after left at SOL=%v, want %v", got, want)
	}
}

func TestBuffer_Move_UpDownClampsColumn(t *testing.T) {
	b := New("abcdef\nab\nabcd")
	b.SetCursor(Pos{Row: 0, GraphemeCol: 5})

	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got, want := b.Cursor(), (Pos{Row: 1, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	v := b.Version()
	b.SetCursor(Pos{Row: 2, GraphemeCol: 0})
	b.Move(Move{Unit: MoveLine, Dir: DirDown})
	if got := b.Version(); got != v+1 {
		t.Fatalf("move past last row bumped version: got %d, want %d", got, v+1)
	}
}

func TestBuffer_Move_ExtendSelection(t *testing.T) {
	b := New("hello world")

	b.Move(Move{Unit: MoveWord, Dir: DirRight, Extend: true})
	r, ok := b.Selection()
	if !ok {
		t.Fatalf("expected selection")
	}
	want := Range{Start: Pos{}, End: Pos{Row: 0, GraphemeCol: 5}}
	if r != want {
		t.Fatalf("selection=%v, want %v", r, want)
	}

	b.Move(Move{Unit: MoveWord, Dir: DirRight, Extend: true})
	if r, _ := b.Selection(); r.End != (Pos{Row: 0, GraphemeCol: 11}) {
		t.Fatalf("extended selection end=%v, want col 11", r.End)
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected plain move to clear selection")
	}
}

func TestBuffer_Move_Doc(t *testing.T) {
	b := New("a\nbb\nccc")
	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	if got, want := b.Cursor(), (Pos{Row: 2, GraphemeCol: 3}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	b.Move(Move{Unit: MoveDoc, Dir: DirHome})
	if got := b.Cursor(); got != (Pos{}) {
		t.Fatalf("cursor=%v, want origin", got)
	}
}

func TestBuffer_Offsets(t *testing.T) {
	b := New("ab\n\ncde")
	if got, want := b.DocLen(), 7; got != want {
		t.Fatalf("doc len=%d, want %d", got, want)
	}

	cases := []struct {
		pos Pos
		off int
	}{
		{pos: Pos{Row: 0, GraphemeCol: 0}, off: 0},
		{pos: Pos{Row: 0, GraphemeCol: 2}, off: 2},
		{pos: Pos{Row: 1, GraphemeCol: 0}, off: 3},
		{pos: Pos{Row: 2, GraphemeCol: 0}, off: 4},
		{pos: Pos{Row: 2, GraphemeCol: 3}, off: 7},
	}
	for _, tc := range cases {
		off, ok := b.OffsetFromPos(tc.pos)
		if !ok || off != tc.off {
			t.Fatalf("OffsetFromPos(%v): got (%d, %v), want (%d, true)", tc.pos, off, ok, tc.off)
		}
		pos, ok := b.PosFromOffset(tc.off)
		if !ok || pos != tc.pos {
			t.Fatalf("PosFromOffset(%d): got (%v, %v), want (%v, true)", tc.off, pos, ok, tc.pos)
		}
	}

	if _, ok := b.PosFromOffset(8); ok {
		t.Fatalf("expected offset past end to fail")
	}
	if _, ok := b.OffsetFromPos(Pos{Row: 0, GraphemeCol: 3}); ok {
		t.Fatalf("expected out-of-bounds pos to fail")
	}
}
