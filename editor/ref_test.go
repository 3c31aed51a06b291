package editor

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/buffer"
)

func TestRef_SelectionCursor(t *testing.T) {
	m := New(Config{Text: "ab\ncd"})
	ref := m.Ref()

	m.buf.SetCursor(buffer.Pos{Row: 1, GraphemeCol: 1})
	if off, ok := ref.SelectionCursor(); !ok || off != 4 {
		t.Fatalf("cursor offset: got (%d,%v), want (4,true)", off, ok)
	}

	m.buf.SetSelection(buffer.Range{
		Start: buffer.Pos{Row: 1, GraphemeCol: 2},
		End:   buffer.Pos{Row: 0, GraphemeCol: 1},
	})
	if off, ok := ref.SelectionCursor(); !ok || off != 1 {
		t.Fatalf("selection start offset: got (%d,%v), want (1,true)", off, ok)
	}

	var nilRef *Ref
	if _, ok := nilRef.SelectionCursor(); ok {
		t.Fatalf("nil ref reported a cursor")
	}
}

func TestRef_InsertEmbeddedImage_FiresOnChange(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) tea.Cmd {
			events = append(events, ev)
			return nil
		},
	})
	m = m.SetSize(40, 1)
	ref := m.Ref()

	uri := "data:image/png;base64,iVBORw0KGgo="
	if err := ref.InsertEmbeddedImage(1, uri); err != nil {
		t.Fatalf("insert: %v", err)
	}

	m, _ = m.Update(nil)
	if len(events) != 1 {
		t.Fatalf("OnChange calls: got %d, want %d", len(events), 1)
	}
	want := "a" + buffer.EmbedMarkup(uri) + "b"
	if events[0].Text != want {
		t.Fatalf("text: got %q, want %q", events[0].Text, want)
	}
	if !strings.Contains(stripANSI(m.View()), "[image/png]") {
		t.Fatalf("expected placeholder in view")
	}
}

func TestRef_InsertEmbeddedImage_Errors(t *testing.T) {
	ro := New(Config{Text: "ab", ReadOnly: true}).Ref()
	if err := ro.InsertEmbeddedImage(0, "data:image/png;base64,AA"); !errors.Is(err, ErrReadOnly) {
		t.Fatalf("read-only insert: got %v, want %v", err, ErrReadOnly)
	}

	ref := New(Config{Text: "ab"}).Ref()
	if err := ref.InsertEmbeddedImage(-1, "data:image/png;base64,AA"); !errors.Is(err, ErrInvalidInsert) {
		t.Fatalf("negative index: got %v, want %v", err, ErrInvalidInsert)
	}
	if err := ref.InsertEmbeddedImage(0, "bad)uri"); !errors.Is(err, ErrInvalidInsert) {
		t.Fatalf("bad uri: got %v, want %v", err, ErrInvalidInsert)
	}
}
