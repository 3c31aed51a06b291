package editor

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/inkwell/buffer"
	"github.com/iw2rmb/inkwell/internal/seed"
)

func stripANSI(s string) string { return ansi.Strip(s) }

func viewLines(m Model) []string {
	got := strings.Split(m.View(), "\n")
	for i := range got {
		got[i] = strings.TrimRight(stripANSI(got[i]), " ")
	}
	return got
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 5)
	if got := lipgloss.Height(m.View()); got != 5 {
		t.Fatalf("height after SetSize(20,5): got %d, want %d", got, 5)
	}
}

func TestView_SnapshotFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "one\ntwo\nthree\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(8, 3)

	got := viewLines(m)
	want := []string{
		"1 one",
		"2 two",
		"3 three",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_LargeDocumentRendersVisibleRowsOnly(t *testing.T) {
	m := New(Config{Text: seed.Lines(200000), ShowLineNums: true})
	m = m.SetSize(30, 3)

	m.buf.SetCursor(buffer.Pos{Row: 150000})
	m, _ = m.Update(nil)

	if got := m.YOffset(); got != 149998 {
		t.Fatalf("y offset: got %d, want %d", got, 149998)
	}
	got := viewLines(m)
	want := []string{
		"149999 Line 149999",
		"150000 Line 150000",
		"150001 Line 150001",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestView_HorizontalScrollFollowsCursor(t *testing.T) {
	m := New(Config{Text: "abcdefgh"})
	m = m.SetSize(4, 1)

	m.buf.SetCursor(buffer.Pos{GraphemeCol: 6})
	m, _ = m.Update(nil)

	if got := viewLines(m)[0]; got != "defg" {
		t.Fatalf("view: got %q, want %q", got, "defg")
	}
}

func TestView_EmbedRendersPlaceholder(t *testing.T) {
	text := "a" + buffer.EmbedMarkup("data:image/png;base64,iVBORw0KGgo=") + "b"
	m := New(Config{Text: text})
	m = m.Blur()
	m = m.SetSize(40, 1)

	if got := viewLines(m)[0]; got != "a[image/png]b" {
		t.Fatalf("view: got %q, want %q", got, "a[image/png]b")
	}
	if got := m.cellOffset(0, 2); got != 12 {
		t.Fatalf("cell offset after embed: got %d, want %d", got, 12)
	}
}

func TestView_TabsExpand(t *testing.T) {
	m := New(Config{Text: "a\tb", TabWidth: 4})
	m = m.Blur()
	m = m.SetSize(20, 1)

	if got := viewLines(m)[0]; got != "a   b" {
		t.Fatalf("view: got %q, want %q", got, "a   b")
	}
}

func TestScrollBy_ClampsToDocument(t *testing.T) {
	m := New(Config{Text: seed.Lines(10)})
	m = m.SetSize(10, 4)

	m = m.ScrollBy(100)
	if got := m.YOffset(); got != 6 {
		t.Fatalf("y offset: got %d, want %d", got, 6)
	}
	m = m.ScrollBy(-100)
	if got := m.YOffset(); got != 0 {
		t.Fatalf("y offset: got %d, want %d", got, 0)
	}
}

func TestModel_CopiesShareFocus(t *testing.T) {
	m := New(Config{Text: "x"})
	ref := m.Ref()

	_ = m.Blur()
	if m.Focused() {
		t.Fatalf("expected copies to observe blur")
	}
	if _, ok := ref.SelectionCursor(); ok {
		t.Fatalf("expected no selection cursor while blurred")
	}
}
