package buffer

import "testing"

func TestComparePos(t *testing.T) {
	cases := []struct {
		a, b Pos
		want int
	}{
		{a: Pos{Row: 0, GraphemeCol: 5}, b: Pos{Row: 1, GraphemeCol: 0}, want: -1},
		{a: Pos{Row: 2, GraphemeCol: 0}, b: Pos{Row: 1, GraphemeCol: 999}, want: 1},
		{a: Pos{Row: 1, GraphemeCol: 0}, b: Pos{Row: 1, GraphemeCol: 1}, want: -1},
		{a: Pos{Row: 3, GraphemeCol: 4}, b: Pos{Row: 3, GraphemeCol: 4}, want: 0},
	}
	for _, tc := range cases {
		if got := ComparePos(tc.a, tc.b); got != tc.want {
			t.Fatalf("ComparePos(%v, %v): got %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNormalizeRange(t *testing.T) {
	r := NormalizeRange(Range{Start: Pos{Row: 2, GraphemeCol: 3}, End: Pos{Row: 1, GraphemeCol: 9}})
	want := Range{Start: Pos{Row: 1, GraphemeCol: 9}, End: Pos{Row: 2, GraphemeCol: 3}}
	if r != want {
		t.Fatalf("normalized range: got %v, want %v", r, want)
	}
	if again := NormalizeRange(r); again != r {
		t.Fatalf("expected idempotent normalize: %v != %v", again, r)
	}
}

func TestClampPos(t *testing.T) {
	lineLen := func(row int) int { return []int{2, 0, 5}[row] }

	cases := []struct {
		in, want Pos
	}{
		{in: Pos{Row: -1, GraphemeCol: -1}, want: Pos{Row: 0, GraphemeCol: 0}},
		{in: Pos{Row: 0, GraphemeCol: 9}, want: Pos{Row: 0, GraphemeCol: 2}},
		{in: Pos{Row: 1, GraphemeCol: 3}, want: Pos{Row: 1, GraphemeCol: 0}},
		{in: Pos{Row: 9, GraphemeCol: 9}, want: Pos{Row: 2, GraphemeCol: 5}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, 3, lineLen); got != tc.want {
			t.Fatalf("ClampPos(%v): got %v, want %v", tc.in, got, tc.want)
		}
	}

	if got := ClampPos(Pos{Row: 4, GraphemeCol: 4}, 0, nil); got != (Pos{}) {
		t.Fatalf("ClampPos on empty doc: got %v, want zero", got)
	}
}
