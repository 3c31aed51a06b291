package seed

import (
	"strings"
	"testing"
)

func TestLines(t *testing.T) {
	if got := Lines(0); got != "" {
		t.Fatalf("Lines(0): got %q, want empty", got)
	}
	if got, want := Lines(3), "Line 1\nLine 2\nLine 3"; got != want {
		t.Fatalf("Lines(3): got %q, want %q", got, want)
	}

	big := Lines(100000)
	if got := strings.Count(big, "\n"); got != 99999 {
		t.Fatalf("Lines(100000) newlines: got %d, want %d", got, 99999)
	}
	if !strings.HasSuffix(big, "Line 100000") {
		t.Fatalf("Lines(100000) last line: got %q", big[len(big)-12:])
	}
}

func TestBytes(t *testing.T) {
	for _, n := range []int{0, 1, 5, 7, 1 << 20} {
		if got := len(Bytes(n)); got != n {
			t.Fatalf("len(Bytes(%d)): got %d", n, got)
		}
	}
}
