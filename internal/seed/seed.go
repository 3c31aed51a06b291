// Package seed generates synthetic documents for load tests and demos.
package seed

import (
	"strconv"
	"strings"
)

// Lines returns "Line 1\nLine 2\n...\nLine n".
func Lines(n int) string {
	if n <= 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(n * 12)
	buf := make([]byte, 0, 16)
	for i := 1; i <= n; i++ {
		if i > 1 {
			sb.WriteByte('\n')
		}
		buf = append(buf[:0], "Line "...)
		buf = strconv.AppendInt(buf, int64(i), 10)
		sb.Write(buf)
	}
	return sb.String()
}

// Bytes returns a document of exactly n bytes made of Lines output, truncated
// or padded as needed.
func Bytes(n int) string {
	if n <= 0 {
		return ""
	}
	s := Lines(n/6 + 1)
	if len(s) >= n {
		return s[:n]
	}
	return s + strings.Repeat(".", n-len(s))
}
