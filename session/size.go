package session

import (
	"fmt"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

const bytesPerMB = 1 << 20

// SizeInBytes returns the UTF-8 encoded length of the document.
func (c *Controller) SizeInBytes() int { return c.size }

// SizeInMB returns the encoded length in MiB with two decimals.
func (c *Controller) SizeInMB() string {
	return FormatMB(c.size)
}

// SizeHuman returns the encoded length in IEC units, e.g. "1.5 MiB".
func (c *Controller) SizeHuman() string {
	return humanize.IBytes(uint64(c.size))
}

func FormatMB(n int) string {
	return fmt.Sprintf("%.2f", float64(n)/bytesPerMB)
}

// encodedLen counts invalid bytes as U+FFFD, the way a UTF-8 encoder would
// write them.
func encodedLen(s string) int {
	if utf8.ValidString(s) {
		return len(s)
	}
	n := 0
	for _, r := range s {
		n += utf8.RuneLen(r)
	}
	return n
}
