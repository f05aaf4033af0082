package cli

import (
	"github.com/dustin/go-humanize"
)

// FormatBytes formats a size with SI suffixes, e.g. 12345 -> "12 kB".
func FormatBytes(n int) string {
	if n < 0 {
		n = 0
	}
	return humanize.Bytes(uint64(n))
}
