package util

import (
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatSize converts a byte count, given as the string block-device tools
// emit, to a human readable size. Values that already carry a unit suffix are
// returned unchanged; empty or otherwise unusable input yields "Unknown".
func FormatSize(size string) string {
	size = strings.TrimSpace(size)
	if size == "" {
		return "Unknown"
	}

	n, err := strconv.ParseUint(size, 10, 64)
	if err != nil {
		// Not a plain byte count; assume the tool already humanized it.
		return size
	}

	return humanize.IBytes(n)
}
