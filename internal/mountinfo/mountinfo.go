// Package mountinfo reads the kernel's mount table for the current process.
package mountinfo

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// DefaultPath is the kernel's per-process mount table.
const DefaultPath = "/proc/self/mountinfo"

// Mounted reports whether path is currently a mount point.
func Mounted(path string) (bool, error) {
	f, err := os.Open(DefaultPath)
	if err != nil {
		return false, err
	}
	defer f.Close()

	return MountedFromReader(f, path)
}

// MountedFromReader checks path against mountinfo-formatted data from the
// reader provided. This is useful in tests that supply fake mount tables.
func MountedFromReader(reader io.Reader, path string) (bool, error) {
	target := filepath.Clean(path)

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		// Field 5 is the mount point; shorter lines are malformed.
		if len(fields) < 5 {
			continue
		}
		if unescapeOctal(fields[4]) == target {
			return true, nil
		}
	}

	return false, scanner.Err()
}

// unescapeOctal decodes the \040-style escapes the kernel uses for whitespace
// in mount points.
func unescapeOctal(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+3 < len(s) {
			if n, err := strconv.ParseUint(s[i+1:i+4], 8, 8); err == nil {
				b.WriteByte(byte(n))
				i += 3
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
