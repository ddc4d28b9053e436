package blockdev

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CheckBlockDevice verifies that path exists and is a block special file.
// Mount plans are rejected early when a named device is not one.
func CheckBlockDevice(path string) error {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return fmt.Errorf("blockdev: stat %s: %w", path, err)
	}

	if st.Mode&unix.S_IFMT != unix.S_IFBLK {
		return fmt.Errorf("blockdev: %s is not a block device", path)
	}

	return nil
}
