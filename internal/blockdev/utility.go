package blockdev

import (
	"context"
	"fmt"

	"github.com/liveiso/rescue-utils/internal/util"
)

// partitionColumns are the lsblk output columns the partition inspector needs.
const partitionColumns = "NAME,SIZE,FSTYPE,MOUNTPOINT,LABEL,UUID"

// UtilImpl outlines the raw lsblk invocations the rescue flow relies on. The
// methods are intentionally named for the argument forms they wrap.
type UtilImpl interface {
	// ListDevices fetches the whole-disk listing, one line per physical disk.
	ListDevices(ctx context.Context) (string, error)
	// ListTree fetches the structured (JSON) device tree scoped to disk.
	ListTree(ctx context.Context, disk string) (string, error)
	// ListFlat fetches the flat text listing scoped to disk.
	ListFlat(ctx context.Context, disk string) (string, error)
}

// LsblkCmd provides the UtilImpl implementation backed by util-linux's lsblk.
// A nil Exec falls back to the real system executor.
type LsblkCmd struct {
	Exec util.Executor
}

func (l *LsblkCmd) executor() util.Executor {
	if l.Exec != nil {
		return l.Exec
	}
	return util.SystemExecutor{}
}

// ListDevices lists top-level devices in plain columns.
//   - -lnp prints a flat list of full device paths without headings
//   - -d skips partition rows
func (l *LsblkCmd) ListDevices(ctx context.Context) (string, error) {
	cmdListDisks := []string{"lsblk", "-lnp", "-o", "NAME,SIZE,MODEL", "-d"}

	cmdOut, err := l.executor().Execute(ctx, cmdListDisks)
	if err != nil {
		return cmdOut.Stdout, fmt.Errorf("blockdev: failed to run lsblk to list disks, stderr: [%s]: %w", cmdOut.Stderr, err)
	}

	return cmdOut.Stdout, nil
}

// ListTree lists a disk's device tree as JSON.
//   - -J converts lsblk's output from human-readable to JSON
func (l *LsblkCmd) ListTree(ctx context.Context, disk string) (string, error) {
	cmdListTree := []string{"lsblk", "-J", "-o", partitionColumns, disk}

	cmdOut, err := l.executor().Execute(ctx, cmdListTree)
	if err != nil {
		return cmdOut.Stdout, fmt.Errorf("blockdev: failed to run lsblk for device tree of %s, stderr: [%s]: %w", disk, cmdOut.Stderr, err)
	}

	return cmdOut.Stdout, nil
}

// ListFlat lists a disk's partitions in flat text form, for util-linux
// releases whose lsblk has no JSON support.
func (l *LsblkCmd) ListFlat(ctx context.Context, disk string) (string, error) {
	cmdListFlat := []string{"lsblk", "-lnp", "-o", partitionColumns, disk}

	cmdOut, err := l.executor().Execute(ctx, cmdListFlat)
	if err != nil {
		return cmdOut.Stdout, fmt.Errorf("blockdev: failed to run lsblk for flat listing of %s, stderr: [%s]: %w", disk, cmdOut.Stderr, err)
	}

	return cmdOut.Stdout, nil
}
