// Package blockdev wraps util-linux's lsblk for disk and partition discovery.
package blockdev

//go:generate mockgen -destination mocks/mock_blockdev.go github.com/liveiso/rescue-utils/internal/blockdev UtilImpl,BlockDev,SubvolumeProber

import (
	"context"

	"github.com/liveiso/rescue-utils/internal/blockdev/types"
	"github.com/liveiso/rescue-utils/internal/system"
)

// BlockDev outlines typed block-device discovery for the rescue flow.
type BlockDev interface {
	// ListDisks enumerates physical disks, excluding loopback/ram/zram
	// pseudo-devices.
	ListDisks(ctx context.Context) ([]types.Disk, error)
	// ListPartitions enumerates the mountable partitions of disk, probing
	// btrfs subvolume layouts and annotating suggested mount targets.
	ListPartitions(ctx context.Context, disk string) ([]types.Partition, error)
}

// SubvolumeProber discovers btrfs subvolume layouts for a device. Probing is
// blocking and performs its own mount/unmount cycle; it never reports an
// error, degrading to an empty result instead.
type SubvolumeProber interface {
	ProbeSubvolumes(ctx context.Context, device string) *types.BtrfsInfo
}

// ForUtilLinux creates a BlockDev for the given util-linux release. Releases
// whose lsblk lacks JSON support get the flat-text implementation; everything
// else (including an unidentified host) gets the structured implementation
// with the flat parser kept as a fallback.
func ForUtilLinux(ul *system.UtilLinux, prober SubvolumeProber, mountRoot string) BlockDev {
	base := lsblk{
		util:      &LsblkCmd{},
		dec:       &JSONDecoder{},
		prober:    prober,
		mountRoot: mountRoot,
	}

	if ul != nil && !ul.SupportsJSON() {
		return &lsblkFlat{lsblk: base}
	}
	return &lsblkJSON{lsblk: base}
}

// lsblk carries the pieces shared by both BlockDev implementations.
type lsblk struct {
	// util provides the raw lsblk invocations.
	util UtilImpl

	// dec is the Decoder used to decode raw structured output.
	dec Decoder

	// prober discovers btrfs subvolume layouts; nil disables probing.
	prober SubvolumeProber

	// mountRoot is the rescue mount root, needed to discount stale
	// mountpoints when suggesting targets.
	mountRoot string
}

// Type assertions to ensure both implementations satisfy BlockDev.
var (
	_ BlockDev = (*lsblkJSON)(nil)
	_ BlockDev = (*lsblkFlat)(nil)
)
