package blockdev

import (
	"context"
	"strings"

	"github.com/liveiso/rescue-utils/internal/blockdev/types"
)

// pseudoDeviceSegments flag loopback and memory-backed devices that are never
// rescue targets.
var pseudoDeviceSegments = []string{"/loop", "/ram", "/zram"}

// ListDisks enumerates the host's physical disks.
func (l *lsblk) ListDisks(ctx context.Context) ([]types.Disk, error) {
	raw, err := l.util.ListDevices(ctx)
	if err != nil {
		return nil, err
	}

	return parseDiskList(raw), nil
}

// parseDiskList splits the whole-disk listing into Disk values. Columns are
// NAME SIZE MODEL; the model may contain spaces and missing trailing columns
// are tolerated.
func parseDiskList(raw string) []types.Disk {
	disks := []types.Disk{}

	for _, line := range strings.Split(raw, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		device := fields[0]
		if isPseudoDevice(device) {
			continue
		}

		disk := types.Disk{
			Device: device,
			Size:   "Unknown",
			Model:  "Unknown Device",
		}
		if len(fields) > 1 {
			disk.Size = fields[1]
		}
		if len(fields) > 2 {
			disk.Model = strings.Join(fields[2:], " ")
		}

		disks = append(disks, disk)
	}

	return disks
}

func isPseudoDevice(device string) bool {
	for _, segment := range pseudoDeviceSegments {
		if strings.Contains(device, segment) {
			return true
		}
	}
	return false
}
