package blockdev

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/liveiso/rescue-utils/internal/blockdev/types"
)

// lsblkJSON prefers lsblk's structured output and switches to the flat parser
// whenever the structured path cannot be used.
type lsblkJSON struct {
	lsblk
}

// ListPartitions queries the structured device tree for disk and builds the
// filtered, annotated partition list. Any structured-path failure (tool
// error, parse failure, disk missing from the tree) falls back to the flat
// text parser rather than propagating.
func (l *lsblkJSON) ListPartitions(ctx context.Context, disk string) ([]types.Partition, error) {
	raw, err := l.util.ListTree(ctx, disk)
	if err != nil {
		logrus.WithError(err).WithField("disk", disk).Warn("Structured listing failed, using flat fallback")
		return l.listPartitionsFlat(ctx, disk)
	}

	tree, err := l.dec.DecodeDeviceTree(strings.NewReader(raw))
	if err != nil {
		logrus.WithError(err).WithField("disk", disk).Warn("Structured parse failed, using flat fallback")
		return l.listPartitionsFlat(ctx, disk)
	}

	node := tree.FindDevice(disk)
	if node == nil {
		logrus.WithField("disk", disk).Warn("Disk missing from structured listing, using flat fallback")
		return l.listPartitionsFlat(ctx, disk)
	}

	partitions := []types.Partition{}
	used := make(map[string]bool)
	for i := range node.Children {
		child := &node.Children[i]
		p, ok := l.buildPartition(ctx, child.DevicePath(), child.Size, child.FSType, child.MountPoint, child.Label, child.UUID, used)
		if ok {
			partitions = append(partitions, p)
		}
	}

	return partitions, nil
}

// lsblkFlat serves util-linux releases whose lsblk has no JSON support.
type lsblkFlat struct {
	lsblk
}

func (l *lsblkFlat) ListPartitions(ctx context.Context, disk string) ([]types.Partition, error) {
	return l.listPartitionsFlat(ctx, disk)
}

// listPartitionsFlat parses the flat text listing, applying the same
// filtering and suggestion logic as the structured path. It is both the
// legacy implementation and the structured implementation's fallback.
func (l *lsblk) listPartitionsFlat(ctx context.Context, disk string) ([]types.Partition, error) {
	raw, err := l.util.ListFlat(ctx, disk)
	if err != nil {
		return nil, fmt.Errorf("blockdev: flat partition listing failed for %s: %w", disk, err)
	}

	partitions := []types.Partition{}
	used := make(map[string]bool)

	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 || fields[0] == disk {
			continue
		}

		column := func(i int) string {
			if len(fields) > i {
				return fields[i]
			}
			return ""
		}

		p, ok := l.buildPartition(ctx, fields[0], column(1), column(2), column(3), column(4), column(5), used)
		if ok {
			partitions = append(partitions, p)
		}
	}

	return partitions, nil
}

// buildPartition applies the mountable filter, btrfs probing and mount-target
// suggestion to one lsblk row. The second return is false when the row is
// filtered out. used tracks suggestions across the whole listing so two
// partitions are never offered the same target.
func (l *lsblk) buildPartition(ctx context.Context, device, size, fstype, mount, label, uuid string, used map[string]bool) (types.Partition, bool) {
	if fstype == "" {
		fstype = "unknown"
	}
	if !IsMountable(fstype) {
		return types.Partition{}, false
	}

	isBtrfs := strings.EqualFold(fstype, "btrfs")
	var info *types.BtrfsInfo
	if isBtrfs && l.prober != nil {
		info = l.prober.ProbeSubvolumes(ctx, device)
	}

	suggested := SuggestMountPoint(fstype, label, mount, used, info, l.mountRoot)
	if suggested != "" {
		used[suggested] = true
	}

	p := types.Partition{
		Device:         device,
		Size:           size,
		FSType:         fstype,
		MountPoint:     mount,
		Label:          label,
		UUID:           uuid,
		IsBtrfs:        isBtrfs,
		SuggestedMount: suggested,
	}
	if info != nil && info.HasSubvolumes {
		p.Btrfs = info
	}

	return p, true
}
