// Package types defines the structures produced by block-device inspection.
package types

// Disk describes one whole physical disk. Disks are immutable snapshots,
// recreated on every enumeration.
type Disk struct {
	Device string
	Size   string
	Model  string
}

// Partition describes one mountable partition of a disk. Partitions are
// transient and reconstructed per query; the underlying block-device state
// can change between calls.
type Partition struct {
	Device         string
	Size           string
	FSType         string
	MountPoint     string
	Label          string
	UUID           string
	IsBtrfs        bool
	SuggestedMount string     // empty when no target could be inferred
	Btrfs          *BtrfsInfo // nil unless subvolumes were discovered
}

// BtrfsInfo carries the subvolume layout discovered by a live probe.
type BtrfsInfo struct {
	HasSubvolumes      bool
	Subvolumes         []Subvolume
	DefaultSubvolumeID string
}

// Subvolume is a single btrfs subvolume.
type Subvolume struct {
	ID             string
	Path           string
	Name           string // last path segment
	IsDefault      bool
	SuggestedMount string // empty when no target could be inferred
}
