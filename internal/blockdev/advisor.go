package blockdev

import (
	"strings"

	"github.com/liveiso/rescue-utils/internal/blockdev/types"
)

// fatFamily covers the FAT variants that are offered as the EFI system
// partition target.
var fatFamily = map[string]struct{}{
	"vfat":  {},
	"fat32": {},
	"fat16": {},
	"fat":   {},
}

// linuxNative covers the Linux filesystems handled by the label and
// mountpoint heuristics.
var linuxNative = map[string]struct{}{
	"ext2":     {},
	"ext3":     {},
	"ext4":     {},
	"xfs":      {},
	"jfs":      {},
	"reiserfs": {},
	"f2fs":     {},
}

// extFamily gates the /boot fallback, which only makes sense for ext
// partitions.
var extFamily = map[string]struct{}{
	"ext2": {},
	"ext3": {},
	"ext4": {},
}

// SuggestMountPoint proposes a mount target for a partition given its
// filesystem type, label, current mountpoint and any discovered btrfs layout.
// used holds targets already assigned during this advisor run and is read,
// never mutated; iterating partitions in stable order and suggesting greedily
// yields a deterministic, non-conflicting assignment.
//
// mountRoot is the rescue mount root: a current mountpoint under it is stale
// state from a previous session and is ignored.
func SuggestMountPoint(fstype, label, currentMount string, used map[string]bool, btrfs *types.BtrfsInfo, mountRoot string) string {
	if currentMount != "" && mountRoot != "" && strings.Contains(currentMount, mountRoot) {
		currentMount = ""
	}

	fstype = strings.ToLower(fstype)
	label = strings.ToLower(label)

	if _, ok := fatFamily[fstype]; ok {
		// Deliberately aggressive: any unused FAT partition is offered as
		// the EFI target.
		if !used["/boot/efi"] {
			return "/boot/efi"
		}
		return ""
	}

	if fstype == "btrfs" {
		return suggestBtrfs(used, btrfs)
	}

	if _, ok := linuxNative[fstype]; ok {
		return suggestLinuxNative(fstype, label, currentMount, used)
	}

	return ""
}

func suggestBtrfs(used map[string]bool, btrfs *types.BtrfsInfo) string {
	if btrfs != nil && btrfs.HasSubvolumes {
		// A subvolume named @ or @root marks the root layout convention.
		for _, sv := range btrfs.Subvolumes {
			if (sv.Path == "@" || sv.Path == "@root") && !used["/"] {
				return "/"
			}
		}

		// Otherwise follow the default subvolume's own suggestion.
		for _, sv := range btrfs.Subvolumes {
			if sv.IsDefault && sv.SuggestedMount != "" && !used[sv.SuggestedMount] {
				return sv.SuggestedMount
			}
		}
	}

	if !used["/"] {
		return "/"
	}
	return ""
}

func suggestLinuxNative(fstype, label, currentMount string, used map[string]bool) string {
	switch {
	case strings.Contains(label, "root") || strings.Contains(label, "system"):
		if !used["/"] {
			return "/"
		}
	case strings.Contains(label, "home"):
		if !used["/home"] {
			return "/home"
		}
	case strings.Contains(label, "boot") && !strings.Contains(label, "efi"):
		if !used["/boot"] {
			return "/boot"
		}
	case currentMount == "/":
		if !used["/"] {
			return "/"
		}
	case currentMount == "/home":
		if !used["/home"] {
			return "/home"
		}
	case currentMount == "/boot":
		if !used["/boot"] {
			return "/boot"
		}
	case !used["/"]:
		return "/"
	case !used["/boot"] && isExtFamily(fstype):
		return "/boot"
	case !used["/home"]:
		return "/home"
	}

	return ""
}

func isExtFamily(fstype string) bool {
	_, ok := extFamily[fstype]
	return ok
}
