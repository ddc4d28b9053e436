package blockdev

import "strings"

// mountableFilesystems is the allow-list of filesystem types the rescue flow
// can mount.
var mountableFilesystems = map[string]struct{}{
	"ext4":     {},
	"ext3":     {},
	"ext2":     {},
	"xfs":      {},
	"btrfs":    {},
	"f2fs":     {},
	"vfat":     {},
	"fat32":    {},
	"fat16":    {},
	"ntfs":     {},
	"exfat":    {},
	"jfs":      {},
	"reiserfs": {},
}

// nonMountableFilesystems covers types lsblk reports that must never be
// offered as rescue targets: swap, extended partition containers, LVM members
// and encrypted volumes.
var nonMountableFilesystems = map[string]struct{}{
	"swap":        {},
	"extended":    {},
	"lvm2_member": {},
	"crypto_luks": {},
}

// IsMountable reports whether a filesystem type can be mounted by the rescue
// flow. The comparison is case-insensitive.
func IsMountable(fstype string) bool {
	if fstype == "" {
		return false
	}

	ft := strings.ToLower(fstype)
	if _, denied := nonMountableFilesystems[ft]; denied {
		return false
	}

	_, ok := mountableFilesystems[ft]
	return ok
}
