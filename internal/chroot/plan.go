package chroot

import (
	"errors"
	"fmt"
)

// Mount points a plan may assign.
const (
	PointRoot = "/"
	PointBoot = "/boot"
	PointEFI  = "/boot/efi"
	PointHome = "/home"
)

// auxPoints are the optional mounts, in the order they are performed.
var auxPoints = []string{PointBoot, PointEFI, PointHome}

// Target names the device, and optionally the btrfs subvolume, that should
// provide one mount point.
type Target struct {
	Device    string
	Subvolume string
}

// MountPlan maps mount points under the rescue root to the devices that
// should provide them. A plan is never partially valid: it either contains a
// root entry or the orchestrator rejects it before any mutation.
type MountPlan map[string]Target

// Validate rejects plans that cannot produce a usable rescue root. It runs
// before any privileged operation is issued.
func (p MountPlan) Validate() error {
	root, ok := p[PointRoot]
	if !ok || root.Device == "" {
		return errors.New("chroot: mount plan has no root device")
	}

	for point, target := range p {
		if !isPlanPoint(point) {
			return fmt.Errorf("chroot: unsupported mount point %q in plan", point)
		}
		if target.Device == "" {
			return fmt.Errorf("chroot: no device for mount point %q", point)
		}
	}

	return nil
}

func isPlanPoint(point string) bool {
	if point == PointRoot {
		return true
	}
	for _, p := range auxPoints {
		if point == p {
			return true
		}
	}
	return false
}
