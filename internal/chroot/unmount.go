package chroot

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/liveiso/rescue-utils/internal/mountinfo"
)

// teardownOrder lists unmount targets relative to the mount root, deepest
// paths first. The empty entry is the mount root itself.
var teardownOrder = []string{
	"dev/pts", "dev", "proc", "sys", "run",
	"boot/efi", "boot", "home", "",
}

// UnmountAll unmounts everything under the mount root in reverse depth order.
// Best-effort: already-unmounted targets are skipped, busy targets escalate
// from a normal unmount to lazy and then forced forms, and the mounted state
// is reset regardless of individual outcomes.
func (o *Orchestrator) UnmountAll(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.unmountLocked(ctx)
}

func (o *Orchestrator) unmountLocked(ctx context.Context) error {
	defer o.state.setMounted(false)

	root := o.state.MountRoot()
	var failed []string

	for _, rel := range teardownOrder {
		target := filepath.Join(root, rel)

		mounted, err := o.isMounted(target)
		if err == nil && !mounted {
			continue
		}

		if err := o.unmount(ctx, target); err != nil {
			logrus.WithError(err).WithField("target", target).Warn("Could not unmount target")
			failed = append(failed, target)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("chroot: %d targets still mounted: %s", len(failed), strings.Join(failed, ", "))
	}

	return nil
}

// unmount escalates from a normal unmount to lazy and then forced forms,
// swallowing "not mounted" diagnostics.
func (o *Orchestrator) unmount(ctx context.Context, target string) error {
	var lastErr error

	for _, args := range [][]string{
		{"umount", target},
		{"umount", "-l", target},
		{"umount", "-f", target},
	} {
		out, err := o.run(ctx, args)
		if err == nil {
			return nil
		}
		if isNotMounted(out.Stderr) {
			return nil
		}
		lastErr = fmt.Errorf("%s: %w", strings.TrimSpace(out.Stderr), err)
	}

	return lastErr
}

// isNotMounted matches umount's "not mounted" diagnostics, which teardown
// treats as success.
func isNotMounted(stderr string) bool {
	s := strings.ToLower(stderr)
	return strings.Contains(s, "not mounted") || strings.Contains(s, "no mount point specified")
}

// isMounted consults the kernel mount table. An unreadable table is reported
// as an error and the caller attempts the unmount anyway.
func (o *Orchestrator) isMounted(target string) (bool, error) {
	f, err := os.Open(o.mountinfoPath)
	if err != nil {
		return false, err
	}
	defer f.Close()

	return mountinfo.MountedFromReader(f, target)
}
