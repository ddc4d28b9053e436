package chroot

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInstallation identifies a mounted tree that is not a bootable
// Linux root. It is classified separately from generic mount failures so
// callers can show a specific diagnostic; it is always preceded by a full
// teardown.
var ErrInvalidInstallation = errors.New("mounted system is not a valid Linux installation")

// MountError reports a failed privileged mount together with the tool's
// stderr, identifying the originating device and target.
type MountError struct {
	Device string
	Target string
	Stderr string
	Err    error
}

func (e *MountError) Error() string {
	return fmt.Sprintf("mount %s at %s failed, stderr: [%s]: %v", e.Device, e.Target, strings.TrimSpace(e.Stderr), e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}
