package chroot

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// essentialPaths is the minimal file set used to confirm a mounted tree is a
// genuine Linux root rather than an empty or unrelated filesystem.
var essentialPaths = []string{
	"/bin", "/usr/bin", "/lib", "/usr/lib",
	"/etc/fstab", "/etc/passwd", "/etc/shadow",
}

// shellPaths are the shells a rescue session can hand control to.
var shellPaths = []string{"/bin/bash", "/bin/sh", "/usr/bin/bash", "/usr/bin/sh"}

// minEssentialPaths is how many essential paths must exist for the tree to
// count as a Linux root.
const minEssentialPaths = 3

// ValidateRoot checks that the tree under root looks like a bootable Linux
// installation: at least minEssentialPaths essential paths plus a known
// shell. Failure wraps ErrInvalidInstallation.
func ValidateRoot(root string) error {
	found := 0
	for _, p := range essentialPaths {
		if pathExists(root, p) {
			found++
		}
	}

	shellFound := false
	for _, p := range shellPaths {
		if pathExists(root, p) {
			shellFound = true
			break
		}
	}

	if found < minEssentialPaths || !shellFound {
		return fmt.Errorf("%w: %d of %d essential paths present, shell found: %t",
			ErrInvalidInstallation, found, len(essentialPaths), shellFound)
	}

	return nil
}

// DetectShell picks the shell to exec inside the chroot, preferring bash.
func DetectShell(root string) string {
	for _, p := range []string{"/bin/bash", "/usr/bin/bash"} {
		if pathExists(root, p) {
			return p
		}
	}
	return "/bin/sh"
}

func pathExists(root, path string) bool {
	_, err := os.Stat(filepath.Join(root, strings.TrimPrefix(path, "/")))
	return err == nil
}
