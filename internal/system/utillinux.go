package system

import (
	"fmt"

	"github.com/Masterminds/semver"
)

var (
	// jsonOutputConstraints identify util-linux releases whose lsblk supports
	// structured JSON output (--json landed in 2.27).
	jsonOutputConstraints = mustInitConstraint(semver.NewConstraint(">= 2.27"))
)

// mustInitConstraint ensures that a semver.Constraints can be initialized and used.
func mustInitConstraint(c *semver.Constraints, err error) *semver.Constraints {
	if err != nil {
		panic(fmt.Errorf("must initialize semver constraint: %w", err))
	}
	return c
}

// UtilLinux identifies the host's util-linux release (e.g. 2.39.3).
type UtilLinux struct {
	Version semver.Version
}

func (u UtilLinux) String() string {
	return fmt.Sprintf("util-linux %s", u.Version.String())
}

// SupportsJSON reports whether this release's lsblk can emit the structured
// JSON device tree.
func (u *UtilLinux) SupportsJSON() bool {
	return jsonOutputConstraints.Check(&u.Version)
}

// newUtilLinux initializes a new UtilLinux given the version string as input.
func newUtilLinux(version string) (*UtilLinux, error) {
	ver, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("parse util-linux version %q: %w", version, err)
	}

	return &UtilLinux{Version: *ver}, nil
}
