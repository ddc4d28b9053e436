// Package system provides the functionality necessary for identifying the
// host's block-device tooling.
package system

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/liveiso/rescue-utils/internal/util"
)

// System correlates the scanned host with its util-linux installation.
type System struct {
	utilLinux *UtilLinux
}

func (sys *System) UtilLinux() *UtilLinux {
	return sys.utilLinux
}

// Scan identifies the host's util-linux installation by invoking
// "lsblk --version" and parsing the reported version.
func Scan(ctx context.Context, exec util.Executor) (*System, error) {
	out, err := exec.Execute(ctx, []string{"lsblk", "--version"})
	if err != nil {
		return nil, fmt.Errorf("cannot run lsblk: %w", err)
	}

	ul, err := parseUtilLinux(out.Stdout)
	if err != nil {
		return nil, err
	}

	system := &System{
		utilLinux: ul,
	}

	return system, nil
}

// parseUtilLinux parses version banners like "lsblk from util-linux 2.39.3".
// The version is always the last whitespace-separated field.
func parseUtilLinux(banner string) (*UtilLinux, error) {
	fields := strings.Fields(strings.TrimSpace(banner))
	if len(fields) == 0 {
		return nil, errors.New("empty lsblk version output")
	}

	return newUtilLinux(fields[len(fields)-1])
}
