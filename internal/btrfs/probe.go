// Package btrfs probes btrfs partitions for their subvolume layout. There is
// no way to query subvolumes without mounting, so every probe performs a
// scoped mount/unmount cycle against a temporary directory.
package btrfs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/liveiso/rescue-utils/internal/blockdev/types"
	"github.com/liveiso/rescue-utils/internal/util"
)

// defaultProbeTimeout bounds each tool invocation of a probe so a hung device
// cannot stall the caller indefinitely.
const defaultProbeTimeout = 10 * time.Second

// Prober mounts a btrfs device read-write at a temporary directory, lists its
// subvolumes and the default subvolume, then unmounts. Probes never report an
// error; every failure path degrades to an empty result.
type Prober struct {
	exec    util.Executor
	tempDir string
	timeout time.Duration

	mu      sync.Mutex
	devices map[string]*sync.Mutex
}

// NewProber creates a Prober that mounts under tempDir and bounds each tool
// invocation with timeout. Zero values fall back to os.TempDir() and the
// default probe timeout.
func NewProber(exec util.Executor, tempDir string, timeout time.Duration) *Prober {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	return &Prober{
		exec:    exec,
		tempDir: tempDir,
		timeout: timeout,
		devices: make(map[string]*sync.Mutex),
	}
}

// deviceLock serializes probes per device: concurrent mounts of the same
// partition race in the kernel.
func (p *Prober) deviceLock(device string) *sync.Mutex {
	p.mu.Lock()
	defer p.mu.Unlock()

	lock, ok := p.devices[device]
	if !ok {
		lock = &sync.Mutex{}
		p.devices[device] = lock
	}
	return lock
}

// ProbeSubvolumes discovers the subvolume layout of device.
func (p *Prober) ProbeSubvolumes(ctx context.Context, device string) *types.BtrfsInfo {
	lock := p.deviceLock(device)
	lock.Lock()
	defer lock.Unlock()

	empty := &types.BtrfsInfo{Subvolumes: []types.Subvolume{}}

	// The pid plus a random suffix keeps concurrent probes from colliding.
	mountDir := filepath.Join(p.tempDir, fmt.Sprintf("btrfs-probe-%d-%.8s", os.Getpid(), uuid.NewString()))
	if err := os.MkdirAll(mountDir, 0o755); err != nil {
		logrus.WithError(err).WithField("device", device).Error("Cannot create probe mount directory")
		return empty
	}
	// Cleanup runs on every exit path; the probe must never leak a mount or
	// a stale directory.
	defer p.cleanup(mountDir)

	if out, err := p.run(ctx, []string{"mount", "-t", "btrfs", device, mountDir}); err != nil {
		logrus.WithFields(logrus.Fields{
			"device": device,
			"stderr": strings.TrimSpace(out.Stderr),
		}).Debug("Probe mount failed")
		return empty
	}

	defaultID := ""
	if out, err := p.run(ctx, []string{"btrfs", "subvolume", "get-default", mountDir}); err == nil {
		defaultID = parseDefaultID(out.Stdout)
	}

	listOut, err := p.run(ctx, []string{"btrfs", "subvolume", "list", mountDir})
	if err != nil {
		logrus.WithError(err).WithField("device", device).Debug("Subvolume listing failed")
		return &types.BtrfsInfo{Subvolumes: []types.Subvolume{}, DefaultSubvolumeID: defaultID}
	}

	subvolumes := parseSubvolumeList(listOut.Stdout, defaultID)

	return &types.BtrfsInfo{
		HasSubvolumes:      len(subvolumes) > 0,
		Subvolumes:         subvolumes,
		DefaultSubvolumeID: defaultID,
	}
}

// run executes one probe command under its own timeout.
func (p *Prober) run(ctx context.Context, c []string) (util.CommandOutput, error) {
	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()
	return p.exec.Execute(runCtx, c)
}

// cleanup unmounts and removes the probe directory. The unmount runs even
// when the probe failed mid-way; an unmounted directory just yields a
// harmless "not mounted" error.
func (p *Prober) cleanup(mountDir string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := p.exec.Execute(ctx, []string{"umount", mountDir}); err != nil {
		logrus.WithError(err).WithField("dir", mountDir).Debug("Probe unmount reported an error")
	}
	if err := os.Remove(mountDir); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("dir", mountDir).Debug("Cannot remove probe directory")
	}
}

// parseDefaultID extracts the subvolume id from "btrfs subvolume get-default"
// output, e.g. "ID 256 gen 31 top level 5 path @".
func parseDefaultID(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "ID") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) >= 2 {
			return fields[1]
		}
	}
	return ""
}

// parseSubvolumeList extracts subvolumes from "btrfs subvolume list" rows of
// the form "ID 256 gen 31 top level 5 path @home": the id is the second field
// and the path the ninth.
func parseSubvolumeList(out, defaultID string) []types.Subvolume {
	var subvolumes []types.Subvolume

	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" || !strings.Contains(line, "ID") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 9 {
			continue
		}

		id := fields[1]
		path := fields[8]

		name := path
		if i := strings.LastIndex(path, "/"); i >= 0 {
			name = path[i+1:]
		}

		subvolumes = append(subvolumes, types.Subvolume{
			ID:             id,
			Path:           path,
			Name:           name,
			IsDefault:      defaultID != "" && id == defaultID,
			SuggestedMount: SuggestSubvolumeMount(path),
		})
	}

	return subvolumes
}
