// Package chroot assembles an installed system under the rescue mount root
// and hands it to an interactive session.
package chroot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/liveiso/rescue-utils/internal/mountinfo"
	"github.com/liveiso/rescue-utils/internal/util"
)

// virtualMounts are the host filesystems bind-mounted into the rescue root so
// chrooted programs see a live device and process view. Order is fixed.
var virtualMounts = []string{"/dev", "/proc", "/sys", "/dev/pts", "/run"}

// defaultCommandTimeout bounds each privileged tool invocation.
const defaultCommandTimeout = 30 * time.Second

// Orchestrator performs the privileged mount sequence: prior-state teardown,
// root mount, auxiliary mounts, virtual filesystem binds, resolver
// propagation and validation. Sequences against one mount root are
// serialized; cancellation is only honored before the sequence begins.
type Orchestrator struct {
	exec       util.Executor
	state      *State
	launcher   Launcher
	cmdTimeout time.Duration

	// mountinfoPath and resolvConf exist so tests can point the
	// orchestrator at fixture files.
	mountinfoPath string
	resolvConf    string

	mu sync.Mutex
}

// NewOrchestrator wires an orchestrator for the given mount root state.
func NewOrchestrator(exec util.Executor, state *State, launcher Launcher, cmdTimeout time.Duration) *Orchestrator {
	if cmdTimeout <= 0 {
		cmdTimeout = defaultCommandTimeout
	}

	return &Orchestrator{
		exec:          exec,
		state:         state,
		launcher:      launcher,
		cmdTimeout:    cmdTimeout,
		mountinfoPath: mountinfo.DefaultPath,
		resolvConf:    "/etc/resolv.conf",
	}
}

// State exposes the orchestrator's mount state for read access.
func (o *Orchestrator) State() *State {
	return o.state
}

// Mount assembles the plan under the mount root and validates the result.
// Root mount failure aborts with a MountError; auxiliary and virtual mounts
// are best-effort. A tree that fails validation is torn down again and
// reported as ErrInvalidInstallation.
func (o *Orchestrator) Mount(ctx context.Context, plan MountPlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	return o.mountLocked(ctx, plan)
}

func (o *Orchestrator) mountLocked(ctx context.Context, plan MountPlan) error {
	root := o.state.MountRoot()
	log := logrus.WithFields(logrus.Fields{
		"session":    fmt.Sprintf("%.8s", uuid.NewString()),
		"mount_root": root,
	})

	// A new mount sequence always unmounts any prior state first.
	log.Info("Cleaning up previous rescue mounts...")
	o.unmountLocked(ctx)

	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("chroot: cannot create mount root %s: %w", root, err)
	}

	rootTarget := plan[PointRoot]
	log.WithField("device", rootTarget.Device).Info("Mounting root device...")
	if err := o.mount(ctx, rootTarget, root); err != nil {
		return err
	}

	for _, point := range auxPoints {
		target, ok := plan[point]
		if !ok {
			continue
		}

		dir := filepath.Join(root, strings.TrimPrefix(point, "/"))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.WithError(err).WithField("mount_point", point).Warn("Cannot create mount directory, skipping")
			continue
		}

		log.WithFields(logrus.Fields{"device": target.Device, "mount_point": point}).Info("Mounting auxiliary device...")
		if err := o.mount(ctx, target, dir); err != nil {
			// A usable rescue shell does not strictly require boot/EFI/home.
			log.WithError(err).WithField("mount_point", point).Warn("Auxiliary mount failed, continuing")
		}
	}

	for _, source := range virtualMounts {
		dir := filepath.Join(root, strings.TrimPrefix(source, "/"))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.WithError(err).WithField("source", source).Warn("Cannot create bind target, skipping")
			continue
		}

		if out, err := o.run(ctx, []string{"mount", "--bind", source, dir}); err != nil {
			log.WithError(err).WithFields(logrus.Fields{
				"source": source,
				"stderr": strings.TrimSpace(out.Stderr),
			}).Warn("Virtual filesystem bind failed, continuing")
		}
	}

	o.copyResolvConf(root)

	log.Info("Validating mounted system...")
	if err := ValidateRoot(root); err != nil {
		log.WithError(err).Error("Mounted system failed validation, tearing down")
		o.unmountLocked(ctx)
		return err
	}

	o.state.setMounted(true)
	log.Info("Rescue environment ready")

	return nil
}

// MountAndChroot mounts the plan, hands the session to the launcher, and
// always tears the mounts down when the session ends.
func (o *Orchestrator) MountAndChroot(ctx context.Context, plan MountPlan) error {
	if o.launcher == nil {
		return errors.New("chroot: no launcher configured")
	}

	if err := o.Mount(ctx, plan); err != nil {
		return err
	}

	defer func() {
		if err := o.UnmountAll(ctx); err != nil {
			logrus.WithError(err).Warn("Cleanup unmount reported errors")
		}
	}()

	return o.launcher.Launch(ctx, o.state.MountRoot())
}

// mount runs a single mount invocation, using the btrfs subvolume form when
// the target names one.
func (o *Orchestrator) mount(ctx context.Context, t Target, dir string) error {
	args := []string{"mount", t.Device, dir}
	if t.Subvolume != "" {
		args = []string{"mount", "-t", "btrfs", "-o", "subvol=" + t.Subvolume, t.Device, dir}
	}

	out, err := o.run(ctx, args)
	if err != nil {
		return &MountError{Device: t.Device, Target: dir, Stderr: out.Stderr, Err: err}
	}

	return nil
}

// run executes one privileged command under the orchestrator's timeout.
func (o *Orchestrator) run(ctx context.Context, c []string) (util.CommandOutput, error) {
	runCtx, cancel := context.WithTimeout(ctx, o.cmdTimeout)
	defer cancel()
	return o.exec.Execute(runCtx, c)
}

// copyResolvConf propagates the host resolver configuration so chrooted
// programs can resolve names. Best-effort: rescue environments without
// network are still valid, and roots without /etc are left alone.
func (o *Orchestrator) copyResolvConf(root string) {
	etc := filepath.Join(root, "etc")
	if _, err := os.Stat(etc); err != nil {
		return
	}

	data, err := os.ReadFile(o.resolvConf)
	if err != nil {
		logrus.WithError(err).Debug("Cannot read host resolv.conf")
		return
	}

	if err := os.WriteFile(filepath.Join(etc, "resolv.conf"), data, 0o644); err != nil {
		logrus.WithError(err).Debug("Cannot propagate resolv.conf")
	}
}
