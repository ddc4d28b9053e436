package cmd

import (
	"context"

	"github.com/liveiso/rescue-utils/internal/blockdev"
	"github.com/liveiso/rescue-utils/internal/btrfs"
	"github.com/liveiso/rescue-utils/internal/chroot"
	"github.com/liveiso/rescue-utils/internal/config"
	"github.com/liveiso/rescue-utils/internal/contextual"
	"github.com/liveiso/rescue-utils/internal/util"
)

// currentConfig fetches the loaded configuration, falling back to the
// defaults when a command runs without the root command's PreRun.
func currentConfig(ctx context.Context) *config.Config {
	if cfg := contextual.Config(ctx); cfg != nil {
		return cfg
	}
	return config.Default()
}

// newBlockDev wires the block-device lister for the scanned host.
func newBlockDev(ctx context.Context) blockdev.BlockDev {
	cfg := currentConfig(ctx)
	prober := btrfs.NewProber(util.SystemExecutor{}, cfg.TempDir, cfg.ProbeTimeout)
	return blockdev.ForUtilLinux(contextual.UtilLinux(ctx), prober, cfg.MountRoot)
}

// newOrchestrator wires the mount orchestrator against the configured mount
// root.
func newOrchestrator(ctx context.Context, launcher chroot.Launcher) *chroot.Orchestrator {
	cfg := currentConfig(ctx)
	state := chroot.NewState(cfg.MountRoot)
	return chroot.NewOrchestrator(util.SystemExecutor{}, state, launcher, cfg.CommandTimeout)
}
