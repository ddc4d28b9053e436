package cmd

import (
	"errors"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/liveiso/rescue-utils/internal/chroot"
)

// chrootCommand creates a new command which mounts an installed system and
// opens an interactive chroot shell inside it.
func chrootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chroot",
		Short: "mount an installed system and chroot into it",
		Long: strings.TrimSpace(`
			chroot mounts an installed Linux system under the rescue mount
			root and starts an interactive shell inside it. The mounts are
			torn down again when the shell exits.
		`),
	}

	planArgs := mountArgs{}
	registerMountFlags(cmd, &planArgs)
	cmd.PreRunE = assertRootPrivileges

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		plan, err := buildPlan(planArgs)
		if err != nil {
			return err
		}

		o := newOrchestrator(ctx, chroot.ShellLauncher{})
		if err := o.MountAndChroot(ctx, plan); err != nil {
			if errors.Is(err, chroot.ErrInvalidInstallation) {
				logrus.Error("The mounted device does not look like a Linux installation. " +
					"Check the device (and btrfs subvolume) selection and retry.")
			}
			return err
		}

		return nil
	}

	return cmd
}
