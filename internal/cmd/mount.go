package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/liveiso/rescue-utils/internal/blockdev"
	"github.com/liveiso/rescue-utils/internal/chroot"
)

// mountArgs is a struct for holding all information passed into the mount and
// chroot commands.
type mountArgs struct {
	root       string
	boot       string
	efi        string
	home       string
	rootSubvol string
	homeSubvol string
}

// registerMountFlags binds the shared mount plan flags onto a command.
func registerMountFlags(cmd *cobra.Command, args *mountArgs) {
	cmd.PersistentFlags().StringVar(&args.root, "root", "", "device providing the root filesystem (e.g. /dev/sda2)")
	cmd.PersistentFlags().StringVar(&args.boot, "boot", "", "device providing /boot")
	cmd.PersistentFlags().StringVar(&args.efi, "efi", "", "device providing /boot/efi")
	cmd.PersistentFlags().StringVar(&args.home, "home", "", "device providing /home")
	cmd.PersistentFlags().StringVar(&args.rootSubvol, "root-subvol", "", "btrfs subvolume for the root device")
	cmd.PersistentFlags().StringVar(&args.homeSubvol, "home-subvol", "", "btrfs subvolume for the home device")
	cmd.MarkPersistentFlagRequired("root")
}

// assemblePlan shapes the mount flags into a plan, including only the
// optional points that were set.
func assemblePlan(args mountArgs) chroot.MountPlan {
	plan := chroot.MountPlan{
		chroot.PointRoot: {Device: args.root, Subvolume: args.rootSubvol},
	}
	if args.boot != "" {
		plan[chroot.PointBoot] = chroot.Target{Device: args.boot}
	}
	if args.efi != "" {
		plan[chroot.PointEFI] = chroot.Target{Device: args.efi}
	}
	if args.home != "" {
		plan[chroot.PointHome] = chroot.Target{Device: args.home, Subvolume: args.homeSubvol}
	}
	return plan
}

// buildPlan turns the mount flags into a validated mount plan. Every named
// device must be a block device node on the host.
func buildPlan(args mountArgs) (chroot.MountPlan, error) {
	plan := assemblePlan(args)

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	for point, target := range plan {
		if err := blockdev.CheckBlockDevice(target.Device); err != nil {
			return nil, fmt.Errorf("device for %s: %w", point, err)
		}
	}

	return plan, nil
}

// mountCommand creates a new command which assembles the installed system
// under the rescue mount root.
func mountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount",
		Short: "mount an installed system under the rescue root",
		Long: strings.TrimSpace(`
			mount assembles an installed Linux system under the rescue mount
			root. The root device is mounted first, followed by the optional
			boot, EFI and home devices, the virtual filesystem binds, and the
			host resolver configuration. The result is validated to look like
			a Linux installation before it is reported ready.
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

		o := newOrchestrator(ctx, nil)
		if err := o.Mount(ctx, plan); err != nil {
			if errors.Is(err, chroot.ErrInvalidInstallation) {
				logrus.Error("The mounted device does not look like a Linux installation. " +
					"Check the device (and btrfs subvolume) selection and retry.")
			}
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "system mounted at %s\n", o.State().MountRoot())
		return nil
	}

	return cmd
}
