package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/liveiso/rescue-utils/internal/blockdev"
	"github.com/liveiso/rescue-utils/internal/util"
)

// partitionInspect is a struct for holding all information passed into the
// partitions command.
type partitionInspect struct {
	disk string
}

// partitionsCommand creates a new command which inspects a disk's mountable
// partitions.
func partitionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "partitions",
		Short: "inspect a disk's mountable partitions",
		Long: strings.TrimSpace(`
			partitions lists the mountable partitions of a disk with their
			filesystem type, label, UUID and a suggested rescue mount target.
			Btrfs partitions are probed for their subvolume layout, which
			requires a temporary mount.
		`),
	}

	inspectArgs := partitionInspect{}
	cmd.PersistentFlags().StringVar(&inspectArgs.disk, "disk", "", "disk device to inspect (e.g. /dev/sda)")
	cmd.MarkPersistentFlagRequired("disk")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if err := blockdev.CheckBlockDevice(inspectArgs.disk); err != nil {
			logrus.WithError(err).Debug("Disk is not a local block device node")
		}

		bd := newBlockDev(ctx)
		partitions, err := bd.ListPartitions(ctx, inspectArgs.disk)
		if err != nil {
			logrus.WithError(err).Error("Error loading partitions")
		}

		if len(partitions) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no mountable partitions found")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DEVICE\tSIZE\tFSTYPE\tLABEL\tMOUNTED\tSUGGESTED")
		for _, p := range partitions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.Device, util.FormatSize(p.Size), p.FSType, p.Label, p.MountPoint, p.SuggestedMount)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		for _, p := range partitions {
			if p.Btrfs == nil {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nbtrfs subvolumes on %s:\n", p.Device)
			for _, sv := range p.Btrfs.Subvolumes {
				marker := ""
				if sv.IsDefault {
					marker = " (default)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  id %s  %s%s -> %s\n", sv.ID, sv.Path, marker, sv.SuggestedMount)
			}
		}

		return nil
	}

	return cmd
}
