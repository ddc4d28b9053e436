package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/liveiso/rescue-utils/internal/util"
)

// disksCommand creates a new command which lists the host's physical disks.
func disksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disks",
		Short: "list physical disks",
		Long: strings.TrimSpace(`
			disks enumerates the physical disks attached to the host using
			'lsblk'. Loopback and memory-backed pseudo-devices are excluded.
		`),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		bd := newBlockDev(ctx)
		disks, err := bd.ListDisks(ctx)
		if err != nil {
			// Disk discovery failure is non-fatal: show an empty listing.
			logrus.WithError(err).Error("Error loading disks")
		}

		if len(disks) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no disks found")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DEVICE\tSIZE\tMODEL")
		for _, d := range disks {
			fmt.Fprintf(w, "%s\t%s\t%s\n", d.Device, util.FormatSize(d.Size), d.Model)
		}
		return w.Flush()
	}

	return cmd
}
