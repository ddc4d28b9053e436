package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// unmountCommand creates a new command which tears down the rescue mounts.
func unmountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unmount",
		Short: "tear down the rescue mounts",
		Long: strings.TrimSpace(`
			unmount releases everything mounted under the rescue mount root,
			deepest mount first. Targets that resist a plain unmount are
			retried lazily and then forced.
		`),
	}

	cmd.PreRunE = assertRootPrivileges

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		o := newOrchestrator(ctx, nil)
		if err := o.UnmountAll(ctx); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "rescue mounts at %s released\n", o.State().MountRoot())
		return nil
	}

	return cmd
}
