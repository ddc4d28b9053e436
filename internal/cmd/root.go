// Package cmd provides the functionality necessary for CLI commands in the
// rescue utilities.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/liveiso/rescue-utils/internal/build"
	"github.com/liveiso/rescue-utils/internal/config"
	"github.com/liveiso/rescue-utils/internal/contextual"
)

// MainCommand provides the main program entrypoint that dispatches to the
// rescue subcommands.
func MainCommand() *cobra.Command {
	cmd := rootCommand()

	cmds := []*cobra.Command{
		disksCommand(),
		partitionsCommand(),
		mountCommand(),
		chrootCommand(),
		unmountCommand(),
	}
	for i := range cmds {
		cmd.AddCommand(cmds[i])
	}

	return cmd
}

// rootCommand builds a root command object for program run.
func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescue-utils",
		Short: "rescue and chroot utilities for live ISO sessions",
		Long: strings.TrimSpace(`
This command provides utilities for repairing an installed Linux system from a live ISO session.

This includes disk and partition discovery, btrfs subvolume detection, and assembling the installed
system under a rescue mount root for chroot repair. Tasks are reached through subcommands, each with
help text and usages that accompany them.
`),
		Version:      build.Version,
		SilenceUsage: true,
	}

	versionTemplate := "{{.Name}} {{.Version}} [%s]\n\n%s\n"
	cmd.SetVersionTemplate(fmt.Sprintf(versionTemplate, build.CommitDate, build.GitHubLink))

	var verbose bool
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging output")

	var configPath string
	cmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the rescue-utils configuration file")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := logrus.InfoLevel
		if verbose {
			level = logrus.DebugLevel
		}
		setupLogging(level)

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cmd.SetContext(contextual.WithConfig(cmd.Context(), cfg))

		return nil
	}

	return cmd
}

// setupLogging configures logrus to use the desired timestamp format and log level.
func setupLogging(level logrus.Level) {
	Formatter := &logrus.TextFormatter{}

	// Configure the formatter
	Formatter.TimestampFormat = time.RFC822
	Formatter.FullTimestamp = true

	// Set the desired log level
	logrus.SetLevel(level)

	logrus.SetFormatter(Formatter)
}

func hasRootPrivileges() bool {
	return os.Geteuid() == 0
}

// assertRootPrivileges checks if the command is running with root permissions.
// If the command doesn't have root permissions, a help message is logged with
// an example and an error is returned.
func assertRootPrivileges(cmd *cobra.Command, args []string) error {
	logrus.Debug("Checking user permissions...")
	ok := hasRootPrivileges()
	if !ok {
		logrus.Warn("Root privileges required")
		return errors.New("root privileges required, re-run command with sudo")
	}

	return nil
}
