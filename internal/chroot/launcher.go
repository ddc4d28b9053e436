package chroot

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/sirupsen/logrus"
)

// Launcher hands a validated rescue root to an interactive session. The
// orchestrator owns the teardown that follows the session.
type Launcher interface {
	Launch(ctx context.Context, root string) error
}

// ShellLauncher runs chroot(8) with the detected shell on the current
// terminal. It bypasses the Executor deliberately: an interactive session
// needs the caller's stdio, not captured buffers.
type ShellLauncher struct{}

// Type assertion to ensure ShellLauncher implements the Launcher interface.
var _ Launcher = ShellLauncher{}

func (ShellLauncher) Launch(ctx context.Context, root string) error {
	shell := DetectShell(root)

	logrus.WithFields(logrus.Fields{
		"mount_root": root,
		"shell":      shell,
	}).Info("Entering rescue chroot; type 'exit' to leave")

	cmd := exec.CommandContext(ctx, "chroot", root, shell)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("chroot: shell session: %w", err)
	}

	return nil
}
