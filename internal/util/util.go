// Package util provides process execution helpers shared by the privileged
// tool wrappers.
package util

//go:generate mockgen -destination mocks/mock_util.go github.com/liveiso/rescue-utils/internal/util Executor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// CommandOutput wraps the output from an exec command as strings.
type CommandOutput struct {
	Stdout string
	Stderr string
}

// Executor abstracts external-process invocation so privileged operations can
// be exercised in tests without touching real devices.
type Executor interface {
	// Execute runs the command described by c and returns its output.
	Execute(ctx context.Context, c []string) (CommandOutput, error)
}

// SystemExecutor is an empty struct that provides the Executor implementation
// backed by the real process table.
type SystemExecutor struct{}

func (SystemExecutor) Execute(ctx context.Context, c []string) (CommandOutput, error) {
	return ExecuteCommand(ctx, c, nil, nil)
}

// Type assertion to ensure SystemExecutor implements the Executor interface.
var _ Executor = SystemExecutor{}

// ExecuteCommand executes the command and returns Stdout and Stderr as strings.
func ExecuteCommand(ctx context.Context, c []string, envVars []string, stdin io.Reader) (output CommandOutput, err error) {
	// Separate name and args, plus catch a few error cases
	var name string
	var args []string

	// Check the empty struct case ([]string{}) for the command
	if len(c) == 0 {
		return CommandOutput{}, fmt.Errorf("must provide a command")
	}

	// Set the name of the command and check if args are also provided
	name = c[0]
	if len(c) > 1 {
		args = c[1:]
	}

	// Set command and create output buffers
	cmd := exec.CommandContext(ctx, name, args...)
	var stdoutb, stderrb bytes.Buffer
	cmd.Stdout = &stdoutb
	cmd.Stderr = &stderrb

	// Set command stdin if the stdin parameter is provided
	if stdin != nil {
		cmd.Stdin = stdin
	}

	// Append environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, envVars...)

	// Start the command's execution
	if err = cmd.Start(); err != nil {
		return CommandOutput{Stdout: stdoutb.String(), Stderr: stderrb.String()}, fmt.Errorf("error starting specified command: %w", err)
	}

	// Wait for the command to exit
	if err = cmd.Wait(); err != nil {
		return CommandOutput{Stdout: stdoutb.String(), Stderr: stderrb.String()}, fmt.Errorf("error waiting for specified command to exit: %w", err)
	}

	return CommandOutput{Stdout: stdoutb.String(), Stderr: stderrb.String()}, err
}
