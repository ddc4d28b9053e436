package util

import (
	"context"
	"strings"
	"testing"
)

func TestExecuteCommand_EmptyCommand(t *testing.T) {
	_, err := ExecuteCommand(context.Background(), []string{}, nil, nil)
	if err == nil {
		t.Error("expected an error for an empty command")
	}
}

func TestExecuteCommand_CapturesStdout(t *testing.T) {
	out, err := ExecuteCommand(context.Background(), []string{"echo", "hello"}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out.Stdout) != "hello" {
		t.Errorf("got stdout %q, want %q", out.Stdout, "hello")
	}
}

func TestExecuteCommand_Stdin(t *testing.T) {
	out, err := ExecuteCommand(context.Background(), []string{"cat"}, nil, strings.NewReader("piped"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Stdout != "piped" {
		t.Errorf("got stdout %q, want %q", out.Stdout, "piped")
	}
}

func TestExecuteCommand_MissingBinary(t *testing.T) {
	_, err := ExecuteCommand(context.Background(), []string{"definitely-not-a-real-binary"}, nil, nil)
	if err == nil {
		t.Error("expected an error for a missing binary")
	}
}
