package oscommand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AntonioJCosta/run/internal/core/ports"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualExecutor runs command lines with the built-in POSIX shell
// interpreter instead of a system shell, so scripts behave the same on every
// platform.
type VirtualExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewVirtualExecutor creates a VirtualExecutor wired to the process stdio.
func NewVirtualExecutor() ports.ShellExecutor {
	return &VirtualExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute parses and interprets commandLine.
func (e *VirtualExecutor) Execute(ctx context.Context, commandLine, extraPath string) (int, error) {
	prog, err := syntax.NewParser().Parse(strings.NewReader(commandLine), "")
	if err != nil {
		return 1, fmt.Errorf("failed to parse command: %w", err)
	}

	environ := os.Environ()
	if extraPath != "" {
		environ = environWithPath(environ, extraPath)
	}

	opts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(environ...)),
		interp.StdIO(e.Stdin, e.Stdout, e.Stderr),
	}

	runner, err := interp.New(opts...)
	if err != nil {
		return 1, fmt.Errorf("failed to create interpreter: %w", err)
	}

	if err := runner.Run(ctx, prog); err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return int(exitStatus), nil
		}
		return 1, fmt.Errorf("command execution failed: %w", err)
	}
	return 0, nil
}
