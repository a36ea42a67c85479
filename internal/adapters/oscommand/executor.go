package oscommand

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/AntonioJCosta/run/internal/core/ports"
)

// OSCommandExecutor implements the ShellExecutor interface using the
// operating system's shell.
type OSCommandExecutor struct {
	// Shell overrides the platform default (sh on Unix, cmd on Windows).
	Shell string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewOSCommandExecutor creates a new OSCommandExecutor wired to the process stdio.
func NewOSCommandExecutor(shell string) ports.ShellExecutor {
	return &OSCommandExecutor{
		Shell:  shell,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// shellAndFlag returns the shell program and the flag that makes it read a
// command line from its next argument.
func (e *OSCommandExecutor) shellAndFlag() (string, string) {
	if runtime.GOOS == "windows" {
		if e.Shell != "" {
			return e.Shell, "/C"
		}
		return "cmd", "/C"
	}
	if e.Shell != "" {
		return e.Shell, "-c"
	}
	return "sh", "-c"
}

// Execute runs commandLine in the shell and waits for it. A non-zero exit of
// the child is not an error; failing to start the shell is, with exit code 1.
func (e *OSCommandExecutor) Execute(ctx context.Context, commandLine, extraPath string) (int, error) {
	shell, flag := e.shellAndFlag()

	cmd := exec.CommandContext(ctx, shell, flag, commandLine)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if extraPath != "" {
		cmd.Env = environWithPath(os.Environ(), extraPath)
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// ExitCode is -1 when the child was killed by a signal.
			if code := exitErr.ExitCode(); code >= 0 {
				return code, nil
			}
			return 1, nil
		}
		return 1, fmt.Errorf("executing command with shell '%s': %w", shell, err)
	}
	return 0, nil
}
