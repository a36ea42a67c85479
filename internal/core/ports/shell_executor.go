package ports

import "context"

// ShellExecutor runs one command line through a shell with inherited stdio.
// extraPath, when non-empty, is appended to PATH for the child process.
type ShellExecutor interface {
	Execute(ctx context.Context, commandLine, extraPath string) (exitCode int, err error)
}
