package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/run/internal/core/ports"
)

// ExecuteCall captures the arguments of one Execute call.
type ExecuteCall struct {
	CommandLine string
	ExtraPath   string
}

// MockShellExecutor is a mock implementation of ports.ShellExecutor.
type MockShellExecutor struct {
	ExecuteFunc  func(ctx context.Context, commandLine, extraPath string) (int, error)
	ExecuteCalls []ExecuteCall
}

// Execute records the call and delegates to ExecuteFunc.
func (m *MockShellExecutor) Execute(ctx context.Context, commandLine, extraPath string) (int, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, ExecuteCall{CommandLine: commandLine, ExtraPath: extraPath})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, commandLine, extraPath)
	}
	return 1, errors.New("MockShellExecutor.ExecuteFunc not implemented")
}

var _ ports.ShellExecutor = (*MockShellExecutor)(nil)
