package oscommand

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/run/internal/core/ports"
)

// Runtime names accepted by NewExecutor.
const (
	RuntimeNative  = "native"
	RuntimeVirtual = "virtual"
)

// ErrUnknownRuntime is wrapped when a runtime name is not recognised.
var ErrUnknownRuntime = errors.New("unknown runtime")

// NewExecutor returns the executor for the named runtime. shell only
// applies to the native runtime.
func NewExecutor(runtimeName, shell string) (ports.ShellExecutor, error) {
	switch runtimeName {
	case "", RuntimeNative:
		return NewOSCommandExecutor(shell), nil
	case RuntimeVirtual:
		return NewVirtualExecutor(), nil
	default:
		return nil, fmt.Errorf("%w %q (want %q or %q)", ErrUnknownRuntime, runtimeName, RuntimeNative, RuntimeVirtual)
	}
}
