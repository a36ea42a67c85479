package ports

import (
	"context"
	"time"

	"github.com/AntonioJCosta/run/internal/core/domain/registry"
	"github.com/AntonioJCosta/run/internal/core/domain/script"
)

// Outcome is the result of one dispatched script.
type Outcome struct {
	Entry    script.Entry
	ExitCode int
	Elapsed  time.Duration
}

// DispatchService resolves a name or alias and runs the script it points to.
type DispatchService interface {
	Run(ctx context.Context, reg *registry.Registry, token string) (Outcome, error)
}

// RunReporter is told when a dispatched script starts and finishes.
type RunReporter interface {
	Started(entry script.Entry)
	Finished(outcome Outcome)
}
