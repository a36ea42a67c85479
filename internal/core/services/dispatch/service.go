package dispatch

import (
	"context"
	"io"
	"time"

	"github.com/AntonioJCosta/run/internal/core/domain/registry"
	"github.com/AntonioJCosta/run/internal/core/ports"
	"github.com/charmbracelet/log"
)

// Options configures where project-local binaries live.
type Options struct {
	// MarkerFile enables BinDir when it exists in the project directory.
	MarkerFile string
	// BinDir is appended to PATH for the child when MarkerFile exists.
	BinDir string
}

type service struct {
	files    ports.FileStore
	executor ports.ShellExecutor
	reporter ports.RunReporter
	opts     Options
	now      func() time.Time
	logger   *log.Logger
}

// NewService creates a new dispatch service.
// It panics if files, executor or reporter is nil.
func NewService(files ports.FileStore, executor ports.ShellExecutor, reporter ports.RunReporter, opts Options, logger *log.Logger) ports.DispatchService {
	if files == nil {
		panic("files cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &service{
		files:    files,
		executor: executor,
		reporter: reporter,
		opts:     opts,
		now:      time.Now,
		logger:   logger,
	}
}

// Run resolves token, executes exactly one script and reports its outcome.
// Lookup errors are returned before anything runs.
func (s *service) Run(ctx context.Context, reg *registry.Registry, token string) (ports.Outcome, error) {
	entry, err := reg.Resolve(token)
	if err != nil {
		return ports.Outcome{}, err
	}

	extraPath := s.extraPath()
	s.logger.Debug("dispatching script", "token", token, "name", entry.Name, "extra_path", extraPath)
	s.reporter.Started(entry)

	start := s.now()
	code, err := s.executor.Execute(ctx, entry.Script.Command, extraPath)
	outcome := ports.Outcome{
		Entry:    entry,
		ExitCode: code,
		Elapsed:  s.now().Sub(start),
	}
	if err != nil {
		return outcome, err
	}

	s.reporter.Finished(outcome)
	return outcome, nil
}

func (s *service) extraPath() string {
	if s.opts.MarkerFile == "" || s.opts.BinDir == "" {
		return ""
	}
	if !s.files.Exists(s.opts.MarkerFile) {
		return ""
	}
	return s.opts.BinDir
}
