package scriptregistry

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/run/internal/adapters/examplescripts"
	"github.com/AntonioJCosta/run/internal/adapters/jsonscan"
	"github.com/AntonioJCosta/run/internal/adapters/runfile"
	"github.com/AntonioJCosta/run/internal/core/domain/registry"
	"github.com/AntonioJCosta/run/internal/core/ports"
	"github.com/charmbracelet/log"
)

type service struct {
	files    ports.FileStore
	examples ports.ExampleProvider
	runFile  string
	logger   *log.Logger
}

// NewService creates a new script registry service reading and writing
// runFile through files. It panics if files or examples is nil.
func NewService(files ports.FileStore, examples ports.ExampleProvider, runFile string, logger *log.Logger) ports.ScriptRegistryService {
	if files == nil {
		panic("files cannot be nil")
	}
	if examples == nil {
		panic("examples cannot be nil")
	}
	if runFile == "" {
		runFile = runfile.FileName
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &service{files: files, examples: examples, runFile: runFile, logger: logger}
}

// Load reads the run file, parses it and rewrites it in canonical form when
// the text on disk differs.
func (s *service) Load() (*registry.Registry, error) {
	text, err := s.files.Read(s.runFile)
	if err != nil {
		return nil, err
	}

	reg, err := runfile.ParseSource(text, s.runFile)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("loaded scripts", "file", s.runFile, "count", reg.Len())

	s.reconcile(reg, text)
	return reg, nil
}

// reconcile writes the canonical form back when it drifted. Failures are
// logged and dropped since the registry is already usable.
func (s *service) reconcile(reg *registry.Registry, original string) {
	canonical := reg.Serialize()
	if canonical == original {
		return
	}
	if err := s.files.Write(s.runFile, canonical); err != nil {
		s.logger.Debug("could not rewrite run file in canonical form", "file", s.runFile, "err", err)
		return
	}
	s.logger.Debug("rewrote run file in canonical form", "file", s.runFile)
}

type source struct {
	file  string
	parse func(string) (*registry.Registry, error)
}

var jsonSources = []source{
	{file: jsonscan.PackageJSON, parse: jsonscan.FromPackageJSON},
	{file: jsonscan.DenoJSON, parse: jsonscan.FromDenoJSON},
}

// Init builds a registry from the first JSON source present, or from the
// example set, and writes it to the run file.
func (s *service) Init(force bool) (ports.InitResult, error) {
	reg, label, err := s.initialRegistry()
	if err != nil {
		return ports.InitResult{}, err
	}

	content := reg.Serialize()
	// Names or commands taken from JSON may not survive the native format.
	if _, err := runfile.ParseSource(content, s.runFile); err != nil {
		return ports.InitResult{}, fmt.Errorf("cannot write %s from %s: %w", s.runFile, label, err)
	}
	if force {
		err = s.files.Write(s.runFile, content)
	} else {
		err = s.files.Create(s.runFile, content)
	}
	if err != nil {
		return ports.InitResult{}, err
	}

	s.logger.Debug("initialised run file", "file", s.runFile, "source", label, "count", reg.Len())
	return ports.InitResult{Source: label, File: s.runFile, Entries: reg.Len()}, nil
}

func (s *service) initialRegistry() (*registry.Registry, string, error) {
	for _, src := range jsonSources {
		if !s.files.Exists(src.file) {
			continue
		}
		text, err := s.files.Read(src.file)
		if err != nil {
			return nil, "", err
		}
		reg, err := src.parse(text)
		if err != nil {
			return nil, "", err
		}
		return reg, src.file, nil
	}

	reg, err := s.examples.GetExampleRegistry()
	if err != nil {
		return nil, "", fmt.Errorf("failed to load example scripts: %w", err)
	}
	return reg, examplescripts.Source, nil
}
