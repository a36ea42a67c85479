package ports

import "github.com/AntonioJCosta/run/internal/core/domain/registry"

// InitResult describes what init wrote.
type InitResult struct {
	Source  string
	File    string
	Entries int
}

// ScriptRegistryService loads the project's script registry and initialises it.
type ScriptRegistryService interface {
	// Load reads and parses the run file, rewriting it in canonical form when
	// it has drifted.
	Load() (*registry.Registry, error)

	// Init generates the run file from package.json, deno.json or the example
	// set, in that order. With force an existing run file is overwritten.
	Init(force bool) (InitResult, error)
}
