package ports

import "github.com/AntonioJCosta/run/internal/core/domain/registry"

// ExampleProvider supplies the registry written by init when the project has
// no package.json or deno.json.
type ExampleProvider interface {
	GetExampleRegistry() (*registry.Registry, error)
}
