package testutil

import (
	"github.com/AntonioJCosta/run/internal/core/domain/registry"
	"github.com/AntonioJCosta/run/internal/core/ports"
)

// MockExampleProvider is a mock implementation of ports.ExampleProvider.
type MockExampleProvider struct {
	GetExampleRegistryFunc func() (*registry.Registry, error)
}

func (m *MockExampleProvider) GetExampleRegistry() (*registry.Registry, error) {
	if m.GetExampleRegistryFunc != nil {
		return m.GetExampleRegistryFunc()
	}
	return registry.New(), nil // Default behavior
}

var _ ports.ExampleProvider = (*MockExampleProvider)(nil)
