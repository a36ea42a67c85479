package testutil

import (
	"context"
	"errors"

	"github.com/AntonioJCosta/run/internal/core/domain/registry"
	"github.com/AntonioJCosta/run/internal/core/ports"
)

// MockScriptRegistryService is a mock implementation of ports.ScriptRegistryService.
type MockScriptRegistryService struct {
	LoadFunc func() (*registry.Registry, error)
	InitFunc func(force bool) (ports.InitResult, error)
}

func (m *MockScriptRegistryService) Load() (*registry.Registry, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc()
	}
	return nil, errors.New("MockScriptRegistryService: LoadFunc not implemented")
}

func (m *MockScriptRegistryService) Init(force bool) (ports.InitResult, error) {
	if m.InitFunc != nil {
		return m.InitFunc(force)
	}
	return ports.InitResult{}, errors.New("MockScriptRegistryService: InitFunc not implemented")
}

// MockDispatchService is a mock implementation of ports.DispatchService.
type MockDispatchService struct {
	RunFunc func(ctx context.Context, reg *registry.Registry, token string) (ports.Outcome, error)
}

func (m *MockDispatchService) Run(ctx context.Context, reg *registry.Registry, token string) (ports.Outcome, error) {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, reg, token)
	}
	return ports.Outcome{}, errors.New("MockDispatchService: RunFunc not implemented")
}

var (
	_ ports.ScriptRegistryService = (*MockScriptRegistryService)(nil)
	_ ports.DispatchService       = (*MockDispatchService)(nil)
)
