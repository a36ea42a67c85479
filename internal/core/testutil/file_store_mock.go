package testutil

import (
	"errors"

	"github.com/AntonioJCosta/run/internal/core/ports"
)

// MockFileStore is a mock implementation of ports.FileStore for testing.
type MockFileStore struct {
	ReadFunc   func(name string) (string, error)
	WriteFunc  func(name, content string) error
	CreateFunc func(name, content string) error
	ExistsFunc func(name string) bool

	// WriteCalls records every Write as name -> content.
	WriteCalls map[string]string
}

func (m *MockFileStore) Read(name string) (string, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(name)
	}
	return "", errors.New("MockFileStore: ReadFunc not implemented")
}

func (m *MockFileStore) Write(name, content string) error {
	if m.WriteCalls == nil {
		m.WriteCalls = make(map[string]string)
	}
	m.WriteCalls[name] = content
	if m.WriteFunc != nil {
		return m.WriteFunc(name, content)
	}
	return nil
}

func (m *MockFileStore) Create(name, content string) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(name, content)
	}
	return errors.New("MockFileStore: CreateFunc not implemented")
}

func (m *MockFileStore) Exists(name string) bool {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(name)
	}
	return false
}

var _ ports.FileStore = (*MockFileStore)(nil)
