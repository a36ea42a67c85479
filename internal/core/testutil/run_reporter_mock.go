package testutil

import (
	"github.com/AntonioJCosta/run/internal/core/domain/script"
	"github.com/AntonioJCosta/run/internal/core/ports"
)

// MockRunReporter records what a dispatch reported.
type MockRunReporter struct {
	StartedCalls  []script.Entry
	FinishedCalls []ports.Outcome
}

func (m *MockRunReporter) Started(entry script.Entry) {
	m.StartedCalls = append(m.StartedCalls, entry)
}

func (m *MockRunReporter) Finished(outcome ports.Outcome) {
	m.FinishedCalls = append(m.FinishedCalls, outcome)
}

var _ ports.RunReporter = (*MockRunReporter)(nil)
