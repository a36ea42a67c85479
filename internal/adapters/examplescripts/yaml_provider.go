package examplescripts

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/run/internal/core/domain/registry"
	"github.com/AntonioJCosta/run/internal/core/domain/script"
	"github.com/AntonioJCosta/run/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// Source labels errors and init results that come from the embedded set.
const Source = "example"

//go:embed examples.yaml
var embeddedExamples []byte

// exampleScript is one document entry of examples.yaml.
type exampleScript struct {
	Name    string `yaml:"name"`
	Command string `yaml:"command"`
	Comment string `yaml:"comment"`
}

// YAMLProvider implements the ExampleProvider interface
// by decoding the embedded examples.yaml.
type YAMLProvider struct{}

// NewYAMLProvider creates a new YAMLProvider.
func NewYAMLProvider() ports.ExampleProvider {
	return &YAMLProvider{}
}

// GetExampleRegistry decodes the embedded examples into a fresh registry.
// Empty content yields an empty registry.
func (p *YAMLProvider) GetExampleRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if len(embeddedExamples) == 0 {
		return reg, nil
	}

	var examples []exampleScript
	decoder := yaml.NewDecoder(bytes.NewReader(embeddedExamples))
	decoder.KnownFields(true)
	if err := decoder.Decode(&examples); err != nil {
		if errors.Is(err, io.EOF) {
			return reg, nil
		}
		return nil, fmt.Errorf("failed to unmarshal embedded example scripts: %w", err)
	}

	for i, ex := range examples {
		if err := reg.Insert(ex.Name, script.New(ex.Command, ex.Comment)); err != nil {
			return nil, fmt.Errorf("invalid embedded example script #%d (%q): %w", i+1, ex.Name, err)
		}
	}
	return reg, nil
}
