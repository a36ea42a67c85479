package jsonscan

import (
	"strings"

	"github.com/AntonioJCosta/run/internal/core/domain/registry"
	"github.com/AntonioJCosta/run/internal/core/domain/script"
)

const (
	// PackageJSON is the npm manifest; its scripts live under "scripts".
	PackageJSON = "package.json"
	// DenoJSON is the Deno config; its scripts live under "tasks".
	DenoJSON = "deno.json"

	packageJSONObject = "scripts"
	denoJSONObject    = "tasks"
)

// FromPackageJSON builds a registry from the "scripts" object of package.json.
func FromPackageJSON(text string) (*registry.Registry, error) {
	return FromObject(text, packageJSONObject, PackageJSON)
}

// FromDenoJSON builds a registry from the "tasks" object of deno.json.
func FromDenoJSON(text string) (*registry.Registry, error) {
	return FromObject(text, denoJSONObject, DenoJSON)
}

// FromObject pairs the literals of the named object as name/command and
// inserts them in order. source labels parse errors.
func FromObject(text, object, source string) (*registry.Registry, error) {
	literals := Scan(text, object)
	reg := registry.New()

	for i := 0; i < len(literals); i += 2 {
		name := literals[i]
		if i+1 >= len(literals) {
			return nil, registry.NewParseError(source, name.Line, registry.ErrMissingCommandAfterName)
		}
		command := strings.TrimSpace(literals[i+1].Text)

		if err := reg.Insert(name.Text, script.New(command, "")); err != nil {
			return nil, registry.NewParseError(source, name.Line, err)
		}
	}

	return reg, nil
}
