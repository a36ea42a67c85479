/*
Package runfile reads the native run.yaml format: blocks of an optional
"# comment" line followed by a "name: command" line, separated by blank lines.
*/
package runfile

import (
	"strings"

	"github.com/AntonioJCosta/run/internal/core/domain/registry"
	"github.com/AntonioJCosta/run/internal/core/domain/script"
)

// FileName is the native script file in the project directory.
const FileName = "run.yaml"

const separator = ": "

// Parse builds a registry from run.yaml text. The first error aborts the
// parse and no registry is returned. A comment that is never followed by an
// entry line is discarded.
func Parse(text string) (*registry.Registry, error) {
	return ParseSource(text, FileName)
}

// ParseSource is Parse with a custom source label for error messages.
func ParseSource(text, source string) (*registry.Registry, error) {
	reg := registry.New()

	var (
		pending    string
		hasPending bool
	)

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			if hasPending {
				return nil, registry.NewParseError(source, lineNo, registry.ErrUnexpectedComment)
			}
			pending = strings.TrimSpace(line[1:])
			hasPending = true
			continue
		}

		name, command, found := strings.Cut(line, separator)
		if !found {
			return nil, registry.NewParseError(source, lineNo, registry.ErrMissingSeparator)
		}

		comment := ""
		if hasPending {
			comment = pending
		}
		pending, hasPending = "", false

		if err := reg.Insert(name, script.New(command, comment)); err != nil {
			return nil, registry.NewParseError(source, lineNo, err)
		}
	}

	return reg, nil
}
