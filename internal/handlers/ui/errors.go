package ui

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/run/internal/core/domain/registry"
)

// RenderError formats err as a single diagnostic line. Parse errors lead
// with their location.
func RenderError(err error) string {
	var parseErr *registry.ParseError
	if errors.As(err, &parseErr) {
		location := fmt.Sprintf("%s:%d:", parseErr.Source, parseErr.Line)
		return fmt.Sprintf("%s %s %v", ErrorColor("error:"), DetailColor(location), parseErr.Err)
	}
	return fmt.Sprintf("%s %v", ErrorColor("error:"), err)
}
