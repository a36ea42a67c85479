package registry

import (
	"errors"
	"fmt"
)

// Validation errors returned by Insert.
var (
	ErrNameEmpty           = errors.New("name is empty")
	ErrCommandEmpty        = errors.New("script is empty")
	ErrNameStartsWithMinus = errors.New("a name cannot start with a minus symbol")
	ErrNameContainsSpace   = errors.New("a name cannot contain a space symbol")
	ErrNameAlreadyUsed     = errors.New("same name is used before")
)

// Parse errors that only a source parser can produce.
var (
	ErrMissingSeparator        = errors.New("separate name and script with a colon and a space")
	ErrUnexpectedComment       = errors.New("unexpected comment")
	ErrMissingCommandAfterName = errors.New("name has no script after it")
)

// Lookup errors returned by Resolve.
var (
	ErrUnknownAlias   = errors.New("no alias")
	ErrAmbiguousAlias = errors.New("ambiguous alias")
	ErrUnknownName    = errors.New("unknown name")
)

// ParseError locates a failure inside a source file. Err is one of the
// validation or parse sentinels.
type ParseError struct {
	Source string
	Line   int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: line %d: %v", e.Source, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NewParseError ties err to a line of source.
func NewParseError(source string, line int, err error) *ParseError {
	return &ParseError{Source: source, Line: line, Err: err}
}

// LookupError reports a token that does not resolve to a script.
// Alias is set for single-rune tokens, Name otherwise.
type LookupError struct {
	Alias rune
	Name  string
	Err   error
}

func (e *LookupError) Error() string {
	switch {
	case errors.Is(e.Err, ErrAmbiguousAlias):
		return fmt.Sprintf("there are multiple names starting with '%c'", e.Alias)
	case errors.Is(e.Err, ErrUnknownAlias):
		return fmt.Sprintf("there is no name starting with '%c'", e.Alias)
	default:
		return fmt.Sprintf("there isn't a script called '%s'", e.Name)
	}
}

func (e *LookupError) Unwrap() error { return e.Err }
