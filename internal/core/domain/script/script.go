/*
Package script defines the core domain entity for a named shell command.
*/
package script

import "strings"

// DefaultComment is used when a script has no comment or a blank one.
const DefaultComment = "No comment specified."

/*
Script is a shell command line together with an explanatory comment.
It is a value type; the registry owns the copies it stores.
*/
type Script struct {
	Command string
	Comment string
}

// New trims both fields and falls back to DefaultComment for a blank comment.
func New(command, comment string) Script {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		comment = DefaultComment
	}
	return Script{
		Command: strings.TrimSpace(command),
		Comment: comment,
	}
}

// Entry is a script addressed by its name, as returned by ordered iteration
// and lookups.
type Entry struct {
	Name   string
	Script Script
	// Alias is the bound shortcut rune for Name, zero when the first rune is ambiguous.
	Alias rune
}

// HasAlias reports whether the entry can be addressed by a single rune.
func (e Entry) HasAlias() bool {
	return e.Alias != 0
}
