/*
Package registry holds the in-memory index of named scripts and their
single-rune aliases.
*/
package registry

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/AntonioJCosta/run/internal/core/domain/alias"
	"github.com/AntonioJCosta/run/internal/core/domain/script"
)

/*
Registry maps script names to scripts and first runes to alias states.
A Registry is populated by a single parse pass and is not safe for
concurrent use.
*/
type Registry struct {
	scripts map[string]script.Script
	aliases alias.Index
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		scripts: make(map[string]script.Script),
		aliases: make(alias.Index),
	}
}

// Insert validates name and s and stores them. On error the registry is left
// unchanged.
func (r *Registry) Insert(name string, s script.Script) error {
	name = strings.TrimSpace(name)
	s = script.New(s.Command, s.Comment)
	if err := validate(name, s); err != nil {
		return err
	}
	if _, exists := r.scripts[name]; exists {
		return ErrNameAlreadyUsed
	}

	r.scripts[name] = s
	r.aliases.Claim(name)
	return nil
}

func validate(name string, s script.Script) error {
	if name == "" {
		return ErrNameEmpty
	}
	if s.Command == "" {
		return ErrCommandEmpty
	}
	if strings.HasPrefix(name, "-") {
		return ErrNameStartsWithMinus
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ErrNameContainsSpace
	}
	return nil
}

// Resolve looks token up as an alias when it is a single rune and as a name
// otherwise.
func (r *Registry) Resolve(token string) (script.Entry, error) {
	if utf8.RuneCountInString(token) != 1 {
		return r.byName(token)
	}

	first, _ := utf8.DecodeRuneInString(token)
	state := r.aliases.Lookup(first)
	switch state.Kind {
	case alias.Unbound:
		return script.Entry{}, &LookupError{Alias: first, Err: ErrUnknownAlias}
	case alias.Ambiguous:
		return script.Entry{}, &LookupError{Alias: first, Err: ErrAmbiguousAlias}
	default:
		return r.byName(state.Name)
	}
}

func (r *Registry) byName(name string) (script.Entry, error) {
	s, ok := r.scripts[name]
	if !ok {
		return script.Entry{}, &LookupError{Name: name, Err: ErrUnknownName}
	}
	return r.entry(name, s), nil
}

func (r *Registry) entry(name string, s script.Script) script.Entry {
	e := script.Entry{Name: name, Script: s}
	first, _ := utf8.DecodeRuneInString(name)
	if state := r.aliases.Lookup(first); state.Kind == alias.Bound && state.Name == name {
		e.Alias = first
	}
	return e
}

// AliasOf returns the alias state of the rune c.
func (r *Registry) AliasOf(c rune) alias.State {
	return r.aliases.Lookup(c)
}

// Len returns the number of scripts.
func (r *Registry) Len() int {
	return len(r.scripts)
}

// Names returns all script names in lexicographic order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.scripts))
	for name := range r.scripts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Entries returns all scripts in name order.
func (r *Registry) Entries() []script.Entry {
	names := r.Names()
	entries := make([]script.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, r.entry(name, r.scripts[name]))
	}
	return entries
}

// Serialize renders the registry in canonical run.yaml form: a comment line
// and an entry line per script, in name order, separated by blank lines.
func (r *Registry) Serialize() string {
	var b strings.Builder
	for i, e := range r.Entries() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("# ")
		b.WriteString(e.Script.Comment)
		b.WriteString("\n")
		b.WriteString(e.Name)
		b.WriteString(": ")
		b.WriteString(e.Script.Command)
		b.WriteString("\n")
	}
	return b.String()
}
