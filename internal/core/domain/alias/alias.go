/*
Package alias defines the single-rune shortcut state used to address a script
by the first character of its name.
*/
package alias

// Kind tags the state of a shortcut rune.
type Kind int

const (
	// Unbound means no script name starts with the rune.
	Unbound Kind = iota
	// Bound means exactly one script name starts with the rune.
	Bound
	// Ambiguous means two or more script names start with the rune.
	Ambiguous
)

func (k Kind) String() string {
	switch k {
	case Unbound:
		return "unbound"
	case Bound:
		return "bound"
	case Ambiguous:
		return "ambiguous"
	default:
		return "unknown"
	}
}

/*
State is the tagged value stored for a shortcut rune. Name is only set when
Kind is Bound.
*/
type State struct {
	Kind Kind
	Name string
}

// BoundTo returns the Bound state for name.
func BoundTo(name string) State {
	return State{Kind: Bound, Name: name}
}

// Next returns the state after another name starting with the same rune is
// claimed. The transition is monotonic: Ambiguous never reverts.
func (s State) Next(name string) State {
	switch s.Kind {
	case Unbound:
		return BoundTo(name)
	default:
		return State{Kind: Ambiguous}
	}
}

// Index maps shortcut runes to their state. Missing keys are Unbound.
type Index map[rune]State

// Claim records that name starts with its first rune and returns the new
// state of that rune. Claiming an empty name is a no-op.
func (idx Index) Claim(name string) State {
	for _, r := range name {
		next := idx[r].Next(name)
		idx[r] = next
		return next
	}
	return State{}
}

// Lookup returns the state of r, Unbound when absent.
func (idx Index) Lookup(r rune) State {
	return idx[r]
}
