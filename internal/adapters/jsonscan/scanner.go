/*
Package jsonscan extracts the string key/value pairs of one named object from
JSON-like text without parsing the rest of the document.
*/
package jsonscan

import "strings"

// Literal is the raw text between a pair of unescaped quotes and the line
// on which it was closed.
type Literal struct {
	Text string
	Line int
}

type scanState int

const (
	stateOutside scanState = iota
	stateInString
	stateEscape
)

/*
Scan walks text once, rune by rune, and returns the string literals that
occur after the literal equal to object (compared trimmed) and before the
first unquoted closing brace that follows it. The literal that opens the
target object is not returned. Line numbers are 1-based.
*/
func Scan(text, object string) []Literal {
	var (
		literals []Literal
		state    = stateOutside
		line     = 1
		start    int
		inside   bool
	)

	for i, ch := range text {
		if ch == '\n' {
			line++
		}

		switch state {
		case stateOutside:
			switch ch {
			case '"':
				state = stateInString
				start = i + 1
			case '}':
				if inside {
					return literals
				}
			}
		case stateInString:
			switch ch {
			case '\\':
				state = stateEscape
			case '"':
				state = stateOutside
				raw := text[start:i]
				if inside {
					literals = append(literals, Literal{Text: raw, Line: line})
				} else if strings.TrimSpace(raw) == object {
					inside = true
				}
			}
		case stateEscape:
			state = stateInString
		}
	}

	return literals
}
