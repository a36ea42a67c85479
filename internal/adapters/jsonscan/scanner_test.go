package jsonscan

import (
	"reflect"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		object string
		want   []Literal
	}{
		{
			name:   "stops at the target object's closing brace",
			text:   `{"scripts":{"a":"cmd1","b":"cmd2"},"other":{"x":"y"}}`,
			object: "scripts",
			want: []Literal{
				{Text: "a", Line: 1}, {Text: "cmd1", Line: 1},
				{Text: "b", Line: 1}, {Text: "cmd2", Line: 1},
			},
		},
		{
			name:   "sibling objects before the target do not stop the scan",
			text:   "{\n\"compilerOptions\": {\"jsx\": \"react-jsx\"},\n\"tasks\": {\n\"start\": \"deno run dev.ts\"\n}\n}",
			object: "tasks",
			want: []Literal{
				{Text: "start", Line: 4}, {Text: "deno run dev.ts", Line: 4},
			},
		},
		{
			name:   "escaped quotes stay inside the literal",
			text:   `{"scripts": {"say": "echo \"hi\" there"}}`,
			object: "scripts",
			want: []Literal{
				{Text: "say", Line: 1}, {Text: `echo \"hi\" there`, Line: 1},
			},
		},
		{
			name:   "escaped backslash before a quote closes the literal",
			text:   `{"scripts": {"win": "dir C:\\", "b": "x"}}`,
			object: "scripts",
			want: []Literal{
				{Text: "win", Line: 1}, {Text: `dir C:\\`, Line: 1},
				{Text: "b", Line: 1}, {Text: "x", Line: 1},
			},
		},
		{
			name:   "braces inside literals are ignored",
			text:   `{"scripts": {"fmt": "echo }{"}, "z": "q"}`,
			object: "scripts",
			want: []Literal{
				{Text: "fmt", Line: 1}, {Text: "echo }{", Line: 1},
			},
		},
		{
			name:   "multi-byte text keeps offsets aligned",
			text:   `{"名前": "値", "scripts": {"grüß": "echo ✓"}}`,
			object: "scripts",
			want: []Literal{
				{Text: "grüß", Line: 1}, {Text: "echo ✓", Line: 1},
			},
		},
		{
			name:   "target key is compared trimmed",
			text:   `{" scripts ": {"a": "b"}}`,
			object: "scripts",
			want: []Literal{
				{Text: "a", Line: 1}, {Text: "b", Line: 1},
			},
		},
		{
			name:   "missing target yields nothing",
			text:   `{"name": "pkg", "version": "1.0.0"}`,
			object: "scripts",
			want:   nil,
		},
		{
			name:   "unterminated literal is dropped",
			text:   `{"scripts": {"a": "b", "c`,
			object: "scripts",
			want: []Literal{
				{Text: "a", Line: 1}, {Text: "b", Line: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Scan(tt.text, tt.object)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
