package builder

import (
	"testing"

	"github.com/dhamidi/gbnf/grammar"
)

func TestJSONArray_Render(t *testing.T) {
	integer := `"-"? [1-9] [0-9]* | "0"`
	tests := []struct {
		name string
		n    grammar.Quantifier
		want string
	}{
		{
			name: "any length",
			n:    grammar.Quantifier{Min: 0, Max: grammar.Unbounded},
			want: `root ::= "[" ((` + integer + `) ("," (` + integer + `))*)? "]"`,
		},
		{
			name: "at least one item",
			n:    grammar.Quantifier{Min: 1, Max: grammar.Unbounded},
			want: `root ::= "[" (` + integer + `) ("," (` + integer + `))* "]"`,
		},
		{
			name: "exactly one item",
			n:    grammar.Exactly(1),
			want: `root ::= "[" (` + integer + `) "]"`,
		},
		{
			name: "always empty",
			n:    grammar.Quantifier{Min: 0, Max: 0},
			want: `root ::= "[]"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			component := NewJSONArray(NewJSONIntegerAny(), tt.n, nil, nil)
			if got := renderCompact(t, component); got != tt.want+"\n" {
				t.Errorf("Render() = %q, want %q", got, tt.want+"\n")
			}
		})
	}
}

func TestJSONArray_RenderBoundedCount(t *testing.T) {
	component := NewJSONArray(JSONBoolean{}, grammar.Between(1, 3), nil, nil)
	want := `root ::= "[" ("true" | "false") ("," ("true" | "false")){0,2} "]"` + "\n"
	if got := renderCompact(t, component); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestJSONArrayLiteral_Render(t *testing.T) {
	component := NewJSONArrayLiteral([]any{int64(1), NewJSONIntegerAny()}, nil, nil)
	want := `root ::= "[1," ("-"? [1-9] [0-9]* | "0") "]"` + "\n"
	if got := renderCompact(t, component); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestJSONObject_RenderMembersInOrder(t *testing.T) {
	component := NewJSONObjectMembers([]JSONMember{
		{Key: "id", Value: NewJSONIntegerAny()},
		{Key: "ok", Value: JSONBoolean{}},
	}, nil, nil)
	want := `root ::= "{\"id\":" ("-"? [1-9] [0-9]* | "0") ",\"ok\":" ("true" | "false") "}"` + "\n"
	if got := renderCompact(t, component); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestNewJSONObject_SortsKeys(t *testing.T) {
	component := NewJSONObject(map[string]any{
		"b": NewJSONIntegerAny(),
		"a": true,
	}, nil, nil)
	want := `root ::= "{\"a\":true,\"b\":" ("-"? [1-9] [0-9]* | "0") "}"` + "\n"
	if got := renderCompact(t, component); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
