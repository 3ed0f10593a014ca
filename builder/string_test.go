package builder

import (
	"testing"

	"github.com/dhamidi/gbnf/grammar"
)

func TestJSONStringLiteral_Grammar(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		ensureASCII bool
		want        string
	}{
		{
			name: "empty",
			want: `""`,
		},
		{
			name:  "plain ASCII",
			value: "gandalf",
			want:  `"gandalf"`,
		},
		{
			name:        "astral plane escaped as a surrogate pair",
			value:       "gandalf\U0001F600",
			ensureASCII: true,
			want:        `"gandalf\ud83d\ude00"`,
		},
		{
			name:  "astral plane kept literal",
			value: "gandalf\U0001F600",
			want:  "\"gandalf\U0001F600\"",
		},
		{
			name:        "basic plane escaped",
			value:       "h\u00e9llo",
			ensureASCII: true,
			want:        `"h\u00e9llo"`,
		},
		{
			name:  "quotes and backslashes",
			value: `say "hi" \o/`,
			want:  `"say \"hi\" \\o/"`,
		},
		{
			name:  "named control escapes",
			value: "a\tb\nc\rd\be\ff",
			want:  `"a\tb\nc\rd\be\ff"`,
		},
		{
			name:  "unnamed control escapes",
			value: "\x01\x7f",
			want:  `"\u0001\u007f"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			component := JSONStringLiteral{Value: tt.value, EnsureASCII: tt.ensureASCII}
			lit, ok := component.Grammar(nil).(*grammar.Literal)
			if !ok {
				t.Fatal("Grammar() did not return a literal")
			}
			if lit.Value() != tt.want {
				t.Errorf("Value() = %q, want %q", lit.Value(), tt.want)
			}
		})
	}
}

func TestJSONString_Render(t *testing.T) {
	want := `root ::= "\"" (([^\x00-\x1F\x22\\\x7F] | "\\" ([\x22/\\bfnrt] | "u" [0-9A-Fa-f]{4})))* "\""` + "\n"
	if got := renderCompact(t, NewJSONString()); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestJSONStringN_Render(t *testing.T) {
	want := `root ::= "\"" (([^\x00-\x1F\x22\\\x7F] | "\\" ([\x22/\\bfnrt] | "u" [0-9A-Fa-f]{4}))){3} "\""` + "\n"
	if got := renderCompact(t, NewJSONStringN(grammar.Exactly(3))); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
