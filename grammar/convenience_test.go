package grammar

import "testing"

func TestConvenienceCharSets(t *testing.T) {
	tests := []struct {
		name string
		set  *CharSet
		want string
	}{
		{name: "digit", set: Digit(), want: "[0-9]"},
		{name: "alpha", set: Alpha(), want: "[A-Za-z]"},
		{name: "alnum", set: Alnum(), want: "[0-9A-Za-z]"},
		{name: "whitespace", set: Whitespace(), want: `[\t\n\r ]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, tt.set); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvenienceWrappers(t *testing.T) {
	lit := NewLiteral("a")
	tests := []struct {
		name  string
		build func() (*Sequence, error)
		want  string
	}{
		{name: "optional", build: func() (*Sequence, error) { return Optional(lit) }, want: `"a"?`},
		{name: "zero or more", build: func() (*Sequence, error) { return ZeroOrMore(lit) }, want: `"a"*`},
		{name: "one or more", build: func() (*Sequence, error) { return OneOrMore(lit) }, want: `"a"+`},
		{name: "repeat", build: func() (*Sequence, error) { return Repeat(lit, 3) }, want: `"a"{3}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := tt.build()
			if err != nil {
				t.Fatalf("build error = %v", err)
			}
			if got := mustRender(t, seq); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvenienceWrappersCopyTheirInput(t *testing.T) {
	lit := NewLiteral("a")
	seq, err := Optional(lit)
	if err != nil {
		t.Fatalf("Optional() error = %v", err)
	}
	if seq.Subexprs()[0] == Expr(lit) {
		t.Error("Expected Optional() to copy its argument")
	}
}

func TestSeqAndChoice(t *testing.T) {
	seq, err := Seq(NewLiteral("a"), Digit())
	if err != nil {
		t.Fatalf("Seq() error = %v", err)
	}
	if got := mustRender(t, seq); got != `"a" [0-9]` {
		t.Errorf("Render() = %q, want %q", got, `"a" [0-9]`)
	}

	choice, err := Choice(NewLiteral("a"), Digit())
	if err != nil {
		t.Fatalf("Choice() error = %v", err)
	}
	if got := mustRender(t, choice); got != `("a" | [0-9])` {
		t.Errorf("Render() = %q, want %q", got, `("a" | [0-9])`)
	}
}

func TestRepeat_InvalidCount(t *testing.T) {
	if _, err := Repeat(NewLiteral("a"), -1); err == nil {
		t.Error("Expected Repeat() with a negative count to fail")
	}
}
