package grammar

import (
	"errors"
	"testing"
)

func mustSequence(t *testing.T, subexprs []Expr, quantifier Quantifier) *Sequence {
	t.Helper()
	seq, err := NewSequence(subexprs, quantifier)
	if err != nil {
		t.Fatalf("NewSequence() error = %v", err)
	}
	return seq
}

func TestSequence_Render(t *testing.T) {
	digits := Digit()
	tests := []struct {
		name       string
		subexprs   []Expr
		quantifier Quantifier
		want       string
	}{
		{
			name:       "children joined by spaces",
			subexprs:   []Expr{NewLiteral("a"), digits, NewLiteral("b")},
			quantifier: One,
			want:       `"a" [0-9] "b"`,
		},
		{
			name:       "quantified multi-child wraps",
			subexprs:   []Expr{NewLiteral("a"), digits},
			quantifier: Quantifier{Min: 0, Max: 1},
			want:       `("a" [0-9])?`,
		},
		{
			name:       "quantified single leaf does not wrap",
			subexprs:   []Expr{NewLiteral("a")},
			quantifier: AtLeast(1),
			want:       `"a"+`,
		},
		{
			name:       "quantified single charset does not wrap",
			subexprs:   []Expr{digits},
			quantifier: Quantifier{Min: 0, Max: Unbounded},
			want:       `[0-9]*`,
		},
		{
			name:       "exact repetition",
			subexprs:   []Expr{digits},
			quantifier: Exactly(4),
			want:       `[0-9]{4}`,
		},
		{
			name: "quantified single composite wraps",
			subexprs: []Expr{
				mustSeqHelper(t, []Expr{NewLiteral("a"), NewLiteral("b")}, One),
			},
			quantifier: Quantifier{Min: 0, Max: 1},
			want:       `("a" "b")?`,
		},
		{
			name:       "absent children skipped",
			subexprs:   []Expr{NewLiteral(""), NewLiteral("x"), NewLiteral("")},
			quantifier: One,
			want:       `"x"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := mustSequence(t, tt.subexprs, tt.quantifier)
			if got := mustRender(t, seq); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func mustSeqHelper(t *testing.T, subexprs []Expr, quantifier Quantifier) *Sequence {
	t.Helper()
	return mustSequence(t, subexprs, quantifier)
}

func TestSequence_ZeroChildren(t *testing.T) {
	seq := mustSequence(t, nil, One)
	if _, ok := Render(seq); ok {
		t.Error("Expected empty sequence to render as absent")
	}
	if got := Simplify(seq); got != nil {
		t.Errorf("Simplify() = %v, want nil", got)
	}
}

func TestSequence_ConstructionErrors(t *testing.T) {
	t.Run("nil child", func(t *testing.T) {
		if _, err := NewSequence([]Expr{NewLiteral("a"), nil}, One); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("NewSequence() error = %v, want ErrInvalidParameter", err)
		}
	})
	t.Run("bad quantifier", func(t *testing.T) {
		if _, err := NewSequence([]Expr{NewLiteral("a")}, Between(3, 2)); !errors.Is(err, ErrInvalidQuantifier) {
			t.Errorf("NewSequence() error = %v, want ErrInvalidQuantifier", err)
		}
	})
}

func TestSequence_SimplifyUnwrapsSingleChild(t *testing.T) {
	inner := Digit()
	seq := mustSequence(t, []Expr{inner}, One)
	got := Simplify(seq)
	if !Equal(got, inner) {
		t.Errorf("Simplify() = %v, want the child itself", got)
	}
}

func TestSequence_SimplifyInlinesOptional(t *testing.T) {
	inner := mustSequence(t, []Expr{NewLiteral("a"), Digit()}, One)
	outer := mustSequence(t, []Expr{inner}, Quantifier{Min: 0, Max: 1})
	simplified, ok := Simplify(outer).(*Sequence)
	if !ok {
		t.Fatalf("Simplify() = %T, want *Sequence", Simplify(outer))
	}
	if !simplified.Quantifier().IsOptional() {
		t.Errorf("Quantifier() = %v, want (0, 1)", simplified.Quantifier())
	}
	if got := mustRender(t, simplified); got != `("a" [0-9])?` {
		t.Errorf("Render() = %q, want %q", got, `("a" [0-9])?`)
	}
}

func TestSequence_SimplifyMergesNestedSequences(t *testing.T) {
	left := mustSequence(t, []Expr{Digit(), Alpha()}, One)
	right := mustSequence(t, []Expr{Whitespace(), Digit()}, One)
	outer := mustSequence(t, []Expr{left, right}, One)
	simplified, ok := Simplify(outer).(*Sequence)
	if !ok {
		t.Fatalf("Simplify() = %T, want *Sequence", Simplify(outer))
	}
	if got := len(simplified.Subexprs()); got != 4 {
		t.Errorf("len(Subexprs()) = %d, want 4", got)
	}
}

func TestSequence_SimplifyGroupsRepeats(t *testing.T) {
	t.Run("repeated charset", func(t *testing.T) {
		seq := mustSequence(t, []Expr{Digit(), Digit(), Digit()}, One)
		if got := mustRender(t, Simplify(seq)); got != `[0-9]{3}` {
			t.Errorf("Render() = %q, want %q", got, `[0-9]{3}`)
		}
	})
	t.Run("repeated pair", func(t *testing.T) {
		seq := mustSequence(t, []Expr{Digit(), Alpha(), Digit(), Alpha()}, One)
		if got := mustRender(t, Simplify(seq)); got != `([0-9] [A-Za-z]){2}` {
			t.Errorf("Render() = %q, want %q", got, `([0-9] [A-Za-z]){2}`)
		}
	})
	t.Run("even run groups pairwise", func(t *testing.T) {
		seq := mustSequence(t, []Expr{Digit(), Digit(), Digit(), Digit()}, One)
		if got := mustRender(t, Simplify(seq)); got != `([0-9]{2}){2}` {
			t.Errorf("Render() = %q, want %q", got, `([0-9]{2}){2}`)
		}
	})
	t.Run("run in the middle", func(t *testing.T) {
		seq := mustSequence(t, []Expr{Alpha(), Digit(), Digit(), Digit(), Alpha()}, One)
		if got := mustRender(t, Simplify(seq)); got != `[A-Za-z] [0-9]{3} [A-Za-z]` {
			t.Errorf("Render() = %q, want %q", got, `[A-Za-z] [0-9]{3} [A-Za-z]`)
		}
	})
}

func TestSequence_SimplifyHoistsZeroMin(t *testing.T) {
	optionalDigit, err := Optional(Digit())
	if err != nil {
		t.Fatalf("Optional() error = %v", err)
	}
	anyAlpha, err := ZeroOrMore(Alpha())
	if err != nil {
		t.Fatalf("ZeroOrMore() error = %v", err)
	}
	outer := mustSequence(t, []Expr{optionalDigit, anyAlpha}, Quantifier{Min: 0, Max: 2})
	simplified, ok := Simplify(outer).(*Sequence)
	if !ok {
		t.Fatalf("Simplify() = %T, want *Sequence", Simplify(outer))
	}
	if got := simplified.Quantifier(); got != (Quantifier{Min: 1, Max: 2}) {
		t.Errorf("Quantifier() = %v, want (1, 2)", got)
	}
}

func TestSequence_SimplifyDropsAbsentChildren(t *testing.T) {
	seq := mustSequence(t, []Expr{NewLiteral(""), mustSequence(t, nil, One)}, One)
	if got := Simplify(seq); got != nil {
		t.Errorf("Simplify() = %v, want nil", got)
	}
}
