package grammar

import "strings"

// Literal matches a fixed string exactly. The value may be empty; an empty
// literal renders and simplifies to absent.
type Literal struct {
	value string
}

// NewLiteral creates a literal matching value exactly.
func NewLiteral(value string) *Literal {
	return &Literal{value: value}
}

// Value returns the literal's string value.
func (l *Literal) Value() string { return l.value }

func (l *Literal) render() (string, bool) {
	if len(l.value) == 0 {
		return "", false
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range l.value {
		b.WriteString(escapeLiteral(r))
	}
	b.WriteByte('"')
	return b.String(), true
}

func (l *Literal) simplify() Expr {
	if len(l.value) == 0 {
		return nil
	}
	return NewLiteral(l.value)
}

func (l *Literal) copy() Expr {
	return NewLiteral(l.value)
}

func (l *Literal) equal(other *Literal) bool {
	return l.value == other.value
}

// mergeAdjacentLiterals concatenates every consecutive run of two or more
// Literal children into a single Literal. Returns the (possibly new) child
// list and whether anything was merged. Applies only inside composite
// simplification.
func mergeAdjacentLiterals(subexprs []Expr) ([]Expr, bool) {
	if len(subexprs) < 2 {
		return subexprs, false
	}
	out := make([]Expr, 0, len(subexprs))
	merged := false
	for i := 0; i < len(subexprs); {
		lit, ok := subexprs[i].(*Literal)
		if !ok {
			out = append(out, subexprs[i])
			i++
			continue
		}
		j := i + 1
		var b strings.Builder
		b.WriteString(lit.value)
		for j < len(subexprs) {
			next, ok := subexprs[j].(*Literal)
			if !ok {
				break
			}
			b.WriteString(next.value)
			j++
		}
		if j > i+1 {
			out = append(out, NewLiteral(b.String()))
			merged = true
		} else {
			out = append(out, lit)
		}
		i = j
	}
	return out, merged
}
