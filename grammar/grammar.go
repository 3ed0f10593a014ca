// Package grammar builds, canonicalizes, and renders GBNF grammar
// expressions.
//
// Expressions form a tree of five node kinds: Literal, CharSet, Rule,
// Sequence, and Alternation. Nodes are immutable once constructed; a fully
// built tree may be rendered, copied, and compared concurrently. Simplify
// and Copy always return fresh nodes and never mutate their input.
//
// "Absent" is the sentinel for "no content": Render reports it through its
// boolean result, Simplify and Copy report it by returning a nil Expr. It is
// not an error; constructors are the only operations that fail.
package grammar

// Expr is a GBNF grammar expression. The concrete types are *Literal,
// *CharSet, *Rule, *Sequence, and *Alternation; no other implementations
// exist.
type Expr interface {
	isExpr()
}

func (*Literal) isExpr()     {}
func (*CharSet) isExpr()     {}
func (*Rule) isExpr()        {}
func (*Sequence) isExpr()    {}
func (*Alternation) isExpr() {}

// Render produces the GBNF text for a full expression. The second result is
// false when the expression has no content (an empty literal, a composite
// whose children all rendered to nothing, or a nil expression).
func Render(e Expr) (string, bool) {
	return render(e, true, true)
}

// render dispatches by node kind. Children of composites are rendered with
// full=false so an embedded Rule appears as its bare symbol, and wrap=true
// so the wrap policy applies.
func render(e Expr, full, wrap bool) (string, bool) {
	switch n := e.(type) {
	case *Literal:
		return n.render()
	case *CharSet:
		return n.render()
	case *Rule:
		return n.render(full, wrap)
	case *Sequence:
		return n.render(wrap)
	case *Alternation:
		return n.render(wrap)
	default:
		return "", false
	}
}

// Simplify returns the canonical form of an expression: empty subtrees are
// dropped, single-codepoint character sets become literals, adjacent
// literals are concatenated, redundant nesting is unwrapped, duplicate
// alternatives are removed, and repeating spans collapse into quantifiers.
// A nil result means the expression simplified away entirely.
//
// Simplify is idempotent and never fails on a well-formed tree.
func Simplify(e Expr) Expr {
	switch n := e.(type) {
	case *Literal:
		return n.simplify()
	case *CharSet:
		return n.simplify()
	case *Rule:
		return n.simplify()
	case *Sequence:
		return simplifySequence(n.subexprs, n.quantifier)
	case *Alternation:
		return simplifyAlternation(n.subexprs, n.quantifier)
	default:
		return nil
	}
}

// Copy deep-clones an expression. The result shares no structure with the
// original. Copy of nil is nil.
func Copy(e Expr) Expr {
	switch n := e.(type) {
	case *Literal:
		return n.copy()
	case *CharSet:
		return n.copy()
	case *Rule:
		return n.copy()
	case *Sequence:
		return n.copy()
	case *Alternation:
		return n.copy()
	default:
		return nil
	}
}

// Equal reports structural equality. Identity short-circuits, then node
// kinds must match, then contents; composite comparison includes the
// quantifier. Two nil expressions are equal.
func Equal(a, b Expr) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	switch x := a.(type) {
	case *Literal:
		y, ok := b.(*Literal)
		return ok && x.equal(y)
	case *CharSet:
		y, ok := b.(*CharSet)
		return ok && x.equal(y)
	case *Rule:
		y, ok := b.(*Rule)
		return ok && x.equal(y)
	case *Sequence:
		y, ok := b.(*Sequence)
		return ok && x.equal(y)
	case *Alternation:
		y, ok := b.(*Alternation)
		return ok && x.equal(y)
	default:
		return false
	}
}

// isNilExpr reports whether e is nil or a typed nil pointer. The handle
// constructors on Context return typed nils on failure, so composite
// constructors must catch both forms.
func isNilExpr(e Expr) bool {
	switch n := e.(type) {
	case nil:
		return true
	case *Literal:
		return n == nil
	case *CharSet:
		return n == nil
	case *Rule:
		return n == nil
	case *Sequence:
		return n == nil
	case *Alternation:
		return n == nil
	default:
		return false
	}
}

func copyExprs(subexprs []Expr) []Expr {
	if subexprs == nil {
		return nil
	}
	out := make([]Expr, len(subexprs))
	for i, sub := range subexprs {
		out[i] = Copy(sub)
	}
	return out
}

func equalExprs(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
