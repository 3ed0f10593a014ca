package grammar

import "fmt"

// Rule binds a nonterminal symbol to an expression. Rendered in full it
// produces a production line ("symbol ::= ..."); rendered embedded it
// produces just the symbol, so rules can reference each other by nesting
// a *Rule inside another expression.
type Rule struct {
	symbol string
	value  Expr
}

// NewRule creates a named production for value. The symbol must be
// non-empty and the value non-nil.
func NewRule(symbol string, value Expr) (*Rule, error) {
	if symbol == "" {
		return nil, fmt.Errorf("%w: rule symbol must not be empty", ErrInvalidParameter)
	}
	if isNilExpr(value) {
		return nil, fmt.Errorf("%w: rule value must not be nil", ErrInvalidParameter)
	}
	return &Rule{symbol: symbol, value: value}, nil
}

// RenderProduction renders a rule as a standalone production line. Unlike
// Render, the rule body is not parenthesized at the top level; a quantified
// body still wraps as the suffix requires.
func RenderProduction(r *Rule) (string, bool) {
	return render(r, true, false)
}

// Symbol returns the nonterminal name.
func (r *Rule) Symbol() string { return r.symbol }

// Value returns the bound expression.
func (r *Rule) Value() Expr { return r.value }

func (r *Rule) render(full, wrap bool) (string, bool) {
	if !full {
		return r.symbol, true
	}
	body, ok := render(r.value, false, wrap)
	if !ok {
		return "", false
	}
	return r.symbol + " ::= " + body, true
}

func (r *Rule) simplify() Expr {
	value := Simplify(r.value)
	if value == nil {
		return nil
	}
	return &Rule{symbol: r.symbol, value: value}
}

func (r *Rule) copy() Expr {
	return &Rule{symbol: r.symbol, value: Copy(r.value)}
}

func (r *Rule) equal(other *Rule) bool {
	return r.symbol == other.symbol && Equal(r.value, other.value)
}
