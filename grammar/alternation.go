package grammar

const alternationSeparator = " | "

// Alternation matches exactly one of its children ("or"), tried in order.
// The attached quantifier repeats the whole disjunction.
type Alternation struct {
	subexprs   []Expr
	quantifier Quantifier
}

// NewAlternation creates a disjunction of subexprs repeated per quantifier.
// The children are taken as-is, not copied; they must not be mutated
// afterwards. An Alternation with no children is legal and renders to
// absent.
func NewAlternation(subexprs []Expr, quantifier Quantifier) (*Alternation, error) {
	if err := validateGroup(subexprs, quantifier); err != nil {
		return nil, err
	}
	return &Alternation{
		subexprs:   append([]Expr(nil), subexprs...),
		quantifier: quantifier,
	}, nil
}

// Subexprs returns a copy of the child list.
func (a *Alternation) Subexprs() []Expr {
	return append([]Expr(nil), a.subexprs...)
}

// Quantifier returns the repetition descriptor.
func (a *Alternation) Quantifier() Quantifier { return a.quantifier }

// needsWrap: an embedded Alternation with two or more children is always
// parenthesized; a single child defers to the shared single-child policy.
func (a *Alternation) needsWrap() bool {
	n := len(a.subexprs)
	if n < 1 {
		return false
	}
	if n == 1 {
		if a.quantifier.IsOne() {
			return false
		}
		return singleChildNeedsWrap(a.subexprs[0])
	}
	return true
}

func (a *Alternation) render(wrap bool) (string, bool) {
	return renderGroup(a.subexprs, a.quantifier, alternationSeparator, a.needsWrap(), wrap)
}

func (a *Alternation) copy() Expr {
	return &Alternation{subexprs: copyExprs(a.subexprs), quantifier: a.quantifier}
}

func (a *Alternation) equal(other *Alternation) bool {
	return a.quantifier == other.quantifier && equalExprs(a.subexprs, other.subexprs)
}

// simplifyAlternation canonicalizes a disjunction: children are simplified
// with absent results dropped and structural duplicates removed
// (quantifier-inclusive); a childless result is absent; a lone survivor
// folds through the Sequence pipeline; adjacent identity Alternations merge
// into one; a zero minimum hoists to one when every child already has one.
func simplifyAlternation(original []Expr, quantifier Quantifier) Expr {
	subexprs := make([]Expr, 0, len(original))
	for _, sub := range original {
		simplified := Simplify(sub)
		if simplified == nil {
			continue
		}
		duplicate := false
		for _, kept := range subexprs {
			if Equal(simplified, kept) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			subexprs = append(subexprs, simplified)
		}
	}
	return resimplifyAlternation(subexprs, quantifier)
}

func resimplifyAlternation(subexprs []Expr, quantifier Quantifier) Expr {
	n := len(subexprs)

	// Empty expression is a no-op.
	if n < 1 {
		return nil
	}

	// A disjunction over one child is the same as a concatenation over it.
	if n == 1 {
		return resimplifySequence(subexprs, quantifier)
	}

	if merged, changed := mergeAdjacentAlternations(subexprs); changed {
		return simplifyAlternation(merged, quantifier)
	}

	// A zero minimum is redundant when every child already allows zero
	// occurrences.
	if quantifier.Min == 0 && allOptionalGroups(subexprs) {
		return resimplifyAlternation(subexprs, Quantifier{Min: 1, Max: quantifier.Max})
	}

	return &Alternation{subexprs: subexprs, quantifier: quantifier}
}
