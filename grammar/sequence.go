package grammar

const sequenceSeparator = " "

// Sequence matches its children in order ("and"). The attached quantifier
// repeats the whole concatenation.
type Sequence struct {
	subexprs   []Expr
	quantifier Quantifier
}

// NewSequence creates a concatenation of subexprs repeated per quantifier.
// The children are taken as-is, not copied; they must not be mutated
// afterwards. A Sequence with no children is legal and renders to absent.
func NewSequence(subexprs []Expr, quantifier Quantifier) (*Sequence, error) {
	if err := validateGroup(subexprs, quantifier); err != nil {
		return nil, err
	}
	return &Sequence{
		subexprs:   append([]Expr(nil), subexprs...),
		quantifier: quantifier,
	}, nil
}

// Subexprs returns a copy of the child list.
func (s *Sequence) Subexprs() []Expr {
	return append([]Expr(nil), s.subexprs...)
}

// Quantifier returns the repetition descriptor.
func (s *Sequence) Quantifier() Quantifier { return s.quantifier }

// needsWrap: a multi-child Sequence needs parentheses only when quantified;
// a single-child Sequence defers to the shared single-child policy.
func (s *Sequence) needsWrap() bool {
	n := len(s.subexprs)
	if n < 1 {
		return false
	}
	if n == 1 {
		if s.quantifier.IsOne() {
			return false
		}
		return singleChildNeedsWrap(s.subexprs[0])
	}
	return !s.quantifier.IsOne()
}

func (s *Sequence) render(wrap bool) (string, bool) {
	return renderGroup(s.subexprs, s.quantifier, sequenceSeparator, s.needsWrap(), wrap)
}

func (s *Sequence) copy() Expr {
	return &Sequence{subexprs: copyExprs(s.subexprs), quantifier: s.quantifier}
}

func (s *Sequence) equal(other *Sequence) bool {
	return s.quantifier == other.quantifier && equalExprs(s.subexprs, other.subexprs)
}

// simplifySequence canonicalizes a child list under a quantifier. Children
// are simplified first and absent results dropped; a childless result is
// absent; a lone child unwraps under the identity quantifier or, under
// (0,1), inlines a nested optional/identity Sequence; then adjacent
// identity Sequences merge, adjacent Literals concatenate, repeating spans
// collapse into exact-count quantifiers, and a zero minimum hoists to one
// when every child already has one. Each rewrite that changes the child
// list re-enters the pipeline with already-simplified children.
func simplifySequence(original []Expr, quantifier Quantifier) Expr {
	subexprs := make([]Expr, 0, len(original))
	for _, sub := range original {
		if simplified := Simplify(sub); simplified != nil {
			subexprs = append(subexprs, simplified)
		}
	}
	return resimplifySequence(subexprs, quantifier)
}

// resimplifySequence continues the pipeline on children that are already
// simplified.
func resimplifySequence(subexprs []Expr, quantifier Quantifier) Expr {
	n := len(subexprs)

	// Empty expression is a no-op.
	if n < 1 {
		return nil
	}

	if n == 1 {
		// A single child under the identity quantifier needs no wrapper.
		if quantifier.IsOne() {
			return subexprs[0]
		}
		// An optional Sequence around an optional or plain Sequence
		// flattens one level and keeps the outer quantifier.
		if quantifier.IsOptional() {
			if sub, ok := subexprs[0].(*Sequence); ok && (sub.quantifier.IsOne() || sub.quantifier.IsOptional()) {
				return resimplifySequence(sub.Subexprs(), quantifier)
			}
		}
	}

	if merged, changed := mergeAdjacentSequences(subexprs); changed {
		return resimplifySequence(merged, quantifier)
	}
	if merged, changed := mergeAdjacentLiterals(subexprs); changed {
		return resimplifySequence(merged, quantifier)
	}
	// The grouped child is a new node and re-enters the full pipeline.
	if grouped, changed := groupRepeats(subexprs); changed {
		return simplifySequence(grouped, quantifier)
	}

	// A zero minimum is redundant when every child already allows zero
	// occurrences.
	if quantifier.Min == 0 && allOptionalGroups(subexprs) {
		return resimplifySequence(subexprs, Quantifier{Min: 1, Max: quantifier.Max})
	}

	return &Sequence{subexprs: subexprs, quantifier: quantifier}
}
