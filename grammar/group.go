package grammar

import "strings"

// Shared machinery for the two composite kinds. A composite holds an ordered
// child list and a quantifier; Sequence and Alternation differ only in
// separator, wrap policy, and simplification details.

// groupOf returns the child list and quantifier when e is a composite.
func groupOf(e Expr) ([]Expr, Quantifier, bool) {
	switch n := e.(type) {
	case *Sequence:
		return n.subexprs, n.quantifier, true
	case *Alternation:
		return n.subexprs, n.quantifier, true
	}
	return nil, Quantifier{}, false
}

// validateGroup checks the quantifier and children common to both composite
// constructors. Zero children are accepted; such a node renders and
// simplifies to absent.
func validateGroup(subexprs []Expr, quantifier Quantifier) error {
	if err := quantifier.validate(); err != nil {
		return err
	}
	for _, sub := range subexprs {
		if isNilExpr(sub) {
			return errNilChild
		}
	}
	return nil
}

// singleChildNeedsWrap implements the single-child arm of the wrap policy:
// unwrap through nested single-child composites with identity quantifiers
// and wrap only if a composite remains at the bottom.
func singleChildNeedsWrap(child Expr) bool {
	for {
		subexprs, quantifier, ok := groupOf(child)
		if !ok {
			return false
		}
		if !quantifier.IsOne() || len(subexprs) != 1 {
			return true
		}
		child = subexprs[0]
	}
}

// renderGroup joins the non-absent children with sep, parenthesizes when the
// wrap policy demands it and either the caller asked for wrapping or a
// quantifier suffix follows, then appends the suffix.
func renderGroup(subexprs []Expr, quantifier Quantifier, sep string, needsWrap, wrap bool) (string, bool) {
	if len(subexprs) < 1 {
		return "", false
	}
	var b strings.Builder
	found := false
	for _, sub := range subexprs {
		rendered, ok := render(sub, false, true)
		if !ok {
			continue
		}
		if found {
			b.WriteString(sep)
		}
		b.WriteString(rendered)
		found = true
	}
	if !found {
		return "", false
	}
	expr := b.String()
	suffix, hasSuffix := quantifier.suffix()
	if needsWrap && (wrap || hasSuffix) {
		expr = "(" + expr + ")"
	}
	return expr + suffix, true
}

// mergeAdjacentSequences replaces every run of two or more consecutive
// identity-quantifier Sequence children with one Sequence holding the
// concatenation of their children.
func mergeAdjacentSequences(subexprs []Expr) ([]Expr, bool) {
	return mergeAdjacentGroups(subexprs, func(e Expr) ([]Expr, bool) {
		if seq, ok := e.(*Sequence); ok && seq.quantifier.IsOne() {
			return seq.subexprs, true
		}
		return nil, false
	}, func(children []Expr) Expr {
		return &Sequence{subexprs: children, quantifier: One}
	})
}

// mergeAdjacentAlternations is the Alternation counterpart of
// mergeAdjacentSequences.
func mergeAdjacentAlternations(subexprs []Expr) ([]Expr, bool) {
	return mergeAdjacentGroups(subexprs, func(e Expr) ([]Expr, bool) {
		if alt, ok := e.(*Alternation); ok && alt.quantifier.IsOne() {
			return alt.subexprs, true
		}
		return nil, false
	}, func(children []Expr) Expr {
		return &Alternation{subexprs: children, quantifier: One}
	})
}

func mergeAdjacentGroups(subexprs []Expr, match func(Expr) ([]Expr, bool), build func([]Expr) Expr) ([]Expr, bool) {
	if len(subexprs) < 2 {
		return subexprs, false
	}
	out := make([]Expr, 0, len(subexprs))
	merged := false
	for i := 0; i < len(subexprs); {
		children, ok := match(subexprs[i])
		if !ok {
			out = append(out, subexprs[i])
			i++
			continue
		}
		combined := append([]Expr(nil), children...)
		j := i + 1
		for j < len(subexprs) {
			next, ok := match(subexprs[j])
			if !ok {
				break
			}
			combined = append(combined, next...)
			j++
		}
		if j > i+1 {
			out = append(out, build(combined))
			merged = true
		} else {
			out = append(out, subexprs[i])
		}
		i = j
	}
	return out, merged
}

// allOptionalGroups reports whether every child is a composite whose
// quantifier has a zero minimum. A composite that only contains such
// children does not itself need a zero minimum.
func allOptionalGroups(subexprs []Expr) bool {
	for _, sub := range subexprs {
		_, quantifier, ok := groupOf(sub)
		if !ok || quantifier.Min != 0 {
			return false
		}
	}
	return len(subexprs) > 0
}

// groupRepeats collapses the best repeating span of children into a single
// Sequence child carrying an exact-count quantifier: for example three equal
// consecutive children become one child with {3}. Candidate spans of every
// chunk size and offset are scored by (children removed, chunk size, run
// length) and the best replacement wins. Returns the original slice
// unchanged when no span repeats.
func groupRepeats(subexprs []Expr) ([]Expr, bool) {
	n := len(subexprs)
	if n < 2 {
		return subexprs, false
	}
	var (
		best       []Expr
		bestWeight groupWeight
	)
	consider := func(start, chunk, count int) {
		if count < 2 {
			return
		}
		removed := (count * chunk) - 1
		weight := groupWeight{removed: removed, chunk: chunk, count: count}
		if !weight.better(bestWeight) {
			return
		}
		grouped := &Sequence{
			subexprs:   append([]Expr(nil), subexprs[start:start+chunk]...),
			quantifier: Exactly(count),
		}
		replacement := make([]Expr, 0, n-removed)
		replacement = append(replacement, subexprs[:start]...)
		replacement = append(replacement, grouped)
		replacement = append(replacement, subexprs[start+count*chunk:]...)
		best = replacement
		bestWeight = weight
	}
	for chunk := n / 2; chunk >= 1; chunk-- {
		maxOffsetA := n - (chunk * 2)
		maxOffsetB := chunk - (1 + (n % chunk))
		maxOffset := maxOffsetA
		if maxOffsetB > maxOffset {
			maxOffset = maxOffsetB
		}
		for offset := 0; offset <= maxOffset; offset++ {
			count := 0
			runStart := 0
			// Scan spans right to left; consecutive equal spans form a run.
			for end := n - offset; end-chunk >= 0; end -= chunk {
				start := end - chunk
				if count > 0 && equalExprs(subexprs[runStart:runStart+chunk], subexprs[start:end]) {
					count++
					runStart = start
					continue
				}
				consider(runStart, chunk, count)
				runStart = start
				count = 1
			}
			consider(runStart, chunk, count)
		}
	}
	if best == nil {
		return subexprs, false
	}
	return best, true
}

type groupWeight struct {
	removed int
	chunk   int
	count   int
}

func (w groupWeight) better(other groupWeight) bool {
	if w.removed != other.removed {
		return w.removed > other.removed
	}
	if w.chunk != other.chunk {
		return w.chunk > other.chunk
	}
	return w.count > other.count
}
