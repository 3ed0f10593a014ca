package grammar

import (
	"fmt"
	"strconv"
)

// Unbounded is the sentinel Max value for a quantifier with no upper bound.
const Unbounded = -1

// Quantifier is a repetition descriptor attached to Sequence and Alternation
// nodes: the expression must match between Min and Max times. Max is either
// Unbounded or at least 1. The identity quantifier (1,1) means "exactly
// once" and never renders a suffix.
type Quantifier struct {
	Min int
	Max int
}

// One is the identity quantifier.
var One = Quantifier{Min: 1, Max: 1}

// Exactly returns the quantifier matching exactly n repetitions.
func Exactly(n int) Quantifier { return Quantifier{Min: n, Max: n} }

// AtLeast returns the quantifier matching n or more repetitions.
func AtLeast(n int) Quantifier { return Quantifier{Min: n, Max: Unbounded} }

// Between returns the quantifier matching between min and max repetitions.
func Between(min, max int) Quantifier { return Quantifier{Min: min, Max: max} }

func (q Quantifier) validate() error {
	if q.Min < 0 {
		return fmt.Errorf("%w: lower bound must be non-negative: %v", ErrInvalidQuantifier, q)
	}
	if q.Max != Unbounded {
		if q.Max < 1 {
			return fmt.Errorf("%w: upper bound must be positive or Unbounded: %v", ErrInvalidQuantifier, q)
		}
		if q.Min > q.Max {
			return fmt.Errorf("%w: lower bound must be <= upper bound: %v", ErrInvalidQuantifier, q)
		}
	}
	return nil
}

// IsOne reports whether q is the identity quantifier.
func (q Quantifier) IsOne() bool { return q == One }

// IsOptional reports whether q is (0,1).
func (q Quantifier) IsOptional() bool { return q.Min == 0 && q.Max == 1 }

func (q Quantifier) String() string {
	if q.Max == Unbounded {
		return fmt.Sprintf("(%d, unbounded)", q.Min)
	}
	return fmt.Sprintf("(%d, %d)", q.Min, q.Max)
}

// suffix renders the GBNF repetition suffix. The identity quantifier has no
// suffix; the boolean result is false in that case.
func (q Quantifier) suffix() (string, bool) {
	if q.Min == 1 && q.Max == 1 {
		return "", false
	}
	if q.Min == 0 {
		if q.Max == Unbounded {
			return "*", true
		}
		if q.Max == 1 {
			return "?", true
		}
	}
	if q.Max == Unbounded {
		if q.Min == 1 {
			return "+", true
		}
		return "{" + strconv.Itoa(q.Min) + ",}", true
	}
	if q.Min == q.Max {
		return "{" + strconv.Itoa(q.Min) + "}", true
	}
	return "{" + strconv.Itoa(q.Min) + "," + strconv.Itoa(q.Max) + "}", true
}
