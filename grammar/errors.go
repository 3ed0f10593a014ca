package grammar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by constructors. Wrap sites add detail with
// fmt.Errorf("...: %w", err) so callers can match with errors.Is.
var (
	// ErrInvalidParameter reports a null or empty required input: zero
	// character ranges, a range with end before start, a nil composite
	// child, an empty rule symbol, or a nil rule value.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidQuantifier reports a repetition bound that is out of range:
	// a negative minimum, a bounded maximum below one, or a bounded maximum
	// below the minimum.
	ErrInvalidQuantifier = errors.New("invalid quantifier")

	// ErrInvalidGrammar reports an internal consistency violation in a tree.
	ErrInvalidGrammar = errors.New("invalid grammar")
)

// errNilChild is the shared composite-constructor failure for a nil child.
var errNilChild = fmt.Errorf("%w: subexpression must not be nil", ErrInvalidParameter)

// ErrorCode categorizes errors for the Context reporting channel.
type ErrorCode int

const (
	CodeNone ErrorCode = iota
	CodeInvalidParameter
	CodeInvalidQuantifier
	CodeOutOfMemory
	CodeInvalidGrammar
	CodeUnknown
)

func (c ErrorCode) String() string {
	switch c {
	case CodeNone:
		return "none"
	case CodeInvalidParameter:
		return "invalid parameter"
	case CodeInvalidQuantifier:
		return "invalid quantifier"
	case CodeOutOfMemory:
		return "out of memory"
	case CodeInvalidGrammar:
		return "invalid grammar"
	default:
		return "unknown"
	}
}

// codeOf maps an error to its taxonomy code.
func codeOf(err error) ErrorCode {
	switch {
	case err == nil:
		return CodeNone
	case errors.Is(err, ErrInvalidParameter):
		return CodeInvalidParameter
	case errors.Is(err, ErrInvalidQuantifier):
		return CodeInvalidQuantifier
	case errors.Is(err, ErrInvalidGrammar):
		return CodeInvalidGrammar
	default:
		return CodeUnknown
	}
}
