package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dhamidi/gbnf/grammar"
)

// JSONInteger matches JSON integers within an inclusive range. Either bound
// may be open. Matched integers never carry leading zeros, a plus sign, or a
// negative zero.
type JSONInteger struct {
	min    int64
	max    int64
	hasMin bool
	hasMax bool
}

// NewJSONIntegerAny matches any JSON integer.
func NewJSONIntegerAny() *JSONInteger {
	return &JSONInteger{}
}

// NewJSONIntegerMin matches integers >= min.
func NewJSONIntegerMin(min int64) *JSONInteger {
	return &JSONInteger{min: min, hasMin: true}
}

// NewJSONIntegerMax matches integers <= max.
func NewJSONIntegerMax(max int64) *JSONInteger {
	return &JSONInteger{max: max, hasMax: true}
}

// NewJSONInteger matches integers in [min, max].
func NewJSONInteger(min, max int64) (*JSONInteger, error) {
	if min > max {
		return nil, fmt.Errorf("%w: integer range %d > %d", grammar.ErrInvalidParameter, min, max)
	}
	return &JSONInteger{min: min, max: max, hasMin: true, hasMax: true}, nil
}

func (c *JSONInteger) Grammar(ctx *grammar.Context) grammar.Expr {
	if (c.hasMin && c.min == math.MinInt64) || (c.hasMax && c.max == math.MinInt64) {
		ctx.Report(fmt.Errorf("%w: integer bound %d is out of range", grammar.ErrInvalidParameter, int64(math.MinInt64)))
		return nil
	}

	switch {
	case !c.hasMin && !c.hasMax:
		// Any integer: an optional sign on a non-zero number, or zero.
		return ctx.Alternation([]grammar.Expr{
			ctx.Sequence([]grammar.Expr{
				ctx.Sequence([]grammar.Expr{grammar.NewLiteral("-")}, grammar.Quantifier{Min: 0, Max: 1}),
				nonzeroDigit(ctx),
				anyDigits(ctx, 0),
			}, grammar.One),
			grammar.NewLiteral("0"),
		}, grammar.One)

	case !c.hasMax:
		switch {
		case c.min < 0:
			return ctx.Alternation([]grammar.Expr{
				ctx.Sequence([]grammar.Expr{grammar.NewLiteral("-"), unboundedAbove(ctx, -c.min)}, grammar.One),
				grammar.NewLiteral("0"),
				anyPositive(ctx),
			}, grammar.One)
		case c.min == 0:
			return ctx.Alternation([]grammar.Expr{
				grammar.NewLiteral("0"),
				anyPositive(ctx),
			}, grammar.One)
		case c.min == 1:
			return anyPositive(ctx)
		default:
			return unboundedAbove(ctx, c.min)
		}

	case !c.hasMin:
		switch {
		case c.max < 0:
			return ctx.Sequence([]grammar.Expr{grammar.NewLiteral("-"), unboundedAbove(ctx, -c.max)}, grammar.One)
		case c.max == 0:
			return ctx.Alternation([]grammar.Expr{
				anyNegative(ctx),
				grammar.NewLiteral("0"),
			}, grammar.One)
		default:
			return ctx.Alternation([]grammar.Expr{
				anyNegative(ctx),
				grammar.NewLiteral("0"),
				nonnegativeRange(ctx, 1, c.max),
			}, grammar.One)
		}
	}

	switch {
	case c.max < 0:
		return ctx.Sequence([]grammar.Expr{
			grammar.NewLiteral("-"),
			nonnegativeRange(ctx, -c.max, -c.min),
		}, grammar.One)
	case c.min < 0:
		subexprs := []grammar.Expr{
			ctx.Sequence([]grammar.Expr{
				grammar.NewLiteral("-"),
				nonnegativeRange(ctx, 1, -c.min),
			}, grammar.One),
			grammar.NewLiteral("0"),
		}
		if c.max > 0 {
			subexprs = append(subexprs, nonnegativeRange(ctx, 1, c.max))
		}
		return ctx.Alternation(subexprs, grammar.One)
	default:
		return nonnegativeRange(ctx, c.min, c.max)
	}
}

func nonzeroDigit(ctx *grammar.Context) grammar.Expr {
	return ctx.CharSet([]grammar.CharRange{{Lo: '1', Hi: '9'}}, false)
}

// anyDigits matches min or more decimal digits.
func anyDigits(ctx *grammar.Context, min int) grammar.Expr {
	return ctx.Sequence([]grammar.Expr{grammar.Digit()}, grammar.Quantifier{Min: min, Max: grammar.Unbounded})
}

// anyPositive matches [1, infinity).
func anyPositive(ctx *grammar.Context) grammar.Expr {
	return ctx.Sequence([]grammar.Expr{nonzeroDigit(ctx), anyDigits(ctx, 0)}, grammar.One)
}

// anyNegative matches (-infinity, -1].
func anyNegative(ctx *grammar.Context) grammar.Expr {
	return ctx.Sequence([]grammar.Expr{grammar.NewLiteral("-"), nonzeroDigit(ctx), anyDigits(ctx, 0)}, grammar.One)
}

// pow10 returns 10^n clamped to the int64 range.
func pow10(n int) int64 {
	if n >= 19 {
		return math.MaxInt64
	}
	out := int64(1)
	for i := 0; i < n; i++ {
		out *= 10
	}
	return out
}

// nonnegativeRange matches all integers in [min, max] without leading
// zeros, assuming 0 <= min <= max. The range is split into one branch per
// digit length; full blocks use the compact fixed-length form.
func nonnegativeRange(ctx *grammar.Context, min, max int64) grammar.Expr {
	if min == max {
		return grammar.NewLiteral(strconv.FormatInt(min, 10))
	}
	var subexprs []grammar.Expr
	if min <= 0 {
		subexprs = append(subexprs, grammar.NewLiteral("0"))
		min = 1
	}
	lenMin := len(strconv.FormatInt(min, 10))
	lenMax := len(strconv.FormatInt(max, 10))
	for length := lenMin; length <= lenMax; length++ {
		blockLo := int64(0)
		blockHi := int64(9)
		if length > 1 {
			blockLo = pow10(length - 1)
			blockHi = pow10(length) - 1
		}
		thisLo := blockLo
		if min > thisLo {
			thisLo = min
		}
		thisHi := blockHi
		if max < thisHi {
			thisHi = max
		}
		if thisLo > thisHi {
			continue
		}
		if thisLo == blockLo && thisHi == blockHi && length < 19 {
			subexprs = append(subexprs, fixedLengthDigits(ctx, length))
		} else {
			subexprs = append(subexprs, sameLengthRange(ctx, strconv.FormatInt(thisLo, 10), strconv.FormatInt(thisHi, 10)))
		}
	}
	reverseExprs(subexprs)
	if len(subexprs) == 1 {
		return subexprs[0]
	}
	return ctx.Alternation(subexprs, grammar.One)
}

// unboundedAbove matches all integers >= min, assuming min >= 1: the rest of
// min's digit-length block, plus every number with more digits.
func unboundedAbove(ctx *grammar.Context, min int64) grammar.Expr {
	smin := strconv.FormatInt(min, 10)
	lenMin := len(smin)
	blockHi := pow10(lenMin) - 1
	var subexprs []grammar.Expr
	if min <= blockHi {
		subexprs = append(subexprs, sameLengthRange(ctx, smin, strconv.FormatInt(blockHi, 10)))
	}
	subexprs = append(subexprs, ctx.Sequence([]grammar.Expr{
		nonzeroDigit(ctx),
		anyDigits(ctx, lenMin),
	}, grammar.One))
	reverseExprs(subexprs)
	if len(subexprs) == 1 {
		return subexprs[0]
	}
	return ctx.Alternation(subexprs, grammar.One)
}

// fixedLengthDigits matches exactly k digits with no leading zero; k of 1
// also matches "0".
func fixedLengthDigits(ctx *grammar.Context, k int) grammar.Expr {
	if k == 1 {
		return grammar.Digit()
	}
	if k == 2 {
		return ctx.Sequence([]grammar.Expr{nonzeroDigit(ctx), grammar.Digit()}, grammar.One)
	}
	return ctx.Sequence([]grammar.Expr{
		nonzeroDigit(ctx),
		ctx.Sequence([]grammar.Expr{grammar.Digit()}, grammar.Exactly(k-1)),
	}, grammar.One)
}

// sameLengthRange matches all integers between two equal-length decimal
// strings, splitting on the first digit: the low prefix up to all nines, a
// full middle block when the first digits differ by two or more, and zeros
// up to the high prefix.
func sameLengthRange(ctx *grammar.Context, lo, hi string) grammar.Expr {
	if lo == hi {
		return grammar.NewLiteral(lo)
	}
	if len(lo) == 1 {
		return ctx.CharSet([]grammar.CharRange{{Lo: rune(lo[0]), Hi: rune(hi[0])}}, false)
	}
	firstLo, firstHi := lo[0], hi[0]
	restLo, restHi := lo[1:], hi[1:]
	if firstLo == firstHi {
		return ctx.Sequence([]grammar.Expr{
			grammar.NewLiteral(string(firstLo)),
			sameLengthRange(ctx, restLo, restHi),
		}, grammar.One)
	}
	length := len(restLo)
	subexprs := []grammar.Expr{
		ctx.Sequence([]grammar.Expr{
			grammar.NewLiteral(string(firstLo)),
			sameLengthRange(ctx, restLo, strings.Repeat("9", length)),
		}, grammar.One),
	}
	if firstHi >= firstLo+2 {
		middle := ctx.CharSet([]grammar.CharRange{{Lo: rune(firstLo + 1), Hi: rune(firstHi - 1)}}, false)
		if length == 1 {
			subexprs = append(subexprs, ctx.Sequence([]grammar.Expr{middle, grammar.Digit()}, grammar.One))
		} else {
			subexprs = append(subexprs, ctx.Sequence([]grammar.Expr{
				middle,
				ctx.Sequence([]grammar.Expr{grammar.Digit()}, grammar.Exactly(length)),
			}, grammar.One))
		}
	}
	subexprs = append(subexprs, ctx.Sequence([]grammar.Expr{
		grammar.NewLiteral(string(firstHi)),
		sameLengthRange(ctx, strings.Repeat("0", length), restHi),
	}, grammar.One))
	reverseExprs(subexprs)
	return ctx.Alternation(subexprs, grammar.One)
}

func reverseExprs(subexprs []grammar.Expr) {
	for i, j := 0, len(subexprs)-1; i < j; i, j = i+1, j-1 {
		subexprs[i], subexprs[j] = subexprs[j], subexprs[i]
	}
}
