package builder

import (
	"strings"

	"github.com/dhamidi/gbnf/grammar"
)

// JSONString matches a JSON string whose length (in characters, excluding
// the quotes) falls within N.
type JSONString struct {
	// N bounds the number of characters inside the quotes.
	N grammar.Quantifier
}

// NewJSONString matches a JSON string of any length.
func NewJSONString() *JSONString {
	return &JSONString{N: grammar.Quantifier{Min: 0, Max: grammar.Unbounded}}
}

// NewJSONStringN matches a JSON string of n characters.
func NewJSONStringN(n grammar.Quantifier) *JSONString {
	return &JSONString{N: n}
}

func (c *JSONString) Grammar(ctx *grammar.Context) grammar.Expr {
	return ctx.Sequence([]grammar.Expr{
		grammar.NewLiteral(`"`),
		ctx.Sequence([]grammar.Expr{escapedChar(ctx)}, c.N),
		grammar.NewLiteral(`"`),
	}, grammar.One)
}

// escapedChar matches one character of a JSON string body: anything except
// a quote, backslash, or control character, or a backslash escape (a named
// escape or a four-digit unicode escape).
func escapedChar(ctx *grammar.Context) grammar.Expr {
	safe := ctx.CharSet([]grammar.CharRange{
		{Lo: 0x00, Hi: 0x1F},
		{Lo: '"', Hi: '"'},
		{Lo: '\\', Hi: '\\'},
		{Lo: 0x7F, Hi: 0x7F},
	}, true)
	hexDigit := ctx.CharSet([]grammar.CharRange{
		{Lo: '0', Hi: '9'},
		{Lo: 'A', Hi: 'F'},
		{Lo: 'a', Hi: 'f'},
	}, false)
	escape := ctx.Sequence([]grammar.Expr{
		grammar.NewLiteral(`\`),
		ctx.Alternation([]grammar.Expr{
			ctx.CharSetFromString(`\/"bfnrt`, false),
			ctx.Sequence([]grammar.Expr{
				grammar.NewLiteral("u"),
				ctx.Sequence([]grammar.Expr{hexDigit}, grammar.Exactly(4)),
			}, grammar.One),
		}, grammar.One),
	}, grammar.One)
	return ctx.Alternation([]grammar.Expr{safe, escape}, grammar.One)
}

// JSONStringLiteral matches one specific JSON string value, in its canonical
// encoded form.
type JSONStringLiteral struct {
	Value string

	// EnsureASCII makes characters outside printable ASCII match their
	// unicode-escaped encoding rather than their literal bytes.
	EnsureASCII bool
}

func (c JSONStringLiteral) Grammar(ctx *grammar.Context) grammar.Expr {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range c.Value {
		b.WriteString(encodeJSONChar(r, c.EnsureASCII))
	}
	b.WriteByte('"')
	return grammar.NewLiteral(b.String())
}

// encodeJSONChar produces the JSON document encoding of one character:
// quote, backslash, and the named control characters use their two-byte
// escapes, other control characters use \u escapes, and characters beyond
// printable ASCII are either literal or unicode-escaped (with surrogate
// pairs above the basic plane) depending on ensureASCII.
func encodeJSONChar(r rune, ensureASCII bool) string {
	switch r {
	case '"':
		return `\"`
	case '\\':
		return `\\`
	case '\b':
		return `\b`
	case '\f':
		return `\f`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	if r < 0x20 || r == 0x7F {
		return unicodeEscape(r)
	}
	if r < 0x7F || !ensureASCII {
		return string(r)
	}
	if r < 0x10000 {
		return unicodeEscape(r)
	}
	// Surrogate pair
	n := r - 0x10000
	return unicodeEscape(0xD800|((n>>10)&0x3FF)) + unicodeEscape(0xDC00|(n&0x3FF))
}

const lowerHex = "0123456789abcdef"

func unicodeEscape(r rune) string {
	return string([]byte{
		'\\', 'u',
		lowerHex[(r>>12)&0xF],
		lowerHex[(r>>8)&0xF],
		lowerHex[(r>>4)&0xF],
		lowerHex[r&0xF],
	})
}
