// Package builder constructs GBNF grammars that constrain generated text to
// JSON documents of a given shape.
//
// A Component describes one JSON value form (a literal, a bounded integer, a
// string, an array, an object) and knows how to produce its grammar
// expression. JSONBuilder assembles components, or plain Go values coerced
// into components, into a complete set of named rules including the
// whitespace productions that control formatting.
package builder

import (
	"fmt"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/gbnf/grammar"
)

// Component is one JSON value form that can produce a grammar expression.
// Construction failures are reported through ctx; implementations return nil
// on failure.
type Component interface {
	Grammar(ctx *grammar.Context) grammar.Expr
}

// wsComponent is implemented by container components that separate their
// contents with whitespace productions.
type wsComponent interface {
	Component
	whitespace() (itemWS, keyWS grammar.Expr)
	setWhitespace(itemWS, keyWS grammar.Expr)
}

// JSONOptions controls the whitespace flexibility of built JSON grammars.
type JSONOptions struct {
	// Indent is the number of space characters per indentation level.
	Indent int

	// MaxLevel caps the supported indentation depth. Negative means
	// unlimited.
	MaxLevel int

	// AllowMultiline permits newline-separated, indented layouts.
	AllowMultiline bool

	// AllowCompact permits omitting whitespace entirely.
	AllowCompact bool

	// Compact drops the whitespace productions altogether; the grammar then
	// matches only the most condensed encoding.
	Compact bool

	// SpaceChars are the accepted horizontal whitespace tokens.
	SpaceChars []string

	// NewlineChars are the accepted line break tokens.
	NewlineChars []string
}

// DefaultJSONOptions returns the options used when none are given: two-space
// indentation up to three levels, with multiline and compact layouts both
// allowed.
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{
		Indent:         2,
		MaxLevel:       3,
		AllowMultiline: true,
		AllowCompact:   true,
		SpaceChars:     []string{" ", "\t"},
		NewlineChars:   []string{"\n"},
	}
}

// JSONBuilder builds the rule set for a JSON value or component.
type JSONBuilder struct {
	opts    JSONOptions
	space   grammar.Expr
	newline grammar.Expr
	log     commonlog.Logger
}

// NewJSONBuilder creates a builder with the given options.
func NewJSONBuilder(opts JSONOptions) (*JSONBuilder, error) {
	if opts.Indent < 1 {
		return nil, fmt.Errorf("%w: indent must be positive: %d", grammar.ErrInvalidParameter, opts.Indent)
	}
	space, err := tokenAlternatives(opts.SpaceChars)
	if err != nil {
		return nil, fmt.Errorf("space chars: %w", err)
	}
	newline, err := tokenAlternatives(opts.NewlineChars)
	if err != nil {
		return nil, fmt.Errorf("newline chars: %w", err)
	}
	return &JSONBuilder{
		opts:    opts,
		space:   space,
		newline: newline,
		log:     commonlog.GetLogger("gbnf.builder"),
	}, nil
}

// tokenAlternatives turns a token list into a literal or a choice of
// literals.
func tokenAlternatives(tokens []string) (grammar.Expr, error) {
	if len(tokens) < 1 {
		return nil, fmt.Errorf("%w: no tokens provided", grammar.ErrInvalidParameter)
	}
	if len(tokens) == 1 {
		return grammar.NewLiteral(tokens[0]), nil
	}
	subexprs := make([]grammar.Expr, len(tokens))
	for i, token := range tokens {
		subexprs[i] = grammar.NewLiteral(token)
	}
	return grammar.NewAlternation(subexprs, grammar.One)
}

// Build produces the named rules for value. In the default mode the result
// is the item-ws and key-ws whitespace productions followed by the root
// production; in compact mode only the root production is produced. The
// container rules reference the whitespace productions by symbol.
//
// value may be a Component, a grammar expression, or a plain Go value (nil,
// bool, integer, integral float, json.Number, string, []any, or
// map[string]any).
func (b *JSONBuilder) Build(value any) ([]*grammar.Rule, error) {
	ctx := grammar.NewContext(func(code grammar.ErrorCode, message string) {
		b.log.Error(message, "code", code.String())
	}, func(message string) {
		b.log.Notice(message)
	})

	var rules []*grammar.Rule
	var itemWS, keyWS grammar.Expr
	if !b.opts.Compact {
		itemWSRule := ctx.Rule("item-ws", b.itemWSGrammar(ctx))
		keyWSRule := ctx.Rule("key-ws", b.keyWSGrammar(ctx))
		if !ctx.Valid() {
			return nil, ctx.LastError()
		}
		rules = append(rules, itemWSRule, keyWSRule)
		itemWS, keyWS = itemWSRule, keyWSRule
	}

	root, err := b.buildGrammar(ctx, value, itemWS, keyWS)
	if err != nil {
		return nil, err
	}
	rules = append(rules, ctx.Rule("root", root))
	if !ctx.Valid() {
		return nil, ctx.LastError()
	}
	return rules, nil
}

// Render builds the rules for value, simplifies them, and renders one
// production per line. Rules that simplify to nothing are skipped.
func (b *JSONBuilder) Render(value any) (string, error) {
	rules, err := b.Build(value)
	if err != nil {
		return "", err
	}
	var out strings.Builder
	for _, rule := range rules {
		simplified, ok := grammar.Simplify(rule).(*grammar.Rule)
		if !ok {
			continue
		}
		if rendered, ok := grammar.RenderProduction(simplified); ok {
			out.WriteString(rendered)
			out.WriteByte('\n')
		}
	}
	return out.String(), nil
}

// itemWSGrammar is the whitespace allowed around array items and object
// members: optionally compact, a run of spaces, or a newline followed by up
// to MaxLevel indents.
func (b *JSONBuilder) itemWSGrammar(ctx *grammar.Context) grammar.Expr {
	quantifier := grammar.One
	if b.opts.AllowCompact {
		quantifier = grammar.Quantifier{Min: 0, Max: 1}
	}

	if !b.opts.AllowMultiline || b.opts.MaxLevel == 0 {
		if quantifier.IsOne() {
			return grammar.Copy(b.space)
		}
		return ctx.Sequence([]grammar.Expr{grammar.Copy(b.space)}, quantifier)
	}

	indentRun := grammar.Quantifier{Min: 0, Max: grammar.Unbounded}
	if b.opts.MaxLevel > 0 {
		indentRun.Max = b.opts.Indent * b.opts.MaxLevel
	}
	var indentWS grammar.Expr
	if b.opts.Indent < 2 {
		indentWS = grammar.Copy(b.space)
	} else {
		indentWS = ctx.Sequence([]grammar.Expr{grammar.Copy(b.space)}, indentRun)
	}
	multilineWS := ctx.Sequence([]grammar.Expr{
		grammar.Copy(b.newline),
		ctx.Sequence([]grammar.Expr{grammar.Copy(b.space)}, indentRun),
	}, grammar.One)
	return ctx.Alternation([]grammar.Expr{multilineWS, indentWS}, quantifier)
}

// keyWSGrammar is the whitespace between an object key's colon and its
// value: one space, optional when compact layouts are allowed.
func (b *JSONBuilder) keyWSGrammar(ctx *grammar.Context) grammar.Expr {
	if b.opts.AllowCompact {
		return ctx.Sequence([]grammar.Expr{grammar.NewLiteral(" ")}, grammar.Quantifier{Min: 0, Max: 1})
	}
	return grammar.NewLiteral(" ")
}

// buildGrammar produces the grammar for value, threading the whitespace
// references into container components.
func (b *JSONBuilder) buildGrammar(ctx *grammar.Context, value any, itemWS, keyWS grammar.Expr) (grammar.Expr, error) {
	if e, ok := value.(grammar.Expr); ok {
		return grammar.Copy(e), nil
	}
	if c, ok := value.(wsComponent); ok {
		haveItem, haveKey := c.whitespace()
		if !grammar.Equal(haveItem, itemWS) || !grammar.Equal(haveKey, keyWS) {
			b.log.Warning("replacing component whitespace references")
			c.setWhitespace(itemWS, keyWS)
		}
		return c.Grammar(ctx), nil
	}
	if c, ok := value.(Component); ok {
		return c.Grammar(ctx), nil
	}
	c, err := coerce(value, itemWS, keyWS)
	if err != nil {
		return nil, err
	}
	return c.Grammar(ctx), nil
}
