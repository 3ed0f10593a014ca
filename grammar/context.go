package grammar

import (
	"github.com/tliron/commonlog"
)

// ErrorHandler receives categorized construction failures reported through
// a Context.
type ErrorHandler func(code ErrorCode, message string)

// NoticeHandler receives informational messages reported through a Context.
type NoticeHandler func(message string)

// Context collects errors and notices from grammar construction. The nil
// Context is valid and discards everything, so callers that do not care
// about diagnostics can pass nil to the handle-style constructors.
//
// Context tracks the last reported error; it is not safe for concurrent
// reporting.
type Context struct {
	errorHandler  ErrorHandler
	noticeHandler NoticeHandler
	lastErr       error
}

// NewContext creates a reporting context. Either handler may be nil.
func NewContext(onError ErrorHandler, onNotice NoticeHandler) *Context {
	return &Context{errorHandler: onError, noticeHandler: onNotice}
}

// NewLoggingContext creates a context that forwards errors and notices to
// the package logger.
func NewLoggingContext() *Context {
	log := commonlog.GetLogger("gbnf.grammar")
	return &Context{
		errorHandler: func(code ErrorCode, message string) {
			log.Error(message, "code", code.String())
		},
		noticeHandler: func(message string) {
			log.Notice(message)
		},
	}
}

// SetErrorHandler replaces the error handler. A nil handler discards errors.
func (c *Context) SetErrorHandler(onError ErrorHandler) {
	if c == nil {
		return
	}
	c.errorHandler = onError
}

// SetNoticeHandler replaces the notice handler. A nil handler discards
// notices.
func (c *Context) SetNoticeHandler(onNotice NoticeHandler) {
	if c == nil {
		return
	}
	c.noticeHandler = onNotice
}

// Valid reports whether no error has been recorded since the last clear.
func (c *Context) Valid() bool {
	return c == nil || c.lastErr == nil
}

// LastError returns the most recently reported error, or nil.
func (c *Context) LastError() error {
	if c == nil {
		return nil
	}
	return c.lastErr
}

// ClearError resets the recorded error state.
func (c *Context) ClearError() {
	if c == nil {
		return
	}
	c.lastErr = nil
}

// Report records err and forwards it to the error handler. Reporting nil is
// a no-op.
func (c *Context) Report(err error) {
	if c == nil || err == nil {
		return
	}
	c.lastErr = err
	if c.errorHandler != nil {
		c.errorHandler(codeOf(err), err.Error())
	}
}

// Notice forwards an informational message to the notice handler.
func (c *Context) Notice(message string) {
	if c == nil || c.noticeHandler == nil {
		return
	}
	c.noticeHandler(message)
}

// The handle-style constructors below mirror the error-returning ones but
// report failures through the context and return nil instead. They suit
// fluent tree building where a single Valid check at the end suffices.

// CharSet builds a character set, reporting failure to the context.
func (c *Context) CharSet(ranges []CharRange, negate bool) *CharSet {
	set, err := NewCharSet(ranges, negate)
	if err != nil {
		c.Report(err)
		return nil
	}
	return set
}

// CharSetFromString builds a character set from individual characters,
// reporting failure to the context.
func (c *Context) CharSetFromString(chars string, negate bool) *CharSet {
	set, err := CharSetFromString(chars, negate)
	if err != nil {
		c.Report(err)
		return nil
	}
	return set
}

// Literal builds a literal. Literal construction cannot fail; the method
// exists for symmetry with the other node kinds.
func (c *Context) Literal(value string) *Literal {
	return NewLiteral(value)
}

// Sequence builds a concatenation, reporting failure to the context.
func (c *Context) Sequence(subexprs []Expr, quantifier Quantifier) *Sequence {
	seq, err := NewSequence(subexprs, quantifier)
	if err != nil {
		c.Report(err)
		return nil
	}
	return seq
}

// Alternation builds a disjunction, reporting failure to the context.
func (c *Context) Alternation(subexprs []Expr, quantifier Quantifier) *Alternation {
	alt, err := NewAlternation(subexprs, quantifier)
	if err != nil {
		c.Report(err)
		return nil
	}
	return alt
}

// Rule builds a named production, reporting failure to the context.
func (c *Context) Rule(symbol string, value Expr) *Rule {
	rule, err := NewRule(symbol, value)
	if err != nil {
		c.Report(err)
		return nil
	}
	return rule
}
