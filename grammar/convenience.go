package grammar

// Shorthand constructors for common grammar fragments. All of them panic
// only on programmer error (they pass fixed, known-valid arguments to the
// checked constructors); fragments built from caller input still go through
// NewCharSet and friends.

// Digit matches a single decimal digit, [0-9].
func Digit() *CharSet {
	set, _ := NewCharSet([]CharRange{{Lo: '0', Hi: '9'}}, false)
	return set
}

// Alpha matches a single ASCII letter, [A-Za-z].
func Alpha() *CharSet {
	set, _ := NewCharSet([]CharRange{{Lo: 'a', Hi: 'z'}, {Lo: 'A', Hi: 'Z'}}, false)
	return set
}

// Alnum matches a single ASCII letter or digit, [0-9A-Za-z].
func Alnum() *CharSet {
	set, _ := NewCharSet([]CharRange{
		{Lo: '0', Hi: '9'},
		{Lo: 'a', Hi: 'z'},
		{Lo: 'A', Hi: 'Z'},
	}, false)
	return set
}

// Whitespace matches a single blank character, [ \t\n\r].
func Whitespace() *CharSet {
	set, _ := CharSetFromString(" \t\n\r", false)
	return set
}

// Optional wraps e so it matches zero or one time.
func Optional(e Expr) (*Sequence, error) {
	return NewSequence([]Expr{Copy(e)}, Quantifier{Min: 0, Max: 1})
}

// ZeroOrMore wraps e so it matches any number of times.
func ZeroOrMore(e Expr) (*Sequence, error) {
	return NewSequence([]Expr{Copy(e)}, Quantifier{Min: 0, Max: Unbounded})
}

// OneOrMore wraps e so it matches at least once.
func OneOrMore(e Expr) (*Sequence, error) {
	return NewSequence([]Expr{Copy(e)}, Quantifier{Min: 1, Max: Unbounded})
}

// Repeat wraps e so it matches exactly n times.
func Repeat(e Expr, n int) (*Sequence, error) {
	return NewSequence([]Expr{Copy(e)}, Exactly(n))
}

// Seq concatenates the given expressions.
func Seq(subexprs ...Expr) (*Sequence, error) {
	return NewSequence(subexprs, One)
}

// Choice matches exactly one of the given expressions.
func Choice(subexprs ...Expr) (*Alternation, error) {
	return NewAlternation(subexprs, One)
}
