package grammar

import (
	"fmt"
	"strings"
)

// GBNF escaping rules, shared by the literal and character-set renderers.
//
// Always-safe characters render verbatim in both contexts. Newline, carriage
// return, and tab have named escapes valid in both contexts. Quote and
// backslash are escaped only inside string literals; caret, hyphen, and the
// brackets only inside character ranges. Everything else renders as a
// numeric escape sized to the codepoint.

const punctuationChars = "!#$%&'()*+,-./:;<=>?@[]^_`{|}~"

func isAlwaysSafe(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r == ' ':
		return true
	case r < 128 && strings.ContainsRune(punctuationChars, r):
		return true
	}
	return false
}

// namedEscape returns the \n, \r, or \t token for the three control
// characters that have one.
func namedEscape(r rune) (string, bool) {
	switch r {
	case '\n':
		return `\n`, true
	case '\r':
		return `\r`, true
	case '\t':
		return `\t`, true
	}
	return "", false
}

func isLiteralEscape(r rune) bool {
	return r == '"' || r == '\\'
}

func isRangeEscape(r rune) bool {
	switch r {
	case '^', '-', '[', ']', '\\':
		return true
	}
	return false
}

// numericEscape renders a codepoint escape chosen by magnitude: \xHH for a
// single byte, \uXXXX up to the BMP, \UXXXXXXXX beyond.
func numericEscape(r rune) string {
	switch {
	case r < 0x100:
		return fmt.Sprintf(`\x%02X`, r)
	case r < 0x10000:
		return fmt.Sprintf(`\u%04X`, r)
	default:
		return fmt.Sprintf(`\U%08X`, r)
	}
}

// escapeLiteral escapes one character for a double-quoted string literal.
func escapeLiteral(r rune) string {
	if isAlwaysSafe(r) {
		return string(r)
	}
	if esc, ok := namedEscape(r); ok {
		return esc
	}
	if isLiteralEscape(r) {
		return `\` + string(r)
	}
	return numericEscape(r)
}

// escapeRange escapes one character for a bracketed character class. The
// range metacharacters are all in the always-safe set, so they are checked
// first.
func escapeRange(r rune) string {
	if isRangeEscape(r) {
		return `\` + string(r)
	}
	if isAlwaysSafe(r) {
		return string(r)
	}
	if esc, ok := namedEscape(r); ok {
		return esc
	}
	return numericEscape(r)
}
