package grammar

import (
	"errors"
	"fmt"
	"testing"
)

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: CodeNone},
		{name: "invalid parameter", err: ErrInvalidParameter, want: CodeInvalidParameter},
		{name: "invalid quantifier", err: ErrInvalidQuantifier, want: CodeInvalidQuantifier},
		{name: "invalid grammar", err: ErrInvalidGrammar, want: CodeInvalidGrammar},
		{name: "wrapped", err: fmt.Errorf("context: %w", ErrInvalidQuantifier), want: CodeInvalidQuantifier},
		{name: "unrelated", err: errors.New("boom"), want: CodeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := codeOf(tt.err); got != tt.want {
				t.Errorf("codeOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorCode_String(t *testing.T) {
	if got := CodeInvalidQuantifier.String(); got != "invalid quantifier" {
		t.Errorf("String() = %q, want %q", got, "invalid quantifier")
	}
	if got := ErrorCode(99).String(); got != "unknown" {
		t.Errorf("String() = %q, want %q", got, "unknown")
	}
}
