package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// CharRange is an inclusive range of codepoints.
type CharRange struct {
	Lo rune
	Hi rune
}

// CharSet matches one character from a set of inclusive codepoint ranges,
// or one character outside the set when negated. After construction the
// ranges are sorted by Lo and pairwise non-overlapping and non-adjacent.
type CharSet struct {
	ranges []CharRange
	negate bool
}

// NewCharSet creates a character set from the given ranges. Overlapping and
// adjacent input ranges are merged. At least one range is required, and
// every range must satisfy Lo <= Hi.
func NewCharSet(ranges []CharRange, negate bool) (*CharSet, error) {
	if len(ranges) == 0 {
		return nil, fmt.Errorf("%w: char ranges must not be empty", ErrInvalidParameter)
	}
	for _, r := range ranges {
		if r.Hi < r.Lo {
			return nil, fmt.Errorf("%w: range end %q must be >= start %q", ErrInvalidParameter, r.Hi, r.Lo)
		}
	}
	return &CharSet{ranges: mergeRanges(ranges), negate: negate}, nil
}

// CharSetFromString creates a character set containing every distinct
// character of chars. Duplicates are ignored; at least one character is
// required.
func CharSetFromString(chars string, negate bool) (*CharSet, error) {
	if len(chars) == 0 {
		return nil, fmt.Errorf("%w: no characters provided", ErrInvalidParameter)
	}
	return CharSetFromRunes([]rune(chars), negate)
}

// CharSetFromRunes creates a character set containing every distinct
// codepoint of runes. Duplicates are ignored; at least one codepoint is
// required.
func CharSetFromRunes(runes []rune, negate bool) (*CharSet, error) {
	if len(runes) == 0 {
		return nil, fmt.Errorf("%w: no codepoints provided", ErrInvalidParameter)
	}
	ranges := make([]CharRange, len(runes))
	for i, r := range runes {
		ranges[i] = CharRange{Lo: r, Hi: r}
	}
	return NewCharSet(ranges, negate)
}

// mergeRanges sorts by Lo and folds overlapping or adjacent ranges into one.
// The input is not modified.
func mergeRanges(ranges []CharRange) []CharRange {
	sorted := make([]CharRange, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Lo != sorted[j].Lo {
			return sorted[i].Lo < sorted[j].Lo
		}
		return sorted[i].Hi < sorted[j].Hi
	})
	merged := sorted[:1]
	for _, r := range sorted[1:] {
		last := &merged[len(merged)-1]
		if r.Lo <= last.Hi+1 {
			if r.Hi > last.Hi {
				last.Hi = r.Hi
			}
			continue
		}
		merged = append(merged, r)
	}
	return merged
}

// Ranges returns a copy of the merged ranges.
func (s *CharSet) Ranges() []CharRange {
	out := make([]CharRange, len(s.ranges))
	copy(out, s.ranges)
	return out
}

// Negated reports whether the set is negated.
func (s *CharSet) Negated() bool { return s.negate }

func (s *CharSet) render() (string, bool) {
	if len(s.ranges) == 0 {
		return "", false
	}
	var b strings.Builder
	b.WriteByte('[')
	if s.negate {
		b.WriteByte('^')
	}
	for _, r := range s.ranges {
		switch {
		case r.Lo == r.Hi:
			b.WriteString(escapeRange(r.Lo))
		case r.Hi == r.Lo+1:
			// Two adjacent codepoints are written out rather than spanned.
			b.WriteString(escapeRange(r.Lo))
			b.WriteString(escapeRange(r.Hi))
		default:
			b.WriteString(escapeRange(r.Lo))
			b.WriteByte('-')
			b.WriteString(escapeRange(r.Hi))
		}
	}
	b.WriteByte(']')
	return b.String(), true
}

// simplify degenerates a single-codepoint, non-negated set to a Literal;
// anything else is already canonical and copies.
func (s *CharSet) simplify() Expr {
	if len(s.ranges) == 0 {
		return nil
	}
	if !s.negate && len(s.ranges) == 1 && s.ranges[0].Lo == s.ranges[0].Hi {
		return NewLiteral(string(s.ranges[0].Lo))
	}
	return s.copy()
}

func (s *CharSet) copy() Expr {
	return &CharSet{ranges: s.Ranges(), negate: s.negate}
}

func (s *CharSet) equal(other *CharSet) bool {
	if s.negate != other.negate || len(s.ranges) != len(other.ranges) {
		return false
	}
	for i := range s.ranges {
		if s.ranges[i] != other.ranges[i] {
			return false
		}
	}
	return true
}
