package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Rule is an immutable pattern/replacement pair. The pattern is compiled
// for global multi-match scanning (every non-overlapping match is
// replaced) with case-sensitive, single-line semantics. The replacement
// template is pre-parsed into segments so substitution never re-reads it.
type Rule struct {
	re       *regexp.Regexp
	segments []segment
	pattern  string
	replacer string
}

// Pattern returns the rule's original pattern source string.
func (r Rule) Pattern() string { return r.pattern }

// Replacer returns the rule's original replacement template string.
func (r Rule) Replacer() string { return r.replacer }

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.pattern, r.replacer)
}

// replaceAll rewrites every non-overlapping match of the rule's pattern in
// input. Zero-length matches advance past the match position, so a pattern
// that matches the empty string cannot loop. Unmatched optional groups
// substitute as the empty string.
func (r Rule) replaceAll(input string) string {
	matches := r.re.FindAllStringSubmatchIndex(input, -1)
	if matches == nil {
		return input
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(input[last:m[0]])
		for _, seg := range r.segments {
			if seg.group < 0 {
				b.WriteString(seg.literal)
				continue
			}
			lo, hi := m[2*seg.group], m[2*seg.group+1]
			if lo >= 0 {
				b.WriteString(input[lo:hi])
			}
		}
		last = m[1]
	}
	b.WriteString(input[last:])
	return b.String()
}
