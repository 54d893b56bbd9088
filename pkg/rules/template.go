package rules

import "strings"

// segment is one piece of a parsed replacement template: either a literal
// run of text or a backreference to a captured group. Group 0 is the whole
// match.
type segment struct {
	literal string
	group   int // -1 for literal segments
}

// parseTemplate splits a replacement template into literal and backreference
// segments using the dollar-sign dialect the stored rules are written in:
// $1..$99 for captured groups, $& for the whole match, $$ for a literal
// dollar sign. A dollar sign followed by anything else passes through
// literally.
//
// groupCount bounds which numeric references are recognized. A two-digit
// reference like $12 refers to group 12 only when the pattern actually has
// that many groups; otherwise it reads as group 1 followed by a literal "2".
// A reference beyond groupCount is not a backreference at all and stays
// literal.
func parseTemplate(template string, groupCount int) []segment {
	var segs []segment
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			segs = append(segs, segment{literal: lit.String(), group: -1})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			lit.WriteByte(c)
			i++
			continue
		}

		switch next := template[i+1]; {
		case next == '$':
			lit.WriteByte('$')
			i += 2
		case next == '&':
			flush()
			segs = append(segs, segment{group: 0})
			i += 2
		case next >= '1' && next <= '9':
			n := int(next - '0')
			width := 2
			if i+2 < len(template) && template[i+2] >= '0' && template[i+2] <= '9' {
				if two := n*10 + int(template[i+2]-'0'); two <= groupCount {
					n = two
					width = 3
				}
			}
			if n > groupCount {
				lit.WriteByte('$')
				i++
				continue
			}
			flush()
			segs = append(segs, segment{group: n})
			i += width
		default:
			lit.WriteByte('$')
			i++
		}
	}

	flush()
	return segs
}
