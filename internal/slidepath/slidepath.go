// Package slidepath decomposes a slide note's path text into the shape
// segment vocabulary consumed by the external geometry lookup. Each
// segment is at most three characters: start lane, one or two shape
// characters, end lane.
package slidepath

import "strings"

// shapes that may appear between two lane digits. V never appears in a
// segment; it is expanded into its two straight halves first.
const shapeChars = "pPqQ<>^vw-sSzZ"

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isShape(c byte) bool {
	return strings.IndexByte(shapeChars, c) >= 0
}

// Segments parses a slide string like "1-3>5V13" into ordered segments
// ("1-3", "3>5", "5-1", "1-3"). Bracketed durations are ignored; text not
// anchored on a lane digit yields nothing.
func Segments(note string) []string {
	base := strings.TrimSpace(stripBrackets(note))
	if base == "" || !isDigit(base[0]) {
		return nil
	}
	base = expandV(base)

	var segments []string
	for _, chain := range strings.Split(base, "*") {
		if chain == "" {
			continue
		}
		last := chain[0]
		rest := chain[1:]
		for rest != "" {
			shape, end, ok := matchSegment(rest)
			if !ok {
				break
			}
			segments = append(segments, string(last)+shape+string(end))
			last = end
			rest = rest[len(shape)+1:]
		}
	}
	return segments
}

func stripBrackets(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '[' {
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				// No terminator, keep the tail as-is.
				b.WriteString(s[i:])
				break
			}
			i += end
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// expandV rewrites aVbc as a-b*b-c: a bend through b is two straight
// slides, and the '*' keeps chain splitting intact.
func expandV(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if i+3 < len(s) && isDigit(s[i]) && s[i+1] == 'V' && isDigit(s[i+2]) && isDigit(s[i+3]) {
			b.WriteByte(s[i])
			b.WriteByte('-')
			b.WriteByte(s[i+2])
			b.WriteByte('*')
			b.WriteByte(s[i+2])
			b.WriteByte('-')
			b.WriteByte(s[i+3])
			i += 3
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// matchSegment finds the next shape run and end lane, preferring the
// two-character shapes (pp, qq) over their single-character prefixes.
func matchSegment(s string) (string, byte, bool) {
	if len(s) >= 3 && isShape(s[0]) && isShape(s[1]) && isDigit(s[2]) {
		return s[:2], s[2], true
	}
	if len(s) >= 2 && isShape(s[0]) && isDigit(s[1]) {
		return s[:1], s[1], true
	}
	return "", 0, false
}
