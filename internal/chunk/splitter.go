// Package chunk cuts long input into pieces each remote speller accepts.
package chunk

import "unicode/utf8"

// Split300 slices the string into ≤300-어절 chunks
// without decoding UTF-8 runes.  ZERO copies, 1 slice alloc.
func Split300(s string) []string {
	const max = 300

	// Capacity hint: assume “avg 5-bytes‐word + 1 space”.
	hint := len(s)/(max*6) + 1
	res := make([]string, 0, hint)

	start, words := 0, 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == ' ' || b == '\n' {
			words++
			if words == max {
				res = append(res, s[start:i])
				start, words = i+1, 0
			}
		}
	}
	// trailing slice (never empty because start ≤ len(s))
	res = append(res, s[start:])
	return res
}

// SplitRunes slices s into chunks of at most max runes, cutting after the
// last newline (or else the last space) that fits. A run without either is
// cut at max runes. Chunks share memory with s.
func SplitRunes(s string, max int) []string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return []string{s}
	}
	var res []string
	for len(s) > 0 {
		end, n := 0, 0
		lastNL, lastSP := -1, -1
		for end < len(s) && n < max {
			r, size := utf8.DecodeRuneInString(s[end:])
			end += size
			n++
			switch r {
			case '\n':
				lastNL = end
			case ' ':
				lastSP = end
			}
		}
		cut := end
		if end < len(s) {
			if lastNL > 0 {
				cut = lastNL
			} else if lastSP > 0 {
				cut = lastSP
			}
		}
		res = append(res, s[:cut])
		s = s[cut:]
	}
	return res
}
