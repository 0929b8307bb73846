// Package textutil provides the UTF-8 and Unicode-whitespace helpers
// the flanking-whitespace analyzer needs. Decoding degrades malformed
// bytes to single-byte code points instead of failing, matching the
// engine's single failure mode being parse failure, not text failure.
package textutil

import "unicode/utf8"

// Codepoint is one decoded rune together with its byte span in the
// original string.
type Codepoint struct {
	Rune  rune
	Start int
	Len   int
}

// Decode splits s into codepoints in byte order. A malformed UTF-8
// sequence yields one Codepoint of length 1 whose Rune is
// utf8.RuneError (the raw byte stays reachable through Start/Len),
// after which decoding resumes on the following byte — this is
// DecodeRuneInString's existing RuneError/width-1 behavior, so no
// special-casing is needed here.
func Decode(s string) []Codepoint {
	out := make([]Codepoint, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		out = append(out, Codepoint{Rune: r, Start: i, Len: size})
		i += size
	}
	return out
}
