package textutil

// IsAsciiWhitespace reports whether r is one of the ASCII whitespace
// code points (tab, LF, VT, FF, CR, space).
func IsAsciiWhitespace(r rune) bool {
	return r == 0x20 || (r >= 0x09 && r <= 0x0D)
}

// unicodeWhitespace is the fixed Unicode whitespace table the engine
// recognizes. It intentionally differs from unicode.IsSpace, which does
// not include U+180E MONGOLIAN VOWEL SEPARATOR, so results match the
// C++ reference implementation exactly.
var unicodeWhitespace = map[rune]struct{}{
	0x0085: {}, // NEXT LINE
	0x00A0: {}, // NO-BREAK SPACE
	0x1680: {}, // OGHAM SPACE MARK
	0x180E: {}, // MONGOLIAN VOWEL SEPARATOR
	0x2000: {}, 0x2001: {}, 0x2002: {}, 0x2003: {}, 0x2004: {},
	0x2005: {}, 0x2006: {}, 0x2007: {}, 0x2008: {}, 0x2009: {}, 0x200A: {},
	0x2028: {}, // LINE SEPARATOR
	0x2029: {}, // PARAGRAPH SEPARATOR
	0x202F: {}, // NARROW NO-BREAK SPACE
	0x205F: {}, // MEDIUM MATHEMATICAL SPACE
	0x3000: {}, // IDEOGRAPHIC SPACE
}

// IsUnicodeWhitespace reports whether r is whitespace per the engine's
// fixed classification table (ASCII whitespace plus NBSP and friends).
func IsUnicodeWhitespace(r rune) bool {
	if IsAsciiWhitespace(r) {
		return true
	}
	_, ok := unicodeWhitespace[r]
	return ok
}

// TrimUnicodeWhitespace trims IsUnicodeWhitespace runs from both ends
// of s, operating on decoded codepoints so multi-byte whitespace (NBSP)
// trims correctly.
func TrimUnicodeWhitespace(s string) string {
	if s == "" {
		return ""
	}
	cps := Decode(s)
	start := -1
	for i, cp := range cps {
		if !IsUnicodeWhitespace(cp.Rune) {
			start = i
			break
		}
	}
	if start == -1 {
		return ""
	}
	end := len(cps) - 1
	for end >= start {
		if !IsUnicodeWhitespace(cps[end].Rune) {
			break
		}
		end--
	}
	startByte := cps[start].Start
	endByte := cps[end].Start + cps[end].Len
	return s[startByte:endByte]
}
