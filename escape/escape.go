// Package escape implements the Markdown escape functions a
// converter.Options can plug in as its EscapeFunction.
package escape

import "strings"

// Func escapes Markdown-significant characters in text so it renders
// as literal text rather than being reinterpreted as Markdown syntax.
type Func func(string) string

// Advanced is the default escape function. It mirrors the handling a
// browser-faithful Markdown renderer needs: backslash and asterisk are
// always escaped, and a handful of line-leading sequences (-, + ,
// =, #, ~~~, >, digit+". ") are escaped only when they appear at the
// very start of the text, since that's the only position where they'd
// be reinterpreted as block syntax.
func Advanced(input string) string {
	out := input

	out = replaceChar(out, '\\', `\\`)
	out = replaceChar(out, '*', `\*`)

	if strings.HasPrefix(out, "-") {
		out = "\\" + out
	}
	if strings.HasPrefix(out, "+ ") {
		out = "\\" + out
	}
	if strings.HasPrefix(out, "=") {
		out = "\\" + out
	}
	if level := atxHeadingPrefixLen(out); level > 0 {
		out = "\\" + out
	}

	out = replaceChar(out, '`', "\\`")

	if strings.HasPrefix(out, "~~~") {
		out = "\\" + out
	}

	out = replaceChar(out, '[', `\[`)
	out = replaceChar(out, ']', `\]`)

	if strings.HasPrefix(out, ">") {
		out = "\\" + out
	}

	out = replaceChar(out, '_', `\_`)

	if idx := orderedListPrefixDot(out); idx >= 0 {
		out = out[:idx] + "\\" + out[idx:]
	}

	return out
}

// Minimal escapes only the characters that would otherwise be
// structurally ambiguous inside inline content: backslash and the
// bracket pair used by links and images.
func Minimal(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		switch r {
		case '\\', '[', ']':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func replaceChar(s string, needle byte, replacement string) string {
	if strings.IndexByte(s, needle) < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 8)
	for i := 0; i < len(s); i++ {
		if s[i] == needle {
			b.WriteString(replacement)
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// atxHeadingPrefixLen returns the length of a leading run of 1-6 '#'
// characters followed by a space, or 0 if text doesn't start with one.
func atxHeadingPrefixLen(text string) int {
	count := 0
	for count < len(text) && text[count] == '#' {
		count++
	}
	if count >= 1 && count <= 6 && len(text) > count && text[count] == ' ' {
		return count
	}
	return 0
}

// orderedListPrefixDot returns the byte index of the '.' in a leading
// "<digits>. " run, or -1 if text doesn't start with one.
func orderedListPrefixDot(text string) int {
	if text == "" || text[0] < '0' || text[0] > '9' {
		return -1
	}
	idx := 0
	for idx < len(text) && text[idx] >= '0' && text[idx] <= '9' {
		idx++
	}
	if idx+1 < len(text) && text[idx] == '.' && text[idx+1] == ' ' {
		return idx
	}
	return -1
}
