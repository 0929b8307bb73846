// Package commonmark supplies the CommonMark rule set: paragraphs,
// headings, blockquotes, lists, code blocks, links, emphasis, strong,
// inline code, and images.
package commonmark

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kaufmann-labs/htmd/dom"
	"github.com/kaufmann-labs/htmd/internal/textutil"
)

func isTag(n dom.Node, tag string) bool {
	return n != nil && n.Type() == dom.ElementNode && n.TagName() == tag
}

func findChildElement(n dom.Node, tag string) dom.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if isTag(c, tag) {
			return c
		}
	}
	return nil
}

func hasElementSiblings(n dom.Node) bool {
	parent := n.Parent()
	if parent == nil || parent.Type() != dom.ElementNode {
		return false
	}
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Identity() == n.Identity() {
			continue
		}
		if c.Type() == dom.ElementNode {
			return true
		}
	}
	return false
}

// elementIndex returns n's zero-based index among its parent's element
// children, or -1 if n has no element parent.
func elementIndex(n dom.Node) int {
	parent := n.Parent()
	if parent == nil || parent.Type() != dom.ElementNode {
		return -1
	}
	index := -1
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() != dom.ElementNode {
			continue
		}
		index++
		if c.Identity() == n.Identity() {
			return index
		}
	}
	return -1
}

func isLastElementChild(parent, n dom.Node) bool {
	if parent == nil || parent.Type() != dom.ElementNode {
		return false
	}
	var last dom.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == dom.ElementNode {
			last = c
		}
	}
	return last != nil && last.Identity() == n.Identity()
}

func hasNextElementSibling(n dom.Node) bool {
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if s.Type() == dom.ElementNode {
			return true
		}
	}
	return false
}

var collapseAttrNewlines = regexp.MustCompile(`(\n+\s*)+`)

// cleanAttribute collapses runs of newlines (and the whitespace that
// follows them) in an attribute value down to a single newline, so a
// multi-line alt/title attribute doesn't break Markdown's single-line
// link/image syntax.
func cleanAttribute(attr string) string {
	if attr == "" {
		return ""
	}
	return collapseAttrNewlines.ReplaceAllString(attr, "\n")
}

func ltrimNewlines(s string) string {
	i := 0
	for i < len(s) && (s[i] == '\r' || s[i] == '\n') {
		i++
	}
	return s[i:]
}

func rtrimNewlines(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == '\r' || s[i-1] == '\n') {
		i--
	}
	return s[:i]
}

func trimNewlines(s string) string {
	return rtrimNewlines(ltrimNewlines(s))
}

func repeatByte(c byte, count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(string(c), count)
}

func attr(n dom.Node, name string) string {
	if n == nil {
		return ""
	}
	return n.Attribute(name)
}

func parseIntOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// trimForEmptyCheck reports whether content, once Unicode-whitespace
// trimmed, is empty - used by emphasis/strong to suppress wrapping
// blank content in delimiters.
func trimForEmptyCheck(content string) bool {
	return textutil.TrimUnicodeWhitespace(content) == ""
}
