package converter

import (
	"strings"

	"github.com/kaufmann-labs/htmd/dom"
)

// escapeHTML escapes the characters that would otherwise change the
// parse of a re-serialized HTML fragment. Attribute values additionally
// escape quotes, since they terminate the attribute-value literal text
// content does not.
func escapeHTML(text string, attribute bool) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			if attribute {
				b.WriteString("&quot;")
			} else {
				b.WriteByte('"')
			}
		case '\'':
			if attribute {
				b.WriteString("&#39;")
			} else {
				b.WriteByte('\'')
			}
		default:
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// serializeNode renders n back to literal HTML, used by the keep rule
// for elements the caller asked to pass through untouched.
func serializeNode(n dom.Node) string {
	var b strings.Builder
	serializeNodeInto(n, &b)
	return b.String()
}

func serializeNodeInto(n dom.Node, b *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Type() {
	case dom.TextNode, dom.WhitespaceNode, dom.CDataNode:
		b.WriteString(escapeHTML(n.Text(), false))
	case dom.CommentNode:
		// Serialization walks the raw tree, so comments inside a kept
		// element reach this case. The htmlnode adapter's Text() returns ""
		// for a comment node, so with that adapter a comment serializes as
		// an empty <!---->.
		b.WriteString("<!--")
		b.WriteString(n.Text())
		b.WriteString("-->")
	case dom.DocumentNode:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			serializeNodeInto(c, b)
		}
	case dom.ElementNode:
		tag := n.TagName()
		b.WriteByte('<')
		b.WriteString(tag)
		for _, attr := range n.Attributes() {
			b.WriteByte(' ')
			b.WriteString(attr.Name)
			b.WriteString(`="`)
			b.WriteString(escapeHTML(attr.Value, true))
			b.WriteByte('"')
		}
		b.WriteByte('>')
		if !isVoidNode(n) {
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				serializeNodeInto(c, b)
			}
			b.WriteString("</")
			b.WriteString(tag)
			b.WriteByte('>')
		}
	}
}
