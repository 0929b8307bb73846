package converter

import "github.com/kaufmann-labs/htmd/dom"

var blockTags = tagSet(
	"address", "article", "aside", "audio", "blockquote", "body", "canvas",
	"center", "dd", "dir", "div", "dl", "dt", "fieldset", "figcaption",
	"figure", "footer", "form", "frameset", "h1", "h2", "h3", "h4", "h5",
	"h6", "header", "hgroup", "hr", "html", "isindex", "li", "main", "menu",
	"nav", "noframes", "noscript", "ol", "output", "p", "pre", "section",
	"table", "tbody", "td", "tfoot", "th", "thead", "tr", "ul",
)

var voidTags = tagSet(
	"area", "base", "br", "col", "command", "embed", "hr",
	"img", "input", "keygen", "link", "meta", "param",
	"source", "track", "wbr",
)

var meaningfulWhenBlankTags = tagSet(
	"a", "table", "thead", "tbody", "tfoot", "th", "td",
	"iframe", "script", "audio", "video",
)

func tagSet(tags ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		m[t] = struct{}{}
	}
	return m
}

func hasTagIn(n dom.Node, set map[string]struct{}) bool {
	if n == nil || n.Type() != dom.ElementNode {
		return false
	}
	_, ok := set[n.TagName()]
	return ok
}

func hasDescendantWithTag(n dom.Node, set map[string]struct{}) bool {
	if n == nil || n.Type() != dom.ElementNode {
		return false
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if hasTagIn(c, set) || hasDescendantWithTag(c, set) {
			return true
		}
	}
	return false
}

// isBlock reports whether n is a block-level element.
func isBlock(n dom.Node) bool { return hasTagIn(n, blockTags) }

// isVoidNode reports whether n is a void (self-closing) element.
func isVoidNode(n dom.Node) bool { return hasTagIn(n, voidTags) }

// isCodeAncestor reports whether n, or any ancestor of n, is a <code>
// element.
func isCodeAncestor(n dom.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Type() == dom.ElementNode && cur.TagName() == "code" {
			return true
		}
	}
	return false
}

// isMeaningfulWhenBlank reports whether n is meaningful even when its
// text content is empty or whitespace-only.
func isMeaningfulWhenBlank(n dom.Node) bool { return hasTagIn(n, meaningfulWhenBlankTags) }

// hasMeaningfulWhenBlankDescendant reports whether any descendant of n
// is meaningful-when-blank.
func hasMeaningfulWhenBlankDescendant(n dom.Node) bool {
	return hasDescendantWithTag(n, meaningfulWhenBlankTags)
}

// hasVoidDescendant reports whether any descendant of n is a void
// element.
func hasVoidDescendant(n dom.Node) bool { return hasDescendantWithTag(n, voidTags) }
