package converter

import (
	"strings"

	"github.com/kaufmann-labs/htmd/dom"
	"github.com/kaufmann-labs/htmd/internal/textutil"
)

// trimLeadingNewlines drops a leading run of \n and \r bytes.
func trimLeadingNewlines(s string) string {
	i := 0
	for i < len(s) && (s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return s[i:]
}

// trimTrailingNewlines drops a trailing run of \n and \r bytes.
func trimTrailingNewlines(s string) string {
	i := len(s)
	for i > 0 && (s[i-1] == '\n' || s[i-1] == '\r') {
		i--
	}
	return s[:i]
}

// joinChunks concatenates two Markdown chunks, collapsing whatever
// newlines bordered the join down to at most two - enough to render as
// a blank line between blocks, never more.
func joinChunks(output, addition string) string {
	if output == "" {
		return addition
	}
	if addition == "" {
		return output
	}

	left := trimTrailingNewlines(output)
	right := trimLeadingNewlines(addition)

	leftRemoved := len(output) - len(left)
	rightRemoved := len(addition) - len(right)
	separatorLength := leftRemoved
	if rightRemoved > separatorLength {
		separatorLength = rightRemoved
	}
	if separatorLength > 2 {
		separatorLength = 2
	}

	return left + strings.Repeat("\n", separatorLength) + right
}

// trimTrailingWhitespace drops trailing space/tab/CR/LF, mirroring the
// final output trim - unlike textutil.TrimUnicodeWhitespace it only
// trims the end and only ASCII whitespace, so leading spaces that begin
// an indented code block survive.
func trimTrailingWhitespace(s string) string {
	end := len(s)
	for end > 0 {
		switch s[end-1] {
		case ' ', '\t', '\n', '\r':
			end--
		default:
			return s[:end]
		}
	}
	return s[:end]
}

// reducer walks a dom.Node tree and reduces it to a Markdown string
// using a RuleSet, a collapsedWhitespace side table, and the governing
// Options. It holds no state across conversions; a fresh reducer is
// built for every Convert* call.
type reducer struct {
	opts *Options
	rs   *RuleSet
	cw   collapsedWhitespace
}

func (red *reducer) processNode(n dom.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case dom.TextNode, dom.WhitespaceNode, dom.CDataNode:
		return red.processTextNode(n)
	case dom.ElementNode:
		return red.replacementForNode(n)
	case dom.DocumentNode:
		return red.processChildren(n)
	default:
		return ""
	}
}

func (red *reducer) processTextNode(n dom.Node) string {
	text := collectText(n, red.cw)
	if text == "" {
		return ""
	}
	if isCodeAncestor(n) {
		return text
	}
	return red.opts.EscapeFunction(text)
}

func (red *reducer) processChildren(parent dom.Node) string {
	if parent == nil {
		return ""
	}
	output := ""
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		output = joinChunks(output, red.processNode(c))
	}
	return output
}

func (red *reducer) replacementForNode(n dom.Node) string {
	for _, tag := range red.opts.KeepTags {
		if n.TagName() == lowerASCII(tag) {
			kept := red.processChildren(n)
			return red.opts.KeepReplacement(kept, n)
		}
	}

	content := red.processChildren(n)
	flanking := computeFlankingWhitespace(n, red.opts.PreformattedCode, red.cw)
	if flanking.Leading != "" || flanking.Trailing != "" {
		content = textutil.TrimUnicodeWhitespace(content)
	}

	rule := red.rs.ForNode(n, red.cw)
	converted := rule.Replacement(content, n, red.opts)
	return flanking.Leading + converted + flanking.Trailing
}

// Reduce runs the full conversion pipeline over root: collapse
// whitespace, reduce the tree to Markdown, collect each rule's Append
// trailer, and trim the edges of the final document.
func Reduce(root dom.Node, opts *Options, rs *RuleSet) string {
	if root == nil {
		return ""
	}

	cw := collapseWhitespace(root, opts.PreformattedCode)
	red := &reducer{opts: opts, rs: rs, cw: cw}

	markdown := red.processChildren(root)
	markdown = encodeNbsp(markdown)

	rs.ForEach(func(r Rule) {
		if r.Append != nil {
			markdown = joinChunks(markdown, r.Append(opts))
		}
	})
	markdown = encodeNbsp(markdown)

	markdown = trimLeadingNewlines(markdown)
	markdown = trimTrailingWhitespace(markdown)
	return markdown
}
