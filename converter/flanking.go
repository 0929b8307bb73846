package converter

import (
	"strings"

	"github.com/kaufmann-labs/htmd/dom"
	"github.com/kaufmann-labs/htmd/internal/textutil"
)

// flankSide names which side of a node its adjacent-sibling check looks
// at.
type flankSide int

const (
	flankLeft flankSide = iota
	flankRight
)

// flankingWhitespace holds the leading/trailing whitespace hoisted
// outside a node's Markdown delimiters so emphasis/strong/code/link
// markers never end up adjacent to a space.
type flankingWhitespace struct {
	Leading  string
	Trailing string
}

type edgeWhitespaceParts struct {
	leading          string
	leadingAscii     string
	leadingNonAscii  string
	trailing         string
	trailingAscii    string
	trailingNonAscii string
}

// computeEdgeWhitespace splits the leading and trailing whitespace runs
// of text, further dividing each run into its ASCII and non-ASCII
// (e.g. NBSP) portions.
func computeEdgeWhitespace(text string) edgeWhitespaceParts {
	var parts edgeWhitespaceParts
	cps := textutil.Decode(text)
	if len(cps) == 0 {
		return parts
	}

	leadingEnd := len(cps)
	for i, cp := range cps {
		if !textutil.IsUnicodeWhitespace(cp.Rune) {
			leadingEnd = i
			break
		}
	}
	for i := 0; i < leadingEnd; i++ {
		cp := cps[i]
		bytes := text[cp.Start : cp.Start+cp.Len]
		parts.leading += bytes
		if textutil.IsAsciiWhitespace(cp.Rune) {
			parts.leadingAscii += bytes
		} else {
			parts.leadingNonAscii += bytes
		}
	}

	if leadingEnd == len(cps) {
		return parts
	}

	trailingStart := len(cps)
	for i := len(cps) - 1; i >= 0; i-- {
		if !textutil.IsUnicodeWhitespace(cps[i].Rune) {
			trailingStart = i + 1
			break
		}
	}
	for i := len(cps) - 1; i >= trailingStart; i-- {
		cp := cps[i]
		bytes := text[cp.Start : cp.Start+cp.Len]
		parts.trailing = bytes + parts.trailing
		if textutil.IsAsciiWhitespace(cp.Rune) {
			parts.trailingAscii = bytes + parts.trailingAscii
		} else {
			parts.trailingNonAscii = bytes + parts.trailingNonAscii
		}
	}

	return parts
}

func startsWithAsciiSpace(s string) bool { return s != "" && s[0] == ' ' }
func endsWithAsciiSpace(s string) bool   { return s != "" && s[len(s)-1] == ' ' }

// adjacentSibling returns the sibling on the requested side of n, or
// nil if there is none.
func adjacentSibling(n dom.Node, side flankSide) dom.Node {
	parent := n.Parent()
	if parent == nil {
		return nil
	}
	var prev dom.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if sameNode(c, n) {
			if side == flankLeft {
				return prev
			}
			return c.NextSibling()
		}
		prev = c
	}
	return nil
}

// isFlankedByWhitespace reports whether n has ASCII-space text on the
// requested sibling side.
func isFlankedByWhitespace(side flankSide, n dom.Node, preformattedCode bool, cw collapsedWhitespace) bool {
	sibling := adjacentSibling(n, side)
	if sibling == nil {
		return false
	}

	switch sibling.Type() {
	case dom.ElementNode:
		if preformattedCode && isCodeAncestor(sibling) {
			return false
		}
		if isBlock(sibling) {
			return false
		}
	case dom.TextNode, dom.WhitespaceNode, dom.CDataNode:
		// fall through
	default:
		return false
	}

	text := collectText(sibling, cw)
	if text == "" {
		return false
	}
	if side == flankLeft {
		return endsWithAsciiSpace(text)
	}
	return startsWithAsciiSpace(text)
}

// encodeNbsp rewrites literal NBSP bytes as the `&nbsp;` entity, the
// last step before whitespace chunks are emitted into output.
func encodeNbsp(text string) string {
	return strings.ReplaceAll(text, "\u00a0", "&nbsp;")
}

// computeFlankingWhitespace computes the leading/trailing whitespace
// that must be hoisted outside n's Markdown delimiters so the
// delimiters never sit directly against a space. Block nodes, and code
// nodes under preformattedCode, contribute none: their whitespace is
// meaningful content, not flankable.
func computeFlankingWhitespace(n dom.Node, preformattedCode bool, cw collapsedWhitespace) flankingWhitespace {
	var ws flankingWhitespace
	if n == nil {
		return ws
	}
	if isBlock(n) || (preformattedCode && isCodeAncestor(n)) {
		return ws
	}

	text := collectText(n, cw)
	if text == "" {
		return ws
	}

	edges := computeEdgeWhitespace(text)
	ws.Leading = edges.leading
	ws.Trailing = edges.trailing

	if edges.leadingAscii != "" && isFlankedByWhitespace(flankLeft, n, preformattedCode, cw) {
		ws.Leading = edges.leadingNonAscii
	}
	if edges.trailingAscii != "" && isFlankedByWhitespace(flankRight, n, preformattedCode, cw) {
		ws.Trailing = edges.trailingNonAscii
	}

	ws.Leading = encodeNbsp(ws.Leading)
	ws.Trailing = encodeNbsp(ws.Trailing)
	return ws
}
