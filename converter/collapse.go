package converter

import (
	"regexp"
	"strings"

	"github.com/kaufmann-labs/htmd/dom"
)

var runsOfBlankSpace = regexp.MustCompile(`[ \r\n\t]+`)

// collapsedWhitespace is the side table the whitespace collapser
// produces: a text-node replacement and an omit set, keyed by node
// identity. It never mutates the tree it was computed from.
type collapsedWhitespace struct {
	text map[dom.ID]string
	omit map[dom.ID]struct{}
}

func newCollapsedWhitespace() collapsedWhitespace {
	return collapsedWhitespace{text: map[dom.ID]string{}, omit: map[dom.ID]struct{}{}}
}

func (c collapsedWhitespace) isOmitted(n dom.Node) bool {
	if n == nil {
		return false
	}
	_, ok := c.omit[n.Identity()]
	return ok
}

func (c collapsedWhitespace) textFor(n dom.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	s, ok := c.text[n.Identity()]
	return s, ok
}

// collectText concatenates a node's text content, honoring the
// collapse side table: an omitted node contributes nothing, and a text
// node with a recorded replacement contributes that replacement
// instead of its raw text.
func collectText(n dom.Node, cw collapsedWhitespace) string {
	if n == nil {
		return ""
	}
	if cw.isOmitted(n) {
		return ""
	}
	switch n.Type() {
	case dom.TextNode, dom.WhitespaceNode, dom.CDataNode:
		if s, ok := cw.textFor(n); ok {
			return s
		}
		return n.Text()
	case dom.ElementNode, dom.DocumentNode:
		var b strings.Builder
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			b.WriteString(collectText(c, cw))
		}
		return b.String()
	default:
		return ""
	}
}

func isPreNode(n dom.Node, treatCodeAsPre bool) bool {
	if n == nil || n.Type() != dom.ElementNode {
		return false
	}
	tag := n.TagName()
	return tag == "pre" || (treatCodeAsPre && tag == "code")
}

// nextNode walks document order, skipping descent into <pre> (and
// <code> when treatCodeAsPre) and into any subtree already fully
// visited, which is the case when current is prev's parent.
func nextNode(prev, current dom.Node, treatCodeAsPre bool) dom.Node {
	if current == nil {
		return nil
	}
	prevIsParent := prev != nil && current != nil && sameNode(prev.Parent(), current)
	if prevIsParent || isPreNode(current, treatCodeAsPre) {
		if sib := current.NextSibling(); sib != nil {
			return sib
		}
		return current.Parent()
	}
	if child := current.FirstChild(); child != nil {
		return child
	}
	if sib := current.NextSibling(); sib != nil {
		return sib
	}
	return current.Parent()
}

func afterRemoval(n dom.Node) dom.Node {
	if n == nil {
		return nil
	}
	if sib := n.NextSibling(); sib != nil {
		return sib
	}
	return n.Parent()
}

func sameNode(a, b dom.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Identity() == b.Identity()
}

// collapseWhitespace simulates the browser's inline whitespace
// normalization in one depth-first pass over element, producing a
// replacement table rather than mutating anything. The root itself is
// never visited/collapsed when it is preformatted.
func collapseWhitespace(element dom.Node, treatCodeAsPre bool) collapsedWhitespace {
	result := newCollapsedWhitespace()
	if element == nil || isPreNode(element, treatCodeAsPre) || element.FirstChild() == nil {
		return result
	}

	var prevTextNode dom.Node
	keepLeadingWhitespace := false

	var prevNode dom.Node
	currentNode := nextNode(prevNode, element, treatCodeAsPre)

	for currentNode != nil && !sameNode(currentNode, element) {
		switch {
		case dom.IsTextLike(currentNode.Type()):
			text := runsOfBlankSpace.ReplaceAllString(currentNode.TextContent(), " ")

			prevEndedWithSpace := false
			if prevTextNode != nil {
				if s, ok := result.textFor(prevTextNode); ok && strings.HasSuffix(s, " ") {
					prevEndedWithSpace = true
				}
			}

			if (prevTextNode == nil || prevEndedWithSpace) && !keepLeadingWhitespace &&
				strings.HasPrefix(text, " ") {
				text = text[1:]
			}

			if text == "" {
				result.omit[currentNode.Identity()] = struct{}{}
				prevNode = currentNode
				currentNode = afterRemoval(currentNode)
				continue
			}

			result.text[currentNode.Identity()] = text
			prevTextNode = currentNode

		case currentNode.Type() == dom.ElementNode:
			tag := currentNode.TagName()
			blockLike := isBlock(currentNode)
			isBr := tag == "br"
			preNode := isPreNode(currentNode, treatCodeAsPre)
			voidNode := isVoidNode(currentNode)

			switch {
			case blockLike || isBr:
				if prevTextNode != nil {
					id := prevTextNode.Identity()
					if s, ok := result.text[id]; ok && strings.HasSuffix(s, " ") {
						s = s[:len(s)-1]
						result.text[id] = s
						if s == "" {
							result.omit[id] = struct{}{}
						}
					}
				}
				prevTextNode = nil
				keepLeadingWhitespace = false
			case voidNode || preNode:
				prevTextNode = nil
				keepLeadingWhitespace = true
			case prevTextNode != nil:
				keepLeadingWhitespace = false
			}

		default:
			result.omit[currentNode.Identity()] = struct{}{}
			prevNode = currentNode
			currentNode = afterRemoval(currentNode)
			continue
		}

		next := nextNode(prevNode, currentNode, treatCodeAsPre)
		prevNode = currentNode
		currentNode = next
	}

	if prevTextNode != nil {
		id := prevTextNode.Identity()
		if s, ok := result.text[id]; ok && strings.HasSuffix(s, " ") {
			s = s[:len(s)-1]
			result.text[id] = s
			if s == "" {
				result.omit[id] = struct{}{}
			}
		}
	}

	return result
}
