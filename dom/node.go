// Package dom defines the minimal tree interface the converter package
// needs from an HTML parser. It owns no parsing logic itself; see
// dom/htmlnode for the default adapter over golang.org/x/net/html.
package dom

// NodeType tags the kind of node a Node represents.
type NodeType int

const (
	DocumentNode NodeType = iota
	ElementNode
	TextNode
	WhitespaceNode
	CDataNode
	CommentNode
	UnknownNode
)

// Attribute is a single name/value pair in source order.
type Attribute struct {
	Name  string
	Value string
}

// ID is a stable, comparable identity for a Node, valid for the
// lifetime of a single conversion. Implementations typically wrap a
// pointer to their underlying parser node.
type ID any

// Node is a read-only view into a parsed HTML tree. The converter
// package never mutates a Node; all "mutation" (whitespace collapsing)
// is modeled as a side table keyed by Identity.
type Node interface {
	Type() NodeType
	Parent() Node
	NextSibling() Node
	FirstChild() Node

	// TagName returns the lowercased tag name for element nodes, or ""
	// for non-elements.
	TagName() string
	HasTag(name string) bool

	// Attribute returns the value of a case-insensitively matched
	// attribute, or "" if absent.
	Attribute(name string) string
	Attributes() []Attribute

	// Text returns the raw text of a text-like node (Text, Whitespace,
	// CData), or "" for other node types.
	Text() string

	// TextContent recursively concatenates the Text of every text-like
	// descendant (and of the node itself, if it is text-like).
	TextContent() string

	// Identity is a stable, hashable key valid for one conversion.
	Identity() ID
}

// Document is the root handle returned by a parser. Body returns the
// engine's default starting node when converting a full HTML document,
// falling back to the root/html element when no body is present.
type Document interface {
	Node
	Body() Node
}

// Children returns n's direct children left-to-right. It is a
// convenience wrapper over FirstChild/NextSibling for callers that
// want a slice instead of manual iteration.
func Children(n Node) []Node {
	if n == nil {
		return nil
	}
	var out []Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}

// IsTextLike reports whether t is one of the text-bearing node types
// the reducer and whitespace collapser treat uniformly.
func IsTextLike(t NodeType) bool {
	return t == TextNode || t == WhitespaceNode || t == CDataNode
}
