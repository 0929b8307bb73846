// Package htmlnode adapts golang.org/x/net/html trees to the dom.Node
// interface. It is the default, in-tree DOM collaborator; callers that
// already hold a tree from another parser can implement dom.Node
// directly instead and bypass this package entirely.
package htmlnode

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/kaufmann-labs/htmd/dom"
)

// Node wraps a single *html.Node.
type Node struct {
	n *html.Node
}

// Wrap returns a dom.Node view over n. It returns nil if n is nil, so
// callers can chain Parent()/NextSibling() without nil-checking the
// underlying pointer first.
func Wrap(n *html.Node) dom.Node {
	if n == nil {
		return nil
	}
	return Node{n: n}
}

func (w Node) Type() dom.NodeType {
	switch w.n.Type {
	case html.DocumentNode:
		return dom.DocumentNode
	case html.ElementNode:
		return dom.ElementNode
	case html.TextNode:
		return dom.TextNode
	case html.CommentNode:
		return dom.CommentNode
	default:
		return dom.UnknownNode
	}
}

func (w Node) Parent() dom.Node      { return Wrap(w.n.Parent) }
func (w Node) NextSibling() dom.Node { return Wrap(w.n.NextSibling) }
func (w Node) FirstChild() dom.Node  { return Wrap(w.n.FirstChild) }

func (w Node) TagName() string {
	if w.n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(w.n.Data)
}

func (w Node) HasTag(name string) bool {
	return w.n.Type == html.ElementNode && strings.EqualFold(w.n.Data, name)
}

func (w Node) Attribute(name string) string {
	for _, a := range w.n.Attr {
		if strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func (w Node) Attributes() []dom.Attribute {
	if len(w.n.Attr) == 0 {
		return nil
	}
	out := make([]dom.Attribute, len(w.n.Attr))
	for i, a := range w.n.Attr {
		out[i] = dom.Attribute{Name: a.Key, Value: a.Val}
	}
	return out
}

func (w Node) Text() string {
	if w.n.Type != html.TextNode {
		return ""
	}
	return w.n.Data
}

func (w Node) TextContent() string {
	var b strings.Builder
	collectText(w.n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

func (w Node) Identity() dom.ID { return w.n }

// Document wraps the root *html.Node returned by html.Parse.
type Document struct {
	Node
}

// Body returns the <body> element, falling back to <html>, falling
// back to the document node itself.
func (d Document) Body() dom.Node {
	if body := findTag(d.n, "body"); body != nil {
		return Wrap(body)
	}
	if root := findTag(d.n, "html"); root != nil {
		return Wrap(root)
	}
	return d
}

func findTag(n *html.Node, tag string) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && strings.EqualFold(n.Data, tag) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findTag(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// Parse parses an HTML document and returns its Document view.
func Parse(htmlSrc string) (Document, error) {
	root, err := html.Parse(strings.NewReader(htmlSrc))
	if err != nil {
		return Document{}, err
	}
	return Document{Node{n: root}}, nil
}

// ParseFragment parses an HTML fragment (no implied <html>/<body>)
// using context as the fragment's parent element context. A nil
// context parses as if inside <body>.
func ParseFragment(htmlSrc string, context *html.Node) ([]dom.Node, error) {
	if context == nil {
		context = &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	}
	nodes, err := html.ParseFragment(strings.NewReader(htmlSrc), context)
	if err != nil {
		return nil, err
	}
	out := make([]dom.Node, len(nodes))
	for i, n := range nodes {
		out[i] = Wrap(n)
	}
	return out, nil
}
