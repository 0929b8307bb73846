// Package table supplements the CommonMark rule set with a GFM pipe
// table renderer. It is not part of original_source's rule set - the
// distilled engine this package builds on never specified tables - but
// the library's real-world plugin ecosystem treats tables as a
// standard add-on, so it is offered the same way: an explicit plugin a
// caller opts into.
package table

import (
	"regexp"
	"strings"

	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/dom"
)

// CellPaddingBehavior controls how a rendered cell is padded.
type CellPaddingBehavior int

const (
	// CellPaddingBehaviorAligned pads every cell in a column to that
	// column's widest cell, producing a visually aligned table.
	CellPaddingBehaviorAligned CellPaddingBehavior = iota
	// CellPaddingBehaviorMinimal pads every cell with a single space on
	// each side regardless of column width, trading alignment for
	// fewer output bytes.
	CellPaddingBehaviorMinimal
)

type tableOptions struct {
	cellPadding CellPaddingBehavior
}

// Option configures the table Plugin.
type Option func(*tableOptions)

// WithCellPaddingBehavior selects how rendered cells are padded.
func WithCellPaddingBehavior(b CellPaddingBehavior) Option {
	return func(o *tableOptions) { o.cellPadding = b }
}

// Plugin renders <table> elements with a regular shape (consistent
// column count, no colspan/rowspan, no block-level content in a cell)
// as a GFM pipe table. An irregular table's Filter simply declines to
// match, so the table - and its rows and cells, all block-level tags -
// fall through to the engine's ordinary default rule.
type Plugin struct {
	opts tableOptions
}

// NewTablePlugin returns the table plugin, configured by opts.
func NewTablePlugin(opts ...Option) Plugin {
	p := Plugin{opts: tableOptions{cellPadding: CellPaddingBehaviorAligned}}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

func (p Plugin) Install(r *converter.Registrar) {
	r.AddRule("table", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			return isTag(n, "table") && isRegularTable(n)
		},
		Replacement: func(_ string, n dom.Node, _ *converter.Options) string {
			return "\n\n" + renderTable(n, p.opts) + "\n\n"
		},
	})
}

func isTag(n dom.Node, tag string) bool {
	return n != nil && n.Type() == dom.ElementNode && n.TagName() == tag
}

var blockInCellTags = map[string]struct{}{
	"p": {}, "div": {}, "ul": {}, "ol": {}, "table": {},
	"blockquote": {}, "pre": {}, "h1": {}, "h2": {}, "h3": {},
	"h4": {}, "h5": {}, "h6": {},
}

func hasBlockDescendant(n dom.Node) bool {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == dom.ElementNode {
			if _, ok := blockInCellTags[c.TagName()]; ok {
				return true
			}
		}
		if hasBlockDescendant(c) {
			return true
		}
	}
	return false
}

// collectRows returns every <tr> under n in document order, without
// descending into a nested <table>.
func collectRows(n dom.Node) []dom.Node {
	var rows []dom.Node
	var walk func(dom.Node)
	walk = func(cur dom.Node) {
		for c := cur.FirstChild(); c != nil; c = c.NextSibling() {
			if c.Type() != dom.ElementNode {
				continue
			}
			switch c.TagName() {
			case "tr":
				rows = append(rows, c)
			case "table":
				continue
			default:
				walk(c)
			}
		}
	}
	walk(n)
	return rows
}

func rowCells(row dom.Node) []dom.Node {
	var cells []dom.Node
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Type() == dom.ElementNode && (c.TagName() == "td" || c.TagName() == "th") {
			cells = append(cells, c)
		}
	}
	return cells
}

// isRegularTable reports whether n can be rendered as a GFM pipe
// table: a non-empty, rectangular grid of cells, none spanning
// multiple rows or columns, none holding block-level content.
func isRegularTable(n dom.Node) bool {
	rows := collectRows(n)
	if len(rows) == 0 {
		return false
	}
	width := -1
	for _, row := range rows {
		cells := rowCells(row)
		if len(cells) == 0 {
			return false
		}
		if width == -1 {
			width = len(cells)
		} else if len(cells) != width {
			return false
		}
		for _, cell := range cells {
			if attr(cell, "colspan") != "" || attr(cell, "rowspan") != "" {
				return false
			}
			if hasBlockDescendant(cell) {
				return false
			}
		}
	}
	return true
}

func attr(n dom.Node, name string) string {
	if n == nil {
		return ""
	}
	return n.Attribute(name)
}

var cellWhitespaceRE = regexp.MustCompile(`\s+`)

func cellText(n dom.Node) string {
	text := cellWhitespaceRE.ReplaceAllString(n.TextContent(), " ")
	text = strings.TrimSpace(text)
	return strings.ReplaceAll(text, "|", `\|`)
}

func renderTable(n dom.Node, opts tableOptions) string {
	rows := collectRows(n)
	header := rowCells(rows[0])
	columnCount := len(header)

	grid := make([][]string, len(rows))
	for i, row := range rows {
		cells := rowCells(row)
		line := make([]string, columnCount)
		for col := 0; col < columnCount; col++ {
			if col < len(cells) {
				line[col] = cellText(cells[col])
			}
		}
		grid[i] = line
	}

	widths := make([]int, columnCount)
	if opts.cellPadding == CellPaddingBehaviorAligned {
		for col := 0; col < columnCount; col++ {
			widths[col] = 3
			for _, line := range grid {
				if w := len([]rune(line[col])); w > widths[col] {
					widths[col] = w
				}
			}
		}
	} else {
		for col := range widths {
			widths[col] = 0
		}
	}

	var b strings.Builder
	writeRow := func(line []string) {
		b.WriteByte('|')
		for col, cell := range line {
			b.WriteByte(' ')
			b.WriteString(cell)
			if opts.cellPadding == CellPaddingBehaviorAligned {
				if pad := widths[col] - len([]rune(cell)); pad > 0 {
					b.WriteString(strings.Repeat(" ", pad))
				}
			}
			b.WriteByte(' ')
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}

	writeRow(grid[0])
	b.WriteByte('|')
	for col := range widths {
		b.WriteByte(' ')
		width := widths[col]
		if width < 3 {
			width = 3
		}
		b.WriteString(strings.Repeat("-", width))
		b.WriteByte(' ')
		b.WriteByte('|')
	}
	b.WriteByte('\n')
	for _, line := range grid[1:] {
		writeRow(line)
	}

	return strings.TrimSuffix(b.String(), "\n")
}
