package commonmark

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/dom"
)

var newlineRE = regexp.MustCompile(`\n`)
var trailingBlankLineRE = regexp.MustCompile(`\n\s*$`)

func installListRules(c *converter.Registrar) {
	c.AddRule("list", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			return isTag(n, "ul") || isTag(n, "ol")
		},
		Replacement: func(content string, n dom.Node, _ *converter.Options) string {
			inner := trimNewlines(content)
			parent := n.Parent()
			if isTag(parent, "li") && isLastElementChild(parent, n) {
				return "\n" + inner
			}
			return "\n\n" + inner + "\n\n"
		},
	})

	c.AddRule("listItem", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			return isTag(n, "li")
		},
		Replacement: func(content string, n dom.Node, opts *converter.Options) string {
			result := ltrimNewlines(content)
			trimmed := rtrimNewlines(result)
			hadTrailingNewlines := len(trimmed) != len(result)
			result = trimmed
			if hadTrailingNewlines {
				result += "\n"
			}
			result = newlineRE.ReplaceAllString(result, "\n    ")

			prefix := opts.BulletListMarker + "   "
			parent := n.Parent()
			if isTag(parent, "ol") {
				index := elementIndex(n)
				start := parseIntOr(attr(parent, "start"), 1)
				if index >= 0 {
					prefix = strconv.Itoa(start+index) + ".  "
				} else {
					prefix = "1.  "
				}
			}

			hasNext := hasNextElementSibling(n)
			if hasNext && strings.Contains(result, "\n") {
				result = trailingBlankLineRE.ReplaceAllString(result, "\n    ")
			}
			needsTrailingNewline := hasNext && !strings.HasSuffix(result, "\n")
			if needsTrailingNewline {
				return prefix + result + "\n"
			}
			return prefix + result
		},
	})
}
