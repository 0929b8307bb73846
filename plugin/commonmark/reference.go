package commonmark

import (
	"strconv"
	"strings"

	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/dom"
)

// installReferenceLinkRule registers the referenced-style link rule.
// converter.Converter re-runs every plugin's Install against a fresh
// Registrar on every Convert* call, so newReferenceLinkRule's
// accumulator below is built fresh per call too - concurrent
// conversions on one *Converter never share it.
func installReferenceLinkRule(c *converter.Registrar) {
	c.AddRule("referenceLink", newReferenceLinkRule())
}

// newReferenceLinkRule builds one referenceLink Rule with its own
// reference accumulator, closed over by Filter/Replacement/Append.
func newReferenceLinkRule() converter.Rule {
	var references []string

	return converter.Rule{
		Filter: func(n dom.Node, opts *converter.Options) bool {
			return opts.LinkStyle == "referenced" && isTag(n, "a") && attr(n, "href") != ""
		},
		Replacement: func(content string, n dom.Node, opts *converter.Options) string {
			href := attr(n, "href")
			title := cleanAttribute(attr(n, "title"))
			titlePart := ""
			if title != "" {
				titlePart = ` "` + title + `"`
			}

			var replacement, reference string
			switch opts.LinkReferenceStyle {
			case "collapsed":
				replacement = "[" + content + "][]"
				reference = "[" + content + "]: " + href + titlePart
			case "shortcut":
				replacement = "[" + content + "]"
				reference = "[" + content + "]: " + href + titlePart
			default:
				id := strconv.Itoa(len(references) + 1)
				replacement = "[" + content + "][" + id + "]"
				reference = "[" + id + "]: " + href + titlePart
			}
			references = append(references, reference)
			return replacement
		},
		Append: func(_ *converter.Options) string {
			if len(references) == 0 {
				return ""
			}
			var out strings.Builder
			out.WriteString("\n\n")
			for _, ref := range references {
				out.WriteString(ref)
				out.WriteByte('\n')
			}
			out.WriteString("\n\n")
			references = nil
			return out.String()
		},
	}
}
