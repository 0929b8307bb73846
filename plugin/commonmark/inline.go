package commonmark

import (
	"strings"

	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/dom"
)

func installInlineRules(c *converter.Registrar) {
	c.AddRule("emphasis", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			return isTag(n, "em") || isTag(n, "i")
		},
		Replacement: func(content string, _ dom.Node, opts *converter.Options) string {
			if trimForEmptyCheck(content) {
				return ""
			}
			return opts.EmDelimiter + content + opts.EmDelimiter
		},
	})

	c.AddRule("strong", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			return isTag(n, "strong") || isTag(n, "b")
		},
		Replacement: func(content string, _ dom.Node, opts *converter.Options) string {
			if trimForEmptyCheck(content) {
				return ""
			}
			return opts.StrongDelimiter + content + opts.StrongDelimiter
		},
	})

	c.AddRule("inlineLink", converter.Rule{
		Filter: func(n dom.Node, opts *converter.Options) bool {
			return opts.LinkStyle == "inlined" && isTag(n, "a") && attr(n, "href") != ""
		},
		Replacement: func(content string, n dom.Node, _ *converter.Options) string {
			href := attr(n, "href")
			var escapedHref strings.Builder
			escapedHref.Grow(len(href) * 2)
			for i := 0; i < len(href); i++ {
				if href[i] == '(' || href[i] == ')' {
					escapedHref.WriteByte('\\')
				}
				escapedHref.WriteByte(href[i])
			}
			title := cleanAttribute(attr(n, "title"))
			titlePart := ""
			if title != "" {
				titlePart = ` "` + strings.ReplaceAll(title, `"`, `\"`) + `"`
			}
			return "[" + content + "](" + escapedHref.String() + titlePart + ")"
		},
	})

	c.AddRule("image", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			return isTag(n, "img")
		},
		Replacement: func(_ string, n dom.Node, _ *converter.Options) string {
			alt := cleanAttribute(attr(n, "alt"))
			src := attr(n, "src")
			title := cleanAttribute(attr(n, "title"))
			if src == "" {
				return ""
			}
			titlePart := ""
			if title != "" {
				titlePart = ` "` + title + `"`
			}
			return "![" + alt + "](" + src + titlePart + ")"
		},
	})
}
