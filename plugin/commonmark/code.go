package commonmark

import (
	"regexp"
	"strings"

	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/dom"
)

var languageRE = regexp.MustCompile(`language-(\S+)`)
var codeTicksRE = regexp.MustCompile("`+")
var codeNeedsSpaceRE = regexp.MustCompile("^`|^ .*?[^ ].* $|`$")
var codeNewlineRE = regexp.MustCompile(`\r?\n|\r`)

func installCodeRules(c *converter.Registrar) {
	c.AddRule("indentedCodeBlock", converter.Rule{
		Filter: func(n dom.Node, opts *converter.Options) bool {
			return opts.CodeBlockStyle == "indented" && isTag(n, "pre") && findChildElement(n, "code") != nil
		},
		Replacement: func(_ string, n dom.Node, _ *converter.Options) string {
			source := findChildElement(n, "code")
			if source == nil {
				source = n
			}
			code := source.TextContent()
			code = strings.TrimSuffix(code, "\n")
			code = newlineRE.ReplaceAllString(code, "\n    ")
			return "\n\n    " + code + "\n\n"
		},
	})

	c.AddRule("fencedCodeBlock", converter.Rule{
		Filter: func(n dom.Node, opts *converter.Options) bool {
			if opts.CodeBlockStyle != "fenced" || !isTag(n, "pre") {
				return false
			}
			return findChildElement(n, "code") != nil
		},
		Replacement: func(_ string, n dom.Node, opts *converter.Options) string {
			codeNode := findChildElement(n, "code")
			className := attr(codeNode, "class")
			language := ""
			if m := languageRE.FindStringSubmatch(className); m != nil {
				language = m[1]
			}

			code := codeNode.TextContent()
			fenceChar := byte('`')
			if opts.Fence != "" {
				fenceChar = opts.Fence[0]
			}
			fenceSize := 3
			fenceInside := regexp.MustCompile(`(^|\n)` + regexp.QuoteMeta(string(fenceChar)) + `{3,}`)
			for _, m := range fenceInside.FindAllString(code, -1) {
				run := len(m)
				if strings.HasPrefix(m, "\n") {
					run--
				}
				if run+1 > fenceSize {
					fenceSize = run + 1
				}
			}
			fence := repeatByte(fenceChar, fenceSize)
			code = strings.TrimSuffix(code, "\n")
			return "\n\n" + fence + language + "\n" + code + "\n" + fence + "\n\n"
		},
	})

	c.AddRule("code", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			parent := n.Parent()
			isCodeBlock := isTag(parent, "pre") && !hasElementSiblings(n)
			return isTag(n, "code") && !isCodeBlock
		},
		Replacement: func(content string, _ dom.Node, _ *converter.Options) string {
			if content == "" {
				return ""
			}
			normalized := codeNewlineRE.ReplaceAllString(content, " ")
			needsSpace := codeNeedsSpaceRE.MatchString(normalized)

			matches := map[string]struct{}{}
			for _, m := range codeTicksRE.FindAllString(normalized, -1) {
				matches[m] = struct{}{}
			}
			delimiter := "`"
			for {
				if _, ok := matches[delimiter]; !ok {
					break
				}
				delimiter += "`"
			}
			pad := ""
			if needsSpace {
				pad = " "
			}
			return delimiter + pad + normalized + pad + delimiter
		},
	})
}
