package commonmark

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/dom"
)

func installBlockRules(c *converter.Registrar) {
	c.AddRule("paragraph", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			return isTag(n, "p")
		},
		Replacement: func(content string, _ dom.Node, _ *converter.Options) string {
			return "\n\n" + content + "\n\n"
		},
	})

	c.AddRule("lineBreak", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			return isTag(n, "br")
		},
		Replacement: func(_ string, _ dom.Node, opts *converter.Options) string {
			return opts.LineBreak + "\n"
		},
	})

	for i := 1; i <= 6; i++ {
		level := i
		tag := "h" + strconv.Itoa(level)
		c.AddRule(tag, converter.Rule{
			Filter: func(n dom.Node, _ *converter.Options) bool {
				return isTag(n, tag)
			},
			Replacement: func(content string, _ dom.Node, opts *converter.Options) string {
				if opts.HeadingStyle == "setext" && level <= 2 {
					underlineChar := byte('-')
					if level == 1 {
						underlineChar = '='
					}
					underline := repeatByte(underlineChar, len(content))
					return "\n\n" + content + "\n" + underline + "\n\n"
				}
				return "\n\n" + repeatByte('#', level) + " " + content + "\n\n"
			},
		})
	}

	c.AddRule("blockquote", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			return isTag(n, "blockquote")
		},
		Replacement: func(content string, _ dom.Node, _ *converter.Options) string {
			trimmed := trimNewlines(content)
			var block strings.Builder
			scanner := bufio.NewScanner(strings.NewReader(trimmed))
			scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
			for scanner.Scan() {
				block.WriteString("> ")
				block.WriteString(scanner.Text())
				block.WriteByte('\n')
			}
			return "\n\n" + block.String() + "\n\n"
		},
	})

	c.AddRule("horizontalRule", converter.Rule{
		Filter: func(n dom.Node, _ *converter.Options) bool {
			return isTag(n, "hr")
		},
		Replacement: func(_ string, _ dom.Node, opts *converter.Options) string {
			return "\n\n" + opts.HorizontalRule + "\n\n"
		},
	})
}
