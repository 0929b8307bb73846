// Package base supplements the engine with a noise-stripping plugin:
// remove rules for elements that never carry meaningful Markdown
// content and only pollute LLM-facing output - scripts, styles,
// embedded frames, and the rest of a page's non-content scaffolding.
package base

import (
	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/dom"
)

var noiseTags = []string{
	"script", "style", "noscript", "head", "meta", "link", "iframe", "input", "textarea",
}

// Plugin registers remove filters for non-content elements.
type Plugin struct{}

// NewBasePlugin returns the noise-stripping plugin.
func NewBasePlugin() Plugin { return Plugin{} }

func (Plugin) Install(r *converter.Registrar) {
	r.AddRemoveFilter(func(n dom.Node, _ *converter.Options) bool {
		if n.Type() != dom.ElementNode {
			return false
		}
		tag := n.TagName()
		for _, noise := range noiseTags {
			if tag == noise {
				return true
			}
		}
		return false
	}, "noise")
}
