package commonmark

import "github.com/kaufmann-labs/htmd/converter"

// Plugin installs the standard CommonMark rule set: paragraphs, line
// breaks, headings, blockquotes, lists, code blocks, horizontal rules,
// links (inline and referenced), emphasis, strong, inline code, and
// images.
type Plugin struct{}

// NewCommonmarkPlugin returns the CommonMark rule-set plugin.
func NewCommonmarkPlugin() Plugin { return Plugin{} }

func (Plugin) Install(r *converter.Registrar) {
	installBlockRules(r)
	installListRules(r)
	installCodeRules(r)
	installInlineRules(r)
	installReferenceLinkRule(r)
}
