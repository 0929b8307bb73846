package converter

import (
	"github.com/kaufmann-labs/htmd/dom"
	"github.com/kaufmann-labs/htmd/internal/textutil"
)

// Rule pairs a Filter predicate with the Replacement it produces for a
// matching node. Append, when set, contributes a one-time trailer (used
// by the reference-link rule to emit its accumulated definitions) that
// is collected once per conversion rather than once per node.
type Rule struct {
	Key         string
	Filter      func(n dom.Node, opts *Options) bool
	Replacement func(content string, n dom.Node, opts *Options) string
	Append      func(opts *Options) string
}

// TagFilter returns a Filter matching any element whose tag name is
// one of tags (case folded to lowercase at construction time).
func TagFilter(tags ...string) func(dom.Node, *Options) bool {
	normalized := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		normalized[lowerASCII(t)] = struct{}{}
	}
	return func(n dom.Node, _ *Options) bool {
		if n == nil || n.Type() != dom.ElementNode {
			return false
		}
		_, ok := normalized[n.TagName()]
		return ok
	}
}

func lowerASCII(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'A' && c <= 'Z' {
			out[i] = c + ('a' - 'A')
		}
	}
	return string(out)
}

// RuleSet holds the main, keep, and remove rule lists and resolves
// which rule governs a given node. Rules added via AddRule are
// prepended, so the most recently added rule is consulted first -
// matching the "user rules win" precedence the converter promises.
type RuleSet struct {
	opts *Options

	rules  []Rule
	keep   []Rule
	remove []Rule

	blank  Rule
	keepFB Rule
	defFB  Rule
}

// NewRuleSet builds an empty RuleSet bound to opts. The three
// always-present fallback rules (blank, keep-replacement, default)
// delegate to the BlankReplacement, KeepReplacement and
// DefaultReplacement functions of the Options passed to each call, so
// they follow whatever those fields hold at conversion time.
func NewRuleSet(opts *Options) *RuleSet {
	rs := &RuleSet{opts: opts}

	rs.blank = Rule{
		Key:    "blank",
		Filter: func(dom.Node, *Options) bool { return true },
		Replacement: func(content string, n dom.Node, o *Options) string {
			return o.BlankReplacement(content, n)
		},
	}
	rs.keepFB = Rule{
		Key:    "keep-replacement",
		Filter: func(dom.Node, *Options) bool { return true },
		Replacement: func(content string, n dom.Node, o *Options) string {
			return o.KeepReplacement(content, n)
		},
	}
	rs.defFB = Rule{
		Key:    "default",
		Filter: func(dom.Node, *Options) bool { return true },
		Replacement: func(content string, n dom.Node, o *Options) string {
			return o.DefaultReplacement(content, n)
		},
	}

	return rs
}

// AddRule prepends rule to the main rule list under key.
func (rs *RuleSet) AddRule(key string, rule Rule) {
	rule.Key = key
	rs.rules = append([]Rule{rule}, rs.rules...)
}

// AddKeepFilter prepends a keep rule matching filter.
func (rs *RuleSet) AddKeepFilter(filter func(dom.Node, *Options) bool, keySuffix string) {
	rs.keep = append([]Rule{{
		Key:         "keep-" + keySuffix,
		Filter:      filter,
		Replacement: rs.keepFB.Replacement,
	}}, rs.keep...)
}

// AddRemoveFilter prepends a remove rule matching filter.
func (rs *RuleSet) AddRemoveFilter(filter func(dom.Node, *Options) bool, keySuffix string) {
	rs.remove = append([]Rule{{
		Key:    "remove-" + keySuffix,
		Filter: filter,
		Replacement: func(string, dom.Node, *Options) string {
			return ""
		},
	}}, rs.remove...)
}

func findRule(candidates []Rule, n dom.Node, opts *Options) *Rule {
	for i := range candidates {
		if candidates[i].Filter(n, opts) {
			return &candidates[i]
		}
	}
	return nil
}

// ForNode resolves the rule that governs n, honoring the precedence:
// blank (unless void) -> user/builtin rules -> keep rules -> remove
// rules -> default.
func (rs *RuleSet) ForNode(n dom.Node, cw collapsedWhitespace) *Rule {
	if !isVoidNode(n) && isBlankWithCollapse(n, cw) {
		return &rs.blank
	}
	if r := findRule(rs.rules, n, rs.opts); r != nil {
		return r
	}
	if r := findRule(rs.keep, n, rs.opts); r != nil {
		return r
	}
	if r := findRule(rs.remove, n, rs.opts); r != nil {
		return r
	}
	return &rs.defFB
}

// ForEach calls fn for each registered main rule, most-recently-added
// first, used to collect each rule's one-time Append trailer.
func (rs *RuleSet) ForEach(fn func(Rule)) {
	for _, r := range rs.rules {
		fn(r)
	}
}

// isBlankWithCollapse reports whether n is blank (not void, not
// meaningful-when-blank, whitespace-only text, no void or
// meaningful-when-blank descendant). It reads text through the collapse
// side table instead of raw TextContent, so a node whose only text was
// collapsed away is correctly seen as blank.
func isBlankWithCollapse(n dom.Node, cw collapsedWhitespace) bool {
	if n == nil {
		return false
	}
	if n.Type() == dom.ElementNode {
		if isVoidNode(n) || isMeaningfulWhenBlank(n) {
			return false
		}
	}
	text := collectText(n, cw)
	for _, cp := range textutil.Decode(text) {
		if !textutil.IsUnicodeWhitespace(cp.Rune) {
			return false
		}
	}
	if n.Type() == dom.ElementNode {
		if hasVoidDescendant(n) || hasMeaningfulWhenBlankDescendant(n) {
			return false
		}
	}
	return true
}
