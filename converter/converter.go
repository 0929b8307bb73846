// Package converter implements a CommonMark-oriented HTML-to-Markdown
// conversion engine: a DOM-agnostic reducer driven by a precedence-
// ordered rule set, built on a node classifier, a whitespace collapser,
// and a flanking-whitespace analyzer.
package converter

import (
	"fmt"
	"io"
	"strings"

	"github.com/kaufmann-labs/htmd/dom"
	"github.com/kaufmann-labs/htmd/dom/htmlnode"
)

// Plugin installs rules, keep filters, and remove filters onto a
// Registrar. Install is called fresh on every Convert* call (not once
// at construction), so a plugin whose rules close over per-conversion
// state - the reference-link rule's accumulator, for instance - gets a
// brand new instance of that state on every call.
type Plugin interface {
	Install(r *Registrar)
}

// PluginFunc adapts a plain function to the Plugin interface.
type PluginFunc func(r *Registrar)

func (f PluginFunc) Install(r *Registrar) { f(r) }

type ruleRegistration struct {
	key  string
	rule Rule
}

type filterRegistration struct {
	filter func(dom.Node, *Options) bool
	suffix string
}

// Registrar collects the rules, keep filters, and remove filters a
// Plugin contributes during one Install call. It is the only thing a
// Plugin ever touches; Converter builds a fresh Registrar, runs every
// plugin's Install against it, and folds the result into a RuleSet.
type Registrar struct {
	opts *Options

	rules  []ruleRegistration
	keep   []filterRegistration
	remove []filterRegistration
}

// Options returns the governing Options, letting a plugin's rule
// closures read option values (heading style, delimiters, ...) at
// conversion time rather than at install time.
func (r *Registrar) Options() *Options { return r.opts }

// AddRule registers a rule.
func (r *Registrar) AddRule(key string, rule Rule) {
	r.rules = append(r.rules, ruleRegistration{key: key, rule: rule})
}

// AddKeepFilter registers a keep filter.
func (r *Registrar) AddKeepFilter(filter func(dom.Node, *Options) bool, suffix string) {
	r.keep = append(r.keep, filterRegistration{filter: filter, suffix: suffix})
}

// AddRemoveFilter registers a remove filter.
func (r *Registrar) AddRemoveFilter(filter func(dom.Node, *Options) bool, suffix string) {
	r.remove = append(r.remove, filterRegistration{filter: filter, suffix: suffix})
}

// Converter converts HTML to Markdown according to its Options and the
// rules contributed by its plugins and by direct AddRule/Keep/Remove
// calls. A Converter is safe for concurrent use: Convert* methods
// re-run every plugin's Install against a fresh Registrar and build a
// fresh RuleSet on every call, so no mutable conversion state (such as
// the reference-link rule's accumulator) is ever shared across
// goroutines or across calls.
type Converter struct {
	opts    Options
	plugins []Plugin

	userRules  []ruleRegistration
	userKeep   []filterRegistration
	userRemove []filterRegistration
}

// NewConverter builds a Converter starting from DefaultOptions, with
// opts applied in order. Plugins are retained and installed fresh on
// every Convert* call rather than once here.
func NewConverter(plugins []Plugin, opts ...Option) *Converter {
	c := &Converter{opts: DefaultOptions()}
	for _, opt := range opts {
		opt(&c.opts)
	}
	for _, p := range plugins {
		if p != nil {
			c.plugins = append(c.plugins, p)
		}
	}
	return c
}

// WithPlugins returns the plugins slice unchanged; it exists purely so
// call sites read like converter.NewConverter(converter.WithPlugins(a,
// b, c), opts...) instead of building a literal slice inline.
func WithPlugins(plugins ...Plugin) []Plugin { return plugins }

// Use registers an additional plugin after construction.
func (c *Converter) Use(p Plugin) {
	if p != nil {
		c.plugins = append(c.plugins, p)
	}
}

// Configure applies additional Options mutations after construction.
func (c *Converter) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(&c.opts)
	}
}

// AddRule registers a rule directly on the Converter, outside of any
// plugin. User rules added this way take precedence over every
// plugin-installed rule.
func (c *Converter) AddRule(key string, rule Rule) {
	c.userRules = append(c.userRules, ruleRegistration{key: key, rule: rule})
}

// Keep registers a keep filter directly on the Converter.
func (c *Converter) Keep(filter func(dom.Node, *Options) bool) {
	c.userKeep = append(c.userKeep, filterRegistration{filter: filter, suffix: "custom"})
}

// KeepTags is a convenience over Keep that matches any of the named
// tags.
func (c *Converter) KeepTags(tags ...string) {
	c.userKeep = append(c.userKeep, filterRegistration{filter: TagFilter(tags...), suffix: "tags"})
}

// Remove registers a remove filter directly on the Converter.
func (c *Converter) Remove(filter func(dom.Node, *Options) bool) {
	c.userRemove = append(c.userRemove, filterRegistration{filter: filter, suffix: "custom"})
}

// RemoveTags is a convenience over Remove that matches any of the
// named tags.
func (c *Converter) RemoveTags(tags ...string) {
	c.userRemove = append(c.userRemove, filterRegistration{filter: TagFilter(tags...), suffix: "tags"})
}

// Options returns a pointer to the Converter's live Options.
func (c *Converter) Options() *Options { return &c.opts }

// buildRuleSet installs every plugin against a fresh Registrar, then
// folds the result - and the Converter's own user-level registrations,
// which take priority - into a fresh RuleSet.
func (c *Converter) buildRuleSet() *RuleSet {
	reg := &Registrar{opts: &c.opts}
	for _, p := range c.plugins {
		p.Install(reg)
	}

	rs := NewRuleSet(&c.opts)
	for _, r := range reg.rules {
		rs.AddRule(r.key, r.rule)
	}
	for _, f := range reg.keep {
		rs.AddKeepFilter(f.filter, f.suffix)
	}
	for _, f := range reg.remove {
		rs.AddRemoveFilter(f.filter, f.suffix)
	}
	for _, r := range c.userRules {
		rs.AddRule(r.key, r.rule)
	}
	for _, f := range c.userKeep {
		rs.AddKeepFilter(f.filter, f.suffix)
	}
	for _, f := range c.userRemove {
		rs.AddRemoveFilter(f.filter, f.suffix)
	}
	return rs
}

// ConvertNode converts an already-parsed dom.Node subtree to Markdown.
func (c *Converter) ConvertNode(root dom.Node) string {
	return Reduce(root, &c.opts, c.buildRuleSet())
}

// ConvertString parses html and converts its body to Markdown.
func (c *Converter) ConvertString(html string) (string, error) {
	doc, err := htmlnode.Parse(html)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrParse, err)
	}
	return c.ConvertNode(doc.Body()), nil
}

// ConvertReader parses HTML from r and converts it to Markdown.
func (c *Converter) ConvertReader(r io.Reader) (string, error) {
	var b strings.Builder
	if _, err := io.Copy(&b, r); err != nil {
		return "", err
	}
	return c.ConvertString(b.String())
}
