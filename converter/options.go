package converter

import (
	"github.com/kaufmann-labs/htmd/dom"
	"github.com/kaufmann-labs/htmd/escape"
)

// Options configures a Converter. The zero value is never used
// directly - NewConverter always starts from DefaultOptions and lets
// Option funcs override individual fields.
type Options struct {
	HeadingStyle       string // "setext" or "atx"
	HorizontalRule     string
	BulletListMarker   string // "*", "-", or "+"
	CodeBlockStyle     string // "indented" or "fenced"
	Fence              string // "```" or "~~~"
	EmDelimiter        string // "_" or "*"
	StrongDelimiter    string // "**" or "__"
	LinkStyle          string // "inlined" or "referenced"
	LinkReferenceStyle string // "full", "collapsed", or "shortcut"
	LineBreak          string

	PreformattedCode bool

	EscapeFunction escape.Func

	KeepTags []string

	BlankReplacement   func(content string, n dom.Node) string
	KeepReplacement    func(content string, n dom.Node) string
	DefaultReplacement func(content string, n dom.Node) string
}

// DefaultOptions mirrors the engine's baseline conversion behavior
// before any plugin or Option has run.
func DefaultOptions() Options {
	return Options{
		HeadingStyle:       "setext",
		HorizontalRule:     "* * *",
		BulletListMarker:   "*",
		CodeBlockStyle:     "indented",
		Fence:              "```",
		EmDelimiter:        "_",
		StrongDelimiter:    "**",
		LinkStyle:          "inlined",
		LinkReferenceStyle: "full",
		LineBreak:          "  ",
		PreformattedCode:   false,
		EscapeFunction:     escape.Advanced,
		KeepTags:           nil,
		BlankReplacement: func(content string, n dom.Node) string {
			if isBlock(n) {
				return "\n\n"
			}
			return ""
		},
		KeepReplacement: func(content string, n dom.Node) string {
			return serializeNode(n)
		},
		DefaultReplacement: func(content string, n dom.Node) string {
			if isBlock(n) {
				return "\n\n" + content + "\n\n"
			}
			return content
		},
	}
}

// Option mutates an Options in place; NewConverter applies them, in
// order, over DefaultOptions.
type Option func(*Options)

// WithHeadingStyle selects "setext" (underlined h1/h2) or "atx" (#
// prefixed) heading rendering.
func WithHeadingStyle(style string) Option {
	return func(o *Options) { o.HeadingStyle = style }
}

// WithHorizontalRule sets the literal text emitted for <hr>.
func WithHorizontalRule(hr string) Option {
	return func(o *Options) { o.HorizontalRule = hr }
}

// WithBulletListMarker sets the marker ("*", "-", or "+") used for
// unordered list items.
func WithBulletListMarker(marker string) Option {
	return func(o *Options) { o.BulletListMarker = marker }
}

// WithCodeBlockStyle selects "indented" or "fenced" code block
// rendering.
func WithCodeBlockStyle(style string) Option {
	return func(o *Options) { o.CodeBlockStyle = style }
}

// WithFence sets the fence string ("```" or "~~~") used by fenced code
// blocks.
func WithFence(fence string) Option {
	return func(o *Options) { o.Fence = fence }
}

// WithEmDelimiter sets the delimiter used for emphasis.
func WithEmDelimiter(delim string) Option {
	return func(o *Options) { o.EmDelimiter = delim }
}

// WithStrongDelimiter sets the delimiter used for strong emphasis.
func WithStrongDelimiter(delim string) Option {
	return func(o *Options) { o.StrongDelimiter = delim }
}

// WithLinkStyle selects "inlined" or "referenced" link rendering.
func WithLinkStyle(style string) Option {
	return func(o *Options) { o.LinkStyle = style }
}

// WithLinkReferenceStyle selects "full", "collapsed", or "shortcut"
// reference-link rendering, used only when LinkStyle is "referenced".
func WithLinkReferenceStyle(style string) Option {
	return func(o *Options) { o.LinkReferenceStyle = style }
}

// WithLineBreak sets the text emitted for a <br>.
func WithLineBreak(br string) Option {
	return func(o *Options) { o.LineBreak = br }
}

// WithPreformattedCode treats <code> like <pre> for whitespace
// collapsing and flanking-whitespace purposes.
func WithPreformattedCode(v bool) Option {
	return func(o *Options) { o.PreformattedCode = v }
}

// WithEscapeFunction overrides the Markdown-escaping function applied
// to text nodes.
func WithEscapeFunction(fn escape.Func) Option {
	return func(o *Options) { o.EscapeFunction = fn }
}

// WithKeepTags appends tag names whose elements are serialized back to
// literal HTML instead of being converted.
func WithKeepTags(tags ...string) Option {
	return func(o *Options) { o.KeepTags = append(o.KeepTags, tags...) }
}
