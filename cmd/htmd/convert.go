package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kaufmann-labs/htmd/converter"
	"github.com/kaufmann-labs/htmd/plugin/base"
	"github.com/kaufmann-labs/htmd/plugin/commonmark"
	"github.com/kaufmann-labs/htmd/plugin/table"
	"github.com/spf13/cobra"
)

// Flag variables.
var (
	flagFile           string
	flagATXHeadings    bool
	flagFenced         bool
	flagFence          string
	flagBullet         string
	flagBreak          string
	flagHeadingStyle   string
	flagEmphasis       string
	flagStrong         string
	flagLinkStyle      string
	flagReferenceStyle string
	flagTablePlugin    bool
	flagBasePlugin     bool
	flagKeepTags       []string
)

func init() {
	rootCmd.Flags().StringVar(&flagFile, "file", "", "Read HTML from this file instead of stdin")

	rootCmd.Flags().BoolVar(&flagATXHeadings, "atx-headings", false, "Use # atx headings instead of setext underlines")
	rootCmd.Flags().StringVar(&flagHeadingStyle, "heading-style", "", `Heading style: "setext" or "atx" (overrides --atx-headings)`)
	rootCmd.Flags().BoolVar(&flagFenced, "fenced", false, "Use fenced code blocks instead of indented code blocks")
	rootCmd.Flags().StringVar(&flagFence, "fence", "```", "Fence string for fenced code blocks")
	rootCmd.Flags().StringVar(&flagBullet, "bullet", "*", `Unordered list marker: "*", "-", or "+"`)
	rootCmd.Flags().StringVar(&flagBreak, "br", "  ", "Text emitted for a line break")
	rootCmd.Flags().StringVar(&flagEmphasis, "emphasis", "_", `Emphasis delimiter: "_" or "*"`)
	rootCmd.Flags().StringVar(&flagStrong, "strong", "**", `Strong emphasis delimiter: "**" or "__"`)
	rootCmd.Flags().StringVar(&flagLinkStyle, "link-style", "inlined", `Link style: "inlined" or "referenced"`)
	rootCmd.Flags().StringVar(&flagReferenceStyle, "reference-style", "full", `Reference style when --link-style=referenced: "full", "collapsed", or "shortcut"`)

	rootCmd.Flags().BoolVar(&flagTablePlugin, "table", false, "Render regularly shaped <table> elements as GFM pipe tables")
	rootCmd.Flags().BoolVar(&flagBasePlugin, "base-plugin", false, "Strip non-content elements (script, style, head, meta, ...) before converting")
	rootCmd.Flags().StringSliceVar(&flagKeepTags, "keep-tag", nil, "Serialize this tag's elements back to literal HTML instead of converting them (repeatable)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	html, err := readInput()
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	conv, err := buildConverter()
	if err != nil {
		return err
	}

	markdown, err := conv.ConvertString(html)
	if err != nil {
		return fmt.Errorf("converting: %w", err)
	}

	fmt.Fprint(os.Stdout, markdown)
	return nil
}

func readInput() (string, error) {
	if flagFile != "" {
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func buildConverter() (*converter.Converter, error) {
	headingStyle := "setext"
	if flagATXHeadings {
		headingStyle = "atx"
	}
	if flagHeadingStyle != "" {
		headingStyle = flagHeadingStyle
	}
	codeBlockStyle := "indented"
	if flagFenced {
		codeBlockStyle = "fenced"
	}

	switch flagLinkStyle {
	case "inlined", "referenced":
	default:
		return nil, fmt.Errorf("invalid --link-style: %s", flagLinkStyle)
	}
	switch flagReferenceStyle {
	case "full", "collapsed", "shortcut":
	default:
		return nil, fmt.Errorf("invalid --reference-style: %s", flagReferenceStyle)
	}

	var plugins []converter.Plugin
	if flagBasePlugin {
		plugins = append(plugins, base.NewBasePlugin())
	}
	plugins = append(plugins, commonmark.NewCommonmarkPlugin())
	if flagTablePlugin {
		plugins = append(plugins, table.NewTablePlugin())
	}

	conv := converter.NewConverter(plugins,
		converter.WithHeadingStyle(headingStyle),
		converter.WithCodeBlockStyle(codeBlockStyle),
		converter.WithFence(flagFence),
		converter.WithBulletListMarker(flagBullet),
		converter.WithLineBreak(flagBreak),
		converter.WithEmDelimiter(flagEmphasis),
		converter.WithStrongDelimiter(flagStrong),
		converter.WithLinkStyle(flagLinkStyle),
		converter.WithLinkReferenceStyle(flagReferenceStyle),
		converter.WithKeepTags(flagKeepTags...),
	)
	return conv, nil
}
