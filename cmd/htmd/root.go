// Package main implements the htmd standalone CLI: read HTML from
// stdin or a file, write its Markdown conversion to stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "htmd",
	Short: "htmd — convert HTML to Markdown",
	Long: `htmd converts HTML to CommonMark-flavored Markdown.

By default it reads HTML from stdin and writes Markdown to stdout:

  curl https://example.com | htmd > example.md
  htmd --file page.html --heading-style atx --table`,
	RunE: runConvert,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
