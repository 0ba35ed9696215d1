// Package main is the entry point for the htmltex CLI, which converts
// word-processor HTML exports (and a few other document formats) into
// LaTeX fragments.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the htmltex CLI.
var rootCmd = &cobra.Command{
	Use:   "htmltex",
	Short: "Convert rich-text document fragments to LaTeX",
	Long: `htmltex converts a styled HTML fragment, as word processors produce when
exporting or copying text, into an equivalent LaTeX fragment. Headings,
emphasis, lists, footnotes, and natural-language cross-references
("figure x", "section 1.2", "[citation]") are carried over as semantic
markup rather than visual formatting.

Markdown, docx, pdf, and plain-text inputs are adapted into the same
model before conversion.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
