package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dgallion1/htmltex/internal/latex"
	"github.com/dgallion1/htmltex/internal/parser"
)

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "Convert one document to LaTeX",
	Long: `Convert reads a document (or stdin when no file is given), converts it to
a LaTeX fragment, and writes the result to stdout or to --output.

The file extension selects the input format: .html/.htm, .md, .docx, .pdf,
or .txt. Stdin is treated as HTML unless --stdin-name says otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listValidation, _ := cmd.Flags().GetString("list-validation")
		output, _ := cmd.Flags().GetString("output")
		stdinName, _ := cmd.Flags().GetString("stdin-name")
		pdfFallback, _ := cmd.Flags().GetBool("pdf-fallback")

		listMode, err := latex.ParseListMode(listValidation)
		if err != nil {
			return err
		}

		filename := stdinName
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open input: %w", err)
			}
			defer f.Close()
			filename = args[0]
			in = f
		}

		p, err := parser.ForFile(filename)
		if err != nil {
			return err
		}
		if pp, ok := p.(*parser.PDFParser); ok {
			pp.FallbackPdftotext = pdfFallback
		}

		doc, err := p.Parse(in, filename)
		if err != nil {
			return fmt.Errorf("parse %s: %w", filename, err)
		}

		log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
		converter := latex.NewConverter(latex.Options{ListMode: listMode, Logger: log})

		out, err := converter.Convert(doc)
		if err != nil {
			return err
		}

		if output != "" {
			if err := os.WriteFile(output, []byte(out), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "write LaTeX to this file instead of stdout")
	convertCmd.Flags().String("list-validation", "warn", "list structure validation: ignore, warn, or fail")
	convertCmd.Flags().String("stdin-name", "clipboard.html", "virtual filename for stdin input (its extension selects the parser)")
	convertCmd.Flags().Bool("pdf-fallback", true, "fall back to pdftotext when the PDF library fails")

	rootCmd.AddCommand(convertCmd)
}
