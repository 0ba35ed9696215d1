// Package latex converts a styled HTML fragment, as word processors put on
// the clipboard, into a LaTeX fragment that keeps the document's structure:
// headings, emphasis, lists, footnotes, and cross-references.
package latex

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"
)

// ErrEmptyDocument is returned when the input has no convertible content.
var ErrEmptyDocument = errors.New("empty document: no convertible content")

// Options configures a Converter.
type Options struct {
	// ListMode controls validation of list-run class tags. The zero value
	// keeps the lenient behavior.
	ListMode ListMode
	// Logger receives structural warnings. Defaults to a discard logger.
	Logger *slog.Logger
}

// Converter transforms parsed HTML documents into LaTeX. Safe to reuse
// across conversions; all per-conversion state lives in the walk.
type Converter struct {
	listMode ListMode
	log      *slog.Logger
}

func NewConverter(opts Options) *Converter {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Converter{listMode: opts.ListMode, log: log}
}

// Convert renders a parsed HTML document to LaTeX. The footnote region is
// scanned first so every marker in the main text can resolve; then each
// root-level block is walked, classified, and appended in order.
func (c *Converter) Convert(doc *html.Node) (string, error) {
	if doc == nil {
		return "", ErrEmptyDocument
	}
	body := findBody(doc)
	if body == nil {
		body = doc
	}

	footnotes := BuildFootnoteTable(body)
	w := &walker{footnotes: footnotes}
	lists := NewListAssembler(c.listMode, c.log)

	var out strings.Builder
	blocks := 0
	for n := body.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && IsFootnoteRegion(n) {
			continue
		}
		block, err := classifyBlock(n, w.visit(n), lists)
		if err != nil {
			return "", err
		}
		if block != "" {
			blocks++
			out.WriteString(block)
		}
	}
	out.WriteString(lists.Close())
	if blocks == 0 {
		return "", ErrEmptyDocument
	}
	return out.String(), nil
}

// ConvertReader parses HTML from r and converts it.
func (c *Converter) ConvertReader(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}
	return c.Convert(doc)
}

// ConvertString is a convenience wrapper around ConvertReader.
func (c *Converter) ConvertString(s string) (string, error) {
	return c.ConvertReader(strings.NewReader(s))
}
