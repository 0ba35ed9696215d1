// Package parser turns input documents into the styled HTML tree the
// converter consumes. HTML passes through the tree parser directly; other
// formats are adapted into the same styled-paragraph model first.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// Parser converts raw document bytes into a parsed HTML document tree.
type Parser interface {
	Parse(r io.Reader, filename string) (*html.Node, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".html": true,
	".htm":  true,
	".pdf":  true,
	".docx": true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return &TextParser{}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return SupportedExtensions[ext]
}

// buildDocument assembles pre-rendered HTML block markup into a parsed tree.
func buildDocument(blocks []string) (*html.Node, error) {
	doc, err := html.Parse(strings.NewReader(strings.Join(blocks, "\n")))
	if err != nil {
		return nil, fmt.Errorf("assemble document: %w", err)
	}
	return doc, nil
}

// paragraphBlocks wraps plain text paragraphs in escaped <p> markup.
func paragraphBlocks(paragraphs []string) []string {
	blocks := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		blocks = append(blocks, "<p>"+html.EscapeString(p)+"</p>")
	}
	return blocks
}
