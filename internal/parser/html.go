package parser

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// HTMLParser handles HTML files: the clipboard export of a word processor,
// or any styled fragment. The tree goes to the converter as-is.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}
