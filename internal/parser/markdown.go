package parser

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// MarkdownParser handles Markdown files using goldmark. The rendered HTML is
// restyled into the word-processor model the converter expects: headings
// become sized paragraphs, list items become class-tagged paragraphs.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*html.Node, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := goldmark.New().Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	doc, err := html.Parse(&buf)
	if err != nil {
		return nil, fmt.Errorf("parse rendered markdown: %w", err)
	}

	if body := findBody(doc); body != nil {
		restyleBlocks(body)
	}
	return doc, nil
}

// headingFontSize maps markdown heading tags onto the sizes the converter
// classifies headings by.
func headingFontSize(tag string) int {
	switch tag {
	case "h1":
		return 18
	case "h2":
		return 16
	case "h3":
		return 14
	default:
		return 12
	}
}

func restyleBlocks(body *html.Node) {
	var next *html.Node
	for c := body.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			style := fmt.Sprintf("font-size:%dpt", headingFontSize(c.Data))
			c.Data = "p"
			c.DataAtom = atom.P
			c.Attr = append(c.Attr, html.Attribute{Key: "style", Val: style})
		case "ul", "ol":
			replaceList(body, c)
		}
	}
}

// replaceList flattens a list element into class-tagged paragraphs in place.
func replaceList(body, list *html.Node) {
	var items []*html.Node
	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type == html.ElementNode && li.Data == "li" {
			items = append(items, li)
		}
	}
	for i, li := range items {
		class := "MsoListParagraphCxSpMiddle"
		switch {
		case len(items) == 1:
			class = "MsoListParagraph"
		case i == 0:
			class = "MsoListParagraphCxSpFirst"
		case i == len(items)-1:
			class = "MsoListParagraphCxSpLast"
		}
		p := &html.Node{
			Type:     html.ElementNode,
			Data:     "p",
			DataAtom: atom.P,
			Attr:     []html.Attribute{{Key: "class", Val: class}},
		}
		for li.FirstChild != nil {
			child := li.FirstChild
			li.RemoveChild(child)
			p.AppendChild(child)
		}
		body.InsertBefore(p, list)
	}
	body.RemoveChild(list)
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
