package parser

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// bodyElements returns the element children of the parsed document's body.
func bodyElements(t *testing.T, doc *html.Node) []*html.Node {
	t.Helper()
	body := findBody(doc)
	if body == nil {
		t.Fatal("no body in parsed document")
	}
	var out []*html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func elementText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func nodeClass(n *html.Node) string {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}

func TestTextParser_BasicParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blocks := bodyElements(t, doc)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(blocks))
	}
	want := []string{
		"First paragraph line one.\nFirst paragraph line two.",
		"Second paragraph.",
		"Third paragraph.",
	}
	for i, w := range want {
		if blocks[i].Data != "p" {
			t.Errorf("block[%d]: expected <p>, got <%s>", i, blocks[i].Data)
		}
		if got := elementText(blocks[i]); got != w {
			t.Errorf("block[%d]: expected %q, got %q", i, w, got)
		}
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blocks := bodyElements(t, doc); len(blocks) != 0 {
		t.Errorf("expected 0 paragraphs for empty input, got %d", len(blocks))
	}
}

func TestTextParser_EscapesMarkup(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader("a < b & c > d"), "cmp.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blocks := bodyElements(t, doc)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(blocks))
	}
	if got := elementText(blocks[0]); got != "a < b & c > d" {
		t.Errorf("expected literal text preserved, got %q", got)
	}
}

func TestForFile_KnownExtensions(t *testing.T) {
	for _, name := range []string{"a.txt", "b.md", "c.html", "d.htm", "e.pdf", "f.docx"} {
		if _, err := ForFile(name); err != nil {
			t.Errorf("expected parser for %q, got error: %v", name, err)
		}
	}
}

func TestForFile_UnknownExtension(t *testing.T) {
	if _, err := ForFile("slides.pptx"); err == nil {
		t.Error("expected error for unsupported extension")
	}
}
