package latex

import (
	"strings"

	"golang.org/x/net/html"
)

// FootnoteTable maps a footnote index label to its fully rendered
// \footnote{...} markup. Built once per conversion, read-only afterwards.
type FootnoteTable map[string]string

// BuildFootnoteTable scans the footnote region of a body, if one exists, and
// renders every entry. It must run to completion before the main walk so that
// every marker the walk encounters can be resolved.
func BuildFootnoteTable(body *html.Node) FootnoteTable {
	table := make(FootnoteTable)
	for _, entry := range footnoteEntries(body) {
		index, text := renderFootnoteEntry(entry)
		if index == "" || text == "" {
			continue
		}
		table[index] = `\footnote{` + text + `}`
	}
	return table
}

// footnoteEntries collects the per-footnote elements: the children of a
// container marked "footnotes", or Writer's per-entry sdfootnoteN divs.
func footnoteEntries(body *html.Node) []*html.Node {
	var entries []*html.Node
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || !IsFootnoteRegion(c) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(attr(c, "id")), "sdfootnote") {
			entries = append(entries, c)
			continue
		}
		for e := c.FirstChild; e != nil; e = e.NextSibling {
			if e.Type == html.ElementNode {
				entries = append(entries, e)
			}
		}
	}
	return entries
}

// IsFootnoteRegion reports whether a root-level element belongs to the
// footnote region rather than the main text flow.
func IsFootnoteRegion(n *html.Node) bool {
	if strings.EqualFold(attr(n, "class"), "footnotes") || strings.EqualFold(attr(n, "id"), "footnotes") {
		return true
	}
	if strings.HasPrefix(strings.ToLower(attr(n, "id")), "sdfootnote") {
		return true
	}
	return strings.Contains(attr(n, "style"), "mso-element:footnote-list")
}

// renderFootnoteEntry extracts the index label and renders the body text of
// one footnote entry. The first index-marker child supplies the label; every
// later sibling contributes body text, with hyperlinks wrapped as \url.
// Entries with no index or an empty body are dropped by the caller.
func renderFootnoteEntry(entry *html.Node) (index, text string) {
	// Word and Writer both wrap each footnote in a single paragraph.
	if p := soleElementChild(entry); p != nil {
		entry = p
	}

	var b strings.Builder
	for c := entry.FirstChild; c != nil; c = c.NextSibling {
		if index == "" {
			if c.Type == html.ElementNode && isFootnoteIndex(c) {
				index = strings.Trim(strings.TrimSpace(textContent(c)), "[]")
			}
			continue
		}
		switch {
		case c.Type == html.TextNode:
			b.WriteString(CollapseWhitespace(c.Data))
		case c.Type == html.ElementNode && c.Data == "a":
			b.WriteString(`\url{` + strings.TrimSpace(textContent(c)) + `}`)
		case c.Type == html.ElementNode:
			b.WriteString(CollapseWhitespace(textContent(c)))
		}
	}
	return index, strings.TrimSpace(b.String())
}

func isFootnoteIndex(n *html.Node) bool {
	if n.Data == "sup" || isFootnoteMarker(n) {
		return true
	}
	if n.Data != "a" {
		return false
	}
	name := strings.ToLower(attr(n, "name") + attr(n, "href"))
	return strings.Contains(name, "ftn") || strings.Contains(name, "footnote")
}

func soleElementChild(n *html.Node) *html.Node {
	var sole *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return nil
		}
		if c.Type == html.ElementNode {
			if sole != nil {
				return nil
			}
			sole = c
		}
	}
	if sole == nil || (sole.Data != "p" && sole.Data != "div") {
		return nil
	}
	return sole
}
