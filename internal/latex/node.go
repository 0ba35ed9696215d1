package latex

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

var fontSizeProp = regexp.MustCompile(`font-size:\s*(\d+)(?:\.\d+)?\s*pt`)
var fontFamilyProp = regexp.MustCompile(`font-family:\s*([^;]+)`)

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

// nodeFontSize returns the font size declared inline on this node, in points,
// or 0 when none is declared.
func nodeFontSize(n *html.Node) int {
	m := fontSizeProp.FindStringSubmatch(strings.ToLower(attr(n, "style")))
	if m == nil {
		return 0
	}
	size, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return size
}

func nodeFontFamily(n *html.Node) string {
	m := fontFamilyProp.FindStringSubmatch(attr(n, "style"))
	if m != nil {
		return strings.Trim(strings.TrimSpace(m[1]), `"'`)
	}
	return attr(n, "face")
}

// textContent flattens the raw text under a node, ignoring markup.
func textContent(n *html.Node) string {
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
	return b.String()
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
