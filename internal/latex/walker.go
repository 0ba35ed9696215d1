package latex

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	// bodyFontSize is the body-text threshold: bold runs at or above it are
	// headings in disguise and are not re-wrapped.
	bodyFontSize = 12

	// monospaceFamily marks styled spans that should render as \texttt.
	monospaceFamily = "courier"
)

// Result is the per-subtree formatting accumulator. One is produced for
// every node visited and consumed immediately by the parent frame.
type Result struct {
	// Text is the markup produced for this subtree.
	Text string
	// FontSize is the largest explicit font size seen in this subtree,
	// or 0 when no size is declared anywhere below.
	FontSize int
	// TrimLeadingSpace tells the parent to drop the next sibling's leading
	// whitespace. Set after a forced line break.
	TrimLeadingSpace bool
}

// The footnote marker appears as two marker-classed tokens: the first arms
// the state machine and renders nothing, the second carries the visible
// index label and resolves it against the footnote table.
type fnState int

const (
	fnAwaitMarker fnState = iota
	fnAwaitLabel
)

// walker holds the state for one conversion: the pre-built footnote table
// and the footnote-marker state machine. Never shared between conversions.
type walker struct {
	footnotes FootnoteTable
	fn        fnState
}

// visit renders a subtree bottom-up and returns its Result.
func (w *walker) visit(n *html.Node) Result {
	if n.Type == html.TextNode {
		return Result{Text: CollapseWhitespace(n.Data)}
	}
	if n.Type != html.ElementNode && n.Type != html.DocumentNode {
		return Result{}
	}

	if n.Data == "br" {
		return Result{Text: `\\`, TrimLeadingSpace: true}
	}

	// Accumulate children left to right, honoring trim requests between
	// siblings and tracking the largest font size seen.
	size := nodeFontSize(n)
	var b strings.Builder
	trim := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r := w.visit(c)
		t := r.Text
		if trim {
			t = strings.TrimLeft(t, " \t")
		}
		trim = r.TrimLeadingSpace
		b.WriteString(t)
		if r.FontSize > size {
			size = r.FontSize
		}
	}
	text := b.String()

	if strings.TrimSpace(text) == "" && !isFootnoteMarker(n) {
		return Result{}
	}

	switch n.Data {
	case "i", "em":
		return Result{Text: `\textit{` + text + `}`, FontSize: size}
	case "b", "strong":
		if size < bodyFontSize {
			return Result{Text: `\textbf{` + text + `}`, FontSize: size}
		}
		return Result{Text: text, FontSize: size}
	case "code", "tt":
		return Result{Text: `\texttt{` + text + `}`, FontSize: size}
	}

	if isFootnoteMarker(n) {
		switch w.fn {
		case fnAwaitMarker:
			w.fn = fnAwaitLabel
			return Result{}
		default:
			w.fn = fnAwaitMarker
			index := strings.Trim(strings.TrimSpace(text), "[]")
			// Unknown indexes resolve to empty text; the walk goes on.
			return Result{Text: w.footnotes[index], FontSize: size}
		}
	}

	if family := nodeFontFamily(n); family != "" &&
		strings.Contains(strings.ToLower(family), monospaceFamily) {
		return Result{Text: `\texttt{` + text + `}`, FontSize: size}
	}

	return Result{Text: text, FontSize: size}
}

// isFootnoteMarker reports whether a node is one token of a footnote
// reference. Covers the Word export class and the Writer anchor class.
func isFootnoteMarker(n *html.Node) bool {
	class := strings.ToLower(attr(n, "class"))
	return strings.Contains(class, "msofootnotereference") ||
		strings.Contains(class, "sdfootnoteanc")
}
