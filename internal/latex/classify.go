package latex

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// headingRule maps one heading font size to its sectioning macro, the prefix
// to strip from the heading text, and the label namespace for that prefix.
// The label namespaces match what the reference resolver emits, so a
// converted "section 1.2" actually resolves against a converted heading.
type headingRule struct {
	macro       string
	prefix      *regexp.Regexp
	labelPrefix string
}

var (
	chapterPrefix = regexp.MustCompile(`(?i)^chapter\s+(\d+)[.:]?\s*`)
	numeralPrefix = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+`)
)

var headingRules = map[int]headingRule{
	18: {macro: "chapter", prefix: chapterPrefix, labelPrefix: "chap"},
	16: {macro: "section", prefix: numeralPrefix, labelPrefix: "sec"},
	14: {macro: "subsection", prefix: numeralPrefix, labelPrefix: "sec"},
	12: {macro: "subsubsection"},
}

// renderHeading emits the sectioning command for a block whose font size
// matched a heading rule, stripping any leading numbering into a \label.
func renderHeading(text string, rule headingRule) string {
	label := ""
	if rule.prefix != nil {
		if m := rule.prefix.FindStringSubmatch(text); m != nil {
			text = text[len(m[0]):]
			label = m[1]
		}
	}
	out := `\` + rule.macro + `{` + strings.TrimSpace(text) + `}`
	if label != "" {
		out += ` \label{` + rule.labelPrefix + ":" + label + `}`
	}
	return out + "\n\n"
}

// listPos is a root block's position in a list run, taken from the
// word-processor's structural class tag.
type listPos int

const (
	listNone listPos = iota
	listFirst
	listMiddle
	listLast
	// listSolo is a one-paragraph list: the export drops the CxSp suffix
	// when a list has a single item.
	listSolo
)

func listPosition(n *html.Node) listPos {
	class := attr(n, "class")
	switch {
	case strings.Contains(class, "CxSpFirst"):
		return listFirst
	case strings.Contains(class, "CxSpMiddle"):
		return listMiddle
	case strings.Contains(class, "CxSpLast"):
		return listLast
	case strings.Contains(class, "MsoListParagraph"):
		return listSolo
	}
	return listNone
}

// bulletPrefix matches the bullet glyph (plus surrounding padding) that the
// export leaves at the front of each list item's text.
var bulletPrefix = regexp.MustCompile(`^[\s` + "\u00a0" + `]*[·•o§*-]+[\s` + "\u00a0" + `]+`)

func stripBullet(s string) string {
	return bulletPrefix.ReplaceAllString(s, "")
}

// ListMode controls how the assembler reacts to list class tags arriving out
// of order (a middle or last with no open first).
type ListMode int

const (
	// ListModeIgnore keeps the historical lenient behavior: emit locally
	// correct markup and trust the input's ordering.
	ListModeIgnore ListMode = iota
	// ListModeWarn logs each inconsistency and continues.
	ListModeWarn
	// ListModeFail aborts the conversion on the first inconsistency.
	ListModeFail
)

// ParseListMode maps a configuration string onto a ListMode.
func ParseListMode(s string) (ListMode, error) {
	switch s {
	case "", "ignore":
		return ListModeIgnore, nil
	case "warn":
		return ListModeWarn, nil
	case "fail":
		return ListModeFail, nil
	}
	return ListModeIgnore, fmt.Errorf("unknown list validation mode %q", s)
}

// ListAssembler turns first/middle/last tagged blocks into one itemize
// environment. It tracks whether a list is currently open, which the class
// tags alone never did.
type ListAssembler struct {
	mode ListMode
	log  *slog.Logger
	open bool
}

func NewListAssembler(mode ListMode, log *slog.Logger) *ListAssembler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ListAssembler{mode: mode, log: log}
}

// Item renders one list block. pos must not be listNone.
func (a *ListAssembler) Item(pos listPos, text string) (string, error) {
	if err := a.check(pos); err != nil {
		return "", err
	}
	item := `\item ` + stripBullet(text) + "\n"
	switch pos {
	case listFirst:
		a.open = true
		return "\\begin{itemize}\n" + item, nil
	case listLast:
		a.open = false
		return item + "\\end{itemize}\n\n", nil
	case listSolo:
		return "\\begin{itemize}\n" + item + "\\end{itemize}\n\n", nil
	}
	return item, nil
}

// Close terminates a list left open at end of input, so the output is always
// balanced even when the final item carries no closing class tag.
func (a *ListAssembler) Close() string {
	if !a.open {
		return ""
	}
	a.open = false
	if a.mode == ListModeWarn {
		a.log.Warn("inconsistent list structure", "problem", "list still open at end of document")
	}
	return "\\end{itemize}\n\n"
}

func (a *ListAssembler) check(pos listPos) error {
	var problem string
	switch {
	case (pos == listFirst || pos == listSolo) && a.open:
		problem = "list opened while a list is already open"
	case (pos == listMiddle || pos == listLast) && !a.open:
		problem = "list item outside an open list"
	default:
		return nil
	}
	switch a.mode {
	case ListModeFail:
		return fmt.Errorf("inconsistent list structure: %s", problem)
	case ListModeWarn:
		a.log.Warn("inconsistent list structure", "problem", problem)
	}
	return nil
}

// classifyBlock renders one root-level block. Headings are recognized first,
// by font size, and skip every later transform; everything else gets the
// rewrite pipeline, then either joins a list run or stands as a paragraph.
func classifyBlock(n *html.Node, r Result, lists *ListAssembler) (string, error) {
	text := strings.TrimSpace(r.Text)
	if text == "" {
		return "", nil
	}

	if rule, ok := headingRules[r.FontSize]; ok {
		return renderHeading(text, rule), nil
	}

	text = RewriteText(text)

	if pos := listPosition(n); pos != listNone {
		return lists.Item(pos, text)
	}
	return text + "\n\n", nil
}
