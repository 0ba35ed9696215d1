package latex

import (
	"regexp"
	"strings"
)

// A refPattern recognizes natural-language cross-references for one keyword
// family ("figure 3", "sections 1.2 and 1.3") and rewrites them into typed
// \ref tokens. Patterns are stateless and shared across every block.
type refPattern struct {
	name   string
	prefix string
	single *regexp.Regexp
	pair   *regexp.Regexp
	oxford *regexp.Regexp
}

// ident matches a reference target: word characters with internal hyphens,
// dotted numbering, or a file extension ("a.png", "setup-phase", "2.3.1").
// A trailing sentence period is never consumed.
const ident = `[\w-]+(?:\.[\w-]+)*`

func newRefPattern(name, keywords, prefix string) refPattern {
	return refPattern{
		name:   name,
		prefix: prefix,
		single: regexp.MustCompile(`(?i)\b(` + keywords + `) (` + ident + `)`),
		pair:   regexp.MustCompile(`(?i)\b(` + keywords + `) (` + ident + `) (and|or) (` + ident + `)`),
		oxford: regexp.MustCompile(`(?i)\b(` + keywords + `) ((?:` + ident + `, )+)(and|or) (` + ident + `)`),
	}
}

var refPatterns = []refPattern{
	newRefPattern("figures", `figures?`, "fig"),
	newRefPattern("sections", `sections?|chapters?`, "sec"),
	newRefPattern("listings", `listings?`, "lst"),
}

// refKeywords holds every keyword any pattern can trigger on. Used to catch
// the misfire where the pair grammar captures a keyword used as a plain noun
// as its second target ("figure 3 and section 2 shows...").
var refKeywords = map[string]bool{
	"figure": true, "figures": true,
	"section": true, "sections": true,
	"chapter": true, "chapters": true,
	"listing": true, "listings": true,
}

func (p refPattern) ref(target string) string {
	return `\ref{` + p.prefix + ":" + target + "}"
}

// rewriteRefs applies this pattern's grammars from most to least specific.
// The Oxford list must run before the pair grammar and the pair before the
// single, so a longer match is never dismembered by a shorter one.
func (p refPattern) rewriteRefs(s string) string {
	s = p.oxford.ReplaceAllStringFunc(s, func(m string) string {
		sub := p.oxford.FindStringSubmatch(m)
		keyword, head, conj, last := sub[1], sub[2], sub[3], sub[4]
		var b strings.Builder
		b.WriteString(keyword)
		b.WriteByte(' ')
		for _, item := range strings.Split(strings.TrimSuffix(head, ", "), ", ") {
			b.WriteString(p.ref(item))
			b.WriteString(", ")
		}
		b.WriteString(conj)
		b.WriteByte(' ')
		b.WriteString(p.ref(last))
		return b.String()
	})
	s = p.pair.ReplaceAllStringFunc(s, func(m string) string {
		sub := p.pair.FindStringSubmatch(m)
		keyword, first, conj, second := sub[1], sub[2], sub[3], sub[4]
		if refKeywords[strings.ToLower(second)] {
			// "and section" here is a noun, not a second target.
			return keyword + " " + p.ref(first) + " " + conj + " " + second
		}
		return keyword + " " + p.ref(first) + " " + conj + " " + p.ref(second)
	})
	return p.single.ReplaceAllStringFunc(s, func(m string) string {
		sub := p.single.FindStringSubmatch(m)
		return sub[1] + " " + p.ref(sub[2])
	})
}

var (
	citation      = regexp.MustCompile(`\[([\w][\w ,-]*)\]`)
	protectedSpan = regexp.MustCompile(`\\(?:ref|cite|url|footnote)\{[^}]*\}`)
)

// The rewrite stages run in a fixed order. Invariant: a stage's output must
// not contain anything an earlier stage matches, and underscore escaping runs
// last so it never mangles the tokens the other stages emit.
var rewriteStages = []struct {
	name string
	fn   func(string) string
}{
	{"dashes", rewriteDashes},
	{"citations", rewriteCitations},
	{"references", rewriteReferences},
	{"underscores", escapeUnderscores},
}

// RewriteText runs the full rewrite pipeline over one block of body text.
// Headings and list markers must not pass through here.
func RewriteText(s string) string {
	for _, stage := range rewriteStages {
		s = stage.fn(s)
	}
	return s
}

func rewriteDashes(s string) string {
	return strings.ReplaceAll(s, " – ", "---")
}

func rewriteCitations(s string) string {
	return citation.ReplaceAllString(s, `\cite{$1}`)
}

func rewriteReferences(s string) string {
	for _, p := range refPatterns {
		s = p.rewriteRefs(s)
	}
	return s
}

// escapeUnderscores escapes underscores outside the \ref/\cite spans the
// earlier stages produced (and the \url/\footnote markup the walker inserts),
// so the typesetter does not read them as math.
func escapeUnderscores(s string) string {
	if !strings.Contains(s, "_") {
		return s
	}
	var b strings.Builder
	last := 0
	for _, loc := range protectedSpan.FindAllStringIndex(s, -1) {
		b.WriteString(strings.ReplaceAll(s[last:loc[0]], "_", `\_`))
		b.WriteString(s[loc[0]:loc[1]])
		last = loc[1]
	}
	b.WriteString(strings.ReplaceAll(s[last:], "_", `\_`))
	return b.String()
}
