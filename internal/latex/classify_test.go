package latex

import (
	"strings"
	"testing"
)

func classifyFragment(t *testing.T, fragment string) string {
	t.Helper()
	n := parseBlock(t, fragment)
	w := &walker{}
	out, err := classifyBlock(n, w.visit(n), NewListAssembler(ListModeIgnore, nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return out
}

func TestClassify_SectionHeadingWithLabel(t *testing.T) {
	got := classifyFragment(t, `<p style="font-size:16pt">1.2 Background</p>`)
	want := `\section{Background} \label{sec:1.2}` + "\n\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestClassify_ChapterHeading(t *testing.T) {
	got := classifyFragment(t, `<p style="font-size:18pt">Chapter 4: Results</p>`)
	want := `\chapter{Results} \label{chap:4}` + "\n\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestClassify_SubsectionHeading(t *testing.T) {
	got := classifyFragment(t, `<p style="font-size:14pt">2.3.1 Setup</p>`)
	want := `\subsection{Setup} \label{sec:2.3.1}` + "\n\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestClassify_SubsubsectionHasNoLabel(t *testing.T) {
	got := classifyFragment(t, `<p style="font-size:12pt">Implementation notes</p>`)
	want := `\subsubsection{Implementation notes}` + "\n\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestClassify_HeadingWithoutNumberKeepsText(t *testing.T) {
	got := classifyFragment(t, `<p style="font-size:16pt">Related Work</p>`)
	want := `\section{Related Work}` + "\n\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestClassify_HeadingSkipsTextRewrites(t *testing.T) {
	// The dash and reference rules must not fire inside headings.
	got := classifyFragment(t, `<p style="font-size:16pt">3 Alpha – Beta</p>`)
	want := `\section{Alpha – Beta} \label{sec:3}` + "\n\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestClassify_PlainParagraphGetsSeparator(t *testing.T) {
	got := classifyFragment(t, "<p>Just a paragraph.</p>")
	if got != "Just a paragraph.\n\n" {
		t.Errorf("expected trailing blank line, got %q", got)
	}
}

func TestClassify_ParagraphTextIsRewritten(t *testing.T) {
	got := classifyFragment(t, "<p>see figure a.png now</p>")
	want := `see figure \ref{fig:a.png} now` + "\n\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestClassify_EmptyBlockSkipped(t *testing.T) {
	if got := classifyFragment(t, "<p>   </p>"); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestListAssembler_FullRun(t *testing.T) {
	a := NewListAssembler(ListModeIgnore, nil)
	var out strings.Builder
	items := []struct {
		pos  listPos
		text string
	}{
		{listFirst, "· alpha"},
		{listMiddle, "· beta"},
		{listLast, "· gamma"},
	}
	for _, it := range items {
		s, err := a.Item(it.pos, it.text)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		out.WriteString(s)
	}
	want := "\\begin{itemize}\n\\item alpha\n\\item beta\n\\item gamma\n\\end{itemize}\n\n"
	if out.String() != want {
		t.Errorf("expected %q, got %q", want, out.String())
	}
}

func TestListAssembler_StripsBulletGlyphs(t *testing.T) {
	a := NewListAssembler(ListModeIgnore, nil)
	s, err := a.Item(listFirst, "•  bullet text")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(s, "•") {
		t.Errorf("bullet glyph left in item: %q", s)
	}
	if !strings.Contains(s, `\item bullet text`) {
		t.Errorf("expected clean item text, got %q", s)
	}
}

func TestListAssembler_BulletNotStrippedFromWords(t *testing.T) {
	a := NewListAssembler(ListModeIgnore, nil)
	s, err := a.Item(listFirst, "only lowercase o starts this")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s, "only lowercase") {
		t.Errorf("word-initial o must not be treated as a bullet: %q", s)
	}
}

func TestListAssembler_CloseBalancesUnterminatedList(t *testing.T) {
	a := NewListAssembler(ListModeIgnore, nil)
	if _, err := a.Item(listFirst, "· alpha"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := a.Close(); got != "\\end{itemize}\n\n" {
		t.Errorf("expected closing tag, got %q", got)
	}
	if got := a.Close(); got != "" {
		t.Errorf("second close must be a no-op, got %q", got)
	}
}

func TestListAssembler_CloseAfterCompleteRunIsNoop(t *testing.T) {
	a := NewListAssembler(ListModeIgnore, nil)
	if _, err := a.Item(listSolo, "· only"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := a.Close(); got != "" {
		t.Errorf("expected no output, got %q", got)
	}
}

func TestListAssembler_FailModeOnOrphanItem(t *testing.T) {
	a := NewListAssembler(ListModeFail, nil)
	if _, err := a.Item(listMiddle, "· stray"); err == nil {
		t.Error("expected error for middle item with no open list")
	}
}

func TestListAssembler_IgnoreModeAllowsOrphanItem(t *testing.T) {
	a := NewListAssembler(ListModeIgnore, nil)
	s, err := a.Item(listLast, "· stray")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(s, `\end{itemize}`) {
		t.Errorf("lenient mode should still close the list: %q", s)
	}
}
