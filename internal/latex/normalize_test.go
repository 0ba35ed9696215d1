package latex

import "testing"

func TestCollapseWhitespace_NewlinesBecomeSpaces(t *testing.T) {
	got := CollapseWhitespace("one\ntwo\nthree")
	if got != "one two three" {
		t.Errorf("expected %q, got %q", "one two three", got)
	}
}

func TestCollapseWhitespace_RunsCollapse(t *testing.T) {
	got := CollapseWhitespace("a  b\t\tc   \n d")
	if got != "a b c d" {
		t.Errorf("expected %q, got %q", "a b c d", got)
	}
}

func TestCollapseWhitespace_KeepsSingleBoundarySpaces(t *testing.T) {
	// Trimming is the caller's job at block boundaries.
	got := CollapseWhitespace(" padded ")
	if got != " padded " {
		t.Errorf("expected %q, got %q", " padded ", got)
	}
}

func TestCollapseWhitespace_Idempotent(t *testing.T) {
	inputs := []string{
		"plain text",
		"a\nb  c",
		"  leading and trailing\t",
		"",
	}
	for _, in := range inputs {
		once := CollapseWhitespace(in)
		twice := CollapseWhitespace(once)
		if once != twice {
			t.Errorf("not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
