package latex

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s{2,}`)

// CollapseWhitespace folds a raw text run into single-spaced text: newlines
// become spaces, then any run of two or more whitespace characters becomes
// one space. Leading/trailing space is kept; trimming happens at block
// boundaries, where the caller knows whether a space is significant.
func CollapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return whitespaceRun.ReplaceAllString(s, " ")
}
