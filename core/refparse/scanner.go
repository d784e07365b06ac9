package refparse

import (
	"regexp"
	"strings"

	"github.com/FocuswithJustin/pericope/core/pericope"
)

// tokenPattern matches a book-code-shaped token (three letters, or a digit
// and two letters) followed by a run of digits, colons, commas, and dashes.
// Word boundaries keep code-shaped substrings inside longer words from
// matching.
var tokenPattern = regexp.MustCompile(`\b(\d[A-Za-z]{2}|[A-Za-z]{3})\b\s+([0-9][0-9:,\-]*)`)

// Scan extracts every parseable reference from free text. Each candidate
// match is parsed independently; a candidate that fails for any reason is
// silently skipped so one malformed citation does not abort extraction of
// the valid ones. This is the sole catch-and-skip site in the codebase.
func Scan(text string) []*pericope.Pericope {
	var found []*pericope.Pericope
	for _, m := range tokenPattern.FindAllStringSubmatch(text, -1) {
		candidate := m[1] + " " + strings.TrimRight(m[2], ":,-")
		p, err := Parse(candidate)
		if err != nil {
			continue
		}
		found = append(found, p)
	}
	return found
}
