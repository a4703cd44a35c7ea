package textnorm

import (
	"regexp"
	"strings"
)

var (
	hspaceRun  = regexp.MustCompile(`[ \t]+`)
	newlineRun = regexp.MustCompile(`\n{2,}`)
)

// Normalize canonicalizes whitespace in raw extracted document text so that
// downstream layout patterns can assume single-spaced, single-blank-line input.
// Non-breaking spaces become ordinary spaces, runs of spaces/tabs collapse to
// one space, runs of newlines collapse to one newline, and the result is
// trimmed. Empty input yields an empty string. Applying Normalize twice is the
// same as applying it once.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.ReplaceAll(raw, "\u00a0", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = hspaceRun.ReplaceAllString(s, " ")
	s = newlineRun.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
