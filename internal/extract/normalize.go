package extract

import (
	"regexp"
	"strings"
)

var (
	reSpaceRun = regexp.MustCompile(`[ \t\v\f]+`)
	reNonPrint = regexp.MustCompile("[^\x20-\x7e\n\r]")
	reCRLF     = regexp.MustCompile(`\r\n?`)
)

// Normalize cleans raw OCR text into canonical form: whitespace runs
// collapse to a single space, characters outside printable ASCII
// (newline and carriage return excepted) are dropped, line endings
// unify to \n, and the result is trimmed. Line structure survives —
// the category extractors are line-oriented. Pure and idempotent.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	s := reSpaceRun.ReplaceAllString(raw, " ")
	s = reNonPrint.ReplaceAllString(s, "")
	s = reCRLF.ReplaceAllString(s, "\n")
	// trim per-line so trailing spaces never reach the line-anchored rules
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	return strings.TrimSpace(s)
}
