package template

import "regexp"

var (
	wrappedTokenRe  = regexp.MustCompile(`\(\[\w*\]\)`)
	emptyParensRe   = regexp.MustCompile(`\(\s*\)`)
	emptyLabelRe    = regexp.MustCompile(`\[\w+\]:\s*\n`)
	emptyLabelEndRe = regexp.MustCompile(`\[\w+\]:\s*$`)
)

// Cleanup strips placeholder debris from a rendered body: parenthesised
// leftover tokens, empty parentheses, and "[TOKEN]:" label lines with no
// value. Passes repeat until nothing changes, so Cleanup(Cleanup(s)) ==
// Cleanup(s).
func Cleanup(s string) string {
	for {
		next := cleanupPass(s)
		if next == s {
			return s
		}
		s = next
	}
}

func cleanupPass(s string) string {
	s = wrappedTokenRe.ReplaceAllLiteralString(s, "()")
	s = emptyParensRe.ReplaceAllLiteralString(s, "")
	s = emptyLabelRe.ReplaceAllLiteralString(s, "")
	return emptyLabelEndRe.ReplaceAllLiteralString(s, "")
}
