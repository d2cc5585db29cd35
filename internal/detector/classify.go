package detector

import (
	"regexp"
	"strings"
)

var capsRun = regexp.MustCompile(`[A-Z]{10,}`)

// isAggressive is the shared hostile-message classification used by the
// conflict and pride detectors: shouting in caps, exclamation overuse,
// aggressive keywords, or passive-aggressive dismissals.
func isAggressive(content string, lex Lexicon) bool {
	if isShouting(content) {
		return true
	}
	if strings.Count(content, "!") >= 3 {
		return true
	}
	if anyMatch(lex.Aggressive, content) {
		return true
	}
	return anyMatch(lex.PassiveAggressive, content)
}

// isShouting reports an all-caps body longer than 10 characters. The caps-run
// requirement keeps numeric or emoji-heavy bodies from counting.
func isShouting(content string) bool {
	return len(content) > 10 &&
		content == strings.ToUpper(content) &&
		capsRun.MatchString(content)
}
