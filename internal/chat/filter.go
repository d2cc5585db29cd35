package chat

import (
	"math"
	"strings"
	"unicode"
)

// Filter removes low-information messages before the reasoning call while
// never discarding emotionally or contextually salient content. Pure
// function: the input slice is not modified.
func Filter(messages []Message) FilterResult {
	return FilterWithLexicon(messages, DefaultFilterLexicon)
}

// FilterWithLexicon is Filter with a custom lexicon.
func FilterWithLexicon(messages []Message, lex FilterLexicon) FilterResult {
	originalCount := len(messages)

	var filtered []Message
	for _, msg := range messages {
		if keep(msg, lex) {
			filtered = append(filtered, msg)
		}
	}

	retention := 0
	if originalCount > 0 {
		retention = int(math.Round(100 * float64(len(filtered)) / float64(originalCount)))
	}

	return FilterResult{
		Filtered:      filtered,
		Removed:       originalCount - len(filtered),
		RetentionRate: retention,
		OriginalCount: originalCount,
	}
}

func keep(msg Message, lex FilterLexicon) bool {
	content := strings.ToLower(strings.TrimSpace(msg.Content))

	if content == "" {
		return false
	}

	// Very short emoji-only bodies carry no analysable signal.
	if len([]rune(content)) < 3 && emojiOnly(content) {
		return false
	}

	for _, kw := range lex.Emotional {
		if strings.Contains(content, kw) {
			return true
		}
	}
	for _, noun := range lex.Nouns {
		if strings.Contains(content, noun) {
			return true
		}
	}

	// Questions signal engagement.
	if strings.Contains(content, "?") {
		return true
	}

	// Long messages carry context even without keyword hits.
	if len(strings.Fields(content)) >= 10 {
		return true
	}

	for _, g := range lex.Generic {
		if content == g {
			return false
		}
	}

	// Bias toward retention when no rule clearly fires.
	return true
}

func emojiOnly(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		if r < 0x2190 { // below the symbol/pictograph blocks
			return false
		}
	}
	return true
}
