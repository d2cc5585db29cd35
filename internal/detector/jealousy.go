package detector

import (
	"strings"

	"github.com/dueloapp/duelo/internal/chat"
)

// Jealousy counts insecurity signals in person's own messages. Weights
// reflect how directly each signal proves relationship insecurity;
// companion-questions weigh highest.
func Jealousy(messages []chat.Message, person string, lex Lexicon) JealousyMetrics {
	var m JealousyMetrics

	for _, msg := range messages {
		if msg.Sender != person {
			continue
		}
		content := strings.ToLower(msg.Content)

		if anyMatch(lex.Location, content) {
			m.LocationQuestions++
		}
		if anyMatch(lex.Companion, content) {
			m.CompanionQuestions++
		}
		if anyMatch(lex.TimeAsk, content) {
			m.TimeQuestions++
		}
		// Two or more possessives in one message reads as overuse.
		if len(lex.Possessive.FindAllString(content, -1)) >= 2 {
			m.PossessivePhrases++
		}
		if anyMatch(lex.Suspicious, content) {
			m.SuspiciousTone++
		}
		if anyMatch(lex.Demanding, content) {
			m.DemandingMessages++
		}
	}

	// Three consecutive messages with no interleaved reply signal
	// double-texting.
	for i := 0; i+2 < len(messages); i++ {
		if messages[i].Sender == person &&
			messages[i+1].Sender == person &&
			messages[i+2].Sender == person {
			m.DoubleTexting++
		}
	}

	m.TotalScore = m.LocationQuestions*3 +
		m.CompanionQuestions*4 +
		m.TimeQuestions*2 +
		m.PossessivePhrases*2 +
		m.SuspiciousTone*1 +
		m.DemandingMessages*3 +
		m.DoubleTexting*2

	return m
}
