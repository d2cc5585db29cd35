package detector

import (
	"strings"

	"github.com/dueloapp/duelo/internal/chat"
)

// Conflict measures who opens and escalates hostile exchanges. An initiation
// is an aggressive message from person whose immediately preceding message,
// from anyone, was not itself aggressive.
func Conflict(messages []chat.Message, person string, lex Lexicon) ConflictMetrics {
	var m ConflictMetrics

	for i, msg := range messages {
		if msg.Sender != person {
			continue
		}

		if isAggressive(msg.Content, lex) {
			if i == 0 || !isAggressive(messages[i-1].Content, lex) {
				m.ConflictInitiations++
			}
		}

		if isShouting(msg.Content) {
			m.CapsMessages++
		}
		if strings.Count(msg.Content, "!") >= 3 {
			m.ExclamationOveruse++
		}
		if anyMatch(lex.Aggressive, msg.Content) {
			m.AggressiveKeywords++
		}
		if anyMatch(lex.PassiveAggressive, msg.Content) {
			m.PassiveAggressive++
		}
		if anyMatch(lex.NeedToTalk, msg.Content) {
			m.NeedToTalk++
		}
		if anyMatch(lex.Accusation, msg.Content) {
			m.Accusations++
		}
		if anyMatch(lex.Demand, msg.Content) {
			m.Demands++
		}
	}

	m.TotalScore = m.ConflictInitiations*5 +
		m.CapsMessages*3 +
		m.ExclamationOveruse*2 +
		m.AggressiveKeywords*3 +
		m.PassiveAggressive*4 +
		m.NeedToTalk*5 +
		m.Accusations*4 +
		m.Demands*3

	return m
}
