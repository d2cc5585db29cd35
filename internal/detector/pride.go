package detector

import (
	"math"
	"strings"
	"time"

	"github.com/dueloapp/duelo/internal/chat"
)

// Pride measures post-conflict stubbornness for person, scoped to messages
// at or after cutoff. A two-state tracker follows the conversation: an
// aggressive message opens a conflict window, a short run of normal-looking
// messages closes it. The exit heuristic is approximate and can mis-segment
// overlapping disputes.
func Pride(messages []chat.Message, person, other string, cutoff time.Time, lex Lexicon) PrideMetrics {
	var recent []chat.Message
	for _, m := range messages {
		if !m.Timestamp.Before(cutoff) {
			recent = append(recent, m)
		}
	}

	var m PrideMetrics
	var silentHours float64

	inConflict := false
	conflictStart := -1

	for i, msg := range recent {
		content := strings.ToLower(strings.TrimSpace(msg.Content))

		if isAggressive(msg.Content, lex) {
			inConflict = true
			conflictStart = i
		}

		if inConflict && msg.Sender == person {
			if anyMatch(lex.ShortResponse, content) {
				m.ShortResponsesAfterFight++
			}

			if len([]rune(content)) <= 10 && !containsAffection(content, lex.Affection) {
				m.ColdResponses++
			}

			if i > 0 && recent[i-1].Sender == other {
				prev := recent[i-1]

				// A short or dismissive reply to an apology counts
				// as refusing it.
				if anyMatch(lex.Apology, prev.Content) {
					if anyMatch(lex.ShortResponse, content) || len([]rune(content)) <= 5 {
						m.RefusedApologies++
					}
				}

				if i > conflictStart {
					if gap := msg.Timestamp.Sub(prev.Timestamp).Hours(); gap >= 6 {
						silentHours += gap
					}
				}
			}
		}

		// Close the window once recent messages look normal again, then
		// settle who apologised first inside it.
		if inConflict && i > conflictStart+5 && i >= 3 {
			normal := 0
			for _, prev := range recent[i-3 : i] {
				if len([]rune(prev.Content)) > 20 && !anyMatch(lex.ShortResponse, strings.ToLower(strings.TrimSpace(prev.Content))) {
					normal++
				}
			}

			if normal >= 2 {
				personApologized, otherApologized := false, false
				for _, cm := range recent[conflictStart:i] {
					if !anyMatch(lex.Apology, cm.Content) {
						continue
					}
					switch cm.Sender {
					case person:
						personApologized = true
					case other:
						otherApologized = true
					}
				}
				if otherApologized && !personApologized {
					m.LastToApologize++
				}
				inConflict = false
			}
		}
	}

	m.SilentTreatmentHours = int(math.Round(silentHours))
	m.TotalPrideScore = m.ShortResponsesAfterFight*10 +
		m.SilentTreatmentHours*5 +
		m.RefusedApologies*20 +
		m.ColdResponses*8 +
		m.LastToApologize*30

	return m
}

func containsAffection(content string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(content, marker) {
			return true
		}
	}
	return false
}
