package detector

import (
	"math"

	"github.com/dueloapp/duelo/internal/chat"
)

// Ghosting finds runs of messages from other that person only answered 24h
// or later after the run started. Full history, no recency cutoff.
func Ghosting(messages []chat.Message, person, other string) GhostingMetrics {
	var m GhostingMetrics
	var ghostHours []float64

	for i := 0; i+1 < len(messages); i++ {
		if messages[i].Sender != other {
			continue
		}

		// Count the counterpart's consecutive unanswered messages.
		run := 1
		j := i + 1
		for j < len(messages) && messages[j].Sender == other {
			run++
			j++
		}

		if j < len(messages) && messages[j].Sender == person {
			delayHours := messages[j].Timestamp.Sub(messages[i].Timestamp).Hours()
			if delayHours >= 24 {
				m.GhostingEpisodes++
				ghostHours = append(ghostHours, delayHours)
				m.MessagesBeforeResponse += run

				if days := delayHours / 24; days > m.LongestGhostDays {
					m.LongestGhostDays = days
				}
			}
		}
	}

	var avg float64
	for _, h := range ghostHours {
		avg += h
	}
	if len(ghostHours) > 0 {
		avg /= float64(len(ghostHours))
	}

	score := m.LongestGhostDays*100 +
		float64(m.GhostingEpisodes)*50 +
		avg*5 +
		float64(m.MessagesBeforeResponse)*10

	m.LongestGhostDays = math.Round(m.LongestGhostDays*10) / 10
	m.AverageGhostHours = math.Round(avg*10) / 10
	m.TotalGhostScore = int(math.Round(score))

	return m
}
