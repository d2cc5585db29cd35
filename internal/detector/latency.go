package detector

import (
	"math"
	"time"

	"github.com/dueloapp/duelo/internal/chat"
)

// ResponseTime measures how long person takes to reply to other, scoped to
// messages at or after cutoff. The recency bias keeps old behaviour from
// dominating current standing.
func ResponseTime(messages []chat.Message, person, other string, cutoff time.Time) ResponseTimeMetrics {
	var recent []chat.Message
	for _, m := range messages {
		if !m.Timestamp.Before(cutoff) {
			recent = append(recent, m)
		}
	}

	var delays []float64 // minutes
	var m ResponseTimeMetrics

	for i := 0; i+1 < len(recent); i++ {
		cur, next := recent[i], recent[i+1]
		if cur.Sender != other || next.Sender != person {
			continue
		}

		delayMinutes := next.Timestamp.Sub(cur.Timestamp).Minutes()
		delayHours := delayMinutes / 60
		delays = append(delays, delayMinutes)

		if delayHours > m.LongestDelayHours {
			m.LongestDelayHours = delayHours
		}
		if delayHours >= 24 {
			m.MessagesIgnored++
		}

		// Ignoring a late-night message for 6h+ counts separately.
		hour := cur.Timestamp.Hour()
		if (hour >= 23 || hour <= 7) && delayHours >= 6 {
			m.LateNightIgnores++
		}
	}

	var avg float64
	for _, d := range delays {
		avg += d
	}
	if len(delays) > 0 {
		avg /= float64(len(delays))
	}

	score := avg*0.5 +
		m.LongestDelayHours*10 +
		float64(m.MessagesIgnored)*50 +
		float64(m.LateNightIgnores)*30

	m.AverageResponseMinutes = int(math.Round(avg))
	m.LongestDelayHours = math.Round(m.LongestDelayHours*10) / 10
	m.TotalDelayScore = int(math.Round(score))

	return m
}
