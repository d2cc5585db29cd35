// Package detector computes per-participant behavioural metrics from a
// parsed conversation. The five detectors are pure and independent: each
// reads the same immutable message sequence and writes its own record, so
// they can run in any order.
package detector

import (
	"fmt"
	"time"

	"github.com/dueloapp/duelo/internal/chat"
)

// DetectAll runs every detector for both participants and bundles the
// results with the filtered transcript the interpreter hands to the
// reasoning call. now is injected so recency windows are deterministic under
// test.
func DetectAll(conv *chat.ParsedConversation, now time.Time, w Windows, lex Lexicon, flex chat.FilterLexicon) RawBattleMetrics {
	person1 := conv.Participants[0]
	person2 := conv.Participants[1]

	latencyCutoff := now.AddDate(0, -w.LatencyMonths, 0)
	prideCutoff := now.AddDate(0, -w.PrideMonths, 0)

	filter := chat.FilterWithLexicon(conv.Messages, flex)

	return RawBattleMetrics{
		Jealousy: JealousyPair{
			Person1: Jealousy(conv.Messages, person1, lex),
			Person2: Jealousy(conv.Messages, person2, lex),
		},
		Conflicts: ConflictPair{
			Person1: Conflict(conv.Messages, person1, lex),
			Person2: Conflict(conv.Messages, person2, lex),
		},
		ResponseTime: ResponseTimePair{
			Person1: ResponseTime(conv.Messages, person1, person2, latencyCutoff),
			Person2: ResponseTime(conv.Messages, person2, person1, latencyCutoff),
		},
		Ghosting: GhostingPair{
			Person1: Ghosting(conv.Messages, person1, person2),
			Person2: Ghosting(conv.Messages, person2, person1),
		},
		Pride: PridePair{
			Person1: Pride(conv.Messages, person1, person2, prideCutoff, lex),
			Person2: Pride(conv.Messages, person2, person1, prideCutoff, lex),
		},
		FilteredMessages: filter.Filtered,
		Metadata: Metadata{
			TotalMessages:       conv.TotalMessages,
			ConversationDays:    int(conv.EndDate.Sub(conv.StartDate).Hours() / 24),
			AnalyzedPeriod:      fmt.Sprintf("%s - %s", conv.StartDate.Format("02/01/2006"), conv.EndDate.Format("02/01/2006")),
			FilteredCount:       len(filter.Filtered),
			ReductionPercentage: 100 - filter.RetentionRate,
		},
	}
}
