package detector

import "github.com/dueloapp/duelo/internal/chat"

// Metric scores are weighted integers for relative ranking between the two
// participants, not absolute units.

type JealousyMetrics struct {
	LocationQuestions  int `json:"location_questions"`
	CompanionQuestions int `json:"companion_questions"`
	TimeQuestions      int `json:"time_questions"`
	PossessivePhrases  int `json:"possessive_phrases"`
	SuspiciousTone     int `json:"suspicious_tone"`
	DemandingMessages  int `json:"demanding_messages"`
	DoubleTexting      int `json:"double_texting"`
	TotalScore         int `json:"total_score"`
}

type ConflictMetrics struct {
	ConflictInitiations int `json:"conflict_initiations"`
	CapsMessages        int `json:"caps_messages"`
	ExclamationOveruse  int `json:"exclamation_overuse"`
	AggressiveKeywords  int `json:"aggressive_keywords"`
	PassiveAggressive   int `json:"passive_aggressive"`
	NeedToTalk          int `json:"need_to_talk"`
	Accusations         int `json:"accusations"`
	Demands             int `json:"demands"`
	TotalScore          int `json:"total_score"`
}

type ResponseTimeMetrics struct {
	AverageResponseMinutes int     `json:"average_response_minutes"`
	LongestDelayHours      float64 `json:"longest_delay_hours"`
	MessagesIgnored        int     `json:"messages_ignored"`
	LateNightIgnores       int     `json:"late_night_ignores"`
	TotalDelayScore        int     `json:"total_delay_score"`
}

type GhostingMetrics struct {
	LongestGhostDays       float64 `json:"longest_ghost_days"`
	GhostingEpisodes       int     `json:"ghosting_episodes"`
	AverageGhostHours      float64 `json:"average_ghost_hours"`
	MessagesBeforeResponse int     `json:"messages_before_response"`
	TotalGhostScore        int     `json:"total_ghost_score"`
}

type PrideMetrics struct {
	ShortResponsesAfterFight int `json:"short_responses_after_fight"`
	SilentTreatmentHours     int `json:"silent_treatment_hours"`
	RefusedApologies         int `json:"refused_apologies"`
	ColdResponses            int `json:"cold_responses"`
	LastToApologize          int `json:"last_to_apologize"`
	TotalPrideScore          int `json:"total_pride_score"`
}

type JealousyPair struct {
	Person1 JealousyMetrics `json:"person1"`
	Person2 JealousyMetrics `json:"person2"`
}

type ConflictPair struct {
	Person1 ConflictMetrics `json:"person1"`
	Person2 ConflictMetrics `json:"person2"`
}

type ResponseTimePair struct {
	Person1 ResponseTimeMetrics `json:"person1"`
	Person2 ResponseTimeMetrics `json:"person2"`
}

type GhostingPair struct {
	Person1 GhostingMetrics `json:"person1"`
	Person2 GhostingMetrics `json:"person2"`
}

type PridePair struct {
	Person1 PrideMetrics `json:"person1"`
	Person2 PrideMetrics `json:"person2"`
}

// Metadata summarises the analysed corpus.
type Metadata struct {
	TotalMessages       int    `json:"total_messages"`
	ConversationDays    int    `json:"conversation_days"`
	AnalyzedPeriod      string `json:"analyzed_period"`
	FilteredCount       int    `json:"filtered_count"`
	ReductionPercentage int    `json:"reduction_percentage"`
}

// RawBattleMetrics is the aggregate detector output for one conversation.
// Immutable once produced.
type RawBattleMetrics struct {
	Jealousy         JealousyPair     `json:"jealousy"`
	Conflicts        ConflictPair     `json:"conflicts"`
	ResponseTime     ResponseTimePair `json:"response_time"`
	Ghosting         GhostingPair     `json:"ghosting"`
	Pride            PridePair        `json:"pride"`
	FilteredMessages []chat.Message   `json:"filtered_messages"`
	Metadata         Metadata         `json:"metadata"`
}

// Windows holds the recency cutoffs for the latency-bounded detectors. Pride
// uses a longer window because pride episodes are rarer.
type Windows struct {
	LatencyMonths int
	PrideMonths   int
}

var DefaultWindows = Windows{LatencyMonths: 6, PrideMonths: 12}
