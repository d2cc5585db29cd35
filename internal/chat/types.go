package chat

import (
	"fmt"
	"strings"
	"time"
)

// MessageType classifies a message body.
type MessageType string

const (
	TypeText    MessageType = "text"
	TypeMedia   MessageType = "media"
	TypeDeleted MessageType = "deleted"
	TypeAudio   MessageType = "audio"
)

// Message is a single chat line, sealed once parsing moves past it.
type Message struct {
	ID        int         `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Sender    string      `json:"sender"`
	Content   string      `json:"content"`
	Type      MessageType `json:"type"`
}

// ParsedConversation is the sealed result of parsing a transcript export.
type ParsedConversation struct {
	Messages      []Message `json:"messages"`
	Participants  []string  `json:"participants"` // first-seen order
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	TotalMessages int       `json:"total_messages"`
}

// ParseError means the transcript could not be recognised at all: either no
// line matched any known grammar, or fewer than two distinct senders were
// found. It carries the first raw lines for diagnostics.
type ParseError struct {
	Reason     string
	FirstLines []string
}

func (e *ParseError) Error() string {
	if len(e.FirstLines) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s (first lines: %s)", e.Reason, strings.Join(e.FirstLines, " | "))
}

// ParticipantInfo describes a sender for display purposes.
type ParticipantInfo struct {
	Name          string `json:"name"`
	IsPhoneNumber bool   `json:"is_phone_number"`
	DisplayName   string `json:"display_name"`
}

// FilterResult is the output of the relevance filter.
type FilterResult struct {
	Filtered      []Message `json:"filtered"`
	Removed       int       `json:"removed"`
	RetentionRate int       `json:"retention_rate"` // percent, 0-100
	OriginalCount int       `json:"original_count"`
}

// Tier is the pricing tier implied by conversation size.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Validation is the policy judgment over a parsed conversation. It is a data
// value, not an error: callers must check IsValid and stop the pipeline when
// it is false.
type Validation struct {
	Tier          Tier     `json:"tier"`
	MessageCount  int      `json:"message_count"`
	EstimatedCost float64  `json:"estimated_cost"`
	IsValid       bool     `json:"is_valid"`
	Warnings      []string `json:"warnings"`
}
