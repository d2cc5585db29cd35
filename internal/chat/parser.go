package chat

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// grammar is one recognised export line shape. Grammars are tried in
// declaration order and the first match wins; there is no ambiguity
// resolution beyond that order.
type grammar struct {
	name string
	re   *regexp.Regexp
}

// Capture groups are named so each grammar stays an isolated unit: day,
// month, year, hour, min, sec (optional), ampm (optional), sender, body.
var grammars = []grammar{
	{
		// [04/01/2021, 07:54:21] Nome: mensagem
		name: "bracket-comma-seconds",
		re:   regexp.MustCompile(`^\[(?P<day>\d{1,2})/(?P<month>\d{1,2})/(?P<year>\d{4}), (?P<hour>\d{1,2}):(?P<min>\d{2}):(?P<sec>\d{2})\] (?P<sender>.+?): (?P<body>.*)$`),
	},
	{
		// [04/01/2021, 07:54] Nome: mensagem
		name: "bracket-comma",
		re:   regexp.MustCompile(`^\[(?P<day>\d{1,2})/(?P<month>\d{1,2})/(?P<year>\d{4}), (?P<hour>\d{1,2}):(?P<min>\d{2})\] (?P<sender>.+?): (?P<body>.*)$`),
	},
	{
		// [29/12/2020 10:57:43] Nome: mensagem (iOS, no comma)
		name: "bracket-space-seconds",
		re:   regexp.MustCompile(`^\[(?P<day>\d{1,2})/(?P<month>\d{1,2})/(?P<year>\d{4}) (?P<hour>\d{1,2}):(?P<min>\d{2}):(?P<sec>\d{2})\] (?P<sender>.+?): (?P<body>.*)$`),
	},
	{
		// 29/12/2020, 10:57 - Nome: mensagem (Android)
		name: "dash-separator",
		re:   regexp.MustCompile(`^(?P<day>\d{1,2})/(?P<month>\d{1,2})/(?P<year>\d{4}), (?P<hour>\d{1,2}):(?P<min>\d{2})(?::(?P<sec>\d{2}))? - (?P<sender>.+?): (?P<body>.*)$`),
	},
	{
		// [12/29/2020, 10:57:43 AM] Name: message (US, month first)
		name: "bracket-ampm",
		re:   regexp.MustCompile(`^\[(?P<month>\d{1,2})/(?P<day>\d{1,2})/(?P<year>\d{4}), (?P<hour>\d{1,2}):(?P<min>\d{2}):(?P<sec>\d{2}) (?P<ampm>AM|PM)\] (?P<sender>.+?): (?P<body>.*)$`),
	},
	{
		// [29.12.2020, 10:57:43] Name: Nachricht (dot-separated date)
		name: "bracket-dotted",
		re:   regexp.MustCompile(`^\[(?P<day>\d{1,2})\.(?P<month>\d{1,2})\.(?P<year>\d{4}), (?P<hour>\d{1,2}):(?P<min>\d{2}):(?P<sec>\d{2})\] (?P<sender>.+?): (?P<body>.*)$`),
	},
}

// Parse turns a raw transcript export into an ordered, attributed
// conversation. It fails with *ParseError when no line matches any grammar or
// when fewer than two distinct senders are found.
func Parse(rawText string) (*ParsedConversation, error) {
	return ParseWithLexicon(rawText, DefaultMediaPlaceholders)
}

// ParseWithLexicon is Parse with a custom media-placeholder keyword list.
func ParseWithLexicon(rawText string, mediaPlaceholders []string) (*ParsedConversation, error) {
	// Export tools differ on line endings: \r\n on Windows, \n on
	// iOS/Android, \r in some legacy exports.
	lines := regexp.MustCompile(`\r\n|\r|\n`).Split(rawText, -1)

	var messages []Message
	var current *Message

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		m, ok := matchLine(line)
		if ok {
			if current != nil {
				messages = append(messages, *current)
			}
			m.ID = len(messages) + 1
			current = m
			continue
		}

		// Continuation of a multi-line message. Lines before the first
		// recognised message (export headers) are skipped.
		if current != nil {
			current.Content += "\n" + line
		}
	}
	if current != nil {
		messages = append(messages, *current)
	}

	if len(messages) == 0 {
		return nil, &ParseError{
			Reason:     "no messages recognised in transcript",
			FirstLines: firstNonEmpty(lines, 3),
		}
	}

	participants := distinctSenders(messages)
	if len(participants) < 2 {
		return nil, &ParseError{Reason: "conversation needs at least 2 participants"}
	}

	classifyMedia(messages, mediaPlaceholders)

	start, end := messages[0].Timestamp, messages[0].Timestamp
	for _, m := range messages[1:] {
		if m.Timestamp.Before(start) {
			start = m.Timestamp
		}
		if m.Timestamp.After(end) {
			end = m.Timestamp
		}
	}

	return &ParsedConversation{
		Messages:      messages,
		Participants:  participants,
		StartDate:     start,
		EndDate:       end,
		TotalMessages: len(messages),
	}, nil
}

// matchLine tries each grammar in order and builds a message from the first
// match.
func matchLine(line string) (*Message, bool) {
	for _, g := range grammars {
		sub := g.re.FindStringSubmatch(line)
		if sub == nil {
			continue
		}

		fields := make(map[string]string, len(sub))
		for i, name := range g.re.SubexpNames() {
			if name != "" {
				fields[name] = sub[i]
			}
		}

		day := atoi(fields["day"])
		month := atoi(fields["month"])
		year := atoi(fields["year"])
		hour := atoi(fields["hour"])
		minute := atoi(fields["min"])
		second := atoi(fields["sec"]) // empty capture -> 0

		// Normalise 12-hour clocks: 12 AM is midnight, PM adds 12
		// except for 12 PM itself.
		switch fields["ampm"] {
		case "PM":
			if hour < 12 {
				hour += 12
			}
		case "AM":
			if hour == 12 {
				hour = 0
			}
		}

		return &Message{
			Timestamp: time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local),
			Sender:    strings.TrimSpace(fields["sender"]),
			Content:   strings.TrimSpace(fields["body"]),
			Type:      TypeText,
		}, true
	}
	return nil, false
}

func classifyMedia(messages []Message, placeholders []string) {
	for i := range messages {
		content := strings.ToLower(messages[i].Content)
		for _, p := range placeholders {
			if strings.Contains(content, p) {
				messages[i].Type = TypeMedia
				break
			}
		}
	}
}

func distinctSenders(messages []Message) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range messages {
		if !seen[m.Sender] {
			seen[m.Sender] = true
			out = append(out, m.Sender)
		}
	}
	return out
}

func firstNonEmpty(lines []string, n int) []string {
	var out []string
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		out = append(out, l)
		if len(out) == n {
			break
		}
	}
	return out
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ExtractParticipants describes each distinct sender, flagging raw phone
// numbers so the UI can offer a rename step.
func ExtractParticipants(messages []Message) []ParticipantInfo {
	phoneRe := regexp.MustCompile(`^[+\d\s\-()]+$`)

	var out []ParticipantInfo
	for _, name := range distinctSenders(messages) {
		isPhone := phoneRe.MatchString(name)
		display := name
		if isPhone {
			display = "Número " + name
		}
		out = append(out, ParticipantInfo{Name: name, IsPhoneNumber: isPhone, DisplayName: display})
	}
	return out
}

// DetectFormat sniffs the export flavour without a full parse, used for
// friendlier error messages on unrecognised files.
func DetectFormat(rawText string) string {
	iosRe := regexp.MustCompile(`\[\d{1,2}/\d{1,2}/\d{4},? \d{1,2}:\d{2}`)
	androidRe := regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{4}, \d{1,2}:\d{2}(:\d{2})? - `)

	if iosRe.MatchString(rawText) {
		return "ios"
	}
	if androidRe.MatchString(rawText) {
		return "android"
	}
	return "unknown"
}
