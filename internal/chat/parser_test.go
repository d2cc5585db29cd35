package chat

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestParse_BracketCommaSeconds(t *testing.T) {
	raw := strings.Join([]string{
		"[04/01/2021, 07:54:21] Ana: bom dia",
		"[04/01/2021, 07:55:02] Bruno: bom dia, dormiu bem?",
	}, "\n")

	conv, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.TotalMessages != 2 {
		t.Fatalf("expected 2 messages, got %d", conv.TotalMessages)
	}

	got := conv.Messages[0]
	want := time.Date(2021, time.January, 4, 7, 54, 21, 0, time.Local)
	if !got.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", got.Timestamp, want)
	}
	if got.Sender != "Ana" || got.Content != "bom dia" {
		t.Errorf("msg[0] = %q %q", got.Sender, got.Content)
	}
	if got.ID != 1 || conv.Messages[1].ID != 2 {
		t.Errorf("ids = %d %d, want 1 2", got.ID, conv.Messages[1].ID)
	}
}

func TestParse_AllGrammars(t *testing.T) {
	// One line per recognised export shape; every case is the same moment.
	want := time.Date(2020, time.December, 29, 10, 57, 43, 0, time.Local)

	cases := []struct {
		name string
		line string
		sec  bool
	}{
		{"bracket-comma-seconds", "[29/12/2020, 10:57:43] Ana: oi", true},
		{"bracket-comma", "[29/12/2020, 10:57] Ana: oi", false},
		{"bracket-space-seconds", "[29/12/2020 10:57:43] Ana: oi", true},
		{"dash-separator", "29/12/2020, 10:57 - Ana: oi", false},
		{"dash-separator-seconds", "29/12/2020, 10:57:43 - Ana: oi", true},
		{"bracket-ampm", "[12/29/2020, 10:57:43 AM] Ana: oi", true},
		{"bracket-dotted", "[29.12.2020, 10:57:43] Ana: oi", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := tc.line + "\n" + strings.Replace(tc.line, "Ana", "Bruno", 1)
			conv, err := Parse(raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			expect := want
			if !tc.sec {
				expect = want.Truncate(time.Minute)
			}
			if !conv.Messages[0].Timestamp.Equal(expect) {
				t.Errorf("timestamp = %v, want %v", conv.Messages[0].Timestamp, expect)
			}
			if conv.Messages[0].Sender != "Ana" {
				t.Errorf("sender = %q, want Ana", conv.Messages[0].Sender)
			}
		})
	}
}

func TestParse_Deterministic(t *testing.T) {
	raw := strings.Join([]string{
		"[04/01/2021, 07:54:21] Ana: bom dia",
		"linha de continuação",
		"[04/01/2021, 07:55:02] Bruno: bom dia",
		"[05/01/2021, 09:00:00] Ana: dormiu bem?",
	}, "\n")

	first, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.TotalMessages != second.TotalMessages {
		t.Fatalf("counts differ: %d vs %d", first.TotalMessages, second.TotalMessages)
	}
	for i := range first.Messages {
		a, b := first.Messages[i], second.Messages[i]
		if a != b {
			t.Errorf("message %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestParse_Invariants(t *testing.T) {
	raw := strings.Join([]string{
		"[10/01/2021, 08:00:00] Ana: oi",
		"[04/01/2021, 07:54:21] Bruno: oi",
		"[20/01/2021, 22:00:00] Carla: oi gente",
	}, "\n")

	conv, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if conv.StartDate.After(conv.EndDate) {
		t.Errorf("start %v after end %v", conv.StartDate, conv.EndDate)
	}

	known := make(map[string]bool)
	for _, p := range conv.Participants {
		known[p] = true
	}
	for _, m := range conv.Messages {
		if !known[m.Sender] {
			t.Errorf("sender %q missing from participants", m.Sender)
		}
	}
}

func TestParse_TwelveHourClock(t *testing.T) {
	cases := []struct {
		line string
		hour int
	}{
		{"[12/29/2020, 12:05:00 AM] Ana: madrugada", 0},
		{"[12/29/2020, 12:05:00 PM] Ana: meio-dia", 12},
		{"[12/29/2020, 1:05:00 PM] Ana: tarde", 13},
		{"[12/29/2020, 11:05:00 AM] Ana: manhã", 11},
	}

	for _, tc := range cases {
		raw := tc.line + "\n[12/29/2020, 2:00:00 PM] Bruno: ok"
		conv, err := Parse(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", tc.line, err)
		}
		if got := conv.Messages[0].Timestamp.Hour(); got != tc.hour {
			t.Errorf("%q: hour = %d, want %d", tc.line, got, tc.hour)
		}
	}
}

func TestParse_MultilineContinuation(t *testing.T) {
	raw := strings.Join([]string{
		"[04/01/2021, 07:54:21] Ana: primeira linha",
		"segunda linha",
		"terceira linha",
		"[04/01/2021, 07:55:00] Bruno: ok",
	}, "\n")

	conv, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.TotalMessages != 2 {
		t.Fatalf("expected 2 messages, got %d", conv.TotalMessages)
	}
	want := "primeira linha\nsegunda linha\nterceira linha"
	if conv.Messages[0].Content != want {
		t.Errorf("content = %q, want %q", conv.Messages[0].Content, want)
	}
}

func TestParse_SkipsExportHeader(t *testing.T) {
	raw := strings.Join([]string{
		"As mensagens e as chamadas são protegidas com a criptografia de ponta a ponta.",
		"[04/01/2021, 07:54:21] Ana: oi",
		"[04/01/2021, 07:55:00] Bruno: oi",
	}, "\n")

	conv, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.TotalMessages != 2 {
		t.Fatalf("expected header to be skipped, got %d messages", conv.TotalMessages)
	}
}

func TestParse_CRLFAndBareCR(t *testing.T) {
	raw := "[04/01/2021, 07:54:21] Ana: oi\r\n[04/01/2021, 07:55:00] Bruno: oi\r[04/01/2021, 07:56:00] Ana: tudo bem?"

	conv, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.TotalMessages != 3 {
		t.Fatalf("expected 3 messages, got %d", conv.TotalMessages)
	}
}

func TestParse_MediaClassification(t *testing.T) {
	raw := strings.Join([]string{
		"[04/01/2021, 07:54:21] Ana: imagem omitida",
		"[04/01/2021, 07:55:00] Bruno: <anexado: foto.jpg>",
		"[04/01/2021, 07:56:00] Ana: mensagem normal",
	}, "\n")

	conv, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.Messages[0].Type != TypeMedia {
		t.Errorf("msg[0] type = %q, want media", conv.Messages[0].Type)
	}
	if conv.Messages[1].Type != TypeMedia {
		t.Errorf("msg[1] type = %q, want media", conv.Messages[1].Type)
	}
	if conv.Messages[2].Type != TypeText {
		t.Errorf("msg[2] type = %q, want text", conv.Messages[2].Type)
	}
}

func TestParse_DateRange(t *testing.T) {
	raw := strings.Join([]string{
		"[10/01/2021, 08:00:00] Ana: meio",
		"[04/01/2021, 07:54:21] Bruno: começo",
		"[20/01/2021, 22:00:00] Ana: fim",
	}, "\n")

	conv, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.StartDate.Day() != 4 {
		t.Errorf("start day = %d, want 4", conv.StartDate.Day())
	}
	if conv.EndDate.Day() != 20 {
		t.Errorf("end day = %d, want 20", conv.EndDate.Day())
	}
}

func TestParse_NoRecognisedLines(t *testing.T) {
	_, err := Parse("isto não é um export\nsó texto solto\n")

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if len(perr.FirstLines) != 2 {
		t.Errorf("expected 2 sample lines, got %d", len(perr.FirstLines))
	}
}

func TestParse_SingleParticipant(t *testing.T) {
	raw := strings.Join([]string{
		"[04/01/2021, 07:54:21] Ana: oi",
		"[04/01/2021, 07:55:00] Ana: alguém aí?",
	}, "\n")

	_, err := Parse(raw)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if !strings.Contains(perr.Reason, "2 participants") {
		t.Errorf("reason = %q", perr.Reason)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	if _, err := Parse(""); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestExtractParticipants_PhoneNumbers(t *testing.T) {
	raw := strings.Join([]string{
		"[04/01/2021, 07:54:21] +55 11 91234-5678: oi",
		"[04/01/2021, 07:55:00] Bruno: oi",
	}, "\n")

	conv, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info := ExtractParticipants(conv.Messages)
	if len(info) != 2 {
		t.Fatalf("expected 2 participants, got %d", len(info))
	}
	if !info[0].IsPhoneNumber {
		t.Errorf("expected %q to be flagged as phone number", info[0].Name)
	}
	if info[0].DisplayName != "Número +55 11 91234-5678" {
		t.Errorf("display name = %q", info[0].DisplayName)
	}
	if info[1].IsPhoneNumber {
		t.Errorf("expected %q not to be flagged", info[1].Name)
	}
}

func TestDetectFormat(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"[04/01/2021, 07:54:21] Ana: oi", "ios"},
		{"29/12/2020, 10:57 - Ana: oi", "android"},
		{"texto qualquer", "unknown"},
	}

	for _, tc := range cases {
		if got := DetectFormat(tc.raw); got != tc.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
