package analyzer

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/dueloapp/duelo/internal/chat"
	"github.com/dueloapp/duelo/internal/detector"
	"github.com/dueloapp/duelo/internal/interpreter"
	"github.com/dueloapp/duelo/internal/preview"
)

const ghostedTranscript = `[01/03/2021, 10:00:00] Ana: oi, podemos conversar sobre a viagem?
[01/03/2021, 10:05:00] Bruno: claro, me conta
[01/03/2021, 11:00:00] Ana: tá onde? preciso falar contigo
[02/03/2021, 18:00:00] Bruno: desculpa a demora, estava no trabalho
[02/03/2021, 18:05:00] Ana: com quem você estava?
[02/03/2021, 18:10:00] Bruno: com o pessoal do trabalho, amor
[02/03/2021, 18:15:00] Ana: tá bom então
[02/03/2021, 18:20:00] Bruno: não fica assim, te amo
`

func testAnalyzer(t *testing.T, guard chat.GuardPolicy) (*Analyzer, *preview.Store) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	interp := interpreter.New(nil, interpreter.Options{
		InterCallDelay:    time.Millisecond,
		RateLimitCooldown: time.Millisecond,
		CallTimeout:       time.Second,
	}, logger)

	previews := preview.NewStore(time.Minute, time.Hour, logger)
	t.Cleanup(previews.Close)

	opts := Options{
		Guard:   guard,
		Windows: detector.DefaultWindows,
		Lexicon: detector.DefaultLexicon,
		Filter:  chat.DefaultFilterLexicon,
		Timeout: 5 * time.Second,
		Now: func() time.Time {
			return time.Date(2021, time.March, 10, 12, 0, 0, 0, time.Local)
		},
	}

	return New(opts, interp, previews, nil, nil, logger), previews
}

func TestAnalyze_EndToEnd(t *testing.T) {
	guard := chat.GuardPolicy{MinMessages: 5, FreeTierMax: 1000, WarningThreshold: 900}
	a, previews := testAnalyzer(t, guard)

	analysis, err := a.Analyze(context.Background(), ghostedTranscript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.ID == "" {
		t.Error("expected generated analysis id")
	}
	if !analysis.Validation.IsValid {
		t.Fatalf("validation failed: %+v", analysis.Validation)
	}
	if len(analysis.Participants) != 2 {
		t.Fatalf("participants = %d, want 2", len(analysis.Participants))
	}
	if analysis.Metadata.TotalMessages != 8 {
		t.Errorf("total messages = %d, want 8", analysis.Metadata.TotalMessages)
	}

	// Bruno took 31h to answer, so he takes the ghosting category.
	var vacuo *interpreter.BattleResult
	for i := range analysis.Results {
		if analysis.Results[i].Category == interpreter.CategoryVacuo {
			vacuo = &analysis.Results[i]
		}
	}
	if vacuo == nil {
		t.Fatal("missing vacuo category")
	}
	if vacuo.Winner != "Bruno" {
		t.Errorf("vacuo winner = %q, want Bruno", vacuo.Winner)
	}
	if vacuo.Confidence != 95 {
		t.Errorf("vacuo confidence = %d, want 95", vacuo.Confidence)
	}

	// The preview cache serves the same analysis afterwards.
	cached, ok := previews.Get(analysis.ID)
	if !ok {
		t.Fatal("analysis not cached")
	}
	if cached.(*Analysis).ID != analysis.ID {
		t.Error("cached analysis differs")
	}
}

func TestAnalyze_TooShortConversation(t *testing.T) {
	guard := chat.GuardPolicy{MinMessages: 50, FreeTierMax: 5000, WarningThreshold: 4500}
	a, _ := testAnalyzer(t, guard)

	analysis, err := a.Analyze(context.Background(), ghostedTranscript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Validation.IsValid {
		t.Fatal("8 messages must not pass a 50-message minimum")
	}
	if len(analysis.Results) != 0 {
		t.Errorf("expected no results, got %d", len(analysis.Results))
	}
	if !strings.Contains(analysis.Validation.Warnings[0], "50") {
		t.Errorf("warning = %q", analysis.Validation.Warnings[0])
	}
}

func TestAnalyze_UnparseableInput(t *testing.T) {
	guard := chat.GuardPolicy{MinMessages: 5, FreeTierMax: 1000, WarningThreshold: 900}
	a, _ := testAnalyzer(t, guard)

	_, err := a.Analyze(context.Background(), "texto qualquer sem formato de export")

	var perr *chat.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *chat.ParseError, got %v", err)
	}
}
