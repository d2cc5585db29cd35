// Package analyzer orchestrates the battle pipeline: parse, guard, detect,
// interpret, then hand results to the preview cache and the optional
// persistence and event sinks.
package analyzer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dueloapp/duelo/internal/chat"
	"github.com/dueloapp/duelo/internal/detector"
	"github.com/dueloapp/duelo/internal/events"
	"github.com/dueloapp/duelo/internal/interpreter"
	"github.com/dueloapp/duelo/internal/preview"
	"github.com/dueloapp/duelo/internal/store"
)

// Analysis is the full outcome of one pipeline run.
type Analysis struct {
	ID           string                     `json:"id"`
	Participants []chat.ParticipantInfo     `json:"participants"`
	Validation   chat.Validation            `json:"validation"`
	Metadata     detector.Metadata          `json:"metadata"`
	Results      []interpreter.BattleResult `json:"results"`
	CreatedAt    time.Time                  `json:"created_at"`
}

// Options carries the tunable pipeline policy.
type Options struct {
	Guard   chat.GuardPolicy
	Windows detector.Windows
	Lexicon detector.Lexicon
	Filter  chat.FilterLexicon
	Timeout time.Duration // outer deadline for one run

	// Now supplies the clock for recency windows; tests pin it.
	Now func() time.Time
}

type Analyzer struct {
	opts     Options
	interp   *interpreter.Interpreter
	previews *preview.Store
	store    *store.Store   // optional sink; nil disables persistence
	events   *events.Client // optional sink; nil disables publishing
	logger   *slog.Logger
}

func New(opts Options, interp *interpreter.Interpreter, previews *preview.Store, st *store.Store, ev *events.Client, logger *slog.Logger) *Analyzer {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	return &Analyzer{
		opts:     opts,
		interp:   interp,
		previews: previews,
		store:    st,
		events:   ev,
		logger:   logger,
	}
}

// Analyze runs the full pipeline over a raw transcript export. It returns an
// error only for unparseable input (*chat.ParseError); a conversation that
// fails the size guard comes back as an Analysis with Validation.IsValid
// false and no results.
func (a *Analyzer) Analyze(ctx context.Context, rawText string) (*Analysis, error) {
	conv, err := chat.Parse(rawText)
	if err != nil {
		return nil, err
	}

	a.logger.Info("transcript parsed",
		"messages", conv.TotalMessages,
		"participants", len(conv.Participants),
	)

	analysis := &Analysis{
		ID:           uuid.NewString(),
		Participants: chat.ExtractParticipants(conv.Messages),
		CreatedAt:    a.opts.Now(),
	}

	analysis.Validation = chat.ValidateWithPolicy(conv, a.opts.Guard)
	if !analysis.Validation.IsValid {
		a.logger.Warn("conversation rejected by size guard",
			"count", analysis.Validation.MessageCount,
			"warning", analysis.Validation.Warnings[0],
		)
		return analysis, nil
	}

	metrics := detector.DetectAll(conv, a.opts.Now(), a.opts.Windows, a.opts.Lexicon, a.opts.Filter)
	analysis.Metadata = metrics.Metadata

	// The reasoning calls are the only suspending work; bound the whole
	// interpretation so a stuck call degrades to fallback scoring instead
	// of failing the batch.
	interpCtx, cancel := context.WithTimeout(ctx, a.opts.Timeout)
	defer cancel()
	analysis.Results = a.interp.Interpret(interpCtx, metrics, conv.Participants[0], conv.Participants[1])

	if a.previews != nil {
		a.previews.PutWithID(analysis.ID, analysis)
	}
	a.persist(ctx, analysis)
	a.announce(analysis)

	a.logger.Info("analysis complete",
		"analysis_id", analysis.ID,
		"categories", len(analysis.Results),
	)

	return analysis, nil
}

func (a *Analyzer) persist(ctx context.Context, analysis *Analysis) {
	if a.store == nil {
		return
	}

	id, err := uuid.Parse(analysis.ID)
	if err != nil {
		a.logger.Error("invalid analysis id", "id", analysis.ID, "error", err)
		return
	}

	names := make([]string, len(analysis.Participants))
	for i, p := range analysis.Participants {
		names[i] = p.Name
	}

	if err := a.store.WriteAnalysis(ctx, id, names, analysis.Metadata, analysis.Results); err != nil {
		// Persistence is best-effort; the caller still gets results.
		a.logger.Error("failed to persist analysis", "analysis_id", analysis.ID, "error", err)
	}
}

func (a *Analyzer) announce(analysis *Analysis) {
	if a.events == nil {
		return
	}

	evt := events.AnalysisCompleted{
		AnalysisID:  analysis.ID,
		CompletedAt: analysis.CreatedAt.UTC().Format(time.RFC3339),
	}
	for _, p := range analysis.Participants {
		evt.Participants = append(evt.Participants, p.Name)
	}
	for _, r := range analysis.Results {
		evt.Outcomes = append(evt.Outcomes, events.CategoryOutcome{
			Category:   string(r.Category),
			Winner:     r.Winner,
			Confidence: r.Confidence,
		})
	}

	if err := a.events.Publish(events.SubjectAnalysisCompleted, evt); err != nil {
		a.logger.Warn("failed to publish completion event", "analysis_id", analysis.ID, "error", err)
	}
}
