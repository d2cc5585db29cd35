// Package interpreter arbitrates the five battle categories. Ghosting,
// latency and conflict resolve directly from detector scores; jealousy and
// pride escalate to the external reasoning service with a deterministic
// fallback, so the pipeline always answers all five categories.
package interpreter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/dueloapp/duelo/internal/detector"
	"github.com/dueloapp/duelo/internal/gemini"
)

// Options bound the interpreter's interaction with the reasoning service.
type Options struct {
	// InterCallDelay spaces the two reasoning calls to respect service
	// rate limits.
	InterCallDelay time.Duration
	// RateLimitCooldown is the backoff before the single retry after a
	// rate-limit signal.
	RateLimitCooldown time.Duration
	// CallTimeout bounds each individual reasoning call.
	CallTimeout time.Duration
}

var DefaultOptions = Options{
	InterCallDelay:    2 * time.Second,
	RateLimitCooldown: 10 * time.Second,
	CallTimeout:       25 * time.Second,
}

type Interpreter struct {
	reasoner Reasoner
	opts     Options
	logger   *slog.Logger
}

// New builds an interpreter. reasoner may be nil, in which case the judgment
// categories always use the deterministic fallback.
func New(reasoner Reasoner, opts Options, logger *slog.Logger) *Interpreter {
	if opts.InterCallDelay == 0 {
		opts.InterCallDelay = DefaultOptions.InterCallDelay
	}
	if opts.RateLimitCooldown == 0 {
		opts.RateLimitCooldown = DefaultOptions.RateLimitCooldown
	}
	if opts.CallTimeout == 0 {
		opts.CallTimeout = DefaultOptions.CallTimeout
	}
	return &Interpreter{reasoner: reasoner, opts: opts, logger: logger}
}

// Interpret resolves all five categories and filters out inconclusive
// results (confidence below MinConfidence). Callers must not read rank from
// slice position.
func (it *Interpreter) Interpret(ctx context.Context, metrics detector.RawBattleMetrics, person1, person2 string) []BattleResult {
	results := []BattleResult{
		it.ghostingResult(metrics, person1, person2),
		it.delayResult(metrics, person1, person2),
		it.conflictResult(metrics, person1, person2),
	}

	results = append(results, it.judge(ctx, CategoryCiume,
		buildJealousyPrompt(metrics, person1, person2),
		func() BattleResult { return fallbackJealousy(metrics, person1, person2) },
		person1, person2))

	it.pause(ctx, it.opts.InterCallDelay)

	results = append(results, it.judge(ctx, CategoryOrgulho,
		buildPridePrompt(metrics, person1, person2),
		func() BattleResult { return fallbackPride(metrics, person1, person2) },
		person1, person2))

	var final []BattleResult
	for _, r := range results {
		if r.Confidence >= MinConfidence {
			final = append(final, r)
		}
	}

	it.logger.Info("battle interpretation complete",
		"categories", len(final),
		"discarded", len(results)-len(final),
	)

	return final
}

// judge escalates one category to the reasoning service, retrying once after
// a rate-limit cooldown, and converts any failure into the deterministic
// fallback. It never returns an error: category coverage beats category
// omission.
func (it *Interpreter) judge(ctx context.Context, category Category, prompt string, fallback func() BattleResult, person1, person2 string) BattleResult {
	if it.reasoner == nil || ctx.Err() != nil {
		return fallback()
	}

	verdict, err := it.analyze(ctx, prompt)
	if errors.Is(err, gemini.ErrRateLimited) {
		it.logger.Warn("reasoning service rate limited, backing off", "category", string(category))
		it.pause(ctx, it.opts.RateLimitCooldown)
		verdict, err = it.analyze(ctx, prompt)
	}
	if err != nil {
		it.logger.Warn("reasoning call failed, using deterministic fallback",
			"category", string(category),
			"error", err,
		)
		return fallback()
	}

	loser, ok := counterpart(verdict.Winner, person1, person2)
	if !ok {
		it.logger.Warn("verdict winner is not a participant, using fallback",
			"category", string(category),
			"winner", verdict.Winner,
		)
		return fallback()
	}

	return BattleResult{
		Category:   category,
		Winner:     verdict.Winner,
		Loser:      loser,
		Confidence: int(math.Round(verdict.Confidence)),
		Result:     verdict.Result,
		Evidence:   verdict.Evidence,
		CardImage:  CardImages[category],
	}
}

func (it *Interpreter) analyze(ctx context.Context, prompt string) (*gemini.Verdict, error) {
	callCtx, cancel := context.WithTimeout(ctx, it.opts.CallTimeout)
	defer cancel()
	return it.reasoner.Analyze(callCtx, prompt)
}

// pause sleeps unless the outer deadline fires first.
func (it *Interpreter) pause(ctx context.Context, d time.Duration) {
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

func (it *Interpreter) ghostingResult(metrics detector.RawBattleMetrics, person1, person2 string) BattleResult {
	winner, loser := person1, person2
	m := metrics.Ghosting.Person1
	if metrics.Ghosting.Person2.TotalGhostScore > metrics.Ghosting.Person1.TotalGhostScore {
		winner, loser = person2, person1
		m = metrics.Ghosting.Person2
	}

	return BattleResult{
		Category:   CategoryVacuo,
		Winner:     winner,
		Loser:      loser,
		Confidence: 95,
		Result:     fmt.Sprintf("Deixou no vácuo por %.1f dias", m.LongestGhostDays),
		Evidence: []string{
			fmt.Sprintf("%d episódios de ghosting", m.GhostingEpisodes),
			fmt.Sprintf("Média de %.1fh sem responder", m.AverageGhostHours),
			fmt.Sprintf("%d mensagens ignoradas seguidas", m.MessagesBeforeResponse),
		},
		FunnyComment: "👻 Rei/Rainha do Vácuo",
		CardImage:    CardImages[CategoryVacuo],
	}
}

func (it *Interpreter) delayResult(metrics detector.RawBattleMetrics, person1, person2 string) BattleResult {
	winner, loser := person1, person2
	m := metrics.ResponseTime.Person1
	if metrics.ResponseTime.Person2.TotalDelayScore > metrics.ResponseTime.Person1.TotalDelayScore {
		winner, loser = person2, person1
		m = metrics.ResponseTime.Person2
	}

	return BattleResult{
		Category:   CategoryDemora,
		Winner:     winner,
		Loser:      loser,
		Confidence: 95,
		Result:     fmt.Sprintf("Demora em média %dmin para responder", m.AverageResponseMinutes),
		Evidence: []string{
			fmt.Sprintf("Recorde: %.1fh sem responder", m.LongestDelayHours),
			fmt.Sprintf("%d mensagens ignoradas 24h+", m.MessagesIgnored),
			fmt.Sprintf("%d mensagens à noite ignoradas", m.LateNightIgnores),
		},
		FunnyComment: "⏰ Campeão(ã) da Demora",
		CardImage:    CardImages[CategoryDemora],
	}
}

func (it *Interpreter) conflictResult(metrics detector.RawBattleMetrics, person1, person2 string) BattleResult {
	winner, loser := person1, person2
	m := metrics.Conflicts.Person1
	if metrics.Conflicts.Person2.TotalScore > metrics.Conflicts.Person1.TotalScore {
		winner, loser = person2, person1
		m = metrics.Conflicts.Person2
	}

	// Regex evidence proves conflict less directly than timing gaps, so
	// confidence sits lower than the latency categories.
	return BattleResult{
		Category:   CategoryBrigas,
		Winner:     winner,
		Loser:      loser,
		Confidence: 80,
		Result:     fmt.Sprintf("Iniciou %d brigas", m.ConflictInitiations),
		Evidence: []string{
			fmt.Sprintf("%d mensagens em CAPS", m.CapsMessages),
			fmt.Sprintf("%d palavras agressivas usadas", m.AggressiveKeywords),
			fmt.Sprintf("%d mensagens passivo-agressivas", m.PassiveAggressive),
		},
		FunnyComment: "🔥 Iniciador(a) Oficial de DR",
		CardImage:    CardImages[CategoryBrigas],
	}
}

func fallbackJealousy(metrics detector.RawBattleMetrics, person1, person2 string) BattleResult {
	winner, loser := person1, person2
	m := metrics.Jealousy.Person1
	if metrics.Jealousy.Person2.TotalScore > metrics.Jealousy.Person1.TotalScore {
		winner, loser = person2, person1
		m = metrics.Jealousy.Person2
	}

	return BattleResult{
		Category:   CategoryCiume,
		Winner:     winner,
		Loser:      loser,
		Confidence: FallbackConfidence,
		Result:     fmt.Sprintf("%d perguntas suspeitas", m.LocationQuestions+m.CompanionQuestions),
		Evidence: []string{
			fmt.Sprintf("%d \"tá onde?\"", m.LocationQuestions),
			fmt.Sprintf("%d \"com quem?\"", m.CompanionQuestions),
			fmt.Sprintf("%d tons de desconfiança", m.SuspiciousTone),
		},
		CardImage: CardImages[CategoryCiume],
	}
}

func fallbackPride(metrics detector.RawBattleMetrics, person1, person2 string) BattleResult {
	winner, loser := person1, person2
	m := metrics.Pride.Person1
	if metrics.Pride.Person2.TotalPrideScore > metrics.Pride.Person1.TotalPrideScore {
		winner, loser = person2, person1
		m = metrics.Pride.Person2
	}

	return BattleResult{
		Category:   CategoryOrgulho,
		Winner:     winner,
		Loser:      loser,
		Confidence: FallbackConfidence,
		Result:     fmt.Sprintf("%dh de silêncio após brigas", m.SilentTreatmentHours),
		Evidence: []string{
			fmt.Sprintf("%d desculpas ignoradas", m.RefusedApologies),
			fmt.Sprintf("%d respostas frias", m.ColdResponses),
			fmt.Sprintf("%d vezes não pediu desculpas primeiro", m.LastToApologize),
		},
		CardImage: CardImages[CategoryOrgulho],
	}
}

func counterpart(winner, person1, person2 string) (string, bool) {
	switch winner {
	case person1:
		return person2, true
	case person2:
		return person1, true
	}
	return "", false
}
