package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dueloapp/duelo/internal/detector"
	"github.com/dueloapp/duelo/internal/interpreter"
)

// WriteAnalysis persists a finished analysis and its per-category results.
// Tables: analyses, battle_results.
func (s *Store) WriteAnalysis(ctx context.Context, id uuid.UUID, participants []string, meta detector.Metadata, results []interpreter.BattleResult) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO analyses (id, participants, total_messages, conversation_days, analyzed_period, filtered_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())`,
		id, participants, meta.TotalMessages, meta.ConversationDays, meta.AnalyzedPeriod, meta.FilteredCount,
	)
	if err != nil {
		return fmt.Errorf("insert analysis: %w", err)
	}

	for _, r := range results {
		_, err = tx.Exec(ctx, `
			INSERT INTO battle_results (id, analysis_id, category, winner, loser, confidence, result, evidence, funny_comment, card_image)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			uuid.New(), id, string(r.Category), r.Winner, r.Loser, r.Confidence, r.Result, r.Evidence, r.FunnyComment, r.CardImage,
		)
		if err != nil {
			return fmt.Errorf("insert battle result: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// AnalysisSummary is the persisted header row for one analysis.
type AnalysisSummary struct {
	ID            uuid.UUID
	Participants  []string
	TotalMessages int
	CreatedAt     time.Time
}

// GetAnalysis fetches the header row for an analysis.
func (s *Store) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisSummary, error) {
	var a AnalysisSummary
	err := s.pool.QueryRow(ctx, `
		SELECT id, participants, total_messages, created_at
		FROM analyses WHERE id = $1`, id,
	).Scan(&a.ID, &a.Participants, &a.TotalMessages, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get analysis: %w", err)
	}
	return &a, nil
}
