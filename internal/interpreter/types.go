package interpreter

import (
	"context"

	"github.com/dueloapp/duelo/internal/gemini"
)

// Category tags a battle outcome.
type Category string

const (
	CategoryCiume   Category = "ciume"
	CategoryBrigas  Category = "brigas"
	CategoryDemora  Category = "demora"
	CategoryVacuo   Category = "vacuo"
	CategoryOrgulho Category = "orgulho"
)

// MinConfidence is the inclusion threshold: outcomes below it are discarded
// as inconclusive.
const MinConfidence = 30

// FallbackConfidence marks a judgment category resolved by regex scores only
// because the reasoning call failed.
const FallbackConfidence = 40

// CardImages maps categories to their pre-rendered card artwork.
var CardImages = map[Category]string{
	CategoryCiume:   "/cards/ciume.png",
	CategoryBrigas:  "/cards/brigas.png",
	CategoryDemora:  "/cards/demora.png",
	CategoryVacuo:   "/cards/vacuo.png",
	CategoryOrgulho: "/cards/orgulho.png",
}

// BattleResult is one finalised category outcome, the sole handoff artifact
// to rendering and persistence layers.
type BattleResult struct {
	Category     Category `json:"category"`
	Winner       string   `json:"winner"`
	Loser        string   `json:"loser"`
	Confidence   int      `json:"confidence"` // 0-100
	Result       string   `json:"result"`
	Evidence     []string `json:"evidence"`
	FunnyComment string   `json:"funny_comment,omitempty"`
	CardImage    string   `json:"card_image,omitempty"`
}

// Reasoner is the external reasoning service seen from the interpreter.
// *gemini.Client satisfies it; tests substitute fakes.
type Reasoner interface {
	Analyze(ctx context.Context, prompt string) (*gemini.Verdict, error)
}
