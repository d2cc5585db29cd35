package chat

import (
	"fmt"
	"math"
)

// GuardPolicy holds the tunable size thresholds. The zero value is not
// useful; use DefaultGuardPolicy or build one from config.
type GuardPolicy struct {
	MinMessages      int
	FreeTierMax      int
	WarningThreshold int
}

// DefaultGuardPolicy matches the launched product limits.
var DefaultGuardPolicy = GuardPolicy{
	MinMessages:      50,
	FreeTierMax:      5000,
	WarningThreshold: 4500,
}

// Validate judges conversation size before any expensive work. Callers must
// short-circuit the pipeline when IsValid is false.
func Validate(conv *ParsedConversation) Validation {
	return ValidateWithPolicy(conv, DefaultGuardPolicy)
}

// ValidateWithPolicy is Validate with custom thresholds.
func ValidateWithPolicy(conv *ParsedConversation, p GuardPolicy) Validation {
	count := conv.TotalMessages

	if count < p.MinMessages {
		return Validation{
			Tier:          TierFree,
			MessageCount:  count,
			EstimatedCost: 0,
			IsValid:       false,
			Warnings: []string{fmt.Sprintf(
				"Conversa muito curta para análise confiável. Mínimo: %d mensagens, encontradas: %d.",
				p.MinMessages, count)},
		}
	}

	if count > p.FreeTierMax {
		return Validation{
			Tier:          TierPremium,
			MessageCount:  count,
			EstimatedCost: 0.10,
			IsValid:       false,
			Warnings: []string{fmt.Sprintf(
				"Conversa excede limite gratuito (%d mensagens). Faça upgrade para Premium ou reduza o período exportado.",
				p.FreeTierMax)},
		}
	}

	var warnings []string
	if count >= p.WarningThreshold {
		percent := int(math.Round(100 * float64(count) / float64(p.FreeTierMax)))
		warnings = append(warnings, fmt.Sprintf(
			"Você está usando %d%% do limite gratuito (%d/%d mensagens).",
			percent, count, p.FreeTierMax))
	}

	// Larger conversations produce heavier reasoning-call payloads even
	// after filtering.
	cost := 0.02
	if count > 3000 {
		cost = 0.05
	}

	return Validation{
		Tier:          TierFree,
		MessageCount:  count,
		EstimatedCost: cost,
		IsValid:       true,
		Warnings:      warnings,
	}
}
