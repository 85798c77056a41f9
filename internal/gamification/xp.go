package gamification

import (
	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// CalculateExperimentXP converts a finished experiment into an XP award.
// Bonuses are additive and commutative: exceptional scores, a complex
// combination and success each add onto the base award, low safety
// subtracts from it. Only the first result is read; an experiment with no
// results earns the base award alone (guarded default - there is no result
// to score). The award can drop below the base on unsafe experiments but
// never below zero.
func CalculateExperimentXP(exp domain.Experiment) int {
	xp := BaseXP

	result, ok := exp.PrimaryResult()
	if !ok {
		return xp
	}

	if result.SafetyScore >= HighScoreThreshold {
		xp += SafetyBonus
	}
	if result.SafetyScore < LowSafetyThreshold {
		xp += SafetyPenalty
	}

	if result.EffectivenessScore >= HighScoreThreshold {
		xp += EffectivenessBonus
	}

	if result.NoveltyScore >= HighScoreThreshold {
		xp += NoveltyBonus
	}

	if len(exp.Consumables) >= ComplexityThreshold {
		xp += ComplexityBonus
	}

	if exp.Success {
		xp += SuccessBonus
	}

	if xp < 0 {
		xp = 0
	}

	return xp
}
