package gamification

// XP award constants
const (
	// BaseXP is the starting XP award for any experiment
	BaseXP = 10

	// HighScoreThreshold is the score at or above which a dimension earns its bonus
	HighScoreThreshold = 90.0

	// LowSafetyThreshold is the safety score below which the penalty applies
	LowSafetyThreshold = 50.0

	// SafetyBonus is awarded when safety >= HighScoreThreshold
	SafetyBonus = 15

	// SafetyPenalty is applied when safety < LowSafetyThreshold
	SafetyPenalty = -10

	// EffectivenessBonus is awarded when effectiveness >= HighScoreThreshold
	EffectivenessBonus = 10

	// NoveltyBonus is awarded when novelty >= HighScoreThreshold
	NoveltyBonus = 10

	// ComplexityThreshold is the consumable count at which ComplexityBonus applies
	ComplexityThreshold = 5

	// ComplexityBonus is awarded for experiments with ComplexityThreshold or more consumables
	ComplexityBonus = 5

	// SuccessBonus is awarded for successful experiments
	SuccessBonus = 5
)
