package experiment

import "github.com/solventworks/ConsumableAlchemy_Go/internal/domain"

// Safety scoring constants. Safety starts perfect and loses points for
// known-bad ingredient pairings.
const (
	// PerfectSafety is the starting safety score before penalties
	PerfectSafety = 100.0

	// SupplementAlcoholPenalty applies when a mix contains both a supplement
	// and an alcoholic ingredient
	SupplementAlcoholPenalty = 35.0

	// CaffeineAlcoholPenalty applies when a mix contains both caffeine and
	// alcohol
	CaffeineAlcoholPenalty = 25.0

	// CategoryCrowdingPenalty applies per item beyond CategoryCrowdingLimit
	// of the same category
	CategoryCrowdingPenalty = 5.0

	// CategoryCrowdingLimit is how many items of one category mix cleanly
	CategoryCrowdingLimit = 2
)

// Effectiveness scoring constants. Effectiveness is the mean category
// potency adjusted by nutrient density.
const (
	// ProteinDensityFactor converts mean protein grams into effectiveness points
	ProteinDensityFactor = 0.8

	// MaxProteinBoost caps the protein contribution
	MaxProteinBoost = 15.0

	// CaffeineDensityFactor converts mean caffeine milligrams into effectiveness points
	CaffeineDensityFactor = 0.1

	// MaxCaffeineBoost caps the caffeine contribution
	MaxCaffeineBoost = 10.0
)

// basePotency is the per-category effectiveness baseline
var basePotency = map[domain.Category]float64{
	domain.CategoryFood:       60,
	domain.CategoryDrink:      55,
	domain.CategorySupplement: 75,
	domain.CategoryHerb:       70,
}

// Novelty scoring constants
const (
	// DistinctCategoryNovelty is awarded per distinct category in the mix
	DistinctCategoryNovelty = 12.0
)

// Overall score weights (must sum to 1)
const (
	OverallSafetyWeight        = 0.40
	OverallEffectivenessWeight = 0.35
	OverallNoveltyWeight       = 0.25
)

// SuccessThreshold is the overall score at or above which an experiment
// counts as successful
const SuccessThreshold = 50.0

// Experiment history limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Warning and synergy strings surfaced on results. Presentation only; XP
// never reads them.
const (
	WarningSupplementAlcohol = "Supplements and alcohol are a dangerous mix"
	WarningCaffeineAlcohol   = "Caffeine masks alcohol impairment"
	WarningCategoryCrowding  = "Too many %s items in one mix"

	SynergyEnergizing    = "Caffeine and protein make an energizing pair"
	SynergyBroadSpectrum = "Broad category spread amplifies the blend"
)

// Log message constants
const (
	LogMsgExperimentCompleted = "Experiment completed"
	LogMsgShuttingDown        = "Experiment service shutting down..."
	LogMsgShutdownComplete    = "Experiment service shutdown complete"
)
