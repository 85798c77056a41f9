package experiment

import (
	"fmt"
	"math"
	"sort"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// ScoreCombination derives the result for a combination of consumables.
// Scoring is pure: the same combination always produces the same result,
// regardless of order.
func ScoreCombination(consumables []domain.Consumable) domain.ExperimentResult {
	safety, warnings := scoreSafety(consumables)
	effectiveness := scoreEffectiveness(consumables)
	novelty := scoreNovelty(consumables)

	overall := roundHalfUp(
		safety*OverallSafetyWeight +
			effectiveness*OverallEffectivenessWeight +
			novelty*OverallNoveltyWeight,
	)

	return domain.ExperimentResult{
		SafetyScore:        safety,
		EffectivenessScore: effectiveness,
		NoveltyScore:       novelty,
		OverallScore:       overall,
		Synergies:          findSynergies(consumables),
		Warnings:           warnings,
	}
}

// scoreSafety starts from a perfect score and subtracts pairing penalties.
// The result never drops below zero.
func scoreSafety(consumables []domain.Consumable) (float64, []string) {
	score := PerfectSafety
	var warnings []string

	hasSupplement := false
	hasCaffeine := false
	hasAlcohol := false
	categoryCounts := make(map[domain.Category]int)

	for _, c := range consumables {
		if c.Category == domain.CategorySupplement {
			hasSupplement = true
		}
		if c.HasCaffeine() {
			hasCaffeine = true
		}
		if c.HasAlcohol() {
			hasAlcohol = true
		}
		categoryCounts[c.Category]++
	}

	if hasSupplement && hasAlcohol {
		score -= SupplementAlcoholPenalty
		warnings = append(warnings, WarningSupplementAlcohol)
	}
	if hasCaffeine && hasAlcohol {
		score -= CaffeineAlcoholPenalty
		warnings = append(warnings, WarningCaffeineAlcohol)
	}

	// Walk categories in a fixed order so warnings are deterministic
	for _, category := range sortedCategories(categoryCounts) {
		count := categoryCounts[category]
		if count > CategoryCrowdingLimit {
			score -= CategoryCrowdingPenalty * float64(count-CategoryCrowdingLimit)
			warnings = append(warnings, fmt.Sprintf(WarningCategoryCrowding, category))
		}
	}

	if score < 0 {
		score = 0
	}
	return score, warnings
}

// scoreEffectiveness averages per-category base potency, then adds capped
// boosts for protein and caffeine density.
func scoreEffectiveness(consumables []domain.Consumable) float64 {
	if len(consumables) == 0 {
		return 0
	}

	var potencySum, proteinSum, caffeineSum float64
	for _, c := range consumables {
		potencySum += basePotency[c.Category]
		proteinSum += c.Nutrition.ProteinG
		caffeineSum += c.Nutrition.CaffeineMg
	}

	n := float64(len(consumables))
	score := potencySum / n
	score += math.Min(proteinSum/n*ProteinDensityFactor, MaxProteinBoost)
	score += math.Min(caffeineSum/n*CaffeineDensityFactor, MaxCaffeineBoost)

	return clampScore(score)
}

// scoreNovelty rewards category spread and rare ingredients.
func scoreNovelty(consumables []domain.Consumable) float64 {
	categories := make(map[domain.Category]struct{})
	var score float64
	for _, c := range consumables {
		categories[c.Category] = struct{}{}
		score += c.Rarity.NoveltyWeight()
	}
	score += float64(len(categories)) * DistinctCategoryNovelty
	return clampScore(score)
}

func findSynergies(consumables []domain.Consumable) []string {
	var synergies []string

	hasCaffeine := false
	hasProtein := false
	categories := make(map[domain.Category]struct{})
	for _, c := range consumables {
		if c.HasCaffeine() {
			hasCaffeine = true
		}
		if c.Nutrition.ProteinG > 0 {
			hasProtein = true
		}
		categories[c.Category] = struct{}{}
	}

	if hasCaffeine && hasProtein {
		synergies = append(synergies, SynergyEnergizing)
	}
	if len(categories) >= 3 {
		synergies = append(synergies, SynergyBroadSpectrum)
	}
	return synergies
}

func sortedCategories(counts map[domain.Category]int) []domain.Category {
	categories := make([]domain.Category, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories
}

func clampScore(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}

func roundHalfUp(score float64) float64 {
	return math.Floor(score + 0.5)
}
