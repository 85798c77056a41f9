package achievement

import "github.com/solventworks/ConsumableAlchemy_Go/internal/domain"

// definitions is the static badge catalog in display order. Keys are stable
// identifiers persisted alongside unlocks; titles and descriptions are safe
// to reword.
var definitions = []domain.Achievement{
	{
		Key:         domain.AchievementFirstExperiment,
		Title:       "First Concoction",
		Description: "Run your first experiment",
		Rarity:      domain.RarityCommon,
		SortOrder:   1,
	},
	{
		Key:         domain.AchievementTenExperiments,
		Title:       "Lab Regular",
		Description: "Run ten experiments",
		Rarity:      domain.RarityCommon,
		SortOrder:   2,
	},
	{
		Key:         domain.AchievementFiveIngredients,
		Title:       "Master Mixer",
		Description: "Mix five or more consumables in a single experiment",
		Rarity:      domain.RarityRare,
		SortOrder:   3,
	},
	{
		Key:         domain.AchievementPerfectSafety,
		Title:       "Safety First",
		Description: "Complete an experiment with a perfect safety score",
		Rarity:      domain.RarityRare,
		SortOrder:   4,
	},
	{
		Key:         domain.AchievementHighNovelty,
		Title:       "Mad Scientist",
		Description: "Complete an experiment with a novelty score of 90 or higher",
		Rarity:      domain.RarityEpic,
		SortOrder:   5,
	},
	{
		Key:         domain.AchievementLevelTen,
		Title:       "Seasoned Alchemist",
		Description: "Reach level 10",
		Rarity:      domain.RarityEpic,
		SortOrder:   6,
	},
	{
		Key:         domain.AchievementLevelTwenty,
		Title:       "Grand Master",
		Description: "Reach level 20",
		Rarity:      domain.RarityLegendary,
		SortOrder:   7,
	},
}

// Definitions returns a copy of the badge catalog in display order
func Definitions() []domain.Achievement {
	out := make([]domain.Achievement, len(definitions))
	copy(out, definitions)
	return out
}

// DefinitionByKey looks up a badge definition by its stable key
func DefinitionByKey(key string) (domain.Achievement, bool) {
	for _, def := range definitions {
		if def.Key == key {
			return def, true
		}
	}
	return domain.Achievement{}, false
}
