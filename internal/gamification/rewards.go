package gamification

import (
	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// rewardTier defines a mapping between a level breakpoint and its rewards.
type rewardTier struct {
	level   int
	rewards domain.LevelRewards
}

// rewardTiers defines the ordered list of reward breakpoints.
// The order is critical: lookup walks from the highest breakpoint down and
// takes the first tier whose level is <= the requested level. The tier
// above the level cap marks the extended/bonus track past normal play.
var rewardTiers = []rewardTier{
	{domain.MaxLevel + 1, domain.LevelRewards{Title: "Legendary Alchemist", BonusXP: 1000, Unlocks: []string{"Beyond mastery"}}},
	{20, domain.LevelRewards{Title: "Master Alchemist", BonusXP: 500, Unlocks: []string{"Synthesis", "Legendary experiments"}}},
	{15, domain.LevelRewards{Title: "Expert Alchemist", BonusXP: 250, Unlocks: []string{"Transmutation", "Rare ingredient access"}}},
	{10, domain.LevelRewards{Title: "Journeyman Alchemist", BonusXP: 100, Unlocks: []string{"Complex combinations", "Safety analysis"}}},
	{5, domain.LevelRewards{Title: "Apprentice Alchemist", BonusXP: 50, Unlocks: []string{"Advanced mixing", "Consumable insights"}}},
	{1, domain.LevelRewards{Title: "Novice Alchemist", BonusXP: 0, Unlocks: []string{"Basic mixing"}}},
}

// GetLevelRewards returns the reward tier for a level: the highest
// breakpoint at or below it. Levels above the cap land on the Legendary
// overflow tier; levels below 1 clamp to the Novice tier.
func GetLevelRewards(level int) domain.LevelRewards {
	for _, tier := range rewardTiers {
		if level >= tier.level {
			return tier.rewards
		}
	}

	return rewardTiers[len(rewardTiers)-1].rewards
}

// MilestoneBonusXP returns the one-time bonus XP for landing exactly on a
// reward-tier breakpoint, or 0 when the level is not a breakpoint. The
// profile service applies this once per tier crossing.
func MilestoneBonusXP(level int) int {
	for _, tier := range rewardTiers {
		if level == tier.level {
			return tier.rewards.BonusXP
		}
	}

	return 0
}
