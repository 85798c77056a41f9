package gamification

import (
	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// levelThresholds maps each level (1-20) to the cumulative XP required to
// reach it. Index 0 is padding so levelThresholds[level] reads naturally.
// Each level band costs 50 XP more than the one before (100, 150, ..., 1000),
// which pins the breakpoints the rest of the system depends on: level 2 at
// 100, level 3 at 250, level 10 at 2700, level 20 at 10450. Clients match
// these numbers literally, so the table must never drift.
var levelThresholds = [domain.MaxLevel + 1]int{
	0,
	0,     // level 1
	100,   // level 2
	250,   // level 3
	450,   // level 4
	700,   // level 5
	1000,  // level 6
	1350,  // level 7
	1750,  // level 8
	2200,  // level 9
	2700,  // level 10
	3250,  // level 11
	3850,  // level 12
	4500,  // level 13
	5200,  // level 14
	5950,  // level 15
	6750,  // level 16
	7600,  // level 17
	8500,  // level 18
	9450,  // level 19
	10450, // level 20
}

// CalculateLevel determines the level from cumulative XP via reverse lookup:
// the largest level whose threshold is at or below totalXP. Negative XP is
// treated as 0; XP beyond the level-20 threshold caps at 20.
func CalculateLevel(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}

	level := domain.MinLevel
	for l := domain.MinLevel + 1; l <= domain.MaxLevel; l++ {
		if totalXP < levelThresholds[l] {
			break
		}
		level = l
	}

	return level
}

// GetXPForNextLevel returns the cumulative XP required to reach level+1.
// At or above the level cap there is no further threshold and the 0
// sentinel is returned. Levels below 1 are treated as level 1.
func GetXPForNextLevel(level int) int {
	if level >= domain.MaxLevel {
		return 0
	}
	if level < domain.MinLevel {
		level = domain.MinLevel
	}

	return levelThresholds[level+1]
}

// GetLevelProgress reports where cumulative XP sits inside the current
// level's band. Progress is an integer percentage clamped to [0,100].
// At the level cap the band has no end: progress pins to 100 and xpNeeded
// to 0, with NextLevelXP carrying the same 0 sentinel as GetXPForNextLevel.
func GetLevelProgress(totalXP, level int) domain.LevelProgress {
	if level >= domain.MaxLevel {
		return domain.LevelProgress{
			CurrentLevelXP: levelThresholds[domain.MaxLevel],
			NextLevelXP:    0,
			Progress:       100,
			XPNeeded:       0,
		}
	}
	if level < domain.MinLevel {
		level = domain.MinLevel
	}

	currentLevelXP := levelThresholds[level]
	nextLevelXP := levelThresholds[level+1]

	progress := (totalXP - currentLevelXP) * 100 / (nextLevelXP - currentLevelXP)
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	return domain.LevelProgress{
		CurrentLevelXP: currentLevelXP,
		NextLevelXP:    nextLevelXP,
		Progress:       progress,
		XPNeeded:       nextLevelXP - totalXP,
	}
}
