package gamification

import (
	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// Rarity color tokens are part of the public contract: clients match the
// strings literally, so the values here must never drift.
var rarityColors = map[domain.Rarity]string{
	domain.RarityCommon:    "text-gray-400",
	domain.RarityRare:      "text-blue-400",
	domain.RarityEpic:      "text-purple-400",
	domain.RarityLegendary: "text-yellow-400",
}

var rarityBgColors = map[domain.Rarity]string{
	domain.RarityCommon:    "bg-gray-400/20",
	domain.RarityRare:      "bg-blue-400/20",
	domain.RarityEpic:      "bg-purple-400/20",
	domain.RarityLegendary: "bg-yellow-400/20",
}

// GetRarityColor returns the foreground color token for a rarity.
// Unknown rarities fall back to the common color.
func GetRarityColor(rarity domain.Rarity) string {
	if color, ok := rarityColors[rarity]; ok {
		return color
	}
	return rarityColors[domain.RarityCommon]
}

// GetRarityBgColor returns the semi-transparent background color token for
// a rarity. Unknown rarities fall back to the common color.
func GetRarityBgColor(rarity domain.Rarity) string {
	if color, ok := rarityBgColors[rarity]; ok {
		return color
	}
	return rarityBgColors[domain.RarityCommon]
}
