package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

func TestGetRarityColor(t *testing.T) {
	tests := []struct {
		rarity   domain.Rarity
		expected string
	}{
		{domain.RarityCommon, "text-gray-400"},
		{domain.RarityRare, "text-blue-400"},
		{domain.RarityEpic, "text-purple-400"},
		{domain.RarityLegendary, "text-yellow-400"},
		{domain.Rarity("unknown"), "text-gray-400"}, // Fallback to common
		{domain.Rarity(""), "text-gray-400"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetRarityColor(tt.rarity), "rarity: %q", tt.rarity)
	}
}

func TestGetRarityBgColor(t *testing.T) {
	tests := []struct {
		rarity   domain.Rarity
		expected string
	}{
		{domain.RarityCommon, "bg-gray-400/20"},
		{domain.RarityRare, "bg-blue-400/20"},
		{domain.RarityEpic, "bg-purple-400/20"},
		{domain.RarityLegendary, "bg-yellow-400/20"},
		{domain.Rarity("unknown"), "bg-gray-400/20"}, // Fallback to common
		{domain.Rarity(""), "bg-gray-400/20"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, GetRarityBgColor(tt.rarity), "rarity: %q", tt.rarity)
	}
}

func TestRarityColorTables_Mirror(t *testing.T) {
	// Every foreground rarity has a background counterpart and vice versa
	assert.Equal(t, len(rarityColors), len(rarityBgColors))
	for rarity := range rarityColors {
		_, ok := rarityBgColors[rarity]
		assert.True(t, ok, "missing bg color for %q", rarity)
	}
}
