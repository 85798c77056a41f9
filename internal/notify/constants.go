package notify

import "github.com/solventworks/ConsumableAlchemy_Go/internal/domain"

// Embed colors. Level-ups use gold; badge embeds match the rarity palette
// the web client renders (tailwind 400 shades).
const (
	ColorLevelUp = 0xFFD700

	ColorCommon    = 0x9CA3AF
	ColorRare      = 0x60A5FA
	ColorEpic      = 0xC084FC
	ColorLegendary = 0xFACC15
)

// EmbedFooter appears on every announcement embed
const EmbedFooter = "Alchemy Lab"

// FallbackAlchemistName replaces an empty username in announcements
const FallbackAlchemistName = "An alchemist"

// Log message constants
const (
	LogMsgAnnouncementSent   = "Announcement sent"
	LogMsgAnnouncementFailed = "Failed to send announcement"
)

// rarityColor maps a badge rarity onto its embed color. Unknown rarities
// render as common, mirroring the web palette fallback.
func rarityColor(rarity string) int {
	switch domain.Rarity(rarity) {
	case domain.RarityRare:
		return ColorRare
	case domain.RarityEpic:
		return ColorEpic
	case domain.RarityLegendary:
		return ColorLegendary
	default:
		return ColorCommon
	}
}
