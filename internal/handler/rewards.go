package handler

import (
	"net/http"
	"strconv"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/gamification"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// LevelRewardsResponse describes the reward tier a level grants
type LevelRewardsResponse struct {
	Level   int      `json:"level"`
	Title   string   `json:"title"`
	BonusXP int      `json:"bonus_xp"`
	Unlocks []string `json:"unlocks"`
}

// RarityDescriptor pairs a rarity tier with its UI color tokens
type RarityDescriptor struct {
	Rarity        string  `json:"rarity"`
	Color         string  `json:"color"`
	BgColor       string  `json:"bg_color"`
	NoveltyWeight float64 `json:"novelty_weight"`
}

// RaritiesResponse lists the rarity tiers in ascending order
type RaritiesResponse struct {
	Rarities []RarityDescriptor `json:"rarities"`
}

// HandleGetRewards returns the reward tier descriptor for a level
// @Summary Get level rewards
// @Description Returns the title, milestone bonus XP, and unlocks for a level
// @Tags rewards
// @Produce json
// @Param level query int true "Level to look up"
// @Success 200 {object} LevelRewardsResponse
// @Failure 400 {object} ErrorResponse
// @Router /rewards [get]
func HandleGetRewards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		raw, ok := GetQueryParam(r, w, "level")
		if !ok {
			return
		}
		level, err := strconv.Atoi(raw)
		if err != nil || level < domain.MinLevel {
			log.Warn("Invalid level query parameter", "value", raw)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLevel)
			return
		}

		rewards := gamification.GetLevelRewards(level)
		respondJSON(w, http.StatusOK, LevelRewardsResponse{
			Level:   level,
			Title:   rewards.Title,
			BonusXP: rewards.BonusXP,
			Unlocks: rewards.Unlocks,
		})
	}
}

// HandleGetRarities returns the rarity color token map
// @Summary Get rarity colors
// @Description Returns the text and background color tokens for each rarity tier
// @Tags rewards
// @Produce json
// @Success 200 {object} RaritiesResponse
// @Router /rarities [get]
func HandleGetRarities() http.HandlerFunc {
	tiers := []domain.Rarity{
		domain.RarityCommon,
		domain.RarityRare,
		domain.RarityEpic,
		domain.RarityLegendary,
	}

	return func(w http.ResponseWriter, r *http.Request) {
		descriptors := make([]RarityDescriptor, 0, len(tiers))
		for _, tier := range tiers {
			descriptors = append(descriptors, RarityDescriptor{
				Rarity:        string(tier),
				Color:         gamification.GetRarityColor(tier),
				BgColor:       gamification.GetRarityBgColor(tier),
				NoveltyWeight: tier.NoveltyWeight(),
			})
		}
		respondJSON(w, http.StatusOK, RaritiesResponse{Rarities: descriptors})
	}
}
