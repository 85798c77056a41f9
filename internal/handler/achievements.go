package handler

import (
	"net/http"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/achievement"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// UserAchievementsResponse lists a user's unlocked badges alongside the
// catalog size, so clients can render locked slots
type UserAchievementsResponse struct {
	UserID         string                       `json:"user_id"`
	Unlocked       []domain.UnlockedAchievement `json:"unlocked"`
	UnlockedCount  int                          `json:"unlocked_count"`
	TotalAvailable int                          `json:"total_available"`
}

// HandleGetUserAchievements returns the badges a user has unlocked
// @Summary Get user achievements
// @Description Returns the user's unlocked badges ordered by the catalog sort order
// @Tags user
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} UserAchievementsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /user/achievements [get]
func HandleGetUserAchievements(svc achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		unlocked, err := svc.ListUserAchievements(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAchievementsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, UserAchievementsResponse{
			UserID:         userID,
			Unlocked:       unlocked,
			UnlockedCount:  len(unlocked),
			TotalAvailable: len(svc.Definitions()),
		})
	}
}
