package handler

import (
	"net/http"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/profile"
)

// ProgressResponse describes where a user sits inside their current level band
type ProgressResponse struct {
	UserID         string `json:"user_id"`
	CurrentLevelXP int    `json:"current_level_xp"`
	NextLevelXP    int    `json:"next_level_xp"`
	Progress       int    `json:"progress"`
	XPNeeded       int    `json:"xp_needed"`
}

// LeaderboardResponse wraps the ranked XP leaderboard
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
	Count   int                       `json:"count"`
}

// HandleGetProfile returns a user's gamification profile
// @Summary Get user profile
// @Description Returns total XP, level, and experiment counters for a user
// @Tags user
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Router /user/profile [get]
func HandleGetProfile(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		prof, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProfileFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, prof)
	}
}

// HandleGetProgress returns a user's progress within the current level band
// @Summary Get level progress
// @Description Returns XP position inside the current level band as an integer percentage
// @Tags user
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} ProgressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse
// @Router /user/progress [get]
func HandleGetProgress(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		progress, err := svc.GetLevelProgress(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetProgressFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ProgressResponse{
			UserID:         userID,
			CurrentLevelXP: progress.CurrentLevelXP,
			NextLevelXP:    progress.NextLevelXP,
			Progress:       progress.Progress,
			XPNeeded:       progress.XPNeeded,
		})
	}
}

// HandleGetLeaderboard returns the top profiles ranked by total XP
// @Summary Get XP leaderboard
// @Description Returns the top users ordered by total XP (default 10, max 100)
// @Tags leaderboard
// @Produce json
// @Param limit query int false "Number of entries to return"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleGetLeaderboard(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		limit, ok := GetOptionalIntParam(r, w, "limit", 0)
		if !ok {
			return
		}

		entries, err := svc.Leaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		log.Debug("Leaderboard served", "entries", len(entries))
		respondJSON(w, http.StatusOK, LeaderboardResponse{
			Entries: entries,
			Count:   len(entries),
		})
	}
}
