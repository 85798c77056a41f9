package handler

import (
	"net/http"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/experiment"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// RunExperimentRequest represents the request to mix a combination of consumables.
// Combination size bounds are enforced by the experiment service so API and
// non-API callers share one rule.
type RunExperimentRequest struct {
	UserID        string   `json:"user_id" validate:"required,uuid4"`
	ConsumableIDs []string `json:"consumable_ids" validate:"required,dive,required"`
	Notes         string   `json:"notes" validate:"max=500"`
}

// ListExperimentsResponse wraps a user's experiment history
type ListExperimentsResponse struct {
	Experiments []domain.Experiment `json:"experiments"`
	Count       int                 `json:"count"`
}

// HandleRunExperiment scores and records a new experiment
// @Summary Run an experiment
// @Description Mixes 2-8 distinct consumables, scores the combination, persists it, and awards XP
// @Tags experiments
// @Accept json
// @Produce json
// @Param request body RunExperimentRequest true "Experiment details"
// @Success 201 {object} domain.Experiment
// @Failure 400 {object} ErrorResponse "Invalid combination"
// @Failure 404 {object} ErrorResponse "User or consumable not found"
// @Failure 500 {object} ErrorResponse
// @Router /experiments [post]
func HandleRunExperiment(svc experiment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RunExperimentRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Run experiment"); err != nil {
			return
		}

		exp, err := svc.RunExperiment(r.Context(), req.UserID, req.ConsumableIDs, req.Notes)
		if err != nil {
			respondServiceError(w, r, ErrMsgRunExperimentFailed, err)
			return
		}

		log.Info("Experiment recorded",
			"experiment_id", exp.ID,
			"user_id", req.UserID,
			"success", exp.Success,
			"xp_awarded", exp.XPAwarded)
		respondJSON(w, http.StatusCreated, exp)
	}
}

// HandleListExperiments returns a user's experiment history, newest first
// @Summary List experiments
// @Description Returns the user's experiments ordered newest first (default limit 20, max 100)
// @Tags experiments
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Number of experiments to return"
// @Success 200 {object} ListExperimentsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /experiments [get]
func HandleListExperiments(svc experiment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		limit, ok := GetOptionalIntParam(r, w, "limit", 0)
		if !ok {
			return
		}

		experiments, err := svc.ListExperiments(r.Context(), userID, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgListExperimentsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, ListExperimentsResponse{
			Experiments: experiments,
			Count:       len(experiments),
		})
	}
}
