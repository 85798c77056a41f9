package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/consumable"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// SearchConsumablesResponse wraps catalog search results
type SearchConsumablesResponse struct {
	Results []domain.Consumable `json:"results"`
	Count   int                 `json:"count"`
}

// HandleSearchConsumables searches the consumable catalog
// @Summary Search consumables
// @Description Case-insensitive name search with an optional category filter (default limit 20, max 100)
// @Tags consumables
// @Produce json
// @Param q query string false "Name fragment to match"
// @Param category query string false "Category filter (food, drink, supplement, herb)"
// @Param limit query int false "Number of results to return"
// @Success 200 {object} SearchConsumablesResponse
// @Failure 400 {object} ErrorResponse "Unknown category"
// @Failure 500 {object} ErrorResponse
// @Router /consumables/search [get]
func HandleSearchConsumables(svc consumable.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		query := GetOptionalQueryParam(r, "q", "")
		category := GetOptionalQueryParam(r, "category", "")
		limit, ok := GetOptionalIntParam(r, w, "limit", 0)
		if !ok {
			return
		}

		results, err := svc.Search(r.Context(), query, category, limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgSearchFailed, err)
			return
		}

		log.Debug("Catalog search served", "query", query, "category", category, "results", len(results))
		respondJSON(w, http.StatusOK, SearchConsumablesResponse{
			Results: results,
			Count:   len(results),
		})
	}
}

// HandleGetConsumable returns a single consumable by ID
// @Summary Get consumable
// @Description Returns one catalog entry by its ID
// @Tags consumables
// @Produce json
// @Param id path string true "Consumable ID"
// @Success 200 {object} domain.Consumable
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Consumable not found"
// @Failure 500 {object} ErrorResponse
// @Router /consumables/{id} [get]
func HandleGetConsumable(svc consumable.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			respondError(w, http.StatusBadRequest, "Missing consumable ID")
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetConsumableFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, c)
	}
}
