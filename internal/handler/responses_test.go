package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{"nil error", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound, ErrMsgUserNotFoundError},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict, ErrMsgUsernameTakenError},
		{"consumable not found", domain.ErrConsumableNotFound, http.StatusNotFound, ErrMsgConsumableNotFoundError},
		{"experiment not found", domain.ErrExperimentNotFound, http.StatusNotFound, ErrMsgExperimentNotFoundError},
		{"achievement not found", domain.ErrAchievementNotFound, http.StatusNotFound, ErrMsgAchievementNotFoundErr},
		{"invalid category", domain.ErrInvalidCategory, http.StatusBadRequest, ErrMsgInvalidCategoryError},
		{"too few consumables", domain.ErrNotEnoughConsumables, http.StatusBadRequest, ErrMsgNotEnoughConsumablesErr},
		{"too many consumables", domain.ErrTooManyConsumables, http.StatusBadRequest, ErrMsgTooManyConsumablesError},
		{"duplicate consumable", domain.ErrDuplicateConsumable, http.StatusBadRequest, ErrMsgDuplicateConsumableErr},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}

func TestMapServiceErrorToUserMessage_WrappedErrors(t *testing.T) {
	t.Run("single wrap", func(t *testing.T) {
		err := fmt.Errorf("get profile: %w", domain.ErrUserNotFound)
		status, msg := mapServiceErrorToUserMessage(err)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, ErrMsgUserNotFoundError, msg)
	})

	t.Run("double wrap", func(t *testing.T) {
		err := fmt.Errorf("run experiment: %w", fmt.Errorf("resolve: %w", domain.ErrConsumableNotFound))
		status, msg := mapServiceErrorToUserMessage(err)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, ErrMsgConsumableNotFoundError, msg)
	})
}

func TestMapServiceErrorToUserMessage_UnknownErrors(t *testing.T) {
	t.Run("short message passes through", func(t *testing.T) {
		status, msg := mapServiceErrorToUserMessage(errors.New("db down"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "db down", msg)
	})

	t.Run("very long message falls back to generic", func(t *testing.T) {
		status, msg := mapServiceErrorToUserMessage(errors.New(strings.Repeat("x", 250)))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, ErrMsgGenericServerError, msg)
	})
}

func TestRespondJSON(t *testing.T) {
	w := httptest.NewRecorder()

	respondJSON(w, http.StatusCreated, SuccessResponse{Message: "done"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"message":"done"}`+"\n", w.Body.String())
}

func TestRespondError(t *testing.T) {
	w := httptest.NewRecorder()

	respondError(w, http.StatusBadRequest, "bad input")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `{"error":"bad input"}`+"\n", w.Body.String())
}
