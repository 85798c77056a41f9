package handler

import (
	"net/http"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/profile"
)

// RegisterUserRequest represents the request to register a new alchemist.
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,excludesall=\x00\n\r\t"`
}

// HandleRegisterUser handles user registration
// @Summary Register a new user
// @Description Creates a user account and a level 1 profile with zero XP
// @Tags user
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Registration details"
// @Success 201 {object} domain.User
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Failure 500 {object} ErrorResponse
// @Router /user/register [post]
func HandleRegisterUser(svc profile.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		user, err := svc.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, ErrMsgRegisterUserFailed, err)
			return
		}

		log.Info("User registered", "user_id", user.ID, "username", user.Username)
		respondJSON(w, http.StatusCreated, user)
	}
}
