package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/haneul-dev/raidledger/internal/logger"
	"github.com/haneul-dev/raidledger/internal/user"
)

// RegisterUserRequest is the request body for registering a guild member
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,min=1,max=50"`
}

// HandleRegisterUser registers a new guild member account
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func HandleRegisterUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		created, err := userService.Register(r.Context(), req.Username)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to register user", "error", err, "username", req.Username)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetUser returns one user by ID
// @Summary Get a user
// @Tags users
// @Produce json
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Router /users/{userID} [get]
func HandleGetUser(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := chi.URLParam(r, "userID")

		u, err := userService.GetUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}

// HandleListUsers returns all registered users
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} domain.User
// @Router /users [get]
func HandleListUsers(userService user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := userService.ListUsers(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list users", "error", err)
			respondServiceError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, users)
	}
}
