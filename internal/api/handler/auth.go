// internal/api/handler/auth.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"inventory-api/internal/service"
	"inventory-api/internal/util"

	"github.com/go-playground/validator/v10"
)

// AuthHandler handles HTTP requests for registration and login.
type AuthHandler struct {
	service service.AuthService
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc service.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// credentialError orders credential validation failures: missing fields
// win over a too-short password.
func credentialError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return util.ErrMissingFields
	}
	for _, ve := range verrs {
		if ve.Tag() == "required" {
			return util.ErrMissingFields
		}
	}
	for _, ve := range verrs {
		if ve.Field() == "Password" && ve.Tag() == "min" {
			return util.ErrWeakPassword
		}
	}
	return util.ErrMissingFields
}

// Register handles the user registration request.
// POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrMissingFields)
		return
	}

	if err := validate.Struct(req); err != nil {
		respondWithError(h.logger, w, credentialError(err))
		return
	}

	user, err := h.service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully",
		"user_id": user.ID,
	})
}

// Login handles the login request and issues an access token.
// POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrMissingFields)
		return
	}

	if err := validate.Struct(req); err != nil {
		respondWithError(h.logger, w, util.ErrMissingFields)
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{
		"message":      "Login successful",
		"access_token": token,
		"user": map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}
