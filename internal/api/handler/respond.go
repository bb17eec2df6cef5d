// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"inventory-api/internal/api/types"
	"inventory-api/internal/util"

	"github.com/go-playground/validator/v10"
)

// validate is shared by all handlers; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New()

func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service-layer sentinel errors onto the uniform
// {error, message} body. Unclassified errors are logged and surface as 500.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	body := types.ErrorResponse{
		Error:   "Internal server error",
		Message: "Something went wrong",
	}

	switch {
	case util.IsError(err, util.ErrMissingFields):
		statusCode = http.StatusBadRequest
		body = types.ErrorResponse{Error: "Missing required fields", Message: "Username and password are required"}
	case util.IsError(err, util.ErrWeakPassword):
		statusCode = http.StatusBadRequest
		body = types.ErrorResponse{Error: "Invalid password", Message: "Password must be at least 6 characters long"}
	case util.IsError(err, util.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		body = types.ErrorResponse{Error: "Invalid credentials", Message: "Username or password is incorrect"}
	case util.IsError(err, util.ErrUserExists):
		statusCode = http.StatusConflict
		body = types.ErrorResponse{Error: "User already exists", Message: "A user with this username already exists"}
	case util.IsError(err, util.ErrDuplicateSKU):
		statusCode = http.StatusConflict
		body = types.ErrorResponse{Error: "SKU already exists", Message: "A product with this SKU already exists"}
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		body = types.ErrorResponse{Error: "Product not found", Message: "No product found with the specified ID"}
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		body = types.ErrorResponse{Error: "Invalid input", Message: err.Error()}
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, body)
}

// badRequest sends a 400 with a field-specific label and message.
func badRequest(logger *slog.Logger, w http.ResponseWriter, label, message string) {
	respondWithJSON(logger, w, http.StatusBadRequest, types.ErrorResponse{
		Error:   label,
		Message: message,
	})
}
