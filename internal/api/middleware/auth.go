// internal/api/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"inventory-api/internal/api/types"
	"inventory-api/internal/auth"
)

type contextKey string

const claimsKey contextKey = "authClaims"

// Authenticate verifies the bearer token on incoming requests. Requests
// without a token get 401; requests with a token that fails verification
// get 403. On success the verified claims are attached to the request
// context for downstream handlers.
func Authenticate(tokens *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				writeError(w, http.StatusUnauthorized, types.ErrorResponse{
					Error:   "Access token required",
					Message: "Please provide a valid token in the Authorization header",
				})
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				writeError(w, http.StatusForbidden, types.ErrorResponse{
					Error:   "Invalid token",
					Message: "The provided token is invalid or expired",
				})
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext returns the verified claims attached by Authenticate,
// or nil when the request did not pass through the gate.
func ClaimsFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>"
// header. Returns "" when the header is absent or not in bearer form.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeError(w http.ResponseWriter, code int, body types.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}
