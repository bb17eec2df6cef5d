// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrWeakPassword       = errors.New("password must be at least 6 characters long")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrDuplicateSKU       = errors.New("sku already exists")
	ErrDuplicateEntry     = errors.New("duplicate entry")
	ErrMissingToken       = errors.New("access token required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
