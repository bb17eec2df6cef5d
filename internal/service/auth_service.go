// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"

	"inventory-api/internal/auth"
	"inventory-api/internal/domain"
	"inventory-api/internal/repository"
	"inventory-api/internal/util"
)

// AuthService defines the interface for registration and login logic.
type AuthService interface {
	// Register creates a new account. Returns util.ErrUserExists when the
	// username is already taken.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and issues an access token. Unknown
	// usernames and wrong passwords both return util.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
}

type authService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	hasher     *auth.PasswordHasher
	tokens     *auth.TokenManager
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
) AuthService {
	return &authService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Register hashes the password and inserts the user. Username uniqueness is
// enforced by the store constraint, not pre-checked.
func (s *authService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := domain.NewUser(username, hash)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEntry) {
			return nil, util.ErrUserExists
		}
		return nil, fmt.Errorf("register: failed to create user: %w", err)
	}
	return user, nil
}

// Login looks up the user and verifies the password before issuing a token.
func (s *authService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, s.dbExecutor, username)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, "", util.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("login: failed to look up user: %w", err)
	}

	if !s.hasher.Check(password, user.PasswordHash) {
		return nil, "", util.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, "", fmt.Errorf("login: failed to issue token: %w", err)
	}
	return user, token, nil
}
