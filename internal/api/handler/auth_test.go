// internal/api/handler/auth_test.go
package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory-api/internal/domain"
	"inventory-api/internal/service"
	"inventory-api/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*domain.User), args.String(1), args.Error(2)
}

var _ service.AuthService = (*MockAuthService)(nil)

func doAuthRequest(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRegister_MissingFields(t *testing.T) {
	h := NewAuthHandler(new(MockAuthService), testLogger())

	for name, body := range map[string]string{
		"empty object":     `{}`,
		"missing password": `{"username":"alice"}`,
		"missing username": `{"password":"longenough"}`,
		"empty values":     `{"username":"","password":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			rec := doAuthRequest(h.Register, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "Missing required fields")
		})
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	h := NewAuthHandler(new(MockAuthService), testLogger())

	rec := doAuthRequest(h.Register, `{"username":"alice","password":"short"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid password")
}

func TestRegister_Success(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, testLogger())

	svc.On("Register", mock.Anything, "alice", "longenough").
		Return(&domain.User{ID: 3, Username: "alice"}, nil)

	rec := doAuthRequest(h.Register, `{"username":"alice","password":"longenough"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp["message"])
	assert.Equal(t, float64(3), resp["user_id"])
}

func TestRegister_DuplicateUsername(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, testLogger())

	svc.On("Register", mock.Anything, "alice", "longenough").
		Return(nil, util.ErrUserExists)

	rec := doAuthRequest(h.Register, `{"username":"alice","password":"longenough"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "User already exists")
}

func TestLogin_MissingFields(t *testing.T) {
	h := NewAuthHandler(new(MockAuthService), testLogger())

	rec := doAuthRequest(h.Login, `{"username":"puja"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing required fields")
}

func TestLogin_InvalidCredentials_UniformShape(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, testLogger())

	// Wrong password and unknown username come back from the service as the
	// same sentinel; both must produce identical responses.
	svc.On("Login", mock.Anything, "puja", "wrong").Return(nil, "", util.ErrInvalidCredentials)
	svc.On("Login", mock.Anything, "ghost", "whatever").Return(nil, "", util.ErrInvalidCredentials)

	recWrongPassword := doAuthRequest(h.Login, `{"username":"puja","password":"wrong"}`)
	recUnknownUser := doAuthRequest(h.Login, `{"username":"ghost","password":"whatever"}`)

	assert.Equal(t, http.StatusUnauthorized, recWrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, recUnknownUser.Code)
	assert.JSONEq(t, recWrongPassword.Body.String(), recUnknownUser.Body.String())
}

func TestLogin_Success(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc, testLogger())

	svc.On("Login", mock.Anything, "puja", "mypassword").
		Return(&domain.User{ID: 1, Username: "puja"}, "signed-token", nil)

	rec := doAuthRequest(h.Login, `{"username":"puja","password":"mypassword"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message     string `json:"message"`
		AccessToken string `json:"access_token"`
		User        struct {
			ID       int64  `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "puja", resp.User.Username)
}
