// internal/auth/password_test.go
package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_RoundTrip(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("mypassword")
	require.NoError(t, err)
	assert.NotEqual(t, "mypassword", hash)

	assert.True(t, hasher.Check("mypassword", hash))
	assert.False(t, hasher.Check("notmypassword", hash))
}

func TestPasswordHasher_SaltsEachHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("mypassword")
	require.NoError(t, err)
	second, err := hasher.Hash("mypassword")
	require.NoError(t, err)

	// Random salt means the same password never hashes twice the same.
	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_DefaultCost(t *testing.T) {
	hasher := NewPasswordHasher(0)

	hash, err := hasher.Hash("mypassword")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
