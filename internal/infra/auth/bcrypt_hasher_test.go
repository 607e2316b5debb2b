package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_HashTooLong(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)

	assert.True(t, hasher.Check("correct horse", hash))
	assert.False(t, hasher.Check("wrong horse", hash))
	assert.False(t, hasher.Check("correct horse", "not-a-bcrypt-hash"))
}

func TestNewBcryptHasher_UsesDefaultCost(t *testing.T) {
	hasher := NewBcryptHasher()

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
