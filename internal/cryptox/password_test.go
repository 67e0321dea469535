package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPassword("secret1", hash))
	assert.False(t, CheckPassword("secret2", hash))
}

func TestHashPassword_SaltedOutputDiffers(t *testing.T) {
	h1, err := HashPassword("secret1")
	require.NoError(t, err)
	h2, err := HashPassword("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("secret1", h1))
	assert.True(t, CheckPassword("secret1", h2))
}

func TestHashPassword_Cost(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, hashCost, cost)
}

func TestHashPassword_UTF8Input(t *testing.T) {
	hash, err := HashPassword("пароль-🔒-mötley")
	require.NoError(t, err)
	assert.True(t, CheckPassword("пароль-🔒-mötley", hash))
}

func TestHashPassword_LongInput(t *testing.T) {
	// 240 bytes of UTF-8, well past bcrypt's 72-byte input limit
	long := strings.Repeat("пароль", 20)

	hash, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, CheckPassword(long, hash))
}

func TestHashPassword_LongInputsNotTruncated(t *testing.T) {
	// two passwords sharing their first 72 bytes must not collide
	prefix := strings.Repeat("x", 100)

	hash, err := HashPassword(prefix + "one")
	require.NoError(t, err)

	assert.True(t, CheckPassword(prefix+"one", hash))
	assert.False(t, CheckPassword(prefix+"two", hash))
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, CheckPassword("secret1", ""))
	assert.False(t, CheckPassword("secret1", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("secret1", "$2a$malformed"))
}
