package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hash)

	require.True(t, CheckPassword(hash, "secret123"))
	require.False(t, CheckPassword(hash, "wrong"))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("alice", "secret", time.Hour)
	require.NoError(t, err)
	require.True(t, len(token) > 7 && token[:7] == "Bearer ")

	username, exp, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	require.Equal(t, "alice", username)
	require.Greater(t, exp, time.Now().Unix())

	// With and without the Bearer prefix.
	username, _, err = ParseJWT(token[7:], "secret")
	require.NoError(t, err)
	require.Equal(t, "alice", username)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("alice", "secret", time.Hour)
	require.NoError(t, err)

	_, _, err = ParseJWT(token, "other-secret")
	require.Error(t, err)
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT("alice", "secret", -time.Hour)
	require.NoError(t, err)

	_, _, err = ParseJWT(token, "secret")
	require.Error(t, err)
}

func TestParseJWTEmpty(t *testing.T) {
	_, _, err := ParseJWT("   ", "secret")
	require.Error(t, err)

	_, _, err = ParseJWT("Bearer ", "secret")
	require.Error(t, err)
}
