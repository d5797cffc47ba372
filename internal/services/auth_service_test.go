package services

import (
	"testing"
	"time"

	"github.com/Sibyl1122/promptGenerator/config"
	"github.com/Sibyl1122/promptGenerator/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginAndRevoke(t *testing.T) {
	setupTestDB(t)
	setupTestRedis(t)

	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	Configure(&config.Config{JWTSecret: "secret", ConsolePasswordHash: hash})

	_, _, err = Login("wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, expiresAt, err := Login("hunter2")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(utils.TokenTTL), expiresAt, time.Minute)

	claims, err := utils.ValidateToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, ConsoleSubject, claims.Subject)

	revoked, err := IsDenylisted(token)
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, RevokeToken(token))
	revoked, err = IsDenylisted(token)
	require.NoError(t, err)
	assert.True(t, revoked)

	assert.ErrorIs(t, RevokeToken("garbage"), ErrInvalidCredentials)
}

func TestLoginDisabled(t *testing.T) {
	setupTestDB(t)

	_, _, err := Login("anything")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestDenylistWithoutRedis(t *testing.T) {
	setupTestDB(t)

	assert.ErrorIs(t, AddToDenylist("t", time.Minute), ErrCacheDisabled)
	revoked, err := IsDenylisted("t")
	assert.NoError(t, err)
	assert.False(t, revoked)
}
