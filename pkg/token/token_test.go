package token

import (
	"mining_backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken(t *testing.T) {
	key := []byte("key")
	tok, err := GenerateAccessToken(&model.User{ID: 42}, key, time.Minute)
	require.NoError(t, err)

	claims, err := VerifyToken(tok, key)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.ID)

	_, err = VerifyToken(tok, []byte("other"))
	assert.Error(t, err)
}

func TestAccessToken_Expired(t *testing.T) {
	tok, err := GenerateAccessToken(&model.User{ID: 1}, []byte("key"), -time.Minute)
	require.NoError(t, err)

	_, err = VerifyToken(tok, []byte("key"))
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	tok, err := GenerateRefreshToken()
	require.NoError(t, err)

	hash := HashRefreshToken(tok)
	assert.True(t, VerifyRefreshToken(tok, hash))
	assert.False(t, VerifyRefreshToken(tok+"x", hash))
}

func TestUserID(t *testing.T) {
	tok, err := GenerateAccessToken(&model.User{ID: 7}, []byte("key"), time.Minute)
	require.NoError(t, err)
	claims, err := VerifyToken(tok, []byte("key"))
	require.NoError(t, err)

	id, err := UserID(claims)
	require.NoError(t, err)
	assert.Equal(t, 7, id)

	claims.ID = "abc"
	_, err = UserID(claims)
	assert.Error(t, err)
}
