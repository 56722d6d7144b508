package jwt_test

import (
	"errors"
	"testing"
	"time"

	customjwt "github.com/magabrotheeeer/magazine-subscription-service/internal/lib/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTokenPair(t *testing.T) {
	maker := customjwt.NewJWTMaker("test-secret", 30*time.Minute, 7*24*time.Hour)

	access, refresh, err := maker.GenerateTokenPair("testuser")
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	accessClaims, err := maker.ParseToken(access)
	require.NoError(t, err)
	assert.Equal(t, "testuser", accessClaims.Subject)
	assert.Equal(t, customjwt.TokenTypeAccess, accessClaims.TokenType)

	refreshClaims, err := maker.ParseToken(refresh)
	require.NoError(t, err)
	assert.Equal(t, "testuser", refreshClaims.Subject)
	assert.Equal(t, customjwt.TokenTypeRefresh, refreshClaims.TokenType)
}

func TestParseToken_Expired(t *testing.T) {
	maker := customjwt.NewJWTMaker("test-secret", -time.Second, -time.Second)

	access, _, err := maker.GenerateTokenPair("testuser")
	require.NoError(t, err)

	_, err = maker.ParseToken(access)
	require.Error(t, err)
	assert.True(t, errors.Is(err, customjwt.ErrInvalidToken))
}

func TestParseToken_JustBeforeExpiry(t *testing.T) {
	// токен живёт секунду, проверяем сразу после выдачи
	maker := customjwt.NewJWTMaker("test-secret", time.Second, time.Second)

	access, _, err := maker.GenerateTokenPair("testuser")
	require.NoError(t, err)

	claims, err := maker.ParseToken(access)
	require.NoError(t, err)
	assert.Equal(t, "testuser", claims.Subject)
}

func TestParseToken_WrongKey(t *testing.T) {
	maker := customjwt.NewJWTMaker("test-secret", 30*time.Minute, 7*24*time.Hour)
	other := customjwt.NewJWTMaker("other-secret", 30*time.Minute, 7*24*time.Hour)

	access, _, err := maker.GenerateTokenPair("testuser")
	require.NoError(t, err)

	_, err = other.ParseToken(access)
	require.Error(t, err)
	assert.True(t, errors.Is(err, customjwt.ErrInvalidToken))
}

func TestParseToken_Garbage(t *testing.T) {
	maker := customjwt.NewJWTMaker("test-secret", 30*time.Minute, 7*24*time.Hour)

	_, err := maker.ParseToken("not-a-token")
	require.Error(t, err)
	assert.True(t, errors.Is(err, customjwt.ErrInvalidToken))
}
