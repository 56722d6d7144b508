package password_test

import (
	"testing"

	"github.com/magabrotheeeer/magazine-subscription-service/internal/lib/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHashAndCompare(t *testing.T) {
	hash, err := password.GetHash("supersecret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "supersecret", hash)

	assert.NoError(t, password.CompareHash(hash, "supersecret"))
	assert.Error(t, password.CompareHash(hash, "wrongpassword"))
}

func TestGetHashProducesDifferentSalts(t *testing.T) {
	first, err := password.GetHash("supersecret")
	require.NoError(t, err)
	second, err := password.GetHash("supersecret")
	require.NoError(t, err)

	// bcrypt солит каждый хэш отдельно
	assert.NotEqual(t, first, second)
}
