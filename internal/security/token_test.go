package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager(t *testing.T) {
	manager := NewTokenManager("test-secret-key")

	t.Run("RoundTrip", func(t *testing.T) {
		token, err := manager.GenerateSessionToken("user-123", "dana@test.com", time.Hour)
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.Subject)
		assert.Equal(t, "dana@test.com", claims.Email)
		assert.Equal(t, "buxmate", claims.Issuer)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := manager.GenerateSessionToken("user-123", "", -time.Minute)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("another-secret")
		token, err := other.GenerateSessionToken("user-123", "", time.Hour)
		require.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
