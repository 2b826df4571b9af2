package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionJWT(t *testing.T) {
	secret := "test-secret"

	t.Run("issued token parses back to its session id", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, 1)
		require.NoError(t, err)

		sessionID, err := ParseSessionJWT(token, secret)
		require.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, err := GenerateSessionJWT("session-123", secret, 1)
		require.NoError(t, err)

		_, err = ParseSessionJWT(token, "other-secret")
		assert.Error(t, err)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		_, err := ParseSessionJWT("not-a-token", secret)
		assert.Error(t, err)
	})

	t.Run("token without a session id is rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		tokenString, err := token.SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = ParseSessionJWT(tokenString, secret)
		assert.Error(t, err)
	})
}
