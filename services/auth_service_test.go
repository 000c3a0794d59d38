package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	svc := NewAuthService(string(hash), "signing-key")

	t.Run("valid password issues organizer token", func(t *testing.T) {
		tokenString, err := svc.Login(context.Background(), LoginInput{Password: "s3cret"})
		require.NoError(t, err)

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
			return []byte("signing-key"), nil
		})
		require.NoError(t, err)
		assert.True(t, token.Valid)
		assert.Equal(t, RoleOrganizer, claims["role"])
		exp, ok := claims["exp"].(float64)
		require.True(t, ok)
		assert.InDelta(t, float64(time.Now().Add(tokenTTL).Unix()), exp, 5)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginInput{Password: "guess"})
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})

	t.Run("empty password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), LoginInput{})
		assert.ErrorIs(t, err, ErrValidationFailed)
	})

	t.Run("malformed hash", func(t *testing.T) {
		broken := NewAuthService("not-a-hash", "signing-key")
		_, err := broken.Login(context.Background(), LoginInput{Password: "s3cret"})
		assert.ErrorIs(t, err, ErrAuthenticationFailed)
	})
}

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("organizer-pw")
	require.NoError(t, err)

	svc := NewAuthService(hash, "k")
	_, err = svc.Login(context.Background(), LoginInput{Password: "organizer-pw"})
	assert.NoError(t, err)

	_, err = HashPassword("")
	assert.ErrorIs(t, err, ErrValidationFailed)
}
