package auth_test

import (
	"testing"
	"time"

	"encore-backend/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

const testSecret = "unit-test-secret-0123456789abcdef"

func signToken(t *testing.T, claims jwt.Claims, method jwt.SigningMethod, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return s
}

func TestVerifier_Verify(t *testing.T) {
	v := auth.NewVerifier(testSecret)

	t.Run("ValidToken", func(t *testing.T) {
		token := signToken(t, &auth.UserClaims{
			Email: "jo@test.com",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, jwt.SigningMethodHS256, testSecret)

		claims, err := v.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID())
		assert.Equal(t, "jo@test.com", claims.Email)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		token := signToken(t, &auth.UserClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}, jwt.SigningMethodHS256, testSecret)

		_, err := v.Verify(token)
		assert.ErrorIs(t, err, auth.ErrExpiredToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		token := signToken(t, &auth.UserClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-1",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, jwt.SigningMethodHS256, "some-other-secret-0123456789abcd")

		_, err := v.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("MissingSubject", func(t *testing.T) {
		token := signToken(t, &auth.UserClaims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, jwt.SigningMethodHS256, testSecret)

		_, err := v.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := v.Verify("not.a.token")
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}
