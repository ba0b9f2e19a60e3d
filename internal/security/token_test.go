package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenManager(t *testing.T) {
	secret := "0123456789abcdef0123456789abcdef"
	manager := NewTokenManager(secret, time.Hour, 24*time.Hour)

	t.Run("Access token round trip", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(7, "emp@test.com", "manager")
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), claims.EmployeeID)
		assert.Equal(t, "emp@test.com", claims.Email)
		assert.Equal(t, "manager", claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("Refresh token carries no role", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken(7, "emp@test.com")
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
		assert.Empty(t, claims.Role)
	})

	t.Run("Expired token rejected", func(t *testing.T) {
		claims := EmployeeClaims{
			EmployeeID: 7,
			Type:       TokenTypeAccess,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
				IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("Wrong secret rejected", func(t *testing.T) {
		other := NewTokenManager("ffffffffffffffffffffffffffffffff", time.Hour, 24*time.Hour)
		token, err := other.GenerateAccessToken(7, "emp@test.com", "manager")
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Tokens carry unique IDs", func(t *testing.T) {
		a, err := manager.GenerateAccessToken(7, "emp@test.com", "manager")
		assert.NoError(t, err)
		b, err := manager.GenerateAccessToken(7, "emp@test.com", "manager")
		assert.NoError(t, err)
		assert.NotEqual(t, a, b)
	})
}
