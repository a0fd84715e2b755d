package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "booking-backend"
	testSecret = "test-secret-key"
)

func init() {
	Initialize(testIssuer, testSecret)
}

func sign(t *testing.T, claims Claims, secret string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func claimsFor(tokenType string, expiry time.Duration) Claims {
	return Claims{
		ID:        "42",
		Email:     "player@gmail.com",
		Level:     "1",
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
		},
	}
}

func TestValidateToken(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		claims, err := ValidateToken(sign(t, claimsFor("access_token", time.Hour), testSecret))

		require.NoError(t, err)
		assert.Equal(t, "42", claims.ID)
		assert.Equal(t, "player@gmail.com", claims.Email)
	})

	t.Run("error: expired", func(t *testing.T) {
		_, err := ValidateToken(sign(t, claimsFor("access_token", -time.Hour), testSecret))
		assert.Error(t, err)
	})

	t.Run("error: wrong secret", func(t *testing.T) {
		_, err := ValidateToken(sign(t, claimsFor("access_token", time.Hour), "other"))
		assert.Error(t, err)
	})

	t.Run("error: refresh token", func(t *testing.T) {
		_, err := ValidateToken(sign(t, claimsFor("refresh_token", time.Hour), testSecret))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("error: wrong issuer", func(t *testing.T) {
		c := claimsFor("access_token", time.Hour)
		c.Issuer = "someone-else"

		_, err := ValidateToken(sign(t, c, testSecret))
		assert.Error(t, err)
	})
}
