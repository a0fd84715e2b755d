package jwt

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

const accessTokenType = "access_token"

var (
	instance *JWT
	once     sync.Once

	ErrJWTNotInitialized = errors.New("jwt: instance not initialized")
	ErrInvalidToken      = errors.New("jwt: invalid token")
)

// JWT verifies tokens signed by the booking backend with a shared secret.
type JWT struct {
	issuer    string
	secretKey string
}

func Initialize(issuer, secretKey string) {
	once.Do(func() {
		instance = &JWT{
			issuer:    issuer,
			secretKey: secretKey,
		}
	})
}

func GetInstance() *JWT {
	return instance
}

func ValidateToken(tokenString string) (*Claims, error) {
	j := GetInstance()
	if j == nil {
		return nil, ErrJWTNotInitialized
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}

	if j.issuer != "" {
		opts = append(opts, jwt.WithIssuer(j.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (interface{}, error) {
		return []byte(j.secretKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != "" && claims.TokenType != accessTokenType {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
