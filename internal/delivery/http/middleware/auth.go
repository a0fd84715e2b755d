package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/courtside/internal/delivery/http/response"
	"github.com/savioruz/courtside/pkg/constant"
	"github.com/savioruz/courtside/pkg/failure"
	"github.com/savioruz/courtside/pkg/helper"
	"github.com/savioruz/courtside/pkg/jwt"
)

func Jwt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(c); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}

// authenticate verifies the bearer token and stores its claims and the raw token in Locals.
// The raw token is forwarded to the booking backend.
func authenticate(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return failure.Unauthorized("missing authorization header")
	}

	token, ok := helper.BearerToken(authHeader)
	if !ok {
		return failure.Unauthorized("invalid authorization header format")
	}

	claims, err := jwt.ValidateToken(token)
	if err != nil {
		return failure.Unauthorized("invalid token")
	}

	c.Locals(constant.JwtFieldUser, claims.ID)
	c.Locals(constant.JwtFieldEmail, claims.Email)
	c.Locals(constant.JwtFieldLevel, claims.Level)
	c.Locals(constant.JwtFieldToken, token)

	return nil
}
