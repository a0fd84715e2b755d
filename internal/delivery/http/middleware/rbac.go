package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/savioruz/courtside/internal/delivery/http/response"
	"github.com/savioruz/courtside/pkg/constant"
	"github.com/savioruz/courtside/pkg/failure"
)

func CheckRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := checkRole(c, allowedRoles); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}

func checkRole(c *fiber.Ctx, allowedRoles []string) error {
	role, ok := c.Locals(constant.JwtFieldLevel).(string)
	if !ok {
		return failure.Unauthorized("role information not found")
	}

	for _, allowedRole := range allowedRoles {
		if role == allowedRole {
			return nil
		}
	}

	return failure.Forbidden("insufficient permissions")
}

// AdminOnly protects routes with JWT and Role check for admin role.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := authenticate(c); err != nil {
			return response.WithError(c, err)
		}

		if err := checkRole(c, []string{constant.UserRoleAdmin}); err != nil {
			return response.WithError(c, err)
		}

		return c.Next()
	}
}
