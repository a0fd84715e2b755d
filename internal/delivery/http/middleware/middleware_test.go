package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/savioruz/courtside/pkg/constant"
	"github.com/savioruz/courtside/pkg/jwt"
	"github.com/savioruz/courtside/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-test-secret"

func init() {
	jwt.Initialize("", testSecret)
}

func sign(t *testing.T, level string) string {
	t.Helper()

	signed, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		ID:    "u-1",
		Level: level,
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func do(t *testing.T, app *fiber.App, authorization string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	return resp
}

func TestJwt(t *testing.T) {
	app := fiber.New()
	app.Get("/", Jwt(), func(c *fiber.Ctx) error {
		assert.Equal(t, "u-1", c.Locals(constant.JwtFieldUser))
		assert.NotEmpty(t, c.Locals(constant.JwtFieldToken))

		return c.SendStatus(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, do(t, app, "Bearer "+sign(t, constant.UserRoleUser)).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "Token abc").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "Bearer not-a-jwt").StatusCode)
}

func TestAdminOnly(t *testing.T) {
	calls := 0

	app := fiber.New()
	app.Get("/", AdminOnly(), func(c *fiber.Ctx) error {
		calls++

		return c.SendStatus(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, do(t, app, "Bearer "+sign(t, constant.UserRoleAdmin)).StatusCode)
	assert.Equal(t, http.StatusForbidden, do(t, app, "Bearer "+sign(t, constant.UserRoleUser)).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, do(t, app, "").StatusCode)
	assert.Equal(t, 1, calls)
}

func TestRequestID(t *testing.T) {
	app := fiber.New()
	app.Use(RequestID())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(GetRequestID(c))
	})

	resp := do(t, app, "")
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-1", resp.Header.Get(RequestIDHeader))
}

func TestRecovery(t *testing.T) {
	var buf strings.Builder

	app := fiber.New()
	app.Use(RequestID())
	app.Use(Logger(logger.NewWithWriter("debug", &buf)))
	app.Use(Recovery(logger.NewWithWriter("debug", &buf)))
	app.Get("/", func(_ *fiber.Ctx) error {
		panic("boom")
	})

	resp := do(t, app, "")

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, buf.String(), "PANIC DETECTED: boom")
	assert.Contains(t, buf.String(), " - GET / - 500")
}
