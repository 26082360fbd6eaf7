package auth_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gospelmedia_backend/internals/configs"
	helper "gospelmedia_backend/internals/helpers"
	"gospelmedia_backend/internals/middlewares/auth"
)

func newApp() *fiber.App {
	configs.JWTSecret = "test-secret"
	app := fiber.New()
	app.Get("/protected", auth.AuthMiddleware(), func(c *fiber.Ctx) error {
		return helper.Success(c, fiber.Map{
			"userId":   helper.UserID(c),
			"tenantId": helper.TenantID(c),
			"userType": helper.UserType(c),
		})
	})
	return app
}

func sign(t *testing.T, claims jwt.MapClaims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func get(t *testing.T, app *fiber.App, authHeader string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set(fiber.HeaderAuthorization, authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	app := newApp()
	assert.Equal(t, 401, get(t, app, ""))
	assert.Equal(t, 401, get(t, app, "Bearer"))
	assert.Equal(t, 401, get(t, app, "Basic dXNlcjpwYXNz"))
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app := newApp()
	token := sign(t, jwt.MapClaims{
		"user_id":   "u1",
		"tenant_id": "t1",
		"user_type": "publisher",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}, "test-secret")
	assert.Equal(t, 200, get(t, app, "Bearer "+token))
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	app := newApp()
	token := sign(t, jwt.MapClaims{"user_id": "u1", "tenant_id": "t1"}, "other-secret")
	assert.Equal(t, 401, get(t, app, "Bearer "+token))
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := newApp()
	token := sign(t, jwt.MapClaims{
		"user_id":   "u1",
		"tenant_id": "t1",
		"exp":       time.Now().Add(-time.Hour).Unix(),
	}, "test-secret")
	assert.Equal(t, 401, get(t, app, "Bearer "+token))
}

func TestAuthMiddlewareMissingIdentityClaims(t *testing.T) {
	app := newApp()
	token := sign(t, jwt.MapClaims{"user_id": "u1"}, "test-secret")
	assert.Equal(t, 401, get(t, app, "Bearer "+token))
}
