package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ccc-smartassist/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(jwtManager *auth.JWTManager) *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware(jwtManager, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"userID": c.Locals("userID")})
	})
	app.Get("/admin", AdminMiddleware(jwtManager, zap.NewNop()), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/optional", OptionalAuthMiddleware(jwtManager), func(c *fiber.Ctx) error {
		if c.Locals("userID") == nil {
			return c.JSON(fiber.Map{"guest": true})
		}
		return c.JSON(fiber.Map{"guest": false})
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	app := newTestApp(jwtManager)

	token, err := jwtManager.GenerateToken("user-1", "juan", "student")
	require.NoError(t, err)

	resp := doRequest(t, app, "/protected", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, "/protected", "garbage")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminMiddleware(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	app := newTestApp(jwtManager)

	adminToken, err := jwtManager.GenerateToken("admin-1", "root", "admin")
	require.NoError(t, err)
	studentToken, err := jwtManager.GenerateToken("user-1", "juan", "student")
	require.NoError(t, err)

	resp := doRequest(t, app, "/admin", adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, app, "/admin", studentToken)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = doRequest(t, app, "/admin", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOptionalAuthMiddlewareLetsGuestsThrough(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	app := newTestApp(jwtManager)

	resp := doRequest(t, app, "/optional", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	token, err := jwtManager.GenerateToken("user-1", "juan", "student")
	require.NoError(t, err)
	resp = doRequest(t, app, "/optional", token)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
