package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"learnity/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
}

func protectedApp(scope string) *fiber.App {
	app := fiber.New()
	handlers := []fiber.Handler{JWTMiddleware}
	if scope != "" {
		handlers = append(handlers, AdminOnly(scope))
	}
	handlers = append(handlers, func(c *fiber.Ctx) error {
		return JsonResponse(c, fiber.StatusOK, true, "ok", nil)
	})
	app.Get("/protected", handlers...)
	return app
}

func TestJWTMiddlewareRejectsMissingHeader(t *testing.T) {
	app := protectedApp("")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareRejectsMalformedToken(t *testing.T) {
	app := protectedApp("")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareAcceptsValidToken(t *testing.T) {
	app := protectedApp("")

	token, err := GenerateJWT(7, "Ada Lovelace", "USER", "ada@example.com", nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminOnlyRequiresAdminRole(t *testing.T) {
	app := protectedApp(ScopeCourseWrite)

	token, err := GenerateJWT(7, "Ada Lovelace", "USER", "ada@example.com", []string{ScopeCourseWrite})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminOnlyRequiresScope(t *testing.T) {
	app := protectedApp(ScopeCourseWrite)

	token, err := GenerateJWT(7, "Ada Lovelace", "ADMIN", "ada@example.com", []string{ScopeUserWrite})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminOnlyAllowsAdminWithScope(t *testing.T) {
	app := protectedApp(ScopeCourseWrite)

	token, err := GenerateJWT(7, "Ada Lovelace", "ADMIN", "ada@example.com", []string{ScopeCourseWrite})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
