package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedenisnikulin/nocsdegree.ru/pkg/auth"
)

const secret = "test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	app.Get("/admin", NewAuthMiddleware(secret, "nocsdegree"), RequireAdmin(), func(c *fiber.Ctx) error {
		return c.SendString(c.Locals(LocalUserID).(string))
	})
	return app
}

func call(t *testing.T, app *fiber.App, header string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestMiddleware(t *testing.T) {
	app := newApp()
	admin := auth.User{ID: uuid.New(), Email: "a@b.c", IsAdmin: true}

	token, err := NewGenerator(secret, "nocsdegree", time.Hour).Generate(context.Background(), admin)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, call(t, app, "Bearer "+token).StatusCode)
	assert.Equal(t, http.StatusOK, call(t, app, token).StatusCode)
	assert.Equal(t, http.StatusUnauthorized, call(t, app, "").StatusCode)
	assert.Equal(t, http.StatusUnauthorized, call(t, app, "Bearer garbage").StatusCode)
}

func TestMiddleware_Rejects(t *testing.T) {
	app := newApp()
	ctx := context.Background()

	nonAdmin, err := NewGenerator(secret, "nocsdegree", time.Hour).Generate(ctx, auth.User{ID: uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, call(t, app, "Bearer "+nonAdmin).StatusCode)

	admin := auth.User{ID: uuid.New(), IsAdmin: true}
	otherIssuer, err := NewGenerator(secret, "someone-else", time.Hour).Generate(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(t, app, "Bearer "+otherIssuer).StatusCode)

	wrongKey, err := NewGenerator("other-secret", "nocsdegree", time.Hour).Generate(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(t, app, "Bearer "+wrongKey).StatusCode)

	gen := NewGenerator(secret, "nocsdegree", time.Minute)
	gen.now = func() time.Time { return time.Now().Add(-time.Hour) }
	expired, err := gen.Generate(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, call(t, app, "Bearer "+expired).StatusCode)
}
