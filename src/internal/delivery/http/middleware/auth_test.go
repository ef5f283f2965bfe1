package middleware

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"skillswitch-service/src/pkg/token"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp(t *testing.T) (*fiber.App, redis.UniversalClient) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	v := viper.New()
	v.Set("auth.jwt.secret", "middleware-secret")

	app := fiber.New()
	app.Use(VerifyBearer(v, rdb))
	app.Get("/me", func(ctx *fiber.Ctx) error {
		auth := GetUser(ctx)
		return ctx.SendString(auth.UserID + "|" + auth.SessionID)
	})
	return app, rdb
}

func TestVerifyBearer(t *testing.T) {
	app, rdb := newProtectedApp(t)

	live, liveClaim, err := token.Issue("middleware-secret", "test", time.Hour, token.Metadata{UserID: "u1", FullName: "Asha"})
	require.NoError(t, err)
	require.NoError(t, rdb.Set(context.Background(), token.SessionKey(liveClaim.ID), "u1", time.Hour).Err())

	revoked, _, err := token.Issue("middleware-secret", "test", time.Hour, token.Metadata{UserID: "u1"})
	require.NoError(t, err)

	stolen, stolenClaim, err := token.Issue("middleware-secret", "test", time.Hour, token.Metadata{UserID: "u2"})
	require.NoError(t, err)
	require.NoError(t, rdb.Set(context.Background(), token.SessionKey(stolenClaim.ID), "u1", time.Hour).Err())

	forged, _, err := token.Issue("other-secret", "test", time.Hour, token.Metadata{UserID: "u1"})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "live session", header: "Bearer " + live, status: fiber.StatusOK, body: "u1|" + liveClaim.ID},
		{name: "lowercase scheme", header: "bearer " + live, status: fiber.StatusOK, body: "u1|" + liveClaim.ID},
		{name: "missing header", header: "", status: fiber.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", status: fiber.StatusUnauthorized},
		{name: "signed out", header: "Bearer " + revoked, status: fiber.StatusUnauthorized},
		{name: "session owned by someone else", header: "Bearer " + stolen, status: fiber.StatusUnauthorized},
		{name: "bad signature", header: "Bearer " + forged, status: fiber.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)
			if tt.body != "" {
				body, _ := io.ReadAll(resp.Body)
				assert.Equal(t, tt.body, string(body))
			}
		})
	}
}
