package requestlogger

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationIsNeverLogged(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.SetUserContext(logger.NewContext(c.UserContext(), slog.New(slog.NewTextHandler(&buf, nil))))
		return c.Next()
	})
	app.Use(New(Config{WithRequestHeader: true}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer secret-token")
	req.Header.Set("X-Client", "cli")
	_, err := app.Test(req)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Request Completed")
	assert.Contains(t, buf.String(), "X-Client")
	assert.NotContains(t, buf.String(), "secret-token")
}

func TestLevelFollowsStatus(t *testing.T) {
	testCases := []struct {
		name    string
		handler fiber.Handler
		level   string
	}{
		{"ok", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) }, "level=INFO"},
		{"client error", func(c *fiber.Ctx) error { return fiber.NewError(http.StatusUnprocessableEntity) }, "level=WARN"},
		{"server error", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusBadGateway) }, "level=ERROR"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			app := fiber.New()
			app.Use(func(c *fiber.Ctx) error {
				c.SetUserContext(logger.NewContext(c.UserContext(), slog.New(slog.NewTextHandler(&buf, nil))))
				return c.Next()
			})
			app.Use(New(Config{}))
			app.Get("/", tc.handler)

			_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tc.level)
		})
	}
}
