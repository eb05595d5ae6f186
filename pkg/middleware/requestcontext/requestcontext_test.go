package requestcontext

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRequestId(t *testing.T) {
	var got string
	app := fiber.New()
	app.Use(New(WithRequestId()))
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetRequestId(c.UserContext())
		return c.SendStatus(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(fiber.HeaderXRequestID, "req-1")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "req-1", got)
	assert.Equal(t, "req-1", resp.Header.Get(fiber.HeaderXRequestID))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.NotEmpty(t, got)
	assert.Equal(t, got, resp.Header.Get(fiber.HeaderXRequestID))
}

func TestOptionFailure(t *testing.T) {
	failing := func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		return ctx, errors.New("boom")
	}
	app := fiber.New()
	app.Use(New(failing))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
