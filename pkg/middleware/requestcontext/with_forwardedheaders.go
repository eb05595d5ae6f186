package requestcontext

import (
	"context"
	"strings"

	"github.com/gaze-network/inscriber/pkg/httpclient"
	"github.com/gofiber/fiber/v2"
)

// WithForwardedHeaders copies the named request headers into the context, so that
// outbound httpclient requests made with it carry them.
func WithForwardedHeaders(headers ...string) Option {
	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		forwarded := make(map[string]string, len(headers))
		for _, header := range headers {
			if value := c.Get(header); value != "" {
				forwarded[strings.ToLower(header)] = value
			}
		}
		if len(forwarded) == 0 {
			return ctx, nil
		}
		return httpclient.ContextWithHeaders(ctx, forwarded), nil
	}
}
