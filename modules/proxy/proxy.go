// Package proxy serves the same-origin API routes in front of the inscription API.
package proxy

import (
	"log/slog"
	"net/http"
	"runtime"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/modules/proxy/api/httphandler"
	"github.com/gaze-network/inscriber/modules/proxy/config"
	"github.com/gaze-network/inscriber/modules/proxy/datagateway"
	"github.com/gaze-network/inscriber/pkg/errorhandler"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/gaze-network/inscriber/pkg/metrics"
	"github.com/gaze-network/inscriber/pkg/middleware/requestcontext"
	"github.com/gaze-network/inscriber/pkg/middleware/requestlogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/favicon"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	DefaultPort = 3000
	// DefaultBodyLimit fits the largest inscription file the API accepts plus form overhead.
	DefaultBodyLimit = 16 * 1024 * 1024
)

func New(conf config.Config, api datagateway.UpstreamDataGateway) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "inscriber",
		ErrorHandler:          errorhandler.NewHTTPErrorHandler(),
		BodyLimit:             utils.Default(conf.BodyLimit, DefaultBodyLimit),
		DisableStartupMessage: true,
	})
	app.
		Use(favicon.New()).
		Use(cors.New(cors.Config{
			AllowOrigins: utils.Default(conf.AllowOrigins, "*"),
		})).
		Use(requestid.New()).
		Use(requestcontext.New(
			requestcontext.WithRequestId(),
			requestcontext.WithForwardedHeaders(fiber.HeaderAuthorization),
		)).
		Use(requestlogger.New(conf.Logger)).
		Use(fiberrecover.New(fiberrecover.Config{
			EnableStackTrace: true,
			StackTraceHandler: func(c *fiber.Ctx, e interface{}) {
				buf := make([]byte, 1024)
				buf = buf[:runtime.Stack(buf, false)]
				logger.ErrorContext(c.UserContext(), "Something went wrong, panic in http handler", slogx.Any("panic", e), slog.String("stacktrace", string(buf)))
			},
		})).
		Use(countRequests()).
		Use(compress.New(compress.Config{
			Level: compress.LevelDefault,
		}))

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return errors.WithStack(c.SendStatus(http.StatusOK))
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	if err := httphandler.New(api).Mount(app); err != nil {
		return nil, errors.Wrap(err, "can't mount proxy routes")
	}
	return app, nil
}

func countRequests() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			status = errorhandler.Status(err)
		}
		metrics.ProxyRequests.WithLabelValues(c.Route().Path, metrics.StatusClass(status)).Inc()
		return errors.WithStack(err)
	}
}
