package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/core/constants"
	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/modules/proxy"
	"github.com/gaze-network/inscriber/pkg/automaxprocs"
	"github.com/gaze-network/inscriber/pkg/httpclient"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 60 * time.Second

func NewServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the /api proxy routes in front of the inscription API",
		RunE: func(cmd *cobra.Command, args []string) error {
			undo, err := automaxprocs.Init()
			if err != nil {
				logger.Error("Failed to set GOMAXPROCS", slogx.Error(err))
			}
			defer undo()
			return serveHandler(cmd, args)
		},
	}

	flags := serveCmd.Flags()
	flags.Int("port", proxy.DefaultPort, "port to listen on")
	config.BindPFlag("http_server.port", flags.Lookup("port"))

	return serveCmd
}

func serveHandler(cmd *cobra.Command, _ []string) error {
	conf := config.Load()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	injector := newInjector(ctx, conf)

	// The proxy forwards the caller's own authorization, so its client has no session.
	do.Provide(injector, func(i do.Injector) (*fiber.App, error) {
		conf := do.MustInvoke[config.Config](i)
		client, err := httpclient.New(conf.API.BaseURL, httpclient.Config{
			Debug:     conf.API.Debug,
			Headers:   map[string]string{"User-Agent": constants.UserAgent},
			Timeout:   conf.API.Timeout,
			RateLimit: conf.API.RateLimit,
		})
		if err != nil {
			return nil, errors.Wrap(err, "invalid inscription api configuration")
		}
		app, err := proxy.New(conf.HTTPServer, inscriptionapi.New(client))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return app, nil
	})

	app, err := do.Invoke[*fiber.App](injector)
	if err != nil {
		return errors.WithStack(err)
	}
	port := utils.Default(conf.HTTPServer.Port, proxy.DefaultPort)
	go func() {
		// stop main process if API stopped
		defer stop()

		logger.InfoContext(ctx, "Started HTTP server", slog.Int("port", port), slogx.String("upstream", conf.API.BaseURL))
		if err := app.Listen(fmt.Sprintf(":%d", port)); err != nil {
			logger.ErrorContext(ctx, "Something went wrong, error during running HTTP server", slogx.Error(err))
		}
	}()

	<-ctx.Done()

	// Force shutdown if timeout exceeded or got signal again
	go func() {
		defer os.Exit(1)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		select {
		case <-ctx.Done():
			logger.FatalContext(ctx, "Received exit signal again. Force shutdown...")
		case <-time.After(shutdownTimeout + 15*time.Second):
			logger.FatalContext(ctx, "Shutdown timeout exceeded. Force shutdown...")
		}
	}()

	// the injector shuts the HTTP server down with everything else
	shutdown(ctx, injector)
	return nil
}
