package cmd

import (
	"context"
	"log/slog"

	"github.com/gaze-network/inscriber/internal/config"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/spf13/cobra"
)

var cmd = &cobra.Command{
	Use:           "inscriber",
	Long:          `Create Bitcoin inscriptions and BRC-20 operations through the inscription API, pay them with a wallet and follow their payment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	var configFile string

	// Add global flags
	flags := cmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file, E.g.  `./config.yaml`")
	flags.String("network", "mainnet", "network to use, E.g. `mainnet` or `testnet`")
	flags.String("api-url", "", "base URL of the inscription API")
	flags.String("token", "", "bearer token for the inscription API")

	// Bind flags to configuration
	config.BindPFlag("network", flags.Lookup("network"))
	config.BindPFlag("api.base_url", flags.Lookup("api-url"))
	config.BindPFlag("auth.token", flags.Lookup("token"))

	// Initialize configuration and logger on start command
	cobra.OnInitialize(func() {
		config := config.Parse(configFile)

		if err := logger.Init(config.Logger); err != nil {
			logger.Panic("Failed to initialize logger: %v", slogx.Error(err), slog.Any("config", config.Logger))
		}
	})
}

func Execute(ctx context.Context) error {
	cmd.AddCommand(
		NewInscribeCommand(),
		NewPayCommand(),
		NewStatusCommand(),
		NewInscriptionCommand(),
		NewRevealCommand(),
		NewBRC20Command(),
		NewWalletCommand(),
		NewTokenCommand(),
		NewServeCommand(),
		NewHistoryCommand(),
		NewMigrateCommand(),
		NewVersionCommand(),
	)

	return cmd.ExecuteContext(ctx)
}
