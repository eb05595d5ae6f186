package config

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common"
	"github.com/gaze-network/inscriber/internal/postgres"
	brc20config "github.com/gaze-network/inscriber/modules/brc20/config"
	inscriptionconfig "github.com/gaze-network/inscriber/modules/inscription/config"
	proxyconfig "github.com/gaze-network/inscriber/modules/proxy/config"
	"github.com/gaze-network/inscriber/pkg/inscriptionapi"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/gaze-network/inscriber/pkg/wallet/bitcoind"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable, e.g. INSCRIBER_AUTH_TOKEN for auth.token.
const EnvPrefix = "INSCRIBER"

var (
	configOnce sync.Once
	config     = &Config{
		Logger: logger.Config{
			Output: "TEXT",
		},
		Network: common.NetworkMainnet,
		API: APIConfig{
			BaseURL: inscriptionapi.DefaultBaseURL,
			Timeout: 30 * time.Second,
		},
	}
)

type Config struct {
	Logger      logger.Config            `mapstructure:"logger"`
	Network     common.Network           `mapstructure:"network"`
	API         APIConfig                `mapstructure:"api"`
	Auth        AuthConfig               `mapstructure:"auth"`
	Wallet      WalletConfig             `mapstructure:"wallet"`
	Inscription inscriptionconfig.Config `mapstructure:"inscription"`
	BRC20       brc20config.Config       `mapstructure:"brc20"`
	HTTPServer  proxyconfig.Config       `mapstructure:"http_server"`
	History     HistoryConfig            `mapstructure:"history"`
}

type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
	// RateLimit is the maximum number of requests per second to the API. Zero means unlimited.
	RateLimit int  `mapstructure:"rate_limit"`
	Debug     bool `mapstructure:"debug"`
}

type AuthConfig struct {
	// Token is the bearer token stored at start.
	Token string `mapstructure:"token"`
	// TokenFile persists refreshed tokens across runs. Empty keeps them in memory.
	TokenFile string `mapstructure:"token_file"`
}

type WalletConfig struct {
	Bitcoind bitcoind.Config `mapstructure:"bitcoind"`
}

// HistoryConfig enables the Postgres attempt journal.
type HistoryConfig struct {
	Enabled  bool            `mapstructure:"enabled"`
	Postgres postgres.Config `mapstructure:"postgres"`
}

// Parse reads the configuration once. configFile is optional; without it config.yaml
// is looked up in the working directory. A .env file is loaded into the environment first.
func Parse(configFile ...string) Config {
	ctx := logger.WithContext(context.Background(), slog.String("package", "config"))
	configOnce.Do(func() {
		if err := godotenv.Load(); err != nil {
			logger.DebugContext(ctx, "no .env file loaded", slogx.Error(err))
		}

		if len(configFile) > 0 && configFile[0] != "" {
			viper.SetConfigFile(configFile[0])
		} else {
			viper.AddConfigPath("./")
			viper.SetConfigName("config")
		}

		viper.SetEnvPrefix(EnvPrefix)
		viper.AutomaticEnv()
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		bindEnvs()

		if err := viper.ReadInConfig(); err != nil {
			var errNotfound viper.ConfigFileNotFoundError
			if errors.As(err, &errNotfound) {
				logger.DebugContext(ctx, "config file not found, use default value", slogx.Error(err))
			} else {
				logger.PanicContext(ctx, "invalid config file", slogx.Error(err))
			}
		}

		if err := viper.Unmarshal(&config); err != nil {
			logger.PanicContext(ctx, "failed to unmarshal config", slogx.Error(err))
		}
		config.Network = common.ParseNetwork(config.Network.String())
	})

	return *config
}

// Load returns the parsed configuration.
func Load() Config {
	return Parse()
}

// BindPFlag binds a configuration key to a command line flag.
func BindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		logger.Panic("Something went wrong, failed to bind flag for config", slog.String("package", "config"), slogx.Error(err))
	}
}

// bindEnvs registers the keys that have no default so that viper.Unmarshal sees their env values.
func bindEnvs() {
	for _, key := range []string{
		"network",
		"logger.output", "logger.debug",
		"api.base_url", "api.timeout", "api.rate_limit", "api.debug",
		"auth.token", "auth.token_file",
		"wallet.bitcoind.host", "wallet.bitcoind.user", "wallet.bitcoind.pass",
		"wallet.bitcoind.disable_tls", "wallet.bitcoind.wallet", "wallet.bitcoind.label",
		"inscription.poll_interval", "inscription.strict_address",
		"brc20.poll_interval", "brc20.strict_address",
		"http_server.port", "http_server.allow_origins", "http_server.body_limit",
		"history.enabled", "history.postgres.url", "history.postgres.host", "history.postgres.port",
		"history.postgres.user", "history.postgres.password", "history.postgres.db_name",
	} {
		_ = viper.BindEnv(key)
	}
}
