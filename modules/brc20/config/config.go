package config

import "time"

type Config struct {
	// PollInterval between two payment status checks. Default is 30s.
	PollInterval time.Duration `mapstructure:"poll_interval"`
	// StrictAddress validates the deploy destination against the configured network.
	StrictAddress bool `mapstructure:"strict_address"`
}
