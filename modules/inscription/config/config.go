package config

import "time"

type Config struct {
	// PollInterval between two payment status checks. Default is 30s.
	PollInterval time.Duration `mapstructure:"poll_interval"`
	// StrictAddress validates addresses against the configured network instead of the permissive shape check.
	StrictAddress bool `mapstructure:"strict_address"`
}
