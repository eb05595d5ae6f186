package config

import "github.com/gaze-network/inscriber/pkg/middleware/requestlogger"

type Config struct {
	Port         int                  `mapstructure:"port"`
	AllowOrigins string               `mapstructure:"allow_origins"`
	BodyLimit    int                  `mapstructure:"body_limit"`
	Logger       requestlogger.Config `mapstructure:"logger"`
}
