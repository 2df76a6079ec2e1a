package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	DataDir         string        `env:"DATA_DIR,         default=.blueward"`
	DefaultLanguage string        `env:"DEFAULT_LANGUAGE, default=en"`
	LoginDelay      time.Duration `env:"LOGIN_DELAY,      default=1s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
