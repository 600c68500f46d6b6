package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

// Config holds the settings read from the environment
type Config struct {
	// Optional xlsx file with class definitions
	Workbook string `env:"ROLLCALL_WORKBOOK"`
	// logrus level name
	LogLevel string `env:"ROLLCALL_LOG_LEVEL" envDefault:"info"`
	// 0 keeps draws non-deterministic
	Seed uint64 `env:"ROLLCALL_SEED"`
}

// Load reads Config from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}
	return cfg, nil
}
