// Package config loads the service configuration.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the HTTP service settings. Environment variables override
// values read from a config file.
type Config struct {
	Addr            string        `yaml:"addr" json:"addr" toml:"addr" env:"XLT_ADDR" env-default:":3000" validate:"required"`
	UploadDir       string        `yaml:"upload_dir" json:"upload_dir" toml:"upload_dir" env:"XLT_UPLOAD_DIR" env-default:"./uploads" validate:"required"`
	MaxUploadBytes  int           `yaml:"max_upload_bytes" json:"max_upload_bytes" toml:"max_upload_bytes" env:"XLT_MAX_UPLOAD_BYTES" env-default:"33554432" validate:"gt=0"`
	LogLevel        string        `yaml:"log_level" json:"log_level" toml:"log_level" env:"XLT_LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	Development     bool          `yaml:"development" json:"development" toml:"development" env:"XLT_DEV" env-default:"false"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" toml:"shutdown_timeout" env:"XLT_SHUTDOWN_TIMEOUT" env-default:"10s" validate:"gt=0"`
}

// Load reads the configuration from path, or from the environment only when
// path is empty, and validates it.
func Load(path string) (*Config, error) {
	var cfg Config

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the field constraints of cfg.
func Validate(cfg *Config) error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Usage returns a description of the supported environment variables.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return ""
	}
	return text
}
