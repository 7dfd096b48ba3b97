// Package config loads runtime settings from an optional .env file and
// BANNERKIT_* environment variables.
package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rohanthewiz/serr"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

const (
	keyEnv        = "BANNERKIT_ENV"
	keyChecks     = "BANNERKIT_CHECKS"
	keyAddress    = "BANNERKIT_ADDRESS"
	keyLogLevel   = "BANNERKIT_LOG_LEVEL"
	keyStoriesDir = "BANNERKIT_STORIES_DIR"
)

// Config holds the settings for the gallery server and the CLI.
type Config struct {
	// Environment is development or production.
	Environment string `mapstructure:"BANNERKIT_ENV" validate:"oneof=development production"`
	// Checks turns on the post-render accessible-title check.
	// Defaults to true outside production.
	Checks bool `mapstructure:"BANNERKIT_CHECKS"`
	// Address is the listen address of the gallery server.
	Address string `mapstructure:"BANNERKIT_ADDRESS" validate:"required"`
	// LogLevel is passed to logger.SetLogLevel.
	LogLevel string `mapstructure:"BANNERKIT_LOG_LEVEL" validate:"oneof=debug info warn error"`
	// StoriesDir optionally adds story files to the built-in ones.
	StoriesDir string `mapstructure:"BANNERKIT_STORIES_DIR"`
}

// Production reports whether the configuration targets production.
func (c Config) Production() bool {
	return c.Environment == EnvProduction
}

// Load reads dir/.env if present, then the environment.
// Environment variables take precedence over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, serr.Wrap(err, "error reading config file", "dir", dir)
		}
	}

	for _, key := range []string{keyEnv, keyChecks, keyAddress, keyLogLevel, keyStoriesDir} {
		if err := v.BindEnv(key); err != nil {
			return nil, serr.Wrap(err, "unable to bind env", "key", key)
		}
	}
	v.SetDefault(keyEnv, EnvDevelopment)
	v.SetDefault(keyAddress, ":8000")
	v.SetDefault(keyLogLevel, "info")
	// No default for keyChecks; it follows the environment unless set.

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, serr.Wrap(err, "unable to decode config")
	}
	if !v.IsSet(keyChecks) {
		cfg.Checks = !cfg.Production()
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, serr.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}
