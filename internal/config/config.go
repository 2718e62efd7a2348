// Package config loads and validates the Fluxpack build configuration.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config represents the build configuration.
type Config struct {
	Entry  string       `mapstructure:"entry"`
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig contains artifact destination settings.
type OutputConfig struct {
	Path     string `mapstructure:"path"`
	Filename string `mapstructure:"filename"`
}

// ConfigError reports a missing or malformed configuration field.
//
//nolint:revive // ConfigError is clearer than Error for external callers
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Field, e.Reason)
}

// Load reads the configuration from cfgFile if given, otherwise from a
// fluxpack.yaml in the working directory. Environment variables with the
// FLUXPACK_ prefix override file values (FLUXPACK_ENTRY, FLUXPACK_OUTPUT_PATH,
// FLUXPACK_OUTPUT_FILENAME); a .env file is honored when present. A missing
// default config file is not an error, the entry can come from the command
// line alone.
func Load(cfgFile string) (*Config, error) {
	// Load .env file if present (ignore errors if it doesn't exist)
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("Loaded .env file")
	}

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("fluxpack")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("FLUXPACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("entry", "")
	v.SetDefault("output.path", "dist")
	v.SetDefault("output.filename", "bundle.js")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("Loaded config file")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that all fields required for a build are present and
// well-formed.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Entry) == "" {
		return &ConfigError{Field: "entry", Reason: "is required"}
	}
	if strings.TrimSpace(c.Output.Path) == "" {
		return &ConfigError{Field: "output.path", Reason: "cannot be empty"}
	}
	if strings.TrimSpace(c.Output.Filename) == "" {
		return &ConfigError{Field: "output.filename", Reason: "cannot be empty"}
	}
	if strings.ContainsAny(c.Output.Filename, `/\`) {
		return &ConfigError{Field: "output.filename", Reason: "must not contain path separators"}
	}
	return nil
}
