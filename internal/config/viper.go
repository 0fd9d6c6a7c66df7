package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"fjacquet/csv-ofx/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CSVOFX_RUN_ACCOUNT for
// run.account.
const EnvPrefix = "CSVOFX"

// Source is the dotted-path view of the configuration the resolver reads.
// *viper.Viper satisfies it.
type Source interface {
	IsSet(key string) bool
	Get(key string) interface{}
	GetString(key string) string
	GetStringMap(key string) map[string]interface{}
}

// Config represents the application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	// File is the configuration file that was read, empty when none was found.
	File string `mapstructure:"-" yaml:"-"`

	v *viper.Viper
}

// Source returns the underlying key/value view. A Config that was not
// loaded through Load or LoadFromReader has an empty source.
func (c *Config) Source() Source {
	if c.v == nil {
		c.v = newViper()
	}
	return c.v
}

// Load reads configuration with hierarchical precedence: defaults, then the
// configuration file, then CSVOFX_* environment variables. When path is empty
// config.yaml is searched in ./config, $HOME/.csv-ofx and the working
// directory, and a missing file is not an error.
func Load(path string) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.csv-ofx")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return finish(v)
}

// LoadFromReader reads YAML configuration from r, with the same defaults and
// environment overrides as Load.
func LoadFromReader(r io.Reader) (*Config, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return finish(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func finish(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	config.File = v.ConfigFileUsed()
	config.v = v
	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", GetEnv(EnvLogLevel, "info"))
	v.SetDefault("log.format", GetEnv(EnvLogFormat, "text"))
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	config.Log.Level = strings.ToLower(config.Log.Level)
	config.Log.Format = strings.ToLower(config.Log.Format)

	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	return nil
}

// NewLogger builds the application logger from the loaded log settings.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}
