// Package config resolves runtime settings from flags, environment variables,
// an optional config file and built-in defaults, in that order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultDataFile is the data file used when nothing else is configured,
// relative to the working directory.
const DefaultDataFile = "automobiles.txt"

// EnvPrefix prefixes every environment variable, e.g. AUTOGALLERY_FILE.
const EnvPrefix = "AUTOGALLERY"

// Setting keys. These double as flag names and config file keys.
const (
	KeyConfig      = "config"
	KeyDataFile    = "file"
	KeyLogLevel    = "log-level"
	KeyLogFile     = "log-file"
	KeyMetricsFile = "metrics-file"
)

// Config holds resolved settings.
type Config struct {
	DataFile    string
	LogLevel    string
	LogFile     string
	MetricsFile string
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(KeyConfig, "c", "", "config file path (yaml, toml or json)")
	fs.StringP(KeyDataFile, "f", DefaultDataFile, "automobile data file")
	fs.String(KeyLogLevel, "", "log level: debug, info, warn, error (default warn)")
	fs.String(KeyLogFile, "", "write logs to this file instead of stderr")
	fs.String(KeyMetricsFile, "", "write Prometheus metrics to this file on exit")
}

// Load resolves a Config from fs, which must have been set up with RegisterFlags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyDataFile, DefaultDataFile)
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyMetricsFile, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{KeyDataFile, KeyLogLevel, KeyLogFile, KeyMetricsFile} {
		if flag := fs.Lookup(key); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
			}
		}
	}

	configFile, err := fs.GetString(KeyConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to read config flag: %w", err)
	}
	if configFile == "" {
		configFile = v.GetString(KeyConfig)
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		DataFile:    strings.TrimSpace(v.GetString(KeyDataFile)),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFile:     v.GetString(KeyLogFile),
		MetricsFile: v.GetString(KeyMetricsFile),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data file path cannot be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be debug, info, warn or error", c.LogLevel)
	}
	return nil
}
