// SPDX-License-Identifier: MIT

// Package config loads tsalign settings from a YAML file, TSALIGN_*
// environment variables and command-line flags, in increasing precedence.
//
// Keys:
//
//	metric               euclidean | manhattan | karl-pearson
//	format               json | yaml | text
//	reference_timestamp  timestamp column of reference tables (name or index)
//	target_timestamp     timestamp column of target tables (name or index)
//	concurrency          parallel comparisons for batch runs (0 = GOMAXPROCS)
//	log.level            debug | info | warn | error
//	log.format           text | json
//	server.addr          listen address
//	server.read_timeout  e.g. 10s
//	server.write_timeout e.g. 60s
//	server.max_body_bytes request body limit
//	server.max_cells     largest accepted L·N per comparison
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/tsalign/distance"
	"github.com/katalvlaran/tsalign/internal/logging"
)

// ErrInvalidConfig indicates a setting outside its allowed values.
var ErrInvalidConfig = errors.New("config: invalid value")

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatText = "text"
)

// Config is the fully resolved configuration.
type Config struct {
	Metric             string       `mapstructure:"metric"`
	Format             string       `mapstructure:"format"`
	ReferenceTimestamp string       `mapstructure:"reference_timestamp"`
	TargetTimestamp    string       `mapstructure:"target_timestamp"`
	Concurrency        int          `mapstructure:"concurrency"`
	Log                LogConfig    `mapstructure:"log"`
	Server             ServerConfig `mapstructure:"server"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServerConfig holds HTTP listener settings and request limits.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	MaxBodyBytes int64         `mapstructure:"max_body_bytes"`
	MaxCells     int           `mapstructure:"max_cells"`
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("metric", string(distance.Euclidean))
	v.SetDefault("format", FormatJSON)
	v.SetDefault("reference_timestamp", "")
	v.SetDefault("target_timestamp", "")
	v.SetDefault("concurrency", 0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatText)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.max_body_bytes", int64(8<<20))
	v.SetDefault("server.max_cells", 25_000_000)
}

// Init prepares v: defaults, the config file (cfgFile, or tsalign.yaml in
// the working directory or ~/.config/tsalign) and TSALIGN_* variables, with
// "." in keys mapped to "_". It returns the config file used, or "".
// A missing default config file is not an error; a missing explicit one is.
func Init(v *viper.Viper, cfgFile string) (string, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("tsalign")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "tsalign"))
		}
	}

	v.SetEnvPrefix("TSALIGN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return "", nil
		}

		return "", fmt.Errorf("config: read %s: %w", cfgFile, err)
	}

	return v.ConfigFileUsed(), nil
}

// Load resolves v into a validated Config.
func Load(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if cfg.Concurrency == 0 {
		cfg.Concurrency = runtime.GOMAXPROCS(0)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its allowed values.
func (c Config) Validate() error {
	if _, err := distance.ParseMetric(c.Metric); err != nil {
		return fmt.Errorf("config: metric: %w", errors.Join(ErrInvalidConfig, err))
	}
	switch c.Format {
	case FormatJSON, FormatYAML, FormatText:
	default:
		return fmt.Errorf("config: format %q: %w", c.Format, ErrInvalidConfig)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config: concurrency %d: %w", c.Concurrency, ErrInvalidConfig)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", errors.Join(ErrInvalidConfig, err))
	}
	switch c.Log.Format {
	case logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("config: log.format %q: %w", c.Log.Format, ErrInvalidConfig)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("config: server.max_body_bytes %d: %w", c.Server.MaxBodyBytes, ErrInvalidConfig)
	}
	if c.Server.MaxCells <= 0 {
		return fmt.Errorf("config: server.max_cells %d: %w", c.Server.MaxCells, ErrInvalidConfig)
	}

	return nil
}

// MetricValue returns the parsed metric. Call after Validate.
func (c Config) MetricValue() distance.Metric {
	m, _ := distance.ParseMetric(c.Metric)

	return m
}
