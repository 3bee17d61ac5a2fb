package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
// Nested structs use underscore delimiter (e.g., AOC_BASE_URL).
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.almanac
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/almanac.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Token is the puzzle site session cookie.
	// Env: TOKEN
	Token string `envconfig:"TOKEN"`

	// Workers is the number of goroutines used per pipeline stage.
	// Env: WORKERS (default: 1)
	Workers int `envconfig:"WORKERS" default:"1"`

	// Source configures input downloads.
	Source SourceEnv `envconfig:"AOC"`
}

// SourceEnv holds environment configuration for input downloads.
type SourceEnv struct {
	// BaseURL is the puzzle site root.
	// Env: AOC_BASE_URL (default: https://adventofcode.com)
	BaseURL string `envconfig:"BASE_URL" default:"https://adventofcode.com"`

	// Year is the event year.
	// Env: AOC_YEAR (default: 2023)
	Year int `envconfig:"YEAR" default:"2023"`

	// Timeout is the download timeout in seconds.
	// Env: AOC_TIMEOUT (default: 30)
	Timeout float64 `envconfig:"TIMEOUT" default:"30"`

	// CacheEnabled controls caching of downloaded inputs.
	// Env: AOC_CACHE_ENABLED (default: true)
	CacheEnabled bool `envconfig:"CACHE_ENABLED" default:"true"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "ALMANAC" would require ALMANAC_DATA_DIR instead of DATA_DIR.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = applyOption(cfg, WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = applyOption(cfg, WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = applyOption(cfg, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = applyOption(cfg, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.Token != "" {
		cfg = applyOption(cfg, WithToken(strings.TrimSpace(e.Token)))
	}
	cfg = applyOption(cfg, WithWorkers(e.Workers))
	cfg = applyOption(cfg, WithSourceConfig(e.Source.ToSourceConfig()))

	return cfg
}

// applyOption applies an option to the config.
func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

// ToSourceConfig converts SourceEnv to SourceConfig.
func (s SourceEnv) ToSourceConfig() SourceConfig {
	opts := []SourceConfigOption{
		WithCacheEnabled(s.CacheEnabled),
	}
	if s.BaseURL != "" {
		opts = append(opts, WithBaseURL(s.BaseURL))
	}
	if s.Year > 0 {
		opts = append(opts, WithYear(s.Year))
	}
	if s.Timeout > 0 {
		opts = append(opts, WithSourceTimeout(time.Duration(s.Timeout*float64(time.Second))))
	}
	return NewSourceConfigWithOptions(opts...)
}

// Normalize trims whitespace from string settings.
func (e EnvConfig) Normalize() EnvConfig {
	e.Host = strings.TrimSpace(e.Host)
	e.DataDir = strings.TrimSpace(e.DataDir)
	e.DBURL = strings.TrimSpace(e.DBURL)
	e.Source.BaseURL = strings.TrimSpace(e.Source.BaseURL)
	return e
}

// parseLogFormat parses a log format string.
func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
